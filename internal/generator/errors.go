package generator

import "errors"

var (
	// ErrInsufficientInput is returned when both documents are empty, so
	// not even fallback generation can be meaningfully tailored.
	ErrInsufficientInput = errors.New("both documents are empty")

	// ErrMalformedResponse tags a language-model response that did not
	// follow the requested line format. It is absorbed inside Generate and
	// never surfaces to callers; the fallback bank covers the shortfall.
	ErrMalformedResponse = errors.New("language model response could not be parsed")

	// ErrGeneration is returned when neither the model nor the fallback
	// bank could produce a full question set. The bank is sized so this
	// cannot happen in practice.
	ErrGeneration = errors.New("question generation produced no usable output")
)
