package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestCommonFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider string
		model    string
		expect   []zap.Field
	}{
		{
			name:     "both values present",
			provider: "gemini",
			model:    "gemini-2.5-flash",
			expect: []zap.Field{
				zap.String(FieldProvider, "gemini"),
				zap.String(FieldModel, "gemini-2.5-flash"),
			},
		},
		{
			name:   "empty values omitted",
			expect: []zap.Field{},
		},
		{
			name:     "whitespace trimmed",
			provider: "  gemini  ",
			model:    "   ",
			expect: []zap.Field{
				zap.String(FieldProvider, "gemini"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CommonFields(tt.provider, tt.model)
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %d fields, got %d", len(tt.expect), len(got))
			}
			for i := range got {
				if !got[i].Equals(tt.expect[i]) {
					t.Fatalf("field %d: expected %v, got %v", i, tt.expect[i], got[i])
				}
			}
		})
	}
}

func TestWithCommonFieldsNilLogger(t *testing.T) {
	t.Parallel()

	if got := WithCommonFields(nil, "gemini", "gemini-2.5-flash"); got == nil {
		t.Fatal("expected a usable logger, got nil")
	}
}
