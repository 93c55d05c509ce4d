package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/coachlabs/interview-coach/internal/ai"
	"github.com/coachlabs/interview-coach/internal/ai/gemini"
	"github.com/coachlabs/interview-coach/internal/extract"
	"github.com/coachlabs/interview-coach/internal/generator"
	"github.com/coachlabs/interview-coach/internal/interview"
	applogger "github.com/coachlabs/interview-coach/internal/logger"
	"github.com/coachlabs/interview-coach/internal/metrics"
	"github.com/coachlabs/interview-coach/internal/report"
	"github.com/coachlabs/interview-coach/internal/scorer"
	"github.com/coachlabs/interview-coach/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptAnswer = "Answer this question"
	PromptSkip   = "Skip this question"
	PromptFinish = "Finish the interview early"
)

var errFinish = errors.New("finish requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a mock interview over the given resume and job description",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "", "path to the resume file (pdf, docx or txt)")
	runCmd.Flags().StringP("job-description", "J", "", "path to the job description file (pdf, docx or txt)")
	runCmd.Flags().Bool("offline", false, "skip the language model and generate questions from the built-in bank")
	runCmd.Flags().String("answers-file", "", "read answers from a file (one transcript per line) instead of prompting")
	runCmd.Flags().String("report-dir", "", "directory for the report artifact. Default is the current directory.")

	viper.BindPFlag("resume", runCmd.Flags().Lookup("resume"))
	viper.BindPFlag("job-description", runCmd.Flags().Lookup("job-description"))
	viper.BindPFlag("report-dir", runCmd.Flags().Lookup("report-dir"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := applogger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-coach", zap.String("version", version))

	if config == nil {
		config = &Config{}
	}

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	counters := metrics.New()

	resume, jd := extractDocuments(ctx, logger)

	sc, err := buildScorer(config)
	if err != nil {
		logger.Fatal("loading scoring lexicon", zap.Error(err))
	}

	drafter := prepareDrafter(ctx, cmd, config, counters, logger)

	gen := generator.New(drafter, aiTimeout(config), maxLogLength(config), logger)

	batch, err := gen.Generate(ctx, resume, jd)
	if err != nil {
		logger.Fatal("generating questions",
			zap.Error(err),
			zap.String("hint", "provide at least one readable resume or job description file"),
		)
	}

	logger.Info("generated questions",
		zap.Int("count", len(batch.Questions)),
		zap.String("source", string(batch.Source)),
	)

	if batch.LowConfidence {
		logger.Warn("documents are short; questions may be generic",
			zap.Int("resume_words", resume.WordCount),
			zap.Int("jd_words", jd.WordCount),
			zap.Int("minimum", interview.MinDocumentWords),
		)
	}

	session := interview.NewSession(resume, jd, batch.Questions)
	counters.SessionStarted()

	collect := collectInteractive
	if file := cmd.Flag("answers-file").Value.String(); file != "" {
		answers, err := readAnswersFile(file)
		if err != nil {
			logger.Fatal("reading answers file", zap.Error(err))
		}
		collect = collectFromList(answers)
	}

	runLoop(session, sc, collect, counters, logger)

	result := session.Finalize()
	counters.SessionCompleted()

	report.Render(os.Stdout, result)

	path, err := report.Write(result, viper.GetString("report-dir"))
	if err != nil {
		logger.Fatal("writing report artifact", zap.Error(err))
	}

	logger.Info("report written", zap.String("path", path))
	logger.Info("session finished", counters.Fields()...)
}

// answerCollector returns the transcript for one question, or errFinish to
// stop the interview early. An empty transcript means the question was
// skipped.
type answerCollector func(q interview.Question) (string, error)

func runLoop(session *interview.Session, sc *scorer.Scorer, collect answerCollector, counters *metrics.Metrics, logger *zap.Logger) {
	total := len(session.Questions)

	for _, q := range session.Questions {
		fmt.Printf("\nQuestion %d of %d [%s]\n%s\n\n", q.Index, total, q.Category, q.Text)
		counters.QuestionAsked()

		started := time.Now()
		transcript, err := collect(q)
		if err != nil {
			if errors.Is(err, errFinish) {
				logger.Info("finishing early", zap.Int("questions_presented", q.Index))
				return
			}
			logger.Fatal("collecting an answer", zap.Error(err))
		}

		if strings.TrimSpace(transcript) == "" {
			logger.Info("question skipped", zap.Int("question", q.Index))
			continue
		}

		answer := interview.NewAnswer(q.Index, transcript, time.Since(started).Seconds())
		if err := session.SetAnswer(answer); err != nil {
			logger.Fatal("recording an answer", zap.Error(err))
		}

		breakdown := sc.Score(answer.Transcript, q)
		if err := session.SetScore(q.Index, breakdown); err != nil {
			logger.Fatal("recording a score", zap.Error(err))
		}
		counters.AnswerScored()

		logger.Info("answer scored",
			zap.Int("question", q.Index),
			zap.Int("composite", breakdown.Composite),
			zap.Int("words", answer.WordCount),
		)
	}
}

func collectInteractive(q interview.Question) (string, error) {
	action := promptui.Select{
		Label: "Proceed?",
		Items: []string{PromptAnswer, PromptSkip, PromptFinish},
	}

	_, choice, err := action.Run()
	if err != nil {
		return "", err
	}

	switch choice {
	case PromptSkip:
		return "", nil
	case PromptFinish:
		return "", errFinish
	}

	answer := promptui.Prompt{
		Label: "Your answer",
	}

	return answer.Run()
}

// collectFromList feeds pre-recorded transcripts, one per question in order.
// Blank lines skip their question.
func collectFromList(answers []string) answerCollector {
	next := 0
	return func(interview.Question) (string, error) {
		if next >= len(answers) {
			return "", errFinish
		}
		answer := answers[next]
		next++
		return answer, nil
	}
}

func readAnswersFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var answers []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		answers = append(answers, scanner.Text())
	}

	return answers, scanner.Err()
}

// extractDocuments reads both documents, tolerating individual failures:
// a document that cannot be read participates as empty text and the
// generator decides whether the remainder is enough.
func extractDocuments(ctx context.Context, logger *zap.Logger) (resume, jd interview.Document) {
	extractor, err := extract.New(ctx)
	if err != nil {
		logger.Fatal("initializing document extractor", zap.Error(err))
	}

	resume = extractOne(ctx, extractor, interview.SourceResume, viper.GetString("resume"), logger)
	jd = extractOne(ctx, extractor, interview.SourceJobDescription, viper.GetString("job-description"), logger)

	return resume, jd
}

func extractOne(ctx context.Context, extractor *extract.Extractor, kind interview.SourceKind, path string, logger *zap.Logger) interview.Document {
	if strings.TrimSpace(path) == "" {
		logger.Warn("no document provided", zap.String("kind", string(kind)))
		return interview.NewDocument(kind, "")
	}

	doc, err := extractor.Extract(ctx, kind, path)
	if err != nil {
		logger.Warn("treating document as insufficient text",
			zap.String("kind", string(kind)),
			zap.String("path", path),
			zap.Error(err),
		)
		return interview.NewDocument(kind, "")
	}

	logger.Info("document extracted",
		zap.String("kind", string(kind)),
		zap.Int("words", doc.WordCount),
	)

	return doc
}

func buildScorer(config *Config) (*scorer.Scorer, error) {
	if config.Lexicon == "" {
		return scorer.New(nil), nil
	}

	lex, err := scorer.LoadLexicon(config.Lexicon)
	if err != nil {
		return nil, err
	}

	return scorer.New(lex), nil
}

// prepareDrafter builds the Gemini drafter, or returns nil to select the
// fallback-only path when the model is disabled or unconfigured.
func prepareDrafter(ctx context.Context, cmd *cobra.Command, config *Config, counters *metrics.Metrics, logger *zap.Logger) ai.QuestionDrafter {
	if cmd.Flag("offline").Value.String() == "true" {
		logger.Info("offline mode requested; using the built-in question bank")
		return nil
	}

	if config.AI != nil && !config.AI.Enabled {
		logger.Info("language model disabled in config; using the built-in question bank")
		return nil
	}

	gcfg := geminiConfig(config)

	provider := "gemini"
	if config.AI != nil && strings.TrimSpace(config.AI.Provider) != "" {
		provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	}
	if provider != "gemini" {
		logger.Warn("unsupported ai provider; using the built-in question bank",
			zap.String("provider", provider),
		)
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: gcfg.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		logger.Warn("no gemini api key; using the built-in question bank",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY, GEMINI_API_KEY_FILE or ai.gemini.api-key-file"),
		)
		return nil
	}

	genLogger := applogger.WithCommonFields(logger, provider, gcfg.Model)

	drafter, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, gcfg.MaxRetries, genLogger)
	if err != nil {
		logger.Warn("building gemini generator; using the built-in question bank", zap.Error(err))
		return nil
	}

	return &countingDrafter{drafter: drafter, counters: counters}
}

func geminiConfig(config *Config) *GeminiConfig {
	if config.AI != nil && config.AI.Gemini != nil {
		gcfg := *config.AI.Gemini
		if gcfg.APIKeyFile == "" {
			gcfg.APIKeyFile = viper.GetString("ai.gemini.api-key-file")
		}
		return &gcfg
	}

	return &GeminiConfig{APIKeyFile: viper.GetString("ai.gemini.api-key-file")}
}

func aiTimeout(config *Config) time.Duration {
	if config.AI == nil || config.AI.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(config.AI.TimeoutSeconds) * time.Second
}

func maxLogLength(config *Config) int {
	if config.AI == nil || config.AI.Gemini == nil {
		return 0
	}
	return config.AI.Gemini.MaxLogLength
}

// countingDrafter wraps a drafter with model-call metrics.
type countingDrafter struct {
	drafter  ai.QuestionDrafter
	counters *metrics.Metrics
}

func (c *countingDrafter) Draft(ctx context.Context, system, prompt string) (string, error) {
	raw, err := c.drafter.Draft(ctx, system, prompt)
	c.counters.ModelCall(err == nil)
	return raw, err
}

func (c *countingDrafter) Model() string {
	return c.drafter.Model()
}
