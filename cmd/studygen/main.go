package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"studygen/internal/app"
	"studygen/internal/pipeline"
)

var (
	outDir        string
	numKeywords   int
	numQuestions  int
	maxSummaryLen int
	failFast      bool
)

var rootCmd = &cobra.Command{
	Use:   "studygen [input-file]",
	Short: "Generate a summary, keywords, and a quiz from a document",
	Long: `studygen reads a plain-text or PDF document, summarizes it with a
hosted Hugging Face model, and uses OpenAI to extract keywords and
generate multiple-choice quiz questions. The results are written as
three text files (summary.txt, keywords.txt, quiz.txt) into the output
directory.

API keys are read from HUGGINGFACE_API_KEY and OPENAI_API_KEY; a local
.env file is loaded when present.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateCounts(numKeywords, numQuestions); err != nil {
			return err
		}

		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		if maxSummaryLen > 0 {
			cfg.SummaryMaxLength = maxSummaryLen
		}
		deps, err := app.Build(cfg)
		if err != nil {
			return err
		}

		bar := newProgress()
		defer bar.Clear()

		start := time.Now()
		err = pipeline.Run(cmd.Context(), pipeline.Deps{
			Log:        deps.Log,
			Summarizer: deps.Summarizer,
			LLM:        deps.LLM,
		}, pipeline.Options{
			InputPath: args[0],
			OutDir:    outDir,
			Keywords:  numKeywords,
			Questions: numQuestions,
			FailFast:  failFast,
			Progress:  bar.Update,
		})
		bar.Clear()
		if err != nil {
			return err
		}

		fmt.Printf("Done in %s. Results in %s\n", time.Since(start).Round(time.Second), outDir)
		return nil
	},
}

func validateCounts(keywords, questions int) error {
	if keywords < 1 || keywords > 50 {
		return fmt.Errorf("--keywords must be between 1 and 50, got %d", keywords)
	}
	if questions < 1 || questions > 50 {
		return fmt.Errorf("--questions must be between 1 and 50, got %d", questions)
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "out_results", "directory for the result files")
	rootCmd.Flags().IntVarP(&numKeywords, "keywords", "k", 8, "number of keywords to generate")
	rootCmd.Flags().IntVarP(&numQuestions, "questions", "q", 5, "number of quiz questions to generate")
	rootCmd.Flags().IntVar(&maxSummaryLen, "max-summary-len", 0, "summary length hint passed to the model (default from SUMMARY_MAX_LENGTH)")
	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort the run on the first stage error instead of writing partial results")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
