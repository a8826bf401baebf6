// Package pipeline runs the load -> summarize -> keywords -> quiz ->
// write sequence. Stages execute strictly one after another; each
// consumes immutable inputs and produces a new artifact.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"studygen/internal/fault"
	"studygen/internal/llm"
	"studygen/internal/loader"
	"studygen/internal/model"
	"studygen/internal/summarizer"
	"studygen/internal/writer"
)

// Deps are the collaborators a run needs.
type Deps struct {
	Log        *slog.Logger
	Summarizer summarizer.Provider
	LLM        llm.Client
}

// Options parameterize a single run.
type Options struct {
	InputPath string
	OutDir    string
	Keywords  int
	Questions int

	// FailFast aborts the run on the first stage error instead of the
	// default per-stage isolation, under which later stages still run
	// and every artifact that was produced is still written.
	FailFast bool

	// Progress, when set, receives a short status line at each stage.
	Progress func(status string)
}

// Run executes the pipeline. Input and output errors are always fatal;
// API stage errors follow the FailFast policy. The returned error is
// non-nil whenever any stage failed, even if artifacts were written.
func Run(ctx context.Context, deps Deps, opts Options) error {
	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}
	log := deps.Log.With("run", uuid.NewString())

	progress("Reading input...")
	text, err := loader.Load(opts.InputPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	log.Info("input loaded", "path", opts.InputPath, "chars", len(text))

	var (
		bundle    model.Bundle
		stageErrs []error
	)
	fail := func(stage string, err error) error {
		err = fmt.Errorf("%s: %w", stage, err)
		log.Error("stage failed", "stage", stage, "kind", fault.Kind(err), "err", err)
		if opts.FailFast {
			return err
		}
		stageErrs = append(stageErrs, err)
		return nil
	}

	progress("Summarizing...")
	summary, err := deps.Summarizer.Summarize(ctx, text)
	if err != nil {
		if abort := fail("summarize", err); abort != nil {
			return abort
		}
	} else {
		bundle.Summary, bundle.HasSummary = summary, true
		log.Info("summary generated", "chars", len(summary))
	}

	progress("Extracting keywords...")
	keywords, err := deps.LLM.Keywords(ctx, text, opts.Keywords)
	if err != nil {
		if abort := fail("keywords", err); abort != nil {
			return abort
		}
	} else {
		bundle.Keywords, bundle.HasKeywords = keywords, true
		log.Info("keywords generated", "count", len(keywords))
	}

	progress("Generating quiz...")
	quiz, err := deps.LLM.Quiz(ctx, text, opts.Questions)
	if err != nil {
		if abort := fail("quiz", err); abort != nil {
			return abort
		}
	} else {
		bundle.Quiz, bundle.HasQuiz = quiz, true
		log.Info("quiz generated", "questions", len(quiz))
	}

	if bundle.Empty() {
		return errors.Join(stageErrs...)
	}

	progress("Writing results...")
	paths, err := writer.Write(opts.OutDir, bundle)
	if err != nil {
		return errors.Join(append(stageErrs, fmt.Errorf("write: %w", err))...)
	}
	log.Info("artifacts written", "dir", opts.OutDir, "files", len(paths))

	return errors.Join(stageErrs...)
}
