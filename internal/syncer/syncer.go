// Package syncer drives the translation sync: it discovers default-language
// markdown files, translates each missing per-language counterpart, inserts
// the translation notice and writes the new file next to its source.
//
// One document is processed to completion before the next begins. A failed
// translation leaves the target file absent so a later run retries it; the
// run as a whole always completes.
package syncer

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/mdtranslate/internal/config"
	"git.home.luguber.info/inful/mdtranslate/internal/metrics"
	"git.home.luguber.info/inful/mdtranslate/internal/notice"
	"git.home.luguber.info/inful/mdtranslate/internal/translate"
)

// Translator is the narrow dispatcher surface the syncer needs. Satisfied by
// *translate.Translator.
type Translator interface {
	Kind() translate.Kind
	Translate(ctx context.Context, content, sourceLang, targetLang string) (translate.Result, error)
}

// Syncer wires discovery, the translation dispatcher and the notice inserter
// together per document.
type Syncer struct {
	cfg        *config.Config
	translator Translator
	recorder   *metrics.Recorder
}

// New creates a Syncer. The recorder may be nil when metrics are not wanted.
func New(cfg *config.Config, translator Translator, recorder *metrics.Recorder) *Syncer {
	return &Syncer{cfg: cfg, translator: translator, recorder: recorder}
}

// Result summarises one sync run.
type Result struct {
	RunID   string
	Sources int
	Written []string
	Skipped int
	Failed  []string
}

// Run performs one full pass over the docs tree. Per-document failures are
// logged and counted but never abort the run; Run only returns an error when
// discovery itself fails or the context is cancelled.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	log := slog.With("run_id", result.RunID)

	docs, err := Discover(s.cfg)
	if err != nil {
		s.recorder.SyncRun("discovery_failed")
		return nil, err
	}
	result.Sources = len(docs)

	log.Info("Starting translation sync",
		"docs_dir", s.cfg.DocsDir,
		"source_language", s.cfg.DefaultLanguage,
		"target_languages", s.cfg.TargetLanguages(),
		"service", string(s.translator.Kind()),
		"sources", len(docs))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			s.recorder.SyncRun("cancelled")
			return result, err
		}

		missing := doc.MissingTargets()
		existing := len(doc.Targets) - len(missing)
		result.Skipped += existing
		for i := 0; i < existing; i++ {
			s.recorder.DocumentSkipped()
		}
		if len(missing) == 0 {
			log.Debug("All translations exist", "source", doc.RelPath)
			continue
		}

		content, err := os.ReadFile(doc.Path)
		if err != nil {
			log.Warn("Failed to read source file", "source", doc.RelPath, "error", err)
			result.Failed = append(result.Failed, doc.RelPath)
			continue
		}

		for _, target := range missing {
			s.translateOne(ctx, log, string(content), doc, target, result)
			if ctx.Err() != nil {
				s.recorder.SyncRun("cancelled")
				return result, ctx.Err()
			}
		}
	}

	log.Info("Translation sync finished",
		"written", len(result.Written),
		"skipped", result.Skipped,
		"failed", len(result.Failed))
	s.recorder.SyncRun("success")
	return result, nil
}

// translateOne produces a single target file. Remote failures are recovered
// here: one warning line, no file written.
func (s *Syncer) translateOne(ctx context.Context, log *slog.Logger, content string, doc SourceDoc, target Target, result *Result) {
	log.Info("Translating document",
		"source", doc.RelPath,
		"target_language", target.Language)

	service := string(s.translator.Kind())

	start := time.Now()
	translated, err := s.translator.Translate(ctx, content, s.cfg.DefaultLanguage, target.Language)
	s.recorder.ObserveTranslationDuration(service, time.Since(start))
	if err != nil {
		log.Warn("Translation failed, leaving target absent",
			"source", doc.RelPath,
			"target_language", target.Language,
			"error", err)
		s.recorder.TranslationFailed(service)
		result.Failed = append(result.Failed, target.Path)
		return
	}

	if translated.Drift != nil {
		log.Warn("Possible markdown corruption detected",
			"source", doc.RelPath,
			"target_language", target.Language,
			"mismatched", translated.Drift.Mismatched,
			"expected", translated.Drift.Expected,
			"actual", translated.Drift.Actual)
		s.recorder.StructuralDrift(service)
	}

	final := notice.Insert(translated.Text, s.cfg.DefaultLanguage, target.Language, s.cfg.Theme)
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}

	if err := os.WriteFile(target.Path, []byte(final), 0o644); err != nil {
		log.Warn("Failed to write target file", "target", target.Path, "error", err)
		s.recorder.TranslationFailed(service)
		result.Failed = append(result.Failed, target.Path)
		return
	}

	log.Info("Translation written", "target", target.Path)
	s.recorder.DocumentTranslated(service, target.Language)
	result.Written = append(result.Written, target.Path)
}
