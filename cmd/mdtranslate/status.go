package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/mdtranslate/internal/config"
	"git.home.luguber.info/inful/mdtranslate/internal/frontmatter"
	"git.home.luguber.info/inful/mdtranslate/internal/markdown"
	"git.home.luguber.info/inful/mdtranslate/internal/syncer"
)

// printStatus reports each source document, its structure and the
// translations it is still missing.
func printStatus(cfg *config.Config) error {
	docs, err := syncer.Discover(cfg)
	if err != nil {
		return err
	}

	slog.Info("Documentation status",
		"docs_dir", cfg.DocsDir,
		"source_language", cfg.DefaultLanguage,
		"target_languages", cfg.TargetLanguages(),
		"sources", len(docs))

	missingTotal := 0
	for _, doc := range docs {
		content, err := os.ReadFile(doc.Path)
		if err != nil {
			slog.Warn("Failed to read source file", "source", doc.RelPath, "error", err)
			continue
		}

		body := content
		if block, had, fmErr := frontmatter.Detect(content); fmErr == nil && had {
			body = content[block.End:]
		}
		stats := markdown.Analyze(body)

		missing := make([]string, 0, len(doc.Targets))
		for _, target := range doc.MissingTargets() {
			missing = append(missing, target.Language)
		}
		missingTotal += len(missing)

		slog.Info("Source document",
			"path", doc.RelPath,
			"title", markdown.Title(content),
			"headings", len(stats.Headings),
			"links", stats.Links,
			"code_blocks", stats.CodeBlocks,
			"missing_translations", missing)
	}

	slog.Info("Status summary", "sources", len(docs), "missing_translations", missingTotal)
	return nil
}
