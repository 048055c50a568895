package syncer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/mdtranslate/internal/config"
)

// Target is one per-language counterpart of a source document.
type Target struct {
	Language string
	Path     string
	Exists   bool
}

// SourceDoc is one default-language file discovered in the docs tree.
type SourceDoc struct {
	Path    string // absolute path
	RelPath string // path relative to the docs dir
	Targets []Target
}

// MissingTargets returns the targets that do not exist yet.
func (d SourceDoc) MissingTargets() []Target {
	missing := make([]Target, 0, len(d.Targets))
	for _, t := range d.Targets {
		if !t.Exists {
			missing = append(missing, t)
		}
	}
	return missing
}

// Discover walks the docs tree for files carrying the default-language
// suffix (name.<lang>.md) and computes the per-language target files for
// each. Suffix matching is case-sensitive on the lower-cased language code.
func Discover(cfg *config.Config) ([]SourceDoc, error) {
	sourceSuffix := "." + cfg.DefaultLanguage + ".md"

	var docs []SourceDoc
	err := filepath.WalkDir(cfg.DocsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), sourceSuffix) {
			return nil
		}

		rel, err := filepath.Rel(cfg.DocsDir, path)
		if err != nil {
			return err
		}

		doc := SourceDoc{Path: path, RelPath: rel}
		for _, lang := range cfg.TargetLanguages() {
			targetName := strings.TrimSuffix(d.Name(), sourceSuffix) + "." + lang + ".md"
			targetPath := filepath.Join(filepath.Dir(path), targetName)
			_, statErr := os.Stat(targetPath)
			doc.Targets = append(doc.Targets, Target{
				Language: lang,
				Path:     targetPath,
				Exists:   statErr == nil,
			})
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan docs dir %s: %w", cfg.DocsDir, err)
	}
	return docs, nil
}
