// Package translate dispatches markdown documents to one of a closed set of
// translation backends and runs the markdown-safe round-trip around the call:
// fenced code blocks are protected before dispatch, provider reasoning is
// stripped from the response, blocks are restored, and a structural integrity
// check produces a drift report.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/mdtranslate/internal/fence"
	"git.home.luguber.info/inful/mdtranslate/internal/integrity"
)

// Kind identifies a translation backend. The set is closed: resolution is an
// exhaustive switch, not a dynamic lookup.
type Kind string

const (
	KindSimpleen Kind = "simpleen"
	KindDeepL    Kind = "deepl"
	KindSaia     Kind = "saia"
)

// ErrUnknownService is a configuration error: the configured backend name is
// not in the closed set. It is surfaced before any network activity.
var ErrUnknownService = errors.New("unknown translation service")

// ErrTranslationDisabled signals the documented "translation disabled" mode:
// an empty credential means the operator wants builds to proceed without
// translation, not an error.
var ErrTranslationDisabled = errors.New("translation disabled: no API key configured")

// ParseKind resolves a backend name case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case KindSimpleen:
		return KindSimpleen, nil
	case KindDeepL:
		return KindDeepL, nil
	case KindSaia:
		return KindSaia, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownService, name)
	}
}

// Options configures a Translator.
type Options struct {
	// Service is the backend name, matched case-insensitively.
	Service string
	// APIKey is the backend credential. Empty selects disabled mode.
	APIKey string
	// Timeout bounds one translation call. Zero means no explicit timeout
	// beyond the HTTP client default.
	Timeout time.Duration
	// BaseURL overrides the provider endpoint; used by tests and
	// self-hosted deployments. Empty selects the provider default.
	BaseURL string
}

// backend performs the provider-specific request for already-protected text.
type backend interface {
	kind() Kind
	translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Translator translates markdown documents through one configured backend.
type Translator struct {
	backend backend
	timeout time.Duration
}

// Result carries a translated document and the outcome of the structural
// integrity check. Drift is nil when source and translation agree; a non-nil
// report is a soft signal only and must never fail the pipeline.
type Result struct {
	Text  string
	Drift *integrity.Report
}

// New builds a Translator for the configured service. Unknown service names
// and missing credentials are reported here, before any network activity.
func New(opts Options) (*Translator, error) {
	kind, err := ParseKind(opts.Service)
	if err != nil {
		return nil, err
	}
	if opts.APIKey == "" {
		return nil, ErrTranslationDisabled
	}

	client := newHTTPClient(opts.Timeout)

	var b backend
	switch kind {
	case KindSimpleen:
		b = &simpleenBackend{apiKey: opts.APIKey, baseURL: opts.BaseURL, client: client}
	case KindDeepL:
		b = &deeplBackend{apiKey: opts.APIKey, baseURL: opts.BaseURL, client: client}
	case KindSaia:
		b = &saiaBackend{apiKey: opts.APIKey, baseURL: opts.BaseURL, client: client}
	}

	return &Translator{backend: b, timeout: opts.Timeout}, nil
}

// Kind returns the backend kind this translator dispatches to.
func (t *Translator) Kind() Kind {
	return t.backend.kind()
}

// Translate runs the full round-trip for one document. A remote failure is
// returned as an error the caller recovers from per document; it carries no
// partial text.
func (t *Translator) Translate(ctx context.Context, content, sourceLang, targetLang string) (Result, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	protected, blocks := fence.Protect(content)

	translated, err := t.backend.translate(ctx, protected, sourceLang, targetLang)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", t.backend.kind(), err)
	}

	translated = stripReasoning(translated)

	if len(blocks) > 0 {
		translated, err = fence.Restore(translated, blocks)
		if err != nil {
			return Result{}, err
		}
	}

	translated = strings.TrimSpace(translated)

	return Result{
		Text:  translated,
		Drift: integrity.Check(content, translated),
	}, nil
}

// reasoningOpen/reasoningClose delimit the explanatory region some chat
// providers prepend to their answer.
const (
	reasoningOpen  = "<think>"
	reasoningClose = "</think>"
)

// stripReasoning removes a delimited reasoning region from a provider
// response. Text without such a region passes through unchanged.
func stripReasoning(text string) string {
	start := strings.Index(text, reasoningOpen)
	if start < 0 {
		return text
	}
	end := strings.Index(text[start:], reasoningClose)
	if end < 0 {
		return text
	}
	return text[:start] + text[start+end+len(reasoningClose):]
}
