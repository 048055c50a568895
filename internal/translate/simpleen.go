package translate

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const simpleenDefaultURL = "https://api.simpleen.io"

// simpleenBackend calls the Simpleen markdown translation API. Simpleen
// understands markdown natively, so the only instruction it needs is the
// "Markdown" data format; placeholder tokens pass through as opaque words.
type simpleenBackend struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func (s *simpleenBackend) kind() Kind { return KindSimpleen }

type simpleenRequest struct {
	DataFormat     string `json:"dataformat"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Text           string `json:"text"`
}

func (s *simpleenBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	base := s.baseURL
	if base == "" {
		base = simpleenDefaultURL
	}
	endpoint := strings.TrimSuffix(base, "/") + "/translate?auth_key=" + url.QueryEscape(s.apiKey)

	payload := simpleenRequest{
		DataFormat:     "Markdown",
		SourceLanguage: strings.ToUpper(sourceLang),
		TargetLanguage: strings.ToUpper(targetLang),
		Text:           text,
	}

	body, err := postJSON(ctx, s.client, endpoint, nil, payload)
	if err != nil {
		return "", err
	}

	// The API answers with the translated document as the response body.
	return string(body), nil
}
