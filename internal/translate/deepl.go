package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const deeplDefaultURL = "https://api.deepl.com/v2"

// deeplBackend calls the DeepL text translation API. The document arrives
// here with code fences already replaced by placeholder tokens, so DeepL only
// sees prose; preserve_formatting keeps line structure intact.
type deeplBackend struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func (d *deeplBackend) kind() Kind { return KindDeepL }

type deeplRequest struct {
	Text               []string `json:"text"`
	SourceLang         string   `json:"source_lang"`
	TargetLang         string   `json:"target_lang"`
	PreserveFormatting bool     `json:"preserve_formatting"`
}

type deeplResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

func (d *deeplBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	base := d.baseURL
	if base == "" {
		base = deeplDefaultURL
	}
	endpoint := strings.TrimSuffix(base, "/") + "/translate"

	payload := deeplRequest{
		Text:               []string{text},
		SourceLang:         strings.ToUpper(sourceLang),
		TargetLang:         strings.ToUpper(targetLang),
		PreserveFormatting: true,
	}
	headers := map[string]string{
		"Authorization": "DeepL-Auth-Key " + d.apiKey,
	}

	body, err := postJSON(ctx, d.client, endpoint, headers, payload)
	if err != nil {
		return "", err
	}

	var resp deeplResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.New("invalid JSON response")
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("response contains no translations")
	}
	return resp.Translations[0].Text, nil
}
