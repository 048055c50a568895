package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	saiaDefaultURL = "https://chat-ai.academiccloud.de/v1"

	// saiaModel is the chat model used for translation. Chosen for precise
	// instruction following over multilingual documentation.
	saiaModel = "openai-gpt-oss-120b"
)

// saiaBackend calls an OpenAI-compatible chat completions endpoint (SAIA /
// Academic Cloud). The system prompt carries the full markdown preservation
// instruction set; responses may wrap reasoning in <think> tags, which the
// pipeline strips.
type saiaBackend struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func (s *saiaBackend) kind() Kind { return KindSaia }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *saiaBackend) translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	base := s.baseURL
	if base == "" {
		base = saiaDefaultURL
	}
	endpoint := strings.TrimSuffix(base, "/") + "/chat/completions"

	payload := chatRequest{
		Model: saiaModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(text, sourceLang, targetLang)},
		},
		// Deterministic output: structure preservation matters more than
		// stylistic variety.
		Temperature: 0,
		TopP:        0.3,
	}
	headers := map[string]string{
		"Authorization": "Bearer " + s.apiKey,
	}

	body, err := postJSON(ctx, s.client, endpoint, headers, payload)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.New("invalid JSON response")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response contains no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
