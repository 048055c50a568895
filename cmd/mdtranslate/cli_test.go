package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newEchoChatServer answers chat-completions requests with the document part
// of the user prompt, unmodified.
func newEchoChatServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		user := req.Messages[len(req.Messages)-1].Content
		idx := strings.Index(user, "\n\n")
		require.GreaterOrEqual(t, idx, 0)

		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": user[idx+2:]}},
			},
		}))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeTestSetup(t *testing.T, baseURL, apiKey string) (docsDir, configPath string) {
	t.Helper()
	root := t.TempDir()
	docsDir = filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(docsDir, 0o755))

	configPath = filepath.Join(root, "mdtranslate.yaml")
	cfgYAML := fmt.Sprintf(`
docs_dir: %s
default_language: en
languages: [en, de]
theme: material
translation_service: saia
translation_service_api_key: %q
translation_service_base_url: %s
`, docsDir, apiKey, baseURL)
	require.NoError(t, os.WriteFile(configPath, []byte(cfgYAML), 0o644))
	return docsDir, configPath
}

func TestRunSync_TranslatesMissingFile(t *testing.T) {
	srv := newEchoChatServer(t)
	docsDir, configPath := writeTestSetup(t, srv.URL, "test-key")

	source := filepath.Join(docsDir, "index.en.md")
	require.NoError(t, os.WriteFile(source, []byte("# Home\nWelcome.\n"), 0o644))

	CLI.Config = configPath
	require.NoError(t, runSync())

	data, err := os.ReadFile(filepath.Join(docsDir, "index.de.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "# Home")
	require.Contains(t, string(data), "!!! note")
}

func TestRunSync_EmptyAPIKey_DisabledModeSucceeds(t *testing.T) {
	srv := newEchoChatServer(t)
	docsDir, configPath := writeTestSetup(t, srv.URL, "")

	source := filepath.Join(docsDir, "index.en.md")
	require.NoError(t, os.WriteFile(source, []byte("# Home\n"), 0o644))

	CLI.Config = configPath
	require.NoError(t, runSync())

	// Disabled mode translates nothing.
	_, statErr := os.Stat(filepath.Join(docsDir, "index.de.md"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRunStatus_ReportsWithoutTranslating(t *testing.T) {
	srv := newEchoChatServer(t)
	docsDir, configPath := writeTestSetup(t, srv.URL, "test-key")

	source := filepath.Join(docsDir, "index.en.md")
	require.NoError(t, os.WriteFile(source, []byte("---\ntitle: Home\n---\n# Home\n"), 0o644))

	CLI.Config = configPath
	require.NoError(t, runStatus())

	_, statErr := os.Stat(filepath.Join(docsDir, "index.de.md"))
	require.True(t, os.IsNotExist(statErr))
}
