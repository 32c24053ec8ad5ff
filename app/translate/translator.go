package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// FallbackPrefix marks untranslated content when the translation backend is
// unavailable. The pipeline never blocks on translation failures.
const FallbackPrefix = "[Translation unavailable] "

const requestTimeout = 15 * time.Second

// Translator converts text to English. Implementations must degrade, not
// fail: any error path returns a clearly marked fallback string.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang string) string
}

// HTTPTranslator posts to a LibreTranslate-compatible endpoint.
type HTTPTranslator struct {
	endpoint string
	client   *http.Client
}

var _ Translator = (*HTTPTranslator)(nil)

func NewHTTPTranslator(endpoint string) *HTTPTranslator {
	return &HTTPTranslator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

type translateRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (t *HTTPTranslator) Translate(ctx context.Context, text, sourceLang string) string {
	if text == "" || sourceLang == "en" {
		return text
	}

	body, err := json.Marshal(translateRequest{Text: text, Source: sourceLang, Target: "en"})
	if err != nil {
		return FallbackPrefix + text
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return FallbackPrefix + text
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		slog.Warn("Translation request failed, using fallback", "lang", sourceLang, "error", err)
		return FallbackPrefix + text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Translation backend returned error, using fallback",
			"lang", sourceLang, "status", fmt.Sprintf("%d %s", resp.StatusCode, resp.Status))
		return FallbackPrefix + text
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return FallbackPrefix + text
	}

	var parsed translateResponse
	if err := json.Unmarshal(data, &parsed); err != nil || parsed.TranslatedText == "" {
		return FallbackPrefix + text
	}
	return parsed.TranslatedText
}

// NoopTranslator is used when no translation endpoint is configured.
type NoopTranslator struct{}

var _ Translator = (*NoopTranslator)(nil)

func NewNoopTranslator() *NoopTranslator {
	return &NoopTranslator{}
}

func (NoopTranslator) Translate(_ context.Context, text, sourceLang string) string {
	if sourceLang == "en" {
		return text
	}
	return FallbackPrefix + text
}
