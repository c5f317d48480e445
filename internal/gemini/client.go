// Package gemini wraps the Google Generative Language API for guitar tab
// transcription: it builds the prompt from audio plus optional song metadata,
// performs the generateContent call, and normalizes the result or failure.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

const (
	// DefaultModel handles complex reasoning and high-fidelity transcription.
	DefaultModel = "gemini-3-pro-preview"

	// DefaultBaseURL is the public Generative Language endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// thinkingBudget enables reasoning for better note detection and tab
	// arrangement.
	thinkingBudget = 4096
)

// Client calls the generative model. It performs no retries; the caller
// decides whether to resubmit.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	hc      *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithModel overrides the model id.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithBaseURL overrides the API endpoint, e.g. for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// NewClient constructs a Client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: DefaultBaseURL,
		hc:      &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Request/response envelopes for the generateContent REST call.

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type tool struct {
	GoogleSearch struct{} `json:"googleSearch"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generationConfig struct {
	ThinkingConfig thinkingConfig `json:"thinkingConfig"`
}

type generateRequest struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	Tools             []tool           `json:"tools"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Transcribe submits the audio (with optional metadata) for transcription and
// returns the cleaned ASCII tab text.
//
// Failures are reported as *UpstreamError with a user-presentable message, or
// ErrEmptyOutput when the model returns no text. The call blocks until the
// model answers; no timeout is imposed here beyond the transport's own.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string, meta *SongMetadata) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(audio)}},
				{Text: buildUserPrompt(meta)},
			},
		}},
		Tools:            []tool{{}},
		GenerationConfig: generationConfig{ThinkingConfig: thinkingConfig{ThinkingBudget: thinkingBudget}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return "", &UpstreamError{Kind: KindBusy, Upstream: err.Error()}
		}
		return "", &UpstreamError{Kind: KindOther, Upstream: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Kind: KindUnknown}
	}

	if resp.StatusCode >= 300 {
		return "", classify(resp.StatusCode, string(body))
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", &UpstreamError{Kind: KindUnknown}
	}

	text := extractText(&gr)
	if text == "" {
		return "", ErrEmptyOutput
	}

	return normalizeOutput(text), nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(gr *generateResponse) string {
	if len(gr.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
