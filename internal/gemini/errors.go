package gemini

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrEmptyOutput is returned when the model call succeeds but produces no text.
var ErrEmptyOutput = errors.New("the AI model failed to produce an output")

// ErrorKind partitions upstream failures into the classes the UI presents.
type ErrorKind int

const (
	// KindUnknown covers errors with no parseable structured payload.
	KindUnknown ErrorKind = iota
	// KindBusy maps service-unavailable responses and transport timeouts.
	KindBusy
	// KindQuota maps rate-limit / quota-exhausted responses.
	KindQuota
	// KindModelNotFound maps model/route-not-found responses.
	KindModelNotFound
	// KindBadAPIKey maps responses complaining about the API key.
	KindBadAPIKey
	// KindOther passes the upstream message through unchanged.
	KindOther
)

// UpstreamError is a classified failure of the generative model call.
// Error() returns the user-presentable message for the class.
type UpstreamError struct {
	Kind     ErrorKind
	Upstream string // raw upstream message, if any
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindBusy:
		return "The AI service is currently busy. Please wait 10 seconds and try again."
	case KindQuota:
		return "API Quota Exceeded. You have reached your limit. Please check your plan details or wait until your quota resets."
	case KindModelNotFound:
		return "The requested model was not found. Please verify API versioning."
	case KindBadAPIKey:
		return "Invalid API Key. Please verify your environment configuration."
	case KindOther:
		return e.Upstream
	default:
		return "An unexpected error occurred during transcription."
	}
}

// apiErrorBody is the structured error envelope the Generative Language API
// returns. The payload is duck-typed upstream, so every field is optional and
// decoded defensively.
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// classify normalizes an upstream failure into an *UpstreamError.
//
// The payload may be a structured JSON error body or a plain string that
// itself encodes one; JSON parsing is attempted first, with substring
// inspection as the fallback. httpStatus is the transport-level status code,
// or 0 when the failure never produced a response.
func classify(httpStatus int, payload string) *UpstreamError {
	var body apiErrorBody
	if err := json.Unmarshal([]byte(payload), &body); err == nil && (body.Error.Code != 0 || body.Error.Message != "" || body.Error.Status != "") {
		code := body.Error.Code
		if code == 0 {
			code = httpStatus
		}
		return classifyParsed(code, body.Error.Status, body.Error.Message)
	}

	// Not JSON: fall back to the raw string and the HTTP status.
	switch {
	case httpStatus == 503:
		return &UpstreamError{Kind: KindBusy, Upstream: payload}
	case httpStatus == 429 || strings.Contains(strings.ToLower(payload), "quota"):
		return &UpstreamError{Kind: KindQuota, Upstream: payload}
	case httpStatus == 404:
		return &UpstreamError{Kind: KindModelNotFound, Upstream: payload}
	case strings.Contains(payload, "API key"):
		return &UpstreamError{Kind: KindBadAPIKey, Upstream: payload}
	case payload != "":
		return &UpstreamError{Kind: KindOther, Upstream: payload}
	default:
		return &UpstreamError{Kind: KindUnknown}
	}
}

func classifyParsed(code int, status, message string) *UpstreamError {
	switch {
	case code == 503 || status == "UNAVAILABLE":
		return &UpstreamError{Kind: KindBusy, Upstream: message}
	case code == 429 || strings.Contains(strings.ToLower(message), "quota"):
		return &UpstreamError{Kind: KindQuota, Upstream: message}
	case code == 404:
		return &UpstreamError{Kind: KindModelNotFound, Upstream: message}
	case strings.Contains(message, "API key"):
		return &UpstreamError{Kind: KindBadAPIKey, Upstream: message}
	case message != "":
		return &UpstreamError{Kind: KindOther, Upstream: message}
	default:
		return &UpstreamError{Kind: KindUnknown}
	}
}
