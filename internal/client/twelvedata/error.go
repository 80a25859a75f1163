package twelvedata

import (
	"fmt"
	"net/http"

	go_json "github.com/goccy/go-json"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twelvedata api: %d %s", e.StatusCode, e.Message)
}

func parseAPIError(statusCode int, body []byte) error {
	var probe struct {
		Status  string `json:"status"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	_ = go_json.Unmarshal(body, &probe)

	if statusCode < 400 && probe.Status != "error" {
		return nil
	}

	msg := probe.Message
	if msg == "" {
		msg = string(body)
	}
	code := probe.Code
	if code == 0 {
		code = statusCode
	}
	if code == 0 {
		code = http.StatusBadGateway
	}

	return &APIError{StatusCode: code, Message: msg}
}
