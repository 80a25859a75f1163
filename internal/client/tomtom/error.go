package tomtom

import (
	"fmt"

	go_json "github.com/goccy/go-json"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tomtom api: %d %s", e.StatusCode, e.Message)
}

func parseAPIError(statusCode int, body []byte) error {
	var probe struct {
		DetailedError struct {
			Message string `json:"message"`
		} `json:"detailedError"`
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	_ = go_json.Unmarshal(body, &probe)

	msg := probe.DetailedError.Message
	if msg == "" {
		msg = probe.Error.Description
	}
	if msg == "" {
		msg = string(body)
	}

	return &APIError{StatusCode: statusCode, Message: msg}
}
