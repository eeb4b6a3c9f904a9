package httpclient

import "encoding/json"

// Envelope is the response wrapper used by both backends.
type Envelope[T any] struct {
	Success   bool            `json:"success"`
	Data      T               `json:"data"`
	Message   string          `json:"message,omitempty"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}
