package types

import (
	"encoding/json"
	"fmt"
)

// Status is the outcome marker carried by every XRP-API envelope
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

const (
	// NoContentMessage is returned as message when the server answers with an empty body
	NoContentMessage = "No content"
	// JSONDecodeError is returned as error when the body is not valid JSON
	JSONDecodeError = "JSONDecodeError"
)

// Response is the uniform envelope returned by every client call.
// Fields holds the decoded body (success) or the error/message entries
// (failure); Status is never stored in Fields.
type Response struct {
	Status Status
	Fields map[string]any
}

func NewOKResponse(fields map[string]any) *Response {
	return newResponse(StatusOK, fields)
}

// NewErrorResponse builds an error envelope carrying reason under the "error" key
func NewErrorResponse(reason string) *Response {
	return &Response{
		Status: StatusError,
		Fields: map[string]any{"error": reason},
	}
}

func NewNoContentResponse() *Response {
	return &Response{
		Status: StatusOK,
		Fields: map[string]any{"message": NoContentMessage},
	}
}

// NewResponse builds an envelope from a copy of a decoded body, dropping any status field it carried
func NewResponse(status Status, fields map[string]any) *Response {
	return newResponse(status, fields)
}

func newResponse(status Status, fields map[string]any) *Response {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "status" {
			continue
		}
		copied[k] = v
	}
	return &Response{Status: status, Fields: copied}
}

func (r *Response) OK() bool {
	return r.Status == StatusOK
}

func (r *Response) IsError() bool {
	return r.Status != StatusOK
}

// Get returns the raw value of a body field
func (r *Response) Get(key string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[key]
	return v, ok
}

// GetString returns a body field rendered as a string, or "" when absent
func (r *Response) GetString(key string) string {
	v, ok := r.Get(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Error returns the "error" field, falling back to "message"
func (r *Response) Error() string {
	if e := r.GetString("error"); e != "" {
		return e
	}
	return r.GetString("message")
}

// Decode re-encodes the body fields into v, for callers wanting a typed view
func (r *Response) Decode(v any) error {
	raw, err := json.Marshal(r.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode response fields: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode response fields: %w", err)
	}
	return nil
}

// MarshalJSON flattens the envelope back to {"status": ..., <fields>}
func (r *Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["status"] = r.Status
	return json.Marshal(out)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	status := StatusError
	if s, ok := fields["status"].(string); ok && Status(s) == StatusOK {
		status = StatusOK
	}
	*r = *newResponse(status, fields)
	return nil
}
