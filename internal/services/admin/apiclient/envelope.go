package apiclient

import (
	"bytes"
	"encoding/json"
)

// envelope is the shared response shape of every API endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   envelopeError   `json:"error,omitempty"`
}

// envelopeError accepts either a bare string or an object carrying a message.
type envelopeError struct {
	Message string
}

func (e *envelopeError) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &e.Message)
	}
	var structured struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	e.Message = structured.Message
	if e.Message == "" {
		e.Message = structured.Error
	}
	return nil
}

func (e envelope) hasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
