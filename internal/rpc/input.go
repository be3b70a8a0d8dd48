package rpc

import (
	"bytes"
	"encoding/json"

	"github.com/bytedance/sonic"
	"github.com/time-tracker/api/internal/pkg/apperr"
)

// RawInput is the undecoded argument of a call. Clients send either the
// value itself (scalar form) or a batch wrapper {"0": value} (positional form).
type RawInput struct {
	Positional bool
	Payload    []byte
}

// ParseRawInput classifies data. A JSON object whose only key is "0" is
// positional; anything else, including no input at all, is scalar.
func ParseRawInput(data []byte) RawInput {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return RawInput{Payload: trimmed}
	}
	var wrapper map[string]json.RawMessage
	if err := sonic.Unmarshal(trimmed, &wrapper); err != nil || len(wrapper) != 1 {
		return RawInput{Payload: trimmed}
	}
	if inner, ok := wrapper["0"]; ok {
		return RawInput{Positional: true, Payload: bytes.TrimSpace(inner)}
	}
	return RawInput{Payload: trimmed}
}

// Absent reports whether no value was supplied.
func (in RawInput) Absent() bool {
	return len(in.Payload) == 0 || bytes.Equal(in.Payload, []byte("null"))
}

// Decode unmarshals the normalized value into dest. Absent input leaves dest untouched.
func (in RawInput) Decode(dest any) error {
	if in.Absent() {
		return nil
	}
	if err := sonic.Unmarshal(in.Payload, dest); err != nil {
		return apperr.Validation("malformed input", err)
	}
	return nil
}
