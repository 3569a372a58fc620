package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ArgsError reports arguments that couldn't be decoded
type ArgsError struct {
	Command string
	Err     error
}

func (e *ArgsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Command, e.Err)
}

func (e *ArgsError) Unwrap() error {
	return e.Err
}

// DecodeArgs strictly decodes raw into v
func DecodeArgs(command string, raw json.RawMessage, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return &ArgsError{Command: command, Err: fmt.Errorf("missing arguments")}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ArgsError{Command: command, Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &ArgsError{Command: command, Err: fmt.Errorf("unexpected data after arguments")}
	}
	return nil
}
