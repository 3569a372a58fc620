// Package command dispatches named commands from the host to handlers.
//
// Arguments travel as JSON and results come back as a Response. A failing
// handler, including one that panics, turns into an error payload. It never
// takes the host down.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lumipallolabs/rms/internal/logging"
)

// Error kinds reported to the host
const (
	KindInvalidArgs    = "invalid_args"
	KindUnknownCommand = "unknown_command"
	KindInternal       = "internal"
)

// Handler runs one command
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// ErrorPayload is the host-facing description of a failure
type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// Response is the result of Invoke
type Response struct {
	OK     bool          `json:"ok"`
	Result any           `json:"result,omitempty"`
	Error  *ErrorPayload `json:"error,omitempty"`
}

// Classifier maps a handler error to a payload. Returning nil leaves the
// error to the next classifier.
type Classifier func(err error) *ErrorPayload

// Registry holds the registered commands
type Registry struct {
	mu          sync.RWMutex
	handlers    map[string]Handler
	classifiers []Classifier
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under name, replacing any previous one
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Classify adds an error classifier
func (r *Registry) Classify(c Classifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classifiers = append(r.classifiers, c)
}

// Names returns the registered command names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named command with JSON args
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (resp Response) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	classifiers := r.classifiers
	r.mu.RUnlock()

	logging.Debug.Debug().Str("command", name).RawJSON("args", validJSON(args)).Msg("invoke")
	if !ok {
		return Failure(&ErrorPayload{
			Kind:    KindUnknownCommand,
			Message: fmt.Sprintf("unknown command %q", name),
		})
	}

	defer func() {
		if p := recover(); p != nil {
			logging.Debug.Error().Str("command", name).Interface("panic", p).Msg("command panicked")
			resp = Failure(&ErrorPayload{
				Kind:    KindInternal,
				Message: fmt.Sprintf("command %s failed: %v", name, p),
			})
		}
	}()

	result, err := h(ctx, args)
	if err != nil {
		logging.Debug.Debug().Str("command", name).Err(err).Msg("command failed")
		return Failure(classify(classifiers, err))
	}
	return Response{OK: true, Result: result}
}

// Call marshals args and invokes name
func (r *Registry) Call(ctx context.Context, name string, args any) Response {
	raw, err := json.Marshal(args)
	if err != nil {
		return Failure(&ErrorPayload{Kind: KindInvalidArgs, Message: err.Error()})
	}
	return r.Invoke(ctx, name, raw)
}

// Failure builds an error response
func Failure(p *ErrorPayload) Response {
	return Response{OK: false, Error: p}
}

func classify(classifiers []Classifier, err error) *ErrorPayload {
	for _, c := range classifiers {
		if p := c(err); p != nil {
			return p
		}
	}
	var argErr *ArgsError
	if errors.As(err, &argErr) {
		return &ErrorPayload{Kind: KindInvalidArgs, Message: argErr.Error()}
	}
	return &ErrorPayload{Kind: KindInternal, Message: err.Error()}
}

// validJSON keeps malformed args from corrupting the log line
func validJSON(raw json.RawMessage) []byte {
	if !json.Valid(raw) {
		return []byte("null")
	}
	return raw
}
