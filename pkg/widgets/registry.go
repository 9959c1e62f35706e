// Package widgets provides a pluggable registry of widget data handlers.
//
// Each widget type self-registers via func init() with a handler that turns
// the widget's configuration map into the JSON payload the dashboard
// renders. Handlers never fail the HTTP request for upstream errors;
// instead they return an ErrorPayload so the widget can render the failure.
package widgets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Handler fetches or computes the data payload for one widget instance.
// cfg is the widget's free-form config map, already env-expanded. The
// returned value is serialized to JSON as-is.
type Handler func(ctx context.Context, cfg map[string]interface{}) interface{}

// HandlerInfo contains metadata and the handler for a widget type.
type HandlerInfo struct {
	// Type is the unique identifier matching the config "type" field.
	Type string

	// Handler produces the widget's data payload.
	Handler Handler

	// Description provides human-readable documentation for this widget type.
	Description string

	// Refreshable marks widgets whose data changes between fetches.
	Refreshable bool

	// RequiresAPIKey marks widgets that need a credential in their config.
	RequiresAPIKey bool
}

// ErrorPayload is the structured error body returned for a widget whose
// upstream fetch failed. It is served with HTTP 200 so the client
// distinguishes "widget broke" from "request broke".
type ErrorPayload struct {
	Error string `json:"error"`
}

// Errorf builds an ErrorPayload from a format string.
func Errorf(format string, args ...interface{}) ErrorPayload {
	return ErrorPayload{Error: fmt.Sprintf(format, args...)}
}

// ErrUnknownType is returned by Dispatch for an unregistered widget type.
var ErrUnknownType = errors.New("unknown widget type")

// Registry maps widget type names to their handlers. Registration happens
// at init time; lookups are concurrent at request time.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]*HandlerInfo
}

// DefaultRegistry is the global widget registry. Handler packages register
// themselves here from init().
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry. Primarily useful for tests that
// need isolation from the global registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]*HandlerInfo)}
}

// Register adds a widget type to the registry.
func (r *Registry) Register(info HandlerInfo) error {
	if info.Type == "" {
		return errors.New("widget type cannot be empty")
	}
	if info.Handler == nil {
		return fmt.Errorf("widget handler cannot be nil for type %q", info.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[info.Type]; exists {
		return fmt.Errorf("widget type %q is already registered", info.Type)
	}

	infoCopy := info
	r.handlers[info.Type] = &infoCopy
	return nil
}

// MustRegister adds a widget type and panics on error. Intended for init().
func (r *Registry) MustRegister(info HandlerInfo) {
	if err := r.Register(info); err != nil {
		panic(fmt.Sprintf("widget registration failed: %v", err))
	}
}

// IsRegistered checks whether a widget type is registered.
func (r *Registry) IsRegistered(widgetType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.handlers[widgetType]
	return exists
}

// Types returns a sorted list of registered widget types.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Info returns the registration info for a widget type, or nil.
func (r *Registry) Info(widgetType string) *HandlerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.handlers[widgetType]
	if !exists {
		return nil
	}
	infoCopy := *info
	return &infoCopy
}

// Dispatch runs the handler for the given widget type. It returns
// ErrUnknownType for unregistered types; all other failures surface as an
// ErrorPayload in the returned value, never as an error.
func (r *Registry) Dispatch(ctx context.Context, widgetType string, cfg map[string]interface{}) (interface{}, error) {
	r.mu.RLock()
	info, exists := r.handlers[widgetType]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, widgetType)
	}

	if cfg == nil {
		cfg = map[string]interface{}{}
	}

	var payload interface{}
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				payload = Errorf("widget handler panicked: %v", rec)
			}
		}()
		payload = info.Handler(ctx, cfg)
	}()

	return payload, nil
}

// Package-level convenience functions operating on DefaultRegistry.

// MustRegister registers a widget type with the default registry.
func MustRegister(info HandlerInfo) {
	DefaultRegistry.MustRegister(info)
}

// IsRegistered checks a widget type against the default registry.
func IsRegistered(widgetType string) bool {
	return DefaultRegistry.IsRegistered(widgetType)
}

// Types returns the default registry's registered widget types.
func Types() []string {
	return DefaultRegistry.Types()
}

// Info returns registration info from the default registry.
func Info(widgetType string) *HandlerInfo {
	return DefaultRegistry.Info(widgetType)
}

// Dispatch runs a handler from the default registry.
func Dispatch(ctx context.Context, widgetType string, cfg map[string]interface{}) (interface{}, error) {
	return DefaultRegistry.Dispatch(ctx, widgetType, cfg)
}
