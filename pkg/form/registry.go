package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownKind is returned when a registry has no kind under a name.
var ErrUnknownKind = errors.New("form: unknown kind")

// Registry resolves picker kinds by name or by OpenAPI format. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry returns a registry holding the built-in kinds.
func NewRegistry() *Registry {
	reg := &Registry{kinds: make(map[string]Kind)}
	reg.MustRegister(TimePicker)
	reg.MustRegister(DatePicker)
	reg.MustRegister(DateTimePicker)
	return reg
}

// Register adds kind under its name. Duplicate names return an error.
func (r *Registry) Register(kind Kind) error {
	name := strings.TrimSpace(kind.Name)
	if name == "" {
		return errors.New("form: kind name is required")
	}
	if strings.TrimSpace(kind.Method) == "" {
		return fmt.Errorf("form: kind %q: method is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.kinds == nil {
		r.kinds = make(map[string]Kind)
	}
	if _, exists := r.kinds[name]; exists {
		return fmt.Errorf("form: kind %q already registered", name)
	}
	r.kinds[name] = kind
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(kind Kind) {
	if err := r.Register(kind); err != nil {
		panic(err)
	}
}

// Get returns the kind registered under name.
func (r *Registry) Get(name string) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[strings.TrimSpace(name)]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// ForFormat returns the kind bound to an OpenAPI string format. Ties resolve to
// the alphabetically first name.
func (r *Registry) ForFormat(format string) (Kind, bool) {
	if format == "" {
		return Kind{}, false
	}
	for _, name := range r.Names() {
		kind, err := r.Get(name)
		if err == nil && kind.Format == format {
			return kind, true
		}
	}
	return Kind{}, false
}

// Names lists registered kind names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
