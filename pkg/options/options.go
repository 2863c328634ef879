package options

import (
	"fmt"
	"strings"
)

// Options is an insertion-ordered option map serialized into a widget
// constructor call. Keys are unique; setting an existing key replaces its value
// and keeps its position. Options is not safe for concurrent mutation.
type Options struct {
	keys   []string
	values map[string]Value
}

// New returns an empty option map.
func New() *Options {
	return &Options{values: make(map[string]Value)}
}

// Set stores value under name and returns o for chaining. A Value is stored as
// is, *Options nests as an object, anything else is wrapped in Literal. A
// literal that fails to encode is reported by Err until it is overwritten or
// deleted.
func (o *Options) Set(name string, value any) *Options {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	v := valueOf(value)
	if _, exists := o.values[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.values[name] = v
	return o
}

// Get returns the value stored under name.
func (o *Options) Get(name string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[name]
	return v, ok
}

// Has reports whether name is set.
func (o *Options) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Delete removes name.
func (o *Options) Delete(name string) *Options {
	if _, ok := o.values[name]; !ok {
		return o
	}
	delete(o.values, name)
	for idx, key := range o.keys {
		if key == name {
			o.keys = append(o.keys[:idx:idx], o.keys[idx+1:]...)
			break
		}
	}
	return o
}

// Keys returns the option names in insertion order.
func (o *Options) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len returns the number of options.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Clone returns an independent copy.
func (o *Options) Clone() *Options {
	out := New()
	if o == nil {
		return out
	}
	out.keys = append(out.keys, o.keys...)
	for key, value := range o.values {
		out.values[key] = value
	}
	return out
}

// Merge copies every entry of other into o, in other's order. A nil other is
// a no-op.
func (o *Options) Merge(other *Options) *Options {
	for _, key := range other.Keys() {
		value, _ := other.Get(key)
		o.Set(key, value)
	}
	return o
}

// Err reports the first value, in key order, that failed to encode.
func (o *Options) Err() error {
	if o == nil {
		return nil
	}
	for _, key := range o.keys {
		if err := o.values[key].Err(); err != nil {
			return fmt.Errorf("options: %q: %w", key, err)
		}
	}
	return nil
}

// String renders the options as an object literal: { "name": value, ... }.
func (o *Options) String() string {
	var b strings.Builder
	o.write(&b)
	return b.String()
}

func (o *Options) write(b *strings.Builder) {
	if o.Len() == 0 {
		b.WriteString("{ }")
		return
	}
	b.WriteString("{ ")
	for idx, key := range o.keys {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Literal(key).encoded)
		b.WriteString(": ")
		o.values[key].write(b)
	}
	b.WriteString(" }")
}
