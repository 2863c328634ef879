package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type valueKind int

const (
	kindLiteral valueKind = iota
	kindRaw
	kindObject
	kindArray
)

// Value is a single option value: a JSON literal, a verbatim script fragment,
// a nested option object or an array of values. The serializer's quoting
// decision depends on the kind alone.
type Value struct {
	kind    valueKind
	encoded string
	object  *Options
	items   []Value
	err     error
}

// Literal encodes v as JSON. Strings are quoted and escaped, including the HTML
// sensitive characters, so the result is safe inside a <script> element.
func Literal(v any) Value {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return Value{kind: kindLiteral, encoded: "null", err: fmt.Errorf("options: encode literal %T: %w", v, err)}
	}
	return Value{kind: kindLiteral, encoded: strings.TrimSuffix(buf.String(), "\n")}
}

// RawScript marks script as a verbatim fragment, typically a function body.
func RawScript(script string) Value {
	return Value{kind: kindRaw, encoded: script}
}

// Object nests a copy of o.
func Object(o *Options) Value {
	if o == nil {
		return Literal(nil)
	}
	return Value{kind: kindObject, object: o.Clone()}
}

// Array renders values as a script array literal. Non-Value items are wrapped
// the same way Options.Set wraps them.
func Array(values ...any) Value {
	items := make([]Value, 0, len(values))
	for _, v := range values {
		items = append(items, valueOf(v))
	}
	return Value{kind: kindArray, items: items}
}

// IsRaw reports whether the value is emitted verbatim.
func (v Value) IsRaw() bool {
	return v.kind == kindRaw
}

// Err returns the first encoding error held by the value or its children.
func (v Value) Err() error {
	if v.err != nil {
		return v.err
	}
	switch v.kind {
	case kindObject:
		return v.object.Err()
	case kindArray:
		for _, item := range v.items {
			if err := item.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// String returns the value as script text.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case kindObject:
		v.object.write(b)
	case kindArray:
		b.WriteString("[")
		for idx, item := range v.items {
			if idx > 0 {
				b.WriteString(", ")
			}
			item.write(b)
		}
		b.WriteString("]")
	case kindRaw:
		b.WriteString(v.encoded)
	default:
		if v.encoded == "" {
			b.WriteString("null")
			return
		}
		b.WriteString(v.encoded)
	}
}

func valueOf(v any) Value {
	switch typed := v.(type) {
	case Value:
		return typed
	case *Options:
		return Object(typed)
	default:
		return Literal(v)
	}
}
