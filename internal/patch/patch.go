// Package patch models partial-update payloads. A Field remembers whether
// it appeared in the JSON document and whether it was null, so handlers can
// tell "not mentioned" apart from "set to null".
package patch

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Field is a tri-state JSON value: absent, null or set.
type Field[T any] struct {
	Set   bool // present in the payload, possibly as null
	Null  bool // present and null
	Value T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// NullOf returns a Field that was explicitly set to null.
func NullOf[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what marks the field as set. encoding/json calls it for null as well.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IsNull reports whether the field was explicitly set to null.
func (f Field[T]) IsNull() bool {
	return f.Set && f.Null
}

// IsEmpty reports whether the field was set to its zero value, e.g. "".
func (f Field[T]) IsEmpty() bool {
	if !f.Set || f.Null {
		return false
	}
	return reflect.ValueOf(&f.Value).Elem().IsZero()
}

// ValidationValue exposes the inner value to the validator. Absent and null
// fields yield nil so that omitempty rules skip them.
func (f Field[T]) ValidationValue() any {
	if !f.Set || f.Null {
		return nil
	}
	return f.Value
}

// Pointer returns nil for absent or null fields and a pointer to the value otherwise.
func (f Field[T]) Pointer() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// Changes maps column names to their new values. Only supplied fields are
// recorded; a nil value means the column is set to NULL.
type Changes map[string]any

// Put records f under column when it was supplied.
func Put[T any](c Changes, column string, f Field[T]) {
	if !f.Set {
		return
	}
	if f.Null {
		c[column] = nil
		return
	}
	c[column] = f.Value
}

// Columns returns the changed column names.
func (c Changes) Columns() []string {
	cols := make([]string, 0, len(c))
	for col := range c {
		cols = append(cols, col)
	}
	return cols
}

// Map returns a copy usable by gorm's Updates, which only accepts a plain map.
func (c Changes) Map() map[string]any {
	m := make(map[string]any, len(c))
	for k, v := range c {
		m[k] = v
	}
	return m
}
