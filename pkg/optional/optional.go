package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON field with three states: absent from the payload, present
// as an explicit null, or present with a value. The zero value is the absent
// state, so request structs can declare Field members directly and
// encoding/json will only touch the ones that appear in the body.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] { return Field[T]{set: true, value: v} }

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] { return Field[T]{set: true, null: true} }

// IsSet reports whether the field appeared in the payload at all.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the field was an explicit null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Value returns the decoded value and whether one is present (set, non-null).
func (f Field[T]) Value() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
