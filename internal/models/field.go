package models

import "encoding/json"

// Field is an optional value for partial updates. It distinguishes a
// field that was absent from the payload (Set == false, meaning "leave
// unchanged") from one that was explicitly supplied — including an
// explicit zero value such as "".
type Field[T any] struct {
	Value T
	Set   bool
}

// NewField returns a Field holding an explicitly set value.
func NewField[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// UnmarshalJSON marks the field as set whenever the key is present in
// the payload. An absent key never reaches this method, so Set stays
// false for it.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON emits the wrapped value; unset fields marshal as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Or returns the field's value when set, otherwise fallback.
func (f Field[T]) Or(fallback T) T {
	if f.Set {
		return f.Value
	}
	return fallback
}
