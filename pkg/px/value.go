// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"fmt"
	"io"
)

// Value is a descriptor for a single typed value introduced by a tag, e.g.
// "--count 42".
//
// Values are created with AddValue and configured through the fluent setters.
// SetDefault and SetRequired return an error instead of the receiver because
// they guard the required/default invariant.
type Value[T any] struct {
	meta
	value     *T
	def       *T
	bound     *T
	required  bool
	validator func(T) bool
}

func newValue[T any](name string) *Value[T] {
	return &Value[T]{
		meta:      newMeta(name),
		validator: Always[T](),
	}
}

// SetName changes the display name.
func (v *Value[T]) SetName(name string) *Value[T] {
	v.name = newMeta(name).name
	return v
}

// SetTag sets the short tag, e.g. "-c".
func (v *Value[T]) SetTag(tag string) *Value[T] {
	v.tag = tag
	return v
}

// SetLongTag sets the long tag, e.g. "--count".
func (v *Value[T]) SetLongTag(tag string) *Value[T] {
	v.longTag = tag
	return v
}

// SetDescription sets the help description.
func (v *Value[T]) SetDescription(d string) *Value[T] {
	v.description = d
	return v
}

// SetValidator sets the predicate applied by Valid. A nil validator restores
// the default, which accepts every value.
func (v *Value[T]) SetValidator(f func(T) bool) *Value[T] {
	if f == nil {
		f = Always[T]()
	}
	v.validator = f
	return v
}

// Bind attaches caller-owned storage. If a default is already set it is
// copied into p immediately. Passing nil detaches the storage.
func (v *Value[T]) Bind(p *T) *Value[T] {
	v.bound = p
	if v.def != nil {
		v.store(*v.def)
	}
	return v
}

// SetDefault sets the value used when no tag matches. It fails if the
// descriptor is required.
func (v *Value[T]) SetDefault(d T) error {
	if v.required {
		return &ConfigError{Name: v.name, Msg: "setting a default on a required argument does not make sense"}
	}
	v.def = &d
	v.store(d)
	return nil
}

// SetRequired marks the descriptor as required. Requiring a descriptor that
// already has a default fails.
func (v *Value[T]) SetRequired(required bool) error {
	if required && v.def != nil {
		return &ConfigError{Name: v.name, Msg: "setting required on an argument with a default does not make sense"}
	}
	v.required = required
	return nil
}

// Required reports whether the descriptor is required.
func (v *Value[T]) Required() bool { return v.required }

// Default returns the default value and whether one is set.
func (v *Value[T]) Default() (T, bool) {
	if v.def == nil {
		var zero T
		return zero, false
	}
	return *v.def, true
}

// Found reports whether a tag matched during parsing.
func (v *Value[T]) Found() bool { return v.value != nil }

// Value returns the parsed value, falling back to the default. It returns a
// *MissingValueError when neither exists.
func (v *Value[T]) Value() (T, error) {
	switch {
	case v.value != nil:
		return *v.value, nil
	case v.def != nil:
		return *v.def, nil
	default:
		var zero T
		return zero, &MissingValueError{Name: v.name}
	}
}

// Valid applies the validator to the parsed value, or to the default when
// nothing was parsed. Without either, the descriptor is valid unless it is
// required.
func (v *Value[T]) Valid() bool {
	switch {
	case v.value != nil:
		return v.validator(*v.value)
	case v.def != nil:
		return v.validator(*v.def)
	default:
		return !v.required
	}
}

// Parse consumes a tag and its value token.
func (v *Value[T]) Parse(tokens []string) (int, error) {
	if len(tokens) < 2 || !v.matches(tokens[0]) {
		return 0, nil
	}
	x, err := Convert[T](tokens[1])
	if err != nil {
		if ce, ok := err.(*ConversionError); ok {
			ce.Name = v.name
			ce.Tag = tokens[0]
		}
		return 0, err
	}
	v.value = &x
	v.store(x)
	return 2, nil
}

// PrintHelp writes the descriptor's help line.
func (v *Value[T]) PrintHelp(w io.Writer) {
	var def string
	if v.def != nil {
		def = fmt.Sprintf("(default: %v)", *v.def)
	}
	v.helpLine(w, typeHint[T](), def, requiredNote(v.required))
}

func (v *Value[T]) store(x T) {
	if v.bound != nil {
		*v.bound = x
	}
}

func requiredNote(required bool) string {
	if required {
		return "[required]"
	}
	return ""
}
