// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"fmt"
	"io"
	"slices"
)

// MultiValue is a descriptor for a repeatable tag. Every occurrence of the tag
// followed by a value token appends one element, in order of appearance:
//
//	--include a --include b   =>   [a b]
type MultiValue[T any] struct {
	meta
	values    []T
	matched   bool
	def       []T
	hasDef    bool
	bound     *[]T
	required  bool
	validator func(T) bool
}

func newMultiValue[T any](name string) *MultiValue[T] {
	return &MultiValue[T]{
		meta:      newMeta(name),
		validator: Always[T](),
	}
}

// SetName changes the display name.
func (m *MultiValue[T]) SetName(name string) *MultiValue[T] {
	m.name = newMeta(name).name
	return m
}

// SetTag sets the short tag.
func (m *MultiValue[T]) SetTag(tag string) *MultiValue[T] {
	m.tag = tag
	return m
}

// SetLongTag sets the long tag.
func (m *MultiValue[T]) SetLongTag(tag string) *MultiValue[T] {
	m.longTag = tag
	return m
}

// SetDescription sets the help description.
func (m *MultiValue[T]) SetDescription(d string) *MultiValue[T] {
	m.description = d
	return m
}

// SetValidator sets the predicate every element must satisfy. A nil validator
// restores the default, which accepts every value.
func (m *MultiValue[T]) SetValidator(f func(T) bool) *MultiValue[T] {
	if f == nil {
		f = Always[T]()
	}
	m.validator = f
	return m
}

// Bind attaches caller-owned storage. If a default is already set a copy of
// it is written to p immediately.
func (m *MultiValue[T]) Bind(p *[]T) *MultiValue[T] {
	m.bound = p
	if m.hasDef {
		m.store(m.def)
	}
	return m
}

// SetDefault sets the sequence used when the tag never matches. The slice is
// copied. It fails if the descriptor is required.
func (m *MultiValue[T]) SetDefault(d []T) error {
	if m.required {
		return &ConfigError{Name: m.name, Msg: "setting a default on a required argument does not make sense"}
	}
	m.def = slices.Clone(d)
	m.hasDef = true
	m.store(m.def)
	return nil
}

// SetRequired marks the descriptor as required. Requiring a descriptor that
// already has a default fails.
func (m *MultiValue[T]) SetRequired(required bool) error {
	if required && m.hasDef {
		return &ConfigError{Name: m.name, Msg: "setting required on an argument with a default does not make sense"}
	}
	m.required = required
	return nil
}

// Required reports whether the descriptor is required.
func (m *MultiValue[T]) Required() bool { return m.required }

// Default returns a copy of the default sequence and whether one is set.
func (m *MultiValue[T]) Default() ([]T, bool) {
	return slices.Clone(m.def), m.hasDef
}

// Found reports whether the tag matched at least once.
func (m *MultiValue[T]) Found() bool { return m.matched }

// Values returns a copy of the parsed sequence, falling back to the default.
// It returns a *MissingValueError when neither exists.
func (m *MultiValue[T]) Values() ([]T, error) {
	switch {
	case m.matched:
		return slices.Clone(m.values), nil
	case m.hasDef:
		return slices.Clone(m.def), nil
	default:
		return nil, &MissingValueError{Name: m.name}
	}
}

// Valid applies the validator to every parsed element, or to every default
// element when nothing was parsed. Without either, the descriptor is valid
// unless it is required.
func (m *MultiValue[T]) Valid() bool {
	switch {
	case m.matched:
		return m.all(m.values)
	case m.hasDef:
		return m.all(m.def)
	default:
		return !m.required
	}
}

func (m *MultiValue[T]) all(xs []T) bool {
	for _, x := range xs {
		if !m.validator(x) {
			return false
		}
	}
	return true
}

// Parse consumes one tag occurrence and its value token.
func (m *MultiValue[T]) Parse(tokens []string) (int, error) {
	if len(tokens) < 2 || !m.matches(tokens[0]) {
		return 0, nil
	}
	x, err := Convert[T](tokens[1])
	if err != nil {
		if ce, ok := err.(*ConversionError); ok {
			ce.Name = m.name
			ce.Tag = tokens[0]
		}
		return 0, err
	}
	m.values = append(m.values, x)
	m.matched = true
	m.store(m.values)
	return 2, nil
}

// PrintHelp writes the descriptor's help line.
func (m *MultiValue[T]) PrintHelp(w io.Writer) {
	var def string
	if m.hasDef {
		def = fmt.Sprintf("(default: %v)", m.def)
	}
	m.helpLine(w, typeHint[T]()+"...", def, requiredNote(m.required))
}

func (m *MultiValue[T]) store(xs []T) {
	if m.bound != nil {
		*m.bound = slices.Clone(xs)
	}
}
