// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Descriptor is one recognizable command-line argument together with its
// resolved state. Flag, Value and MultiValue implement it.
type Descriptor interface {
	// Name returns the display name used in help and diagnostics.
	Name() string

	// PrintHelp writes a single help line for the descriptor.
	PrintHelp(w io.Writer)

	// Parse inspects tokens starting at tokens[0]. When the descriptor
	// matches it records the value and returns the number of tokens it
	// consumed; otherwise it returns 0. A non-nil error aborts the parse.
	Parse(tokens []string) (int, error)

	// Valid reports whether the descriptor's current state satisfies its
	// requiredness and validator. It has no side effects.
	Valid() bool
}

// meta holds the metadata shared by every descriptor kind.
type meta struct {
	name        string
	tag         string
	longTag     string
	description string
}

func newMeta(name string) meta {
	if name == "" {
		panic("px: argument name must not be empty")
	}
	return meta{name: name}
}

// Name returns the display name.
func (m *meta) Name() string { return m.name }

// Tag returns the short tag, e.g. "-c".
func (m *meta) Tag() string { return m.tag }

// LongTag returns the long tag, e.g. "--count".
func (m *meta) LongTag() string { return m.longTag }

// Description returns the free-text description.
func (m *meta) Description() string { return m.description }

// matches reports whether tok is one of the descriptor's tags.
func (m *meta) matches(tok string) bool {
	if tok == "" {
		return false
	}
	return tok == m.tag || tok == m.longTag
}

func (m *meta) tags() string {
	switch {
	case m.tag != "" && m.longTag != "":
		return m.tag + ", " + m.longTag
	case m.tag != "":
		return m.tag
	default:
		return m.longTag
	}
}

// helpLine writes the line shared by all descriptor kinds:
//
//	name   -c, --count <int>   description (default: 0) [required]
func (m *meta) helpLine(w io.Writer, hint string, notes ...string) {
	usage := m.tags()
	if hint != "" {
		if usage != "" {
			usage += " "
		}
		usage += "<" + hint + ">"
	}

	line := fmt.Sprintf("  %-16s %-28s %s", m.name, usage, m.description)
	for _, n := range notes {
		if n != "" {
			line += " " + n
		}
	}
	fmt.Fprintln(w, strings.TrimRight(line, " "))
}

// typeHint returns the value placeholder shown in help for T.
func typeHint[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t {
	case durationType:
		return "duration"
	case urlType:
		return "url"
	case semverType:
		return "semver"
	case uuidType:
		return "uuid"
	}
	if t.Name() != "" && (t.PkgPath() == "" || t.Kind() == reflect.Struct) {
		return strings.ToLower(t.Name())
	}
	return strings.ToLower(t.Kind().String())
}
