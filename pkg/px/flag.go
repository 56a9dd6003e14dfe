// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import "io"

// Flag is a boolean presence switch. It is false until one of its tags
// appears in the token sequence and it never consumes a following token.
type Flag struct {
	meta
	value bool
	bound *bool
}

func newFlag(name string) *Flag {
	return &Flag{meta: newMeta(name)}
}

// SetName changes the display name.
func (f *Flag) SetName(name string) *Flag {
	f.name = newMeta(name).name
	return f
}

// SetTag sets the short tag, e.g. "-v".
func (f *Flag) SetTag(tag string) *Flag {
	f.tag = tag
	return f
}

// SetLongTag sets the long tag, e.g. "--verbose".
func (f *Flag) SetLongTag(tag string) *Flag {
	f.longTag = tag
	return f
}

// SetDescription sets the help description.
func (f *Flag) SetDescription(d string) *Flag {
	f.description = d
	return f
}

// Bind attaches caller-owned storage. The storage is written only when a tag
// matches, so a value preset by the caller survives an absent flag.
func (f *Flag) Bind(p *bool) *Flag {
	f.bound = p
	return f
}

// Value reports whether the flag was present.
func (f *Flag) Value() bool { return f.value }

// Valid always returns true.
func (f *Flag) Valid() bool { return true }

// Parse consumes the flag's tag.
func (f *Flag) Parse(tokens []string) (int, error) {
	if len(tokens) < 1 || !f.matches(tokens[0]) {
		return 0, nil
	}
	f.value = true
	f.store()
	return 1, nil
}

// PrintHelp writes the flag's help line.
func (f *Flag) PrintHelp(w io.Writer) {
	f.helpLine(w, "")
}

func (f *Flag) store() {
	if f.bound != nil {
		*f.bound = f.value
	}
}
