// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"fmt"
	"io"
	"os"
	"slices"

	"tailscale.com/types/logger"
)

// CommandLine owns an ordered set of descriptors and parses token sequences
// against them. The zero value is not usable; create one with New.
//
// A CommandLine is not safe for concurrent use.
type CommandLine struct {
	name        string
	description string
	args        []Descriptor
	logf        logger.Logf
	parsed      bool
}

// New returns an empty CommandLine for the named program.
func New(name string) *CommandLine {
	return &CommandLine{
		name: name,
		logf: logger.Discard,
	}
}

// Name returns the program name.
func (c *CommandLine) Name() string { return c.name }

// Description returns the program description.
func (c *CommandLine) Description() string { return c.description }

// SetDescription sets the program description shown by PrintHelp.
func (c *CommandLine) SetDescription(d string) *CommandLine {
	c.description = d
	return c
}

// SetLogf sets a logger that traces every match made by Parse. A nil logf
// disables tracing.
func (c *CommandLine) SetLogf(logf logger.Logf) *CommandLine {
	if logf == nil {
		logf = logger.Discard
	}
	c.logf = logf
	return c
}

// AddFlag registers a Flag and returns it for further configuration.
func (c *CommandLine) AddFlag(name string) *Flag {
	f := newFlag(name)
	c.args = append(c.args, f)
	return f
}

// AddValue registers a Value of type T and returns it for further
// configuration.
func AddValue[T any](c *CommandLine, name string) *Value[T] {
	v := newValue[T](name)
	c.args = append(c.args, v)
	return v
}

// AddMultiValue registers a MultiValue of element type T and returns it for
// further configuration.
func AddMultiValue[T any](c *CommandLine, name string) *MultiValue[T] {
	m := newMultiValue[T](name)
	c.args = append(c.args, m)
	return m
}

// Descriptors returns the registered descriptors in registration order.
func (c *CommandLine) Descriptors() []Descriptor {
	return slices.Clone(c.args)
}

// Lookup returns the first descriptor registered under name.
func (c *CommandLine) Lookup(name string) (Descriptor, bool) {
	for _, d := range c.args {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// Parse matches tokens against the registered descriptors in a single pass.
// At each position the descriptors are tried in registration order and the
// first one that matches claims the tokens it consumes. Unclaimed tokens are
// skipped. Conversion errors abort the parse and are returned as is.
//
// Parse may be called only once.
func (c *CommandLine) Parse(tokens []string) error {
	if c.parsed {
		return ErrAlreadyParsed
	}
	c.parsed = true

	for i := 0; i < len(tokens); {
		n, err := c.claim(tokens[i:])
		if err != nil {
			return err
		}
		if n == 0 {
			i++
			continue
		}
		i += n
	}
	return nil
}

// claim offers tokens to every descriptor in order and returns the number of
// tokens consumed by the first one that matches.
func (c *CommandLine) claim(tokens []string) (int, error) {
	for _, d := range c.args {
		n, err := d.Parse(tokens)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			c.logf("%s: %q matched %s", c.name, tokens[:n], d.Name())
			return n, nil
		}
	}
	return 0, nil
}

// ParseProcess parses the arguments of the running process, os.Args, with the
// program name as the first token.
func (c *CommandLine) ParseProcess() error {
	return c.Parse(os.Args)
}

// Validate reports every descriptor whose Valid method returns false. It is
// never called by Parse.
func (c *CommandLine) Validate() error {
	var names []string
	for _, d := range c.args {
		if !d.Valid() {
			names = append(names, d.Name())
		}
	}
	if len(names) > 0 {
		return &ValidationError{Names: names}
	}
	return nil
}

// PrintHelp writes the program name and description followed by one line per
// descriptor in registration order.
func (c *CommandLine) PrintHelp(w io.Writer) {
	if c.description != "" {
		fmt.Fprintf(w, "%s - %s\n", c.name, c.description)
	} else {
		fmt.Fprintln(w, c.name)
	}
	for _, d := range c.args {
		d.PrintHelp(w)
	}
}
