// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is wrapped by every *ConfigError.
	ErrConfiguration = errors.New("invalid argument configuration")

	// ErrConversion is wrapped by every *ConversionError.
	ErrConversion = errors.New("cannot convert argument value")

	// ErrMissingValue is wrapped by every *MissingValueError.
	ErrMissingValue = errors.New("argument has no value")

	// ErrInvalid is wrapped by the *ValidationError returned from
	// CommandLine.Validate.
	ErrInvalid = errors.New("invalid arguments")

	// ErrAlreadyParsed is returned when Parse is called more than once on the
	// same CommandLine.
	ErrAlreadyParsed = errors.New("command line already parsed")
)

// ConfigError is returned by a configuration call that would break a
// descriptor invariant. The descriptor is left unchanged.
type ConfigError struct {
	Name string // Descriptor display name
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("argument '%s': %s", e.Name, e.Msg)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// ConversionError is returned by Parse when a matched value token cannot be
// converted to the descriptor's type.
type ConversionError struct {
	Name string // Descriptor display name (empty when returned by Convert)
	Tag  string // The tag token that introduced the value
	Raw  string // The offending value token
	Type string // Target Go type
	Err  error  // Underlying conversion failure
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	if e.Name != "" {
		fmt.Fprintf(&b, "argument '%s': ", e.Name)
	}
	fmt.Fprintf(&b, "could not parse %s from '%s'", e.Type, e.Raw)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

// MissingValueError is returned when a descriptor with neither a parsed nor a
// default value is read.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argument '%s' does not have a value", e.Name)
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}

// ValidationError lists the descriptors that reported themselves invalid,
// in registration order.
type ValidationError struct {
	Names []string
}

func (e *ValidationError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = "'" + n + "'"
	}
	return fmt.Sprintf("invalid arguments: %s", strings.Join(quoted, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
