// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"fmt"
	"regexp"

	"tailscale.com/util/set"
)

// ErrSchema is wrapped by every error returned from Check.
var ErrSchema = errors.New("invalid schema")

// CheckError describes one problem found by Check.
type CheckError struct {
	Arg string // Argument name, empty for document-level problems
	Msg string
}

func (e *CheckError) Error() string {
	if e.Arg == "" {
		return e.Msg
	}
	return fmt.Sprintf("arg %q: %s", e.Arg, e.Msg)
}

func (e *CheckError) Unwrap() error {
	return ErrSchema
}

var envNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var knownTypes = set.Of(
	TypeFlag, TypeString, TypeInt, TypeInt64, TypeUint, TypeFloat,
	TypeBool, TypeDuration, TypeURL, TypeSemver, TypeUUID,
)

func isNumeric(typ string) bool {
	switch typ {
	case TypeInt, TypeInt64, TypeUint, TypeFloat:
		return true
	}
	return false
}

// Check reports every structural problem in doc, joined with errors.Join.
// Value-level problems such as an unconvertible default are left to Build.
func Check(doc *Doc) error {
	if doc == nil {
		return &CheckError{Msg: "empty schema"}
	}
	var errs []error
	fail := func(arg, format string, args ...any) {
		errs = append(errs, &CheckError{Arg: arg, Msg: fmt.Sprintf(format, args...)})
	}

	if doc.Program == "" {
		fail("", "program name is required")
	}

	names := make(set.Set[string])
	tags := make(map[string]string)
	envs := make(map[string]string)
	for i := range doc.Args {
		a := &doc.Args[i]
		if a.Name == "" {
			fail("", "arg #%d has no name", i+1)
			continue
		}
		if names.Contains(a.Name) {
			fail(a.Name, "duplicate name")
		}
		names.Add(a.Name)

		typ := a.TypeName()
		if !knownTypes.Contains(typ) {
			fail(a.Name, "unknown type %q", a.Type)
		}

		if a.Short == "" && a.Long == "" {
			fail(a.Name, "needs a short or long tag")
		}
		for _, tag := range []string{a.Short, a.Long} {
			if tag == "" {
				continue
			}
			if owner, ok := tags[tag]; ok {
				fail(a.Name, "tag %s already used by %q", tag, owner)
				continue
			}
			tags[tag] = a.Name
		}

		env := a.EnvName()
		if !envNameRE.MatchString(env) {
			fail(a.Name, "invalid variable name %q", env)
		} else if owner, ok := envs[env]; ok {
			fail(a.Name, "variable %s already used by %q", env, owner)
		} else {
			envs[env] = a.Name
		}

		if typ == TypeFlag {
			if a.Default != nil || a.Required || a.Multi {
				fail(a.Name, "flags take no default, required or multi")
			}
			if a.Min != nil || a.Max != nil || a.Pattern != "" || len(a.Choices) > 0 {
				fail(a.Name, "flags take no constraints")
			}
			continue
		}

		if (a.Min != nil || a.Max != nil) && !isNumeric(typ) {
			fail(a.Name, "min and max apply only to numeric types")
		}
		if a.Pattern != "" {
			if _, err := regexp.Compile(a.Pattern); err != nil {
				fail(a.Name, "bad pattern: %v", err)
			}
		}
		if a.Multi && a.Default != nil {
			if _, ok := a.Default.([]any); !ok {
				fail(a.Name, "default of a multi arg must be a list")
			}
		}
	}
	return errors.Join(errs...)
}
