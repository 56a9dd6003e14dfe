// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"cmp"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/yeetrun/px/pkg/px"
)

// Set is a command line built from a Doc.
type Set struct {
	doc     *Doc
	cl      *px.CommandLine
	entries []func() Entry
}

// Entry is the resolved state of one argument after parsing.
type Entry struct {
	Name  string
	Env   string
	Type  string
	Multi bool

	// Found reports whether one of the argument's tags matched.
	Found bool

	// Values holds the textual form of the value, or of every element for a
	// multi arg. It is nil when the argument has no value.
	Values []string

	Valid bool
}

// HasValue reports whether the argument resolved to a value.
func (e Entry) HasValue() bool { return e.Values != nil }

// Build checks doc and registers its arguments, in document order, on a new
// px.CommandLine. Problems with defaults and the required/default conflict
// are returned as *px.ConfigError.
func Build(doc *Doc) (*Set, error) {
	if err := Check(doc); err != nil {
		return nil, err
	}
	s := &Set{
		doc: doc,
		cl:  px.New(doc.Program).SetDescription(doc.Description),
	}
	for i := range doc.Args {
		if err := s.add(&doc.Args[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// CommandLine returns the underlying command line.
func (s *Set) CommandLine() *px.CommandLine { return s.cl }

// Doc returns the schema the set was built from.
func (s *Set) Doc() *Doc { return s.doc }

// Parse parses tokens; tokens[0] is conventionally the program name.
func (s *Set) Parse(tokens []string) error { return s.cl.Parse(tokens) }

// Entries returns the state of every argument in document order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e()
	}
	return out
}

func (s *Set) add(a *Arg) error {
	switch a.TypeName() {
	case TypeFlag:
		f := s.cl.AddFlag(a.Name).SetTag(a.Short).SetLongTag(a.Long).SetDescription(a.Description)
		s.entries = append(s.entries, func() Entry {
			e := s.entry(a)
			e.Found = f.Value()
			e.Values = []string{strconv.FormatBool(f.Value())}
			e.Valid = f.Valid()
			return e
		})
		return nil
	case TypeString:
		return register(s, a, nil, func(x string) string { return x })
	case TypeInt:
		return register(s, a, cmp.Compare[int], strconv.Itoa)
	case TypeInt64:
		return register(s, a, cmp.Compare[int64], func(x int64) string { return strconv.FormatInt(x, 10) })
	case TypeUint:
		return register(s, a, cmp.Compare[uint], func(x uint) string { return strconv.FormatUint(uint64(x), 10) })
	case TypeFloat:
		return register(s, a, cmp.Compare[float64], func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) })
	case TypeBool:
		return register(s, a, nil, strconv.FormatBool)
	case TypeDuration:
		return register(s, a, nil, time.Duration.String)
	case TypeURL:
		return register(s, a, nil, (*url.URL).String)
	case TypeSemver:
		return register(s, a, nil, func(v *semver.Version) string { return v.String() })
	case TypeUUID:
		return register(s, a, nil, uuid.UUID.String)
	}
	return &px.ConfigError{Name: a.Name, Msg: fmt.Sprintf("unknown type %q", a.Type)}
}

func (s *Set) entry(a *Arg) Entry {
	return Entry{
		Name:  a.Name,
		Env:   a.EnvName(),
		Type:  a.TypeName(),
		Multi: a.Multi,
	}
}

// register adds a Value or MultiValue of type T for a. order is non-nil for
// types that support min and max.
func register[T any](s *Set, a *Arg, order func(x, y T) int, format func(T) string) error {
	valid, err := validator(a, order, format)
	if err != nil {
		return err
	}

	if a.Multi {
		m := px.AddMultiValue[T](s.cl, a.Name).
			SetTag(a.Short).SetLongTag(a.Long).SetDescription(a.Description).
			SetValidator(valid)
		if a.Default != nil {
			raw, _ := a.Default.([]any)
			def := make([]T, 0, len(raw))
			for _, r := range raw {
				x, err := convertDefault[T](a, r)
				if err != nil {
					return err
				}
				def = append(def, x)
			}
			if err := m.SetDefault(def); err != nil {
				return err
			}
		}
		if err := m.SetRequired(a.Required); err != nil {
			return err
		}
		s.entries = append(s.entries, func() Entry {
			e := s.entry(a)
			e.Found = m.Found()
			if xs, err := m.Values(); err == nil {
				e.Values = make([]string, len(xs))
				for i, x := range xs {
					e.Values[i] = format(x)
				}
			}
			e.Valid = m.Valid()
			return e
		})
		return nil
	}

	v := px.AddValue[T](s.cl, a.Name).
		SetTag(a.Short).SetLongTag(a.Long).SetDescription(a.Description).
		SetValidator(valid)
	if a.Default != nil {
		x, err := convertDefault[T](a, a.Default)
		if err != nil {
			return err
		}
		if err := v.SetDefault(x); err != nil {
			return err
		}
	}
	if err := v.SetRequired(a.Required); err != nil {
		return err
	}
	s.entries = append(s.entries, func() Entry {
		e := s.entry(a)
		e.Found = v.Found()
		if x, err := v.Value(); err == nil {
			e.Values = []string{format(x)}
		}
		e.Valid = v.Valid()
		return e
	})
	return nil
}

func convertDefault[T any](a *Arg, raw any) (T, error) {
	x, err := px.Convert[T](scalarText(raw))
	if err != nil {
		return x, &px.ConfigError{Name: a.Name, Msg: fmt.Sprintf("bad default: %v", err)}
	}
	return x, nil
}

// scalarText returns the textual form of a decoded schema scalar. JSON numbers
// are normalized the way the TOML and YAML decoders read them, so "1e3" is
// 1000 in every format.
func scalarText(raw any) string {
	if n, ok := raw.(json.Number); ok {
		if _, err := n.Int64(); err == nil {
			return n.String()
		}
		if f, err := n.Float64(); err == nil {
			return fmt.Sprint(f)
		}
	}
	return fmt.Sprint(raw)
}

// validator combines the min, max, pattern and choices constraints of a.
func validator[T any](a *Arg, order func(x, y T) int, format func(T) string) (func(T) bool, error) {
	var fs []func(T) bool
	for _, bound := range []struct {
		raw any
		ok  func(c int) bool
		key string
	}{
		{a.Min, func(c int) bool { return c >= 0 }, "min"},
		{a.Max, func(c int) bool { return c <= 0 }, "max"},
	} {
		if bound.raw == nil {
			continue
		}
		if order == nil {
			return nil, &px.ConfigError{Name: a.Name, Msg: bound.key + " applies only to numeric types"}
		}
		lim, err := px.Convert[T](scalarText(bound.raw))
		if err != nil {
			return nil, &px.ConfigError{Name: a.Name, Msg: fmt.Sprintf("bad %s: %v", bound.key, err)}
		}
		ok := bound.ok
		fs = append(fs, func(x T) bool { return ok(order(x, lim)) })
	}
	if a.Pattern != "" {
		re, err := regexp.Compile(a.Pattern)
		if err != nil {
			return nil, &px.ConfigError{Name: a.Name, Msg: fmt.Sprintf("bad pattern: %v", err)}
		}
		match := px.Match(re)
		fs = append(fs, func(x T) bool { return match(format(x)) })
	}
	if len(a.Choices) > 0 {
		oneOf := px.OneOf(a.Choices...)
		fs = append(fs, func(x T) bool { return oneOf(format(x)) })
	}
	return px.All(fs...), nil
}
