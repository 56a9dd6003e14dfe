// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/px/pkg/env"
	"github.com/yeetrun/px/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Result is the structured form of a parsed command line.
type Result struct {
	Program string      `json:"program" yaml:"program" toml:"program"`
	Valid   bool        `json:"valid" yaml:"valid" toml:"valid"`
	Args    []ResultArg `json:"args" yaml:"args" toml:"args"`
}

type ResultArg struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Env    string   `json:"env" yaml:"env" toml:"env"`
	Type   string   `json:"type" yaml:"type" toml:"type"`
	Found  bool     `json:"found" yaml:"found" toml:"found"`
	Valid  bool     `json:"valid" yaml:"valid" toml:"valid"`
	Value  *string  `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

func newResult(program string, entries []schema.Entry) Result {
	r := Result{Program: program, Valid: true, Args: make([]ResultArg, 0, len(entries))}
	for _, e := range entries {
		a := ResultArg{
			Name:  e.Name,
			Env:   e.Env,
			Type:  e.Type,
			Found: e.Found,
			Valid: e.Valid,
		}
		switch {
		case e.Multi && e.HasValue():
			a.Values = e.Values
		case e.HasValue() && len(e.Values) > 0:
			v := e.Values[len(e.Values)-1]
			a.Value = &v
		}
		r.Valid = r.Valid && e.Valid
		r.Args = append(r.Args, a)
	}
	return r
}

func envVars(entries []schema.Entry) []env.Var {
	vars := make([]env.Var, 0, len(entries))
	for _, e := range entries {
		vars = append(vars, env.Var{Name: e.Env, Values: e.Values, Array: e.Multi})
	}
	return vars
}

func writeResult(w io.Writer, format, program string, entries []schema.Entry) error {
	switch format {
	case "env":
		return env.Write(w, envVars(entries))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newResult(program, entries))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newResult(program, entries)); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(newResult(program, entries))
	}
	return fmt.Errorf("unknown format %q", format)
}
