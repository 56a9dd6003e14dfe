// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema builds px command lines from declarative TOML, YAML or JSON
// documents.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/px/pkg/ftdetect"
	"gopkg.in/yaml.v3"
)

// Argument types understood by Build.
const (
	TypeFlag     = "flag"
	TypeString   = "string"
	TypeInt      = "int"
	TypeInt64    = "int64"
	TypeUint     = "uint"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeDuration = "duration"
	TypeURL      = "url"
	TypeSemver   = "semver"
	TypeUUID     = "uuid"
)

// Doc is a schema document.
type Doc struct {
	Program     string `toml:"program" yaml:"program" json:"program"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Args        []Arg  `toml:"arg" yaml:"arg" json:"arg"`
}

// Arg declares one argument.
type Arg struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Short       string `toml:"short,omitempty" yaml:"short,omitempty" json:"short,omitempty"`
	Long        string `toml:"long,omitempty" yaml:"long,omitempty" json:"long,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`

	// Type defaults to "string".
	Type     string `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Multi    bool   `toml:"multi,omitempty" yaml:"multi,omitempty" json:"multi,omitempty"`
	Required bool   `toml:"required,omitempty" yaml:"required,omitempty" json:"required,omitempty"`

	// Default is a scalar, or a list when Multi is set.
	Default any `toml:"default,omitempty" yaml:"default,omitempty" json:"default,omitempty"`

	// Min and Max bound numeric types inclusively.
	Min any `toml:"min,omitempty" yaml:"min,omitempty" json:"min,omitempty"`
	Max any `toml:"max,omitempty" yaml:"max,omitempty" json:"max,omitempty"`

	// Pattern and Choices apply to the textual form of each value.
	Pattern string   `toml:"pattern,omitempty" yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Choices []string `toml:"choices,omitempty" yaml:"choices,omitempty" json:"choices,omitempty"`

	// Env is the output variable name. It defaults to the upper-cased name
	// with dashes replaced by underscores.
	Env string `toml:"env,omitempty" yaml:"env,omitempty" json:"env,omitempty"`
}

// TypeName returns the declared type, defaulting to "string".
func (a *Arg) TypeName() string {
	if a.Type == "" {
		return TypeString
	}
	return strings.ToLower(a.Type)
}

// EnvName returns the output variable name.
func (a *Arg) EnvName() string {
	if a.Env != "" {
		return a.Env
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, a.Name)
}

// Load reads and checks the schema at path. The format is taken from the
// file extension, or sniffed from the contents.
func Load(path string) (*Doc, error) {
	return LoadType(path, ftdetect.Unknown)
}

// LoadType is like Load but reads the file as ft. ftdetect.Unknown detects the
// format as Load does.
func LoadType(path string, ft ftdetect.FileType) (*Doc, error) {
	if ft == ftdetect.Unknown {
		var err error
		if ft, err = ftdetect.DetectFile(path); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f, ft)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := Check(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a schema document in the given format. Keys that do not map to
// a Doc or Arg field are an error in every format. It does not Check the
// document.
func Decode(r io.Reader, ft ftdetect.FileType) (*Doc, error) {
	var doc Doc
	switch ft {
	case ftdetect.TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, err
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
		}
	case ftdetect.YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, err
		}
	case ftdetect.JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported schema format %v", ft)
	}
	return &doc, nil
}
