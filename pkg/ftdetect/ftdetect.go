// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ftdetect identifies the encoding of an argument schema file.
package ftdetect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type FileType int

const (
	Unknown FileType = iota
	TOML
	YAML
	JSON
)

func (t FileType) String() string {
	switch t {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFileType maps a format name such as "yml" or "json" to a FileType.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return Unknown, fmt.Errorf("unknown schema format %q", s)
}

// DetectFile reports the type of the file at path. The extension wins when it
// is recognized; otherwise the contents are sniffed.
func DetectFile(path string) (FileType, error) {
	if ft, ok := detectByName(path); ok {
		return ft, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read file: %w", err)
	}
	if ft := DetectBytes(bs); ft != Unknown {
		return ft, nil
	}
	return Unknown, fmt.Errorf("unable to detect file type of %s", path)
}

func detectByName(path string) (FileType, bool) {
	if path == "" {
		return Unknown, false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, true
	case ".yml", ".yaml":
		return YAML, true
	case ".json":
		return JSON, true
	}
	return Unknown, false
}

// DetectBytes sniffs a schema document. A document is recognized only when it
// decodes to a table carrying a top-level "program" or "arg" key.
func DetectBytes(bs []byte) FileType {
	trimmed := bytes.TrimSpace(bs)
	if len(trimmed) == 0 {
		return Unknown
	}
	if trimmed[0] == '{' {
		var m map[string]any
		if json.Unmarshal(trimmed, &m) == nil && isSchema(m) {
			return JSON
		}
		return Unknown
	}
	// TOML first: key = value lines are plain scalars to YAML.
	var tm map[string]any
	if _, err := toml.Decode(string(bs), &tm); err == nil && isSchema(tm) {
		return TOML
	}
	var ym map[string]any
	if yaml.Unmarshal(bs, &ym) == nil && isSchema(ym) {
		return YAML
	}
	return Unknown
}

func isSchema(m map[string]any) bool {
	_, hasProgram := m["program"]
	_, hasArg := m["arg"]
	return hasProgram || hasArg
}
