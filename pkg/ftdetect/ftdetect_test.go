// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftdetect

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		fileName string
		contents string
		want     FileType
	}{
		{
			name:     "toml_by_ext",
			fileName: "args.toml",
			contents: "not: toml\n",
			want:     TOML,
		},
		{
			name:     "yaml_by_ext",
			fileName: "args.YML",
			contents: "program = \"x\"\n",
			want:     YAML,
		},
		{
			name:     "json_by_ext",
			fileName: "args.json",
			contents: "",
			want:     JSON,
		},
		{
			name:     "toml_sniffed",
			fileName: "args",
			contents: "program = \"backup\"\n\n[[arg]]\nname = \"source\"\nshort = \"-s\"\n",
			want:     TOML,
		},
		{
			name:     "yaml_sniffed",
			fileName: "args.conf",
			contents: "program: backup\narg:\n  - name: source\n    short: -s\n",
			want:     YAML,
		},
		{
			name:     "json_sniffed",
			fileName: "schema",
			contents: "  {\"program\": \"backup\", \"arg\": []}\n",
			want:     JSON,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tc.fileName)
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatalf("write file: %v", err)
			}

			ft, err := DetectFile(path)
			if err != nil {
				t.Fatalf("DetectFile error: %v", err)
			}
			if ft != tc.want {
				t.Fatalf("DetectFile type mismatch: got %v want %v", ft, tc.want)
			}
		})
	}
}

func TestDetectFileUnknown(t *testing.T) {
	t.Parallel()

	for _, contents := range []string{
		"",
		"#!/bin/sh\necho hi\n",
		"services:\n  app:\n    image: busybox\n",
		"{\"services\": {}}",
	} {
		path := filepath.Join(t.TempDir(), "schema")
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		if ft, err := DetectFile(path); err == nil {
			t.Errorf("DetectFile(%q) = %v, want error", contents, ft)
		}
	}

	if _, err := DetectFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("DetectFile on a missing file succeeded")
	}
}

func TestParseFileType(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]FileType{
		"toml": TOML, ".yaml": YAML, "YML": YAML, "json": JSON,
	} {
		got, err := ParseFileType(in)
		if err != nil || got != want {
			t.Errorf("ParseFileType(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseFileType("ini"); err == nil {
		t.Errorf("ParseFileType(ini) succeeded")
	}
}
