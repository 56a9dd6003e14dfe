// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"regexp"
	"testing"
)

func TestValidators(t *testing.T) {
	port := Range[uint16](1, 65535)
	level := OneOf("debug", "info", "warn")
	name := Match(regexp.MustCompile(`^[a-z][a-z0-9-]*$`))
	small := All(Range(0, 10), nil, func(x int) bool { return x != 5 })

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"always", Always[int]()(-1), true},
		{"range low edge", port(1), true},
		{"range high edge", port(65535), true},
		{"range below", port(0), false},
		{"one of hit", level("info"), true},
		{"one of miss", level("trace"), false},
		{"match", name("web-1"), true},
		{"match miss", name("Web"), false},
		{"all pass", small(3), true},
		{"all first fails", small(11), false},
		{"all last fails", small(5), false},
		{"all empty", All[string]()("x"), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
