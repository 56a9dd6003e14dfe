// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import "testing"

func TestFlag(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   bool
	}{
		{name: "absent", tokens: []string{"prog"}, want: false},
		{name: "short", tokens: []string{"prog", "-v"}, want: true},
		{name: "long", tokens: []string{"prog", "--verbose"}, want: true},
		{name: "repeated", tokens: []string{"-v", "--verbose", "-v"}, want: true},
		{name: "prefix is not a match", tokens: []string{"--verb"}, want: false},
		{name: "attached value is not a match", tokens: []string{"--verbose=true"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := New("prog")
			v := cl.AddFlag("verbose").SetTag("-v").SetLongTag("--verbose")
			if err := cl.Parse(tt.tokens); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := v.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
			if !v.Valid() {
				t.Errorf("Valid() = false, flags are always valid")
			}
		})
	}
}

func TestFlag_DoesNotConsumeNext(t *testing.T) {
	cl := New("prog")
	f := cl.AddFlag("force").SetTag("-f")
	n := AddValue[int](cl, "n").SetTag("-n")
	if err := cl.Parse([]string{"-f", "-n", "3"}); err != nil {
		t.Fatal(err)
	}
	if !f.Value() {
		t.Errorf("force = false, want true")
	}
	if got, err := n.Value(); err != nil || got != 3 {
		t.Errorf("n = %d, %v, want 3, nil", got, err)
	}
}

func TestFlag_Bind(t *testing.T) {
	t.Run("match writes through", func(t *testing.T) {
		cl := New("prog")
		var dry bool
		cl.AddFlag("dry-run").SetLongTag("--dry-run").Bind(&dry)
		if err := cl.Parse([]string{"prog", "--dry-run"}); err != nil {
			t.Fatal(err)
		}
		if !dry {
			t.Errorf("dry = false, want true")
		}
	})

	t.Run("preset survives absent flag", func(t *testing.T) {
		cl := New("prog")
		dry := true
		f := cl.AddFlag("dry-run").SetLongTag("--dry-run").Bind(&dry)
		if err := cl.Parse([]string{"prog"}); err != nil {
			t.Fatal(err)
		}
		if !dry {
			t.Errorf("dry = false, preset value was overwritten")
		}
		if f.Value() {
			t.Errorf("Value() = true, want false")
		}
	})

	t.Run("nil detaches", func(t *testing.T) {
		cl := New("prog")
		var dry bool
		cl.AddFlag("dry-run").SetLongTag("--dry-run").Bind(&dry).Bind(nil)
		if err := cl.Parse([]string{"--dry-run"}); err != nil {
			t.Fatal(err)
		}
		if dry {
			t.Errorf("dry = true after detaching storage")
		}
	})
}
