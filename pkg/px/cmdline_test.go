// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package px

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newCountLine() (*CommandLine, *Value[int]) {
	cl := New("prog")
	count := AddValue[int](cl, "count").SetTag("-c").SetLongTag("--count")
	if err := count.SetDefault(0); err != nil {
		panic(err)
	}
	return cl, count
}

func TestParse_CountScenario(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{name: "short tag", tokens: []string{"prog", "-c", "42"}, want: 42},
		{name: "long tag", tokens: []string{"prog", "--count", "7"}, want: 7},
		{name: "absent uses default", tokens: []string{"prog"}, want: 0},
		{name: "tag without value is ignored", tokens: []string{"prog", "-c"}, want: 0},
		{name: "last occurrence wins", tokens: []string{"prog", "-c", "1", "--count", "2"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, count := newCountLine()
			if err := cl.Parse(tt.tokens); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got, err := count.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParse_ConversionErrorAborts(t *testing.T) {
	cl, _ := newCountLine()
	verbose := cl.AddFlag("verbose").SetLongTag("--verbose")

	err := cl.Parse([]string{"prog", "-c", "abc", "--verbose"})
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("Parse() error = %v, want ErrConversion", err)
	}
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("Parse() error type = %T, want *ConversionError", err)
	}
	if ce.Name != "count" || ce.Raw != "abc" || ce.Tag != "-c" {
		t.Errorf("ConversionError = %+v, want name=count raw=abc tag=-c", ce)
	}
	if verbose.Value() {
		t.Errorf("flag after the failing token was parsed")
	}
}

func TestParse_VerboseScenario(t *testing.T) {
	tests := []struct {
		tokens []string
		want   bool
	}{
		{tokens: []string{"prog", "--verbose"}, want: true},
		{tokens: []string{"prog"}, want: false},
		{tokens: []string{"prog", "--verbose=true"}, want: false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.tokens, " "), func(t *testing.T) {
			cl := New("prog")
			verbose := cl.AddFlag("verbose").SetLongTag("--verbose")
			if err := cl.Parse(tt.tokens); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if verbose.Value() != tt.want {
				t.Errorf("Value() = %v, want %v", verbose.Value(), tt.want)
			}
		})
	}
}

func TestParse_ConsumedValueIsNotATag(t *testing.T) {
	// "-v" is the value of --name and must not also set the flag.
	cl := New("prog")
	name := AddValue[string](cl, "name").SetLongTag("--name")
	verbose := cl.AddFlag("verbose").SetTag("-v")

	if err := cl.Parse([]string{"prog", "--name", "-v"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := name.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if got != "-v" {
		t.Errorf("name = %q, want %q", got, "-v")
	}
	if verbose.Value() {
		t.Errorf("verbose = true, want false")
	}
}

func TestParse_DuplicateTagFirstRegisteredWins(t *testing.T) {
	cl := New("prog")
	first := cl.AddFlag("first").SetTag("-x")
	second := cl.AddFlag("second").SetTag("-x")
	value := AddValue[string](cl, "value").SetTag("-x")

	if err := cl.Parse([]string{"-x", "y"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !first.Value() {
		t.Errorf("first = false, want true")
	}
	if second.Value() {
		t.Errorf("second = true, want false")
	}
	if value.Found() {
		t.Errorf("value matched a position already claimed by a flag")
	}
}

func TestParse_EmptyTagNeverMatches(t *testing.T) {
	cl := New("prog")
	untagged := cl.AddFlag("untagged")
	if err := cl.Parse([]string{"", "x"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if untagged.Value() {
		t.Errorf("descriptor without tags matched an empty token")
	}
}

func TestParse_Twice(t *testing.T) {
	cl, _ := newCountLine()
	if err := cl.Parse(nil); err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}
	if err := cl.Parse(nil); !errors.Is(err, ErrAlreadyParsed) {
		t.Errorf("second Parse() error = %v, want ErrAlreadyParsed", err)
	}
}

func TestParse_Logf(t *testing.T) {
	var lines []string
	cl := New("prog").SetLogf(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	cl.AddFlag("verbose").SetTag("-v")
	AddValue[int](cl, "count").SetTag("-c")

	if err := cl.Parse([]string{"prog", "-v", "-c", "3"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{
		`prog: ["-v"] matched verbose`,
		`prog: ["-c" "3"] matched count`,
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cl := New("prog")
	path := AddValue[string](cl, "path").SetTag("-p")
	if err := path.SetRequired(true); err != nil {
		t.Fatal(err)
	}
	level := AddValue[int](cl, "level").SetTag("-l").SetValidator(Range(1, 9))
	cl.AddFlag("quiet").SetTag("-q")

	if err := cl.Parse([]string{"prog", "-l", "0"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	err := cl.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() error = %v, want ErrInvalid", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate() error type = %T", err)
	}
	if diff := cmp.Diff([]string{"path", "level"}, ve.Names); diff != "" {
		t.Errorf("invalid names mismatch (-want +got):\n%s", diff)
	}
	if got, _ := level.Value(); got != 0 {
		t.Errorf("level = %d, want the parsed 0", got)
	}
}

func TestValidate_AllValid(t *testing.T) {
	cl, _ := newCountLine()
	if err := cl.Parse([]string{"prog", "-c", "1"}); err != nil {
		t.Fatal(err)
	}
	if err := cl.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLookupAndDescriptors(t *testing.T) {
	cl := New("prog")
	cl.AddFlag("a")
	AddValue[int](cl, "b")
	AddMultiValue[string](cl, "c")

	var names []string
	for _, d := range cl.Descriptors() {
		names = append(names, d.Name())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Errorf("Descriptors() mismatch (-want +got):\n%s", diff)
	}

	d, ok := cl.Lookup("b")
	if !ok {
		t.Fatal("Lookup(b) not found")
	}
	if _, ok := d.(*Value[int]); !ok {
		t.Errorf("Lookup(b) = %T, want *Value[int]", d)
	}
	if _, ok := cl.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) found a descriptor")
	}
}

func TestAdd_EmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("AddFlag(\"\") did not panic")
		}
	}()
	New("prog").AddFlag("")
}

func TestPrintHelp(t *testing.T) {
	cl := New("backup").SetDescription("Back up a directory")
	cl.AddFlag("verbose").SetTag("-v").SetLongTag("--verbose").SetDescription("Verbose output")
	keep := AddValue[int](cl, "keep").SetLongTag("--keep").SetDescription("Snapshots to keep")
	if err := keep.SetDefault(7); err != nil {
		t.Fatal(err)
	}
	src := AddValue[string](cl, "source").SetTag("-s")
	if err := src.SetRequired(true); err != nil {
		t.Fatal(err)
	}
	AddMultiValue[string](cl, "exclude").SetLongTag("--exclude")

	var buf bytes.Buffer
	cl.PrintHelp(&buf)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	if len(lines) != 5 {
		t.Fatalf("help has %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if lines[0] != "backup - Back up a directory" {
		t.Errorf("header = %q", lines[0])
	}
	for i, want := range [][]string{
		{"verbose", "-v, --verbose", "Verbose output"},
		{"keep", "--keep <int>", "Snapshots to keep", "(default: 7)"},
		{"source", "-s <string>", "[required]"},
		{"exclude", "--exclude <string...>"},
	} {
		for _, s := range want {
			if !strings.Contains(lines[i+1], s) {
				t.Errorf("line %d = %q, missing %q", i+1, lines[i+1], s)
			}
		}
	}
}

func TestPrintHelp_NoDescription(t *testing.T) {
	var buf bytes.Buffer
	New("prog").PrintHelp(&buf)
	if buf.String() != "prog\n" {
		t.Errorf("PrintHelp() = %q, want %q", buf.String(), "prog\n")
	}
}
