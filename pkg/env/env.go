// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders resolved arguments as shell variable assignments that
// can be eval'd or sourced.
package env

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Var is one variable to assign.
type Var struct {
	Name string

	// Values is nil for a variable that has no value; it is skipped.
	Values []string

	// Array renders Values as a shell array, NAME=('a' 'b').
	Array bool
}

// Write writes one NAME='value' line per variable. Scalar variables with
// more than one value use the last one.
func Write(w io.Writer, vars []Var) error {
	bw := bufio.NewWriter(w)
	for _, v := range vars {
		if v.Values == nil {
			continue
		}
		if v.Array {
			quoted := make([]string, len(v.Values))
			for i, s := range v.Values {
				quoted[i] = Quote(s)
			}
			fmt.Fprintf(bw, "%s=(%s)\n", v.Name, strings.Join(quoted, " "))
			continue
		}
		var s string
		if len(v.Values) > 0 {
			s = v.Values[len(v.Values)-1]
		}
		fmt.Fprintf(bw, "%s=%s\n", v.Name, Quote(s))
	}
	return bw.Flush()
}

// Quote single-quotes s for a POSIX shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
