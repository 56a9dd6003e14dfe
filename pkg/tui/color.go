// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for diagnostics written to w. Color is
// used only when enabled is set, w is a terminal, NO_COLOR is unset and TERM
// is not dumb.
func NewColorizer(w io.Writer, enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Error(text string) string { return c.wrap(color.FgRed, text) }

func (c Colorizer) OK(text string) string { return c.wrap(color.FgGreen, text) }

func (c Colorizer) wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(text)
}
