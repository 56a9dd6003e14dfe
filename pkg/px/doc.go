// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package px provides a declarative command-line argument engine.
//
// Callers register typed argument descriptors against a CommandLine, configure
// them through the returned handles, and then hand the raw token sequence to
// Parse:
//
//	cl := px.New("backup").SetDescription("Back up a directory")
//	verbose := cl.AddFlag("verbose").SetTag("-v").SetLongTag("--verbose")
//	keep := px.AddValue[int](cl, "keep").SetLongTag("--keep")
//	if err := keep.SetDefault(7); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cl.Parse(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cl.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	n, _ := keep.Value()
//
// # Matching
//
// Parse makes a single left-to-right pass over the tokens. At each position
// every descriptor, in registration order, is offered the remaining tokens.
// The first descriptor that matches claims the position and the cursor moves
// past the tokens it consumed; otherwise the cursor moves by one. Flags consume
// their tag, values consume their tag and the following token. Tags are
// compared literally; an empty tag never matches.
//
// Tag uniqueness is not enforced. When two descriptors share a tag the one
// registered first claims every occurrence.
//
// # Values
//
// Value tokens are converted with Convert. Textual types are taken verbatim,
// other types use their standard Go textual form, and a token that cannot be
// fully converted aborts Parse with a *ConversionError.
//
// Value resolution prefers the parsed value, then the default. Reading a
// descriptor that has neither returns a *MissingValueError.
//
// # Validity
//
// Requiredness and validators are advisory: Parse never rejects a command line
// because a descriptor is invalid. Callers check Valid on each descriptor, or
// call CommandLine.Validate after parsing.
//
// # Bound storage
//
// Bind attaches a caller-owned variable. The descriptor writes its value
// through the pointer on every successful match and whenever a default is
// assigned.
package px
