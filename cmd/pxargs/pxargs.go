// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The pxargs command parses shell script arguments against a declarative
// schema and prints them as variable assignments, JSON, YAML or TOML.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/yeetrun/px/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
