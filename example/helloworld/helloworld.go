// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yeetrun/px/pkg/px"
	"tailscale.com/util/must"
)

func main() {
	var (
		name  string
		times int
		every time.Duration
	)

	cl := px.New("helloworld").SetDescription("print a greeting a few times")
	must.Do(px.AddValue[string](cl, "name").
		SetTag("-n").SetLongTag("--name").
		SetDescription("Who to greet").
		Bind(&name).
		SetDefault("World"))
	must.Do(px.AddValue[int](cl, "times").
		SetTag("-t").SetLongTag("--times").
		SetDescription("How many greetings, 1 to 10").
		SetValidator(px.Range(1, 10)).
		Bind(&times).
		SetDefault(3))
	must.Do(px.AddValue[time.Duration](cl, "every").
		SetLongTag("--every").
		SetDescription("Pause between greetings").
		Bind(&every).
		SetDefault(time.Second))
	loud := cl.AddFlag("loud").SetLongTag("--loud").SetDescription("Shout")
	help := cl.AddFlag("help").SetTag("-h").SetLongTag("--help").SetDescription("Show this help")

	if err := cl.ParseProcess(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if help.Value() {
		cl.PrintHelp(os.Stdout)
		return
	}
	if err := cl.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cl.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	msg := fmt.Sprintf("Hello, %s!", name)
	if loud.Value() {
		msg = strings.ToUpper(msg)
	}
	for i := range times {
		if i > 0 {
			time.Sleep(every)
		}
		fmt.Println(msg)
	}
}
