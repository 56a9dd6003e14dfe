// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/yeetrun/px/pkg/px"
	"tailscale.com/util/must"
)

func main() {
	cl := px.New("helloserver").SetDescription("serve a greeting over HTTP")
	listen := px.AddValue[string](cl, "listen").
		SetTag("-l").SetLongTag("--listen").
		SetDescription("Address to listen on")
	must.Do(listen.SetDefault(""))
	port := px.AddValue[uint16](cl, "port").
		SetTag("-p").SetLongTag("--port").
		SetDescription("TCP port").
		SetValidator(px.Range[uint16](1, 65535))
	must.Do(port.SetDefault(8080))
	headers := px.AddMultiValue[string](cl, "header").
		SetTag("-H").SetLongTag("--header").
		SetDescription("Extra response header, Name: value").
		SetValidator(func(h string) bool { return strings.Contains(h, ":") })
	must.Do(headers.SetDefault(nil))
	verbose := cl.AddFlag("verbose").SetTag("-v").SetDescription("Log every request")

	if err := cl.ParseProcess(); err != nil {
		log.Fatal(err)
	}
	if err := cl.Validate(); err != nil {
		cl.PrintHelp(os.Stderr)
		log.Fatal(err)
	}

	addr := net.JoinHostPort(must.Get(listen.Value()), strconv.Itoa(int(must.Get(port.Value()))))
	extra := must.Get(headers.Values())
	logRequests := verbose.Value()

	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if logRequests {
			log.Printf("%s %s", r.Method, r.URL.Path)
		}
		for _, h := range extra {
			k, v, _ := strings.Cut(h, ":")
			w.Header().Add(strings.TrimSpace(k), strings.TrimSpace(v))
		}
		if r.URL.Path == "/env" {
			fmt.Fprintln(w, os.Environ())
			return
		}
		fmt.Fprintln(w, "Hello, world!")
	})))
}
