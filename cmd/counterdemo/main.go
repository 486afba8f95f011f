// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command counterdemo exercises create/update/diff/merge against a pair of
// in-memory counter contexts, for manual inspection of the wire layout and
// relationship output without standing up a cluster.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/luxfi/countercontext/counter"
	"github.com/luxfi/version"
)

// appVersion identifies this build for --version and for any peer that
// asks this demo binary to identify itself.
var appVersion = &version.Application{
	Name:  "counterdemo",
	Major: 1,
	Minor: 0,
	Patch: 0,
}

func main() {
	nodeA := flag.String("node-a", "10.0.0.1", "address to attribute replica A's writes to")
	nodeB := flag.String("node-b", "10.0.0.2", "address to attribute replica B's writes to")
	deltaA := flag.Int64("delta-a", 5, "delta applied to replica A's context")
	deltaB := flag.Int64("delta-b", 3, "delta applied to replica B's context")
	showVersion := flag.Bool("version", false, "print the binary's version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%d.%d.%d\n", appVersion.Name, appVersion.Major, appVersion.Minor, appVersion.Patch)
		return
	}

	ipA := net.ParseIP(*nodeA)
	ipB := net.ParseIP(*nodeB)
	if ipA == nil || ipB == nil {
		fmt.Fprintln(os.Stderr, "node-a and node-b must be valid IP addresses")
		os.Exit(1)
	}

	a, err := counter.Update(counter.Create(), ipA, *deltaA)
	if err != nil {
		fmt.Fprintln(os.Stderr, "update a:", err)
		os.Exit(1)
	}
	b, err := counter.Update(counter.Create(), ipB, *deltaB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "update b:", err)
		os.Exit(1)
	}

	rel, err := counter.Diff(a, b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "diff:", err)
		os.Exit(1)
	}
	fmt.Printf("a = %s\n", a)
	fmt.Printf("b = %s\n", b)
	fmt.Printf("diff(a, b) = %s\n", rel)

	merged, err := counter.Merge(a, b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "merge:", err)
		os.Exit(1)
	}
	total, err := counter.Total(merged)
	if err != nil {
		fmt.Fprintln(os.Stderr, "total:", err)
		os.Exit(1)
	}
	fmt.Printf("merge(a, b) = %s\n", merged)
	fmt.Printf("total = %d\n", total)
}
