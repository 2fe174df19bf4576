package main

// This package measures the cost of duplicating a large text buffer by
// full copy versus by incrementing a reference count on a shared handle.
//
// The comparisons can be run through the statistical runner:
//   go run . run
//
// or as plain Go benchmarks:
//   go test -bench=. -benchmem ./...
//
// See README.md for more detailed instructions.

import "github.com/adamsitnik/ClonePlayground/cmd"

func main() {
	cmd.Execute()
}
