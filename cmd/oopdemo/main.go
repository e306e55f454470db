// Command oopdemo runs the object-oriented concept demos.
//
// Run:
//
//	go run ./cmd/oopdemo run
//	go run ./cmd/oopdemo run stack countdown
//	go run ./cmd/oopdemo list
//	go run ./cmd/oopdemo compare 1.2.0 1.1.9
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
