// Package main provides the CLI entrypoint for settings-generator.
//
// settings-generator reads a settings schema document and emits a Go
// source file with a strongly-typed accessor wrapper: per-key getters,
// setters, change subscriptions, property bindings, and actions, all
// backed by the runtime settings store.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
