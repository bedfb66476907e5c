package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/realJogicodes/install-svelte-app-fast-dev/internal/prompt"
)

// Version is set at build time via -ldflags.
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("install-svelte-app %s\n", Version)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument: %s\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	if err := runInstall(); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("install-svelte-app - bootstrap a Svelte + PocketBase project")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  install-svelte-app             Run the interactive installer")
	fmt.Println("  install-svelte-app --version   Show version information")
	fmt.Println()
	fmt.Println("The installer checks your platform and tooling, clones the")
	fmt.Println("application template, downloads the PocketBase backend for")
	fmt.Println("your system, and installs frontend dependencies.")
	fmt.Println()
	fmt.Println("Defaults can be overridden with an install.lua file in the")
	fmt.Println("working directory.")
}
