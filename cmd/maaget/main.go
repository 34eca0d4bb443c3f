package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("maaget %s\n", Version)
			return
		case "install":
			// Handle maaget install subcommand
			if err := runInstall(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "update":
			// Handle maaget update subcommand
			if err := runUpdate(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "self-update":
			// Handle maaget self-update subcommand
			if err := runSelfUpdate(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "dir":
			// Handle maaget dir subcommand
			if err := runDir(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Default: show help
	fmt.Println("maaget - MaaCore installer and updater")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  maaget --version            Show version information")
	fmt.Println("  maaget install [options]    Install MaaCore and resources")
	fmt.Println("  maaget update [options]     Update MaaCore and resources")
	fmt.Println("  maaget self-update          Update the maaget binary itself")
	fmt.Println("  maaget dir <name>           Print a managed directory (library, resource, cache, config)")
	fmt.Println()
	fmt.Println("Install/update options:")
	fmt.Println("  --channel <c>               Release channel: stable, beta or alpha")
	fmt.Println("  --no-resource               Skip installing the resource tree")
	fmt.Println("  --timeout <sec>             Connection timeout per download attempt")
	fmt.Println("  --force                     (install only) Reinstall over an existing MaaCore")
}
