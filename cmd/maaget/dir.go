package main

import (
	"fmt"

	"github.com/ZebulonRouseFrantzich/maaget/internal/dirs"
)

// runDir handles the `maaget dir` subcommand
func runDir(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: maaget dir <library|resource|cache|config>")
	}

	d, err := dirs.New()
	if err != nil {
		return err
	}

	switch args[0] {
	case "library":
		fmt.Println(d.Library())
	case "resource":
		fmt.Println(d.Resource())
	case "cache":
		fmt.Println(d.Cache())
	case "config":
		fmt.Println(d.Config())
	default:
		return fmt.Errorf("unknown directory: %s (expected library, resource, cache or config)", args[0])
	}
	return nil
}
