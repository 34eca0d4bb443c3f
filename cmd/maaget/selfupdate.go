package main

import (
	"context"
	"fmt"

	"github.com/ZebulonRouseFrantzich/maaget/internal/selfupdate"
)

// runSelfUpdate handles the `maaget self-update` subcommand
func runSelfUpdate(args []string) error {
	channel := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			fmt.Println("Usage: maaget self-update [--channel <c>]")
			fmt.Println()
			fmt.Println("Replace the running maaget binary with the latest release.")
			return nil
		case "--channel", "-c":
			i++
			if i >= len(args) {
				return fmt.Errorf("--channel requires a value")
			}
			channel = args[i]
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	ctx := context.Background()
	env, err := loadEnvironment(ctx, channel)
	if err != nil {
		return err
	}

	updater := selfupdate.NewUpdater(env.cfg, env.dirs, env.info, env.log)
	return updater.Run(ctx, Version)
}
