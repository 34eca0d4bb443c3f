package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ZebulonRouseFrantzich/maaget/internal/core"
)

// runUpdate handles the `maaget update` subcommand
func runUpdate(args []string) error {
	showHelp := false
	noResource := false
	channel := ""
	timeout := defaultTimeout

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			showHelp = true
		case "--no-resource":
			noResource = true
		case "--channel", "-c":
			i++
			if i >= len(args) {
				return fmt.Errorf("--channel requires a value")
			}
			channel = args[i]
		case "--timeout", "-t":
			i++
			if i >= len(args) {
				return fmt.Errorf("--timeout requires a value")
			}
			seconds, err := strconv.Atoi(args[i])
			if err != nil || seconds <= 0 {
				return fmt.Errorf("invalid timeout: %s", args[i])
			}
			timeout = time.Duration(seconds) * time.Second
		default:
			return fmt.Errorf("unknown option: %s\nRun 'maaget update --help' for usage", args[i])
		}
	}

	if showHelp {
		printUpdateHelp()
		return nil
	}

	ctx := context.Background()
	env, err := loadEnvironment(ctx, channel)
	if err != nil {
		return err
	}

	manager, err := core.NewManager(core.ManagerConfig{
		Config:   env.cfg,
		Dirs:     env.dirs,
		Platform: env.info,
		Logger:   env.log,
	})
	if err != nil {
		return err
	}

	return manager.Update(ctx, core.UpdateOptions{
		NoResource: noResource,
		Timeout:    timeout,
	})
}

func printUpdateHelp() {
	fmt.Println("Usage: maaget update [options]")
	fmt.Println()
	fmt.Println("Update MaaCore when the channel manifest has a newer version.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("      --no-resource    Skip installing the resource tree")
	fmt.Println("  -c, --channel <c>    Release channel: stable, beta or alpha")
	fmt.Println("  -t, --timeout <sec>  Connection timeout per download attempt (default 30)")
	fmt.Println("  -h, --help           Show this help")
}
