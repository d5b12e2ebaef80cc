package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/travisgen/internal/app"
	"github.com/vk/travisgen/internal/cli"
)

// main is the entrypoint for the travisgen application.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the application logic for easier testing and error
// handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	generator := app.NewApp(outW, errW, appConfig)
	return generator.Run(context.Background(), appConfig)
}
