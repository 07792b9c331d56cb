package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"stockexplorer/cmd"
)

func main() {
	// Without arguments, launch the interactive menu.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "explore")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
