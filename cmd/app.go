// Package cmd implements the CLI application of the Stock Data Explorer.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"stockexplorer"
	"stockexplorer/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(subcommands.HelpCommand(), "")
	c.Register(subcommands.CommandsCommand(), "")
	c.Register(subcommands.FlagsCommand(), "")

	c.Register(&exploreCmd{}, "")
	c.Register(&analyzeCmd{}, "")
	c.Register(&chartCmd{}, "")
	c.Register(&guideCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", defaultConfigFile(), "Path to the optional YAML configuration file")

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sdx.yaml"
	}
	return filepath.Join(home, ".config", "sdx.yaml")
}

// LoadConfig loads the application configuration, falling back to defaults
// when the config file is absent or unreadable.
func LoadConfig() stockexplorer.Config {
	cfg, err := stockexplorer.LoadConfig(*configFile)
	if err != nil {
		log.Printf("warning, cannot read config %q: %v", *configFile, err)
	}
	return cfg
}

// NewProvider returns the market data provider used by all commands.
func NewProvider(cfg stockexplorer.Config) stockexplorer.Provider {
	return yahoo.New(cfg)
}

// printMarkdown renders a markdown string to the terminal.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	// fall back to the raw markdown
	fmt.Println(markdown)
}
