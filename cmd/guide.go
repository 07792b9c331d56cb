package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"stockexplorer/docs"
)

// guideCmd shows embedded documentation topics.
type guideCmd struct{}

func (*guideCmd) Name() string     { return "guide" }
func (*guideCmd) Synopsis() string { return "show documentation" }
func (*guideCmd) Usage() string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		topics = []string{"guide"}
	}
	return fmt.Sprintf(`guide [<topic>...]

  Shows documentation for the given topics, the user guide by default.
  Available topics: %s.
`, strings.Join(topics, ", "))
}

func (c *guideCmd) SetFlags(f *flag.FlagSet) {}

func (c *guideCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"guide"}
	}

	doc, err := topicContent(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

// topicContent returns the concatenated markdown of documentation topics.
func topicContent(topics ...string) (string, error) {
	return docs.GetTopics(topics...)
}
