package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ewagner/pennybook/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `pny topic [<topic>]

  Shows documentation for a given topic. Without an argument, lists the
  available topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		topics, err := docs.AllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Available topics:")
		for _, t := range topics {
			fmt.Printf("  %s\n", t)
		}
		return subcommands.ExitSuccess
	}

	for _, topic := range f.Args() {
		doc, err := docs.GetTopic(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(doc)
	}
	return subcommands.ExitSuccess
}
