// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/ewagner/pennybook"
	"github.com/ewagner/pennybook/logger"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&removeCmd{}, "ledger")

	c.Register(&listCmd{}, "views")
	c.Register(&statsCmd{}, "views")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&currencyCmd{}, "settings")
	c.Register(&budgetCmd{}, "settings")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data", "", "Path to the data file (defaults to pennybook.db, or $PENNYBOOK_DATA)")
var logLevel = flag.String("log", "", "Log level: debug, info, warn, error (defaults to warn, or $PENNYBOOK_LOG)")

// openStore resolves the configuration, opens the data file and loads the
// store from it. The returned func closes the data file.
func openStore() (*pennybook.Store, func(), error) {
	cfg := loadConfig()
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	storage, err := pennybook.OpenBolt(cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	store := pennybook.NewStore(storage)
	store.Load()
	return store, func() { _ = storage.Close() }, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
