// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/charfind"
	"github.com/poiesic/charfind/config"
	"github.com/poiesic/charfind/core"
	"github.com/poiesic/charfind/history"
	"github.com/poiesic/charfind/search"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "charfind",
		Usage: "Find Unicode characters by name or code point",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				EnvVars: []string{"CHARFIND_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to settings database directory (overrides data_dir)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search character names; +term requires, -term excludes, term? is optional",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "any",
						Usage: "Unadorned terms are optional (match any)",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Unadorned terms are required (match all)",
					},
				},
			},
			{
				Name:      "add",
				Usage:     "Add characters to the recently used list",
				ArgsUsage: "CHAR...",
				Action:    addCommand,
			},
			{
				Name:   "history",
				Usage:  "Show recent searches and recently used characters",
				Action: historyCommand,
			},
		},
	}
}

// openFinder loads the configuration named by --config, applies --db and
// --log-level over it and opens a Finder.
func openFinder(c *cli.Context) (*charfind.Finder, error) {
	var opts []config.Option
	if c.IsSet("db") {
		opts = append(opts, config.WithDataDir(c.String("db")))
	}
	if c.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(c.String("log-level")))
	}
	cfg, err := config.Load(c.String("config"), opts...)
	if err != nil {
		return nil, err
	}
	if !c.IsSet("log-level") {
		installLogger(cfg.Level())
	}
	return charfind.Open(cfg)
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a search query is required")
	}
	if c.Bool("any") && c.Bool("all") {
		return fmt.Errorf("--any and --all are mutually exclusive")
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	raw := strings.Join(c.Args().Slice(), " ")
	var result *search.Result
	switch {
	case c.Bool("any"):
		result, err = finder.SearchWithMode(raw, core.MatchAny)
	case c.Bool("all"):
		result, err = finder.SearchWithMode(raw, core.MatchAll)
	default:
		result, err = finder.Search(raw)
	}
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintln(c.App.Writer, search.NoMatchesHeader)
		return nil
	}

	printResult(c.App.Writer, result)
	return nil
}

func printResult(w io.Writer, result *search.Result) {
	fmt.Fprintln(w, result.Header)
	for _, row := range result.Rows {
		char := row.Char
		if char == "" {
			char = " "
		}
		fmt.Fprintf(w, "%s  %s  %s\n", row.Label, char, row.Description)
	}
}

func addCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one character is required")
	}

	chars := make([]rune, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		r, err := parseChar(arg)
		if err != nil {
			return err
		}
		chars = append(chars, r)
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	for _, r := range chars {
		if finder.AddChar(r) {
			fmt.Fprintf(c.App.Writer, "added %c U+%04X\n", r, r)
		}
	}
	return nil
}

// parseChar accepts a single character or a hex code point written as
// XXXX, U+XXXX or 0xXXXX.
func parseChar(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return r, core.ValidateChar(r)
	}
	hex := arg
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(arg, prefix); ok {
			hex = rest
			break
		}
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a character nor a code point", core.ErrInvalidChar, arg)
	}
	r := rune(n)
	return r, core.ValidateChar(r)
}

func historyCommand(c *cli.Context) error {
	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	store := finder.History()
	w := c.App.Writer
	fmt.Fprintf(w, "Match mode: %s\n", store.MatchMode())
	printMenu(w, "Recent searches", store.SearchMenu())
	printMenu(w, "Recent characters", store.CharMenu())
	return nil
}

func printMenu(w io.Writer, title string, entries []history.MenuEntry) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(w, "  %c  %s\n", entry.Accelerator, entry.Label)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	level, err := config.ParseLogLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}
	installLogger(level)
	return nil
}

func installLogger(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
