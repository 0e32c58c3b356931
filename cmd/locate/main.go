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
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "locate",
		Usage: "Evaluate element locators against stored HTML snapshots",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
			},
			&cli.BoolFlag{
				Name:  "in-memory",
				Usage: "Keep the database in memory; nothing is persisted",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write search metrics to this file in Prometheus text format",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse locators and print their canonical form",
				ArgsUsage: "LOCATOR...",
				Action:    parseCommand,
			},
			{
				Name:      "find",
				Usage:     "Find the elements a locator matches in a snapshot",
				ArgsUsage: "LOCATOR",
				Action:    findCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshot",
						Aliases:  []string{"s"},
						Usage:    "Name of the snapshot to search",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "first",
						Usage: "Print only the first match",
					},
				},
			},
			{
				Name:  "snapshot",
				Usage: "Manage stored HTML snapshots",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Store an HTML file as a snapshot (- reads stdin)",
						ArgsUsage: "FILE",
						Action:    snapshotAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "name",
								Aliases: []string{"n"},
								Usage:   "Snapshot name (defaults to the file name)",
							},
							&cli.StringFlag{
								Name:  "url",
								Usage: "URL the page was captured from",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List stored snapshots",
						Action: snapshotListCommand,
					},
					{
						Name:      "rm",
						Usage:     "Remove snapshots",
						ArgsUsage: "NAME...",
						Action:    snapshotRemoveCommand,
					},
				},
			},
			{
				Name:  "alias",
				Usage: "Manage saved locators, referenced as @name",
				Subcommands: []*cli.Command{
					{
						Name:      "set",
						Usage:     "Save a locator under a name",
						ArgsUsage: "NAME LOCATOR",
						Action:    aliasSetCommand,
					},
					{
						Name:   "list",
						Usage:  "List saved locators",
						Action: aliasListCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "prefix",
								Usage: "Only list names starting with this prefix",
							},
						},
					},
					{
						Name:      "rm",
						Usage:     "Remove saved locators",
						ArgsUsage: "NAME...",
						Action:    aliasRemoveCommand,
					},
				},
			},
			{
				Name:      "batch",
				Usage:     "Evaluate locators against many snapshots",
				ArgsUsage: "LOCATOR...",
				Action:    batchCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "snapshot",
						Aliases: []string{"s"},
						Usage:   "Snapshot to evaluate against (repeatable, defaults to all)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent workers",
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Report progress on stderr",
					},
				},
			},
		},
	}
}
