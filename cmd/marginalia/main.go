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
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "marginalia",
		Usage:  "Highlight and underline phrases in PDF documents",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "annotate",
				Usage:  "Annotate a PDF with the phrases listed in an instructions file",
				Action: annotateCommand,
				Flags: []cli.Flag{
					pdfFlag(),
					instructionsFlag(),
					dbFlag(),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent page lookups (0 uses one per CPU)",
					},
					&cli.StringFlag{
						Name:  "author",
						Usage: "Author for instructions that name none",
						Value: "marginalia",
					},
					&cli.BoolFlag{
						Name:  "popup",
						Usage: "Open the comment popup of new annotations",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail unless every instruction is matched",
					},
				},
			},
			{
				Name:      "find",
				Usage:     "Print the quads covering a phrase",
				ArgsUsage: "PHRASE...",
				Action:    findCommand,
				Flags: []cli.Flag{
					pdfFlag(),
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page to search (1-based, 0 searches every page)",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Trace each stage of the lookup",
					},
				},
			},
			{
				Name:   "clear",
				Usage:  "Remove the annotations created for an instructions file",
				Action: clearCommand,
				Flags: []cli.Flag{
					pdfFlag(),
					instructionsFlag(),
					dbFlag(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of annotations to delete in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N annotations",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for a conflicting delete",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Write the stored annotations of a PDF as JSON",
				Action: exportCommand,
				Flags: []cli.Flag{
					pdfFlag(),
					dbFlag(),
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (- for stdout)",
						Value:   "-",
					},
				},
			},
		},
	}
}

func pdfFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "pdf",
		Aliases:  []string{"p"},
		Usage:    "Path to the PDF document",
		Required: true,
	}
}

func instructionsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "instructions",
		Aliases:  []string{"i"},
		Usage:    "Path to the JSON instructions file",
		Required: true,
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
