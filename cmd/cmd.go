// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes the config file and database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize config file, database, and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// tuiCommand launches the terminal landing experience
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Browse the InsightHub landing page in the terminal",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}

// serveCommand hosts the web landing page and feedback API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the landing page and feedback API over HTTP",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// feedbackCommand inspects and exports stored feedback
func feedbackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "feedback",
		Aliases: []string{"fb"},
		Usage:   "Inspect feedback submitted through the landing page",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List stored feedback entries",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "source",
						Usage: "Filter by submission source (web or tui)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FeedbackList,
			},
			{
				Name:  "export",
				Usage: "Export feedback entries to a file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv or md",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Filter by submission source (web or tui)",
					},
				},
				Action: r.FeedbackExport,
			},
		},
	}
}
