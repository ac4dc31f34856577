package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/diegok/calbreak/internal/app"
	"github.com/diegok/calbreak/internal/config"
	"github.com/diegok/calbreak/internal/ics"
	"github.com/diegok/calbreak/internal/layout"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:   "calbreak",
		Usage:  "Break through a week of meetings in your terminal.",
		Flags:  config.Flags(),
		Action: playAction,
		Commands: []*cli.Command{
			weekCommand(),
		},
	}
}

func playAction(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := setupLogger(cfg.LogLevel, out)

	if err := app.NewApp(cfg, logger).Run(c.Context); err != nil {
		logger.Error("Game failed", "error", err)
		return err
	}
	return nil
}

func weekCommand() *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "Print the meetings generated for a week.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "any day of the week to print (YYYY-MM-DD, default today)"},
			&cli.BoolFlag{Name: "ics", Usage: "write the week as an iCalendar document"},
		},
		Action: func(c *cli.Context) error {
			day := time.Now()
			if s := c.String("date"); s != "" {
				parsed, err := time.ParseInLocation(time.DateOnly, s, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date '%s': %w", s, err)
				}
				day = parsed
			}

			var flavor *rand.Rand
			if seed := c.Int64("seed"); seed != 0 {
				flavor = rand.New(rand.NewSource(seed + 1))
			}
			meetings := layout.NewGenerator(flavor).BuildCalendarEvents(day)

			if c.Bool("ics") {
				return ics.Encode(c.App.Writer, meetings, time.Now())
			}
			return printWeek(c.App.Writer, meetings)
		},
	}
}

// printWeek writes one meeting per row.
func printWeek(w io.Writer, meetings []layout.Meeting) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tSTART\tEND\tTITLE\tLOCATION\tATTENDEES")
	for _, m := range meetings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Start.Format("Mon 01/02"),
			m.Start.Format("15:04"),
			m.End().Format("15:04"),
			m.Title,
			m.Location,
			strings.Join(m.Attendees, ", "))
	}
	return tw.Flush()
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
