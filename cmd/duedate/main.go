package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mtlprog/duedate/internal/config"
	"github.com/mtlprog/duedate/internal/logger"
	"github.com/mtlprog/duedate/internal/service"
	"github.com/urfave/cli/v2"
)

func main() {
	envLoaded := godotenv.Load(config.EnvFile) == nil

	app := newApp(os.Stdout, os.Stderr, envLoaded)
	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp(out, logOut io.Writer, envLoaded bool) *cli.App {
	return &cli.App{
		Name:      "duedate",
		Usage:     "Calculate issue due dates in working hours (9AM-5PM, Monday-Friday)",
		Writer:    out,
		ErrWriter: logOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "layout",
				Value:   config.DefaultDateLayout,
				Usage:   "Go time layout for parsing and printing instants",
				EnvVars: []string{"DUEDATE_LAYOUT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logOut, logger.ParseLevel(c.String("log-level")))
			slog.Debug("environment loaded", "env_file", config.EnvFile, "found", envLoaded)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "calculate",
				Usage: "Calculate the due date for a submission",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "submit",
						Aliases:     []string{"s"},
						Usage:       "Submission instant, must be during working hours",
						DefaultText: config.DefaultSubmit,
					},
					&cli.Float64Flag{
						Name:        "hours",
						Aliases:     []string{"H"},
						Usage:       "Turnaround in working hours",
						DefaultText: fmt.Sprint(config.DefaultTurnaroundHours),
					},
				},
				Action: runCalculate,
			},
			{
				Name:  "check",
				Usage: "Report whether an instant is inside working hours",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "at",
						Usage:    "Instant to check",
						Required: true,
					},
				},
				Action: runCheck,
			},
			{
				Name:  "next-day",
				Usage: "Print the start of the next working day",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Instant to start from",
						Required: true,
					},
				},
				Action: runNextDay,
			},
		},
		Action: runCalculate,
	}
}

func parseInstant(c *cli.Context, value string) (time.Time, error) {
	layout := c.String("layout")
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q for layout %q: %w", value, layout, err)
	}
	return t, nil
}

func formatInstant(c *cli.Context, t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(c.String("layout")), t.Weekday())
}

func runCalculate(c *cli.Context) error {
	submitValue := config.DefaultSubmit
	if c.IsSet("submit") {
		submitValue = c.String("submit")
	}
	hours := config.DefaultTurnaroundHours
	if c.IsSet("hours") {
		hours = c.Float64("hours")
	}

	submit, err := parseInstant(c, submitValue)
	if err != nil {
		return err
	}

	due, err := service.CalculateDueDate(submit, hours)
	if err != nil {
		return fmt.Errorf("failed to calculate due date: %w", err)
	}

	slog.Info("due date calculated",
		"submit", submit.Format(time.DateTime),
		"turnaround_hours", hours,
		"due", due.Format(time.DateTime),
	)

	fmt.Fprintf(c.App.Writer, "Submit Date: %s\n", formatInstant(c, submit))
	fmt.Fprintf(c.App.Writer, "Turnaround: %s working hours\n", service.FormatHours(hours))
	fmt.Fprintf(c.App.Writer, "Due Date: %s\n", formatInstant(c, due))
	return nil
}

func runCheck(c *cli.Context) error {
	at, err := parseInstant(c, c.String("at"))
	if err != nil {
		return err
	}

	working := service.IsWorkingTime(at)
	slog.Debug("checked instant", "at", at.Format(time.DateTime), "working", working)

	fmt.Fprintf(c.App.Writer, "Instant: %s\n", formatInstant(c, at))
	if !working {
		fmt.Fprintln(c.App.Writer, "Working time: no")
		return nil
	}

	fmt.Fprintln(c.App.Writer, "Working time: yes")
	fmt.Fprintf(c.App.Writer, "Remaining today: %s\n", service.FormatHours(service.RemainingHoursInDay(at)))
	return nil
}

func runNextDay(c *cli.Context) error {
	from, err := parseInstant(c, c.String("from"))
	if err != nil {
		return err
	}

	next := service.NextWorkingDayStart(from)
	slog.Debug("next working day", "from", from.Format(time.DateTime), "next", next.Format(time.DateTime))

	fmt.Fprintf(c.App.Writer, "Next working day starts: %s\n", formatInstant(c, next))
	return nil
}
