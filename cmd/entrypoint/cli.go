package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"entrypoint/internal/catalog"
	"entrypoint/internal/config"
	"entrypoint/internal/errors"
	"entrypoint/internal/notify"
	"entrypoint/internal/ops"
	"entrypoint/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cat *catalog.Catalog, cfg *config.Config, notifier *notify.Notifier, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "entrypoint",
		Usage:   "Internship catalog engine",
		Version: Version,
		Commands: []*cli.Command{
			listCmd(cat),
			getCmd(cat),
			createCmd(cat, notifier),
			shareCmd(cat),
			universitiesCmd(cfg),
			exportCmd(cat, baseDir),
			serveCmd(cat, cfg, notifier),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// listCmd creates the list command.
func listCmd(cat *catalog.Catalog) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Filter the internship catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Free-text query"},
			&cli.StringFlag{Name: "universities", Usage: "Comma-separated university IDs"},
			&cli.StringFlag{Name: "cities", Usage: "Comma-separated cities"},
			&cli.StringFlag{Name: "directions", Usage: "Comma-separated directions"},
			&cli.StringFlag{Name: "formats", Usage: "Comma-separated work formats"},
			&cli.StringFlag{Name: "starts", Usage: "Comma-separated start tokens (season labels or ASAP)"},
			&cli.StringFlag{Name: "stack", Usage: "Comma-separated technology tags"},
			&cli.Float64Flag{Name: "gpa", Usage: "Student GPA, 0-10"},
			&cli.IntFlag{Name: "course", Usage: "Student course, 1-4"},
			&cli.IntFlag{Name: "salary-min", Usage: "Salary floor in rubles"},
			&cli.IntFlag{Name: "limit", Usage: "Page size"},
			&cli.IntFlag{Name: "offset", Usage: "Page offset"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ListInput{
				Query:        c.String("query"),
				Universities: splitList(c.String("universities")),
				Cities:       splitList(c.String("cities")),
				Directions:   splitList(c.String("directions")),
				Formats:      splitList(c.String("formats")),
				Starts:       splitList(c.String("starts")),
				Stack:        splitList(c.String("stack")),
				Limit:        c.Int("limit"),
				Offset:       c.Int("offset"),
			}
			if c.IsSet("gpa") {
				gpa := c.Float64("gpa")
				input.ProfileGPA = &gpa
			}
			if c.IsSet("course") {
				course := c.Int("course")
				input.ProfileCourse = &course
			}
			if c.IsSet("salary-min") {
				floor := c.Int("salary-min")
				input.SalaryMin = &floor
			}

			output, err := ops.List(cat, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// getCmd creates the get command.
func getCmd(cat *catalog.Catalog) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch one internship posting by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("id argument is required"))
			}
			output, err := ops.Get(cat, ops.GetInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// createCmd creates the create command.
func createCmd(cat *catalog.Catalog, notifier *notify.Notifier) *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Submit a new internship posting",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "company", Required: true, Usage: "Company name"},
			&cli.StringFlag{Name: "title", Required: true, Usage: "Role title"},
			&cli.StringFlag{Name: "direction", Value: "backend", Usage: "Direction"},
			&cli.StringFlag{Name: "paid", Value: "Paid", Usage: "Paid or Unpaid"},
			&cli.StringFlag{Name: "format", Value: "Onsite", Usage: "Work format"},
			&cli.StringFlag{Name: "city", Value: "Moscow", Usage: "City"},
			&cli.Float64Flag{Name: "salary-min", Usage: "Salary floor in rubles"},
			&cli.Float64Flag{Name: "course-min", Usage: "Minimum eligible course"},
			&cli.Float64Flag{Name: "course-max", Usage: "Maximum eligible course"},
			&cli.Float64Flag{Name: "min-gpa", Usage: "Minimum GPA"},
			&cli.StringFlag{Name: "stack", Usage: "Comma-separated technology tags"},
			&cli.StringFlag{Name: "pitch", Usage: "One-line pitch (read from stdin when omitted)"},
			&cli.StringFlag{Name: "telegram", Required: true, Usage: "Telegram contact link"},
			&cli.StringFlag{Name: "email", Required: true, Usage: "Contact email"},
		},
		Action: func(c *cli.Context) error {
			pitch := c.String("pitch")
			if pitch == "" && !isTerminal() {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return outputError(errors.NewInvalidRequest("failed to read pitch from stdin"))
				}
				pitch = strings.TrimSpace(string(data))
			}
			input := ops.CreateInput{
				Company:    c.String("company"),
				RoleTitle:  c.String("title"),
				Direction:  c.String("direction"),
				Paid:       c.String("paid"),
				Format:     c.String("format"),
				City:       c.String("city"),
				Stack:      c.String("stack"),
				ShortPitch: pitch,
				Telegram:   c.String("telegram"),
				Email:      c.String("email"),
			}
			if c.IsSet("salary-min") {
				v := c.Float64("salary-min")
				input.SalaryMin = &v
			}
			if c.IsSet("course-min") {
				v := c.Float64("course-min")
				input.CourseMin = &v
			}
			if c.IsSet("course-max") {
				v := c.Float64("course-max")
				input.CourseMax = &v
			}
			if c.IsSet("min-gpa") {
				v := c.Float64("min-gpa")
				input.MinGPA = &v
			}

			output, err := ops.Create(cat, input)
			if err != nil {
				return outputError(err)
			}
			notifier.PostingCreated(&output.Posting)
			return outputJSON(output)
		},
	}
}

// shareCmd creates the share command.
func shareCmd(cat *catalog.Catalog) *cli.Command {
	return &cli.Command{
		Name:      "share",
		Usage:     "Build a shareable link for a posting",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "base-url", Usage: "Base URL to prepend to the fragment"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("id argument is required"))
			}
			output, err := ops.Share(cat, ops.ShareInput{
				ID:      c.Args().First(),
				BaseURL: c.String("base-url"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// universitiesCmd creates the universities command.
func universitiesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "universities",
		Usage:     "Fuzzy-match a university name",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "Maximum candidates"},
		},
		Action: func(c *cli.Context) error {
			limit := c.Int("limit")
			if limit == 0 && cfg != nil {
				limit = cfg.SuggestCap
			}
			output, err := ops.MatchUniversities(ops.MatchUniversitiesInput{
				Query: strings.Join(c.Args().Slice(), " "),
				Limit: limit,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(cat *catalog.Catalog, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the catalog to a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Target file path"},
			&cli.BoolFlag{Name: "user-only", Usage: "Export only user-created postings"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(cat, ops.ExportInput{
				Path:     c.String("path"),
				UserOnly: c.Bool("user-only"),
				BaseDir:  baseDir,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(cat *catalog.Catalog, cfg *config.Config, notifier *notify.Notifier) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Listen address (defaults to config)"},
			&cli.IntFlag{Name: "port", Usage: "Listen port (defaults to config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.Bind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.Port
			if c.IsSet("port") {
				port = c.Int("port")
			}
			srv := web.NewServer(cat, cfg, notifier, Version, bind, port)
			return web.Run(srv)
		},
	}
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if bErr, ok := err.(*errors.BoardError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", bErr.Code, bErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
