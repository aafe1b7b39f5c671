package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/csheth/pagescout/internal/config"
	"github.com/csheth/pagescout/internal/document"
	"github.com/csheth/pagescout/internal/extract"
	"github.com/csheth/pagescout/internal/input"
	"github.com/csheth/pagescout/internal/logging"
	"github.com/csheth/pagescout/internal/search"
	"github.com/csheth/pagescout/internal/state"
	"github.com/csheth/pagescout/internal/tui"
)

var version = "dev"

const description = `pagescout opens a PDF or plain text document in the terminal and shows it one page at a time. ` +
	`Text files use form feed characters to separate pages. A document may also be an http or https URL, ` +
	`which is downloaded once and kept in a local cache.

Inside the viewer use the arrow keys to turn pages and scroll, g to jump to a page, / to search, ` +
	`F and B to move between matches, and q to quit.`

// flags collects command line values. Config file values apply first and
// explicitly set flags win.
type flags struct {
	ConfigPath    string
	LogLevel      string
	LogFile       string
	CaseSensitive bool
	NoAltScreen   bool
	Page          int
}

func newApp() *cli.Command {
	var (
		f         = &flags{}
		cfg       *config.Config
		logCloser func()
	)

	return &cli.Command{
		Name:        "pagescout",
		Usage:       "Read and search PDF and text documents in the terminal",
		UsageText:   "pagescout [options] <document>",
		Description: wordwrap.String(description, 80),
		Version:     version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.yaml or .toml)",
				Sources:     cli.EnvVars("PAGESCOUT_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, disabled)",
				Sources:     cli.EnvVars("PAGESCOUT_LOG_LEVEL"),
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <cache-dir>/pagescout/pagescout.log)",
				Sources:     cli.EnvVars("PAGESCOUT_LOG_FILE"),
				Destination: &f.LogFile,
			},
			&cli.BoolFlag{
				Name:        "case-sensitive",
				Usage:       "match search queries case-sensitively",
				Destination: &f.CaseSensitive,
			},
			&cli.BoolFlag{
				Name:        "no-alt-screen",
				Usage:       "draw in the main screen buffer instead of the alternate screen",
				Destination: &f.NoAltScreen,
			},
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page to open first (1-based)",
				Destination: &f.Page,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			loaded, err := config.Load(f.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			applyFlags(c, f, loaded)
			cfg = loaded

			logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("expected exactly one document. Run 'pagescout --help' for usage")
			}
			return view(ctx, c.Args().First(), cfg, f)
		},
		After: func(context.Context, *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(c *cli.Command, f *flags, cfg *config.Config) {
	if c.IsSet("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if c.IsSet("log-file") {
		cfg.Log.File = f.LogFile
	}
	if c.IsSet("case-sensitive") {
		cfg.Search.CaseSensitive = f.CaseSensitive
	}
	if c.IsSet("no-alt-screen") {
		alt := !f.NoAltScreen
		cfg.Viewer.AltScreen = &alt
	}
}

func view(ctx context.Context, source string, cfg *config.Config, f *flags) error {
	pages, err := extract.Pages(ctx, source, extract.Options{})
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("failed to load document")
		return fmt.Errorf("open document: %w", err)
	}

	store := document.New(extract.Title(source), pages, document.Options{TabWidth: cfg.Viewer.TabWidth})
	viewState := state.New(store)
	if f.Page > 0 {
		viewState.GotoPage(f.Page - 1)
	}
	ctrl := input.New(viewState, search.Options{CaseSensitive: cfg.Search.CaseSensitive})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.Viewer.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(ctrl, tui.Config{Theme: cfg.Theme}), opts...)

	log.Info().
		Str("source", source).
		Int("pages", store.PageCount()).
		Int("start_page", viewState.Page()+1).
		Msg("viewer started")

	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("viewer stopped with error")
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pagescout:", err)
		os.Exit(1)
	}
}
