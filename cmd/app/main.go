package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/jot/internal/config"
	"github.com/akyairhashvil/jot/internal/database"
	"github.com/akyairhashvil/jot/internal/limit"
	"github.com/akyairhashvil/jot/internal/tui"
	"github.com/akyairhashvil/jot/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("jot needs an interactive terminal")

type options struct {
	max            int
	words          bool
	placeholder    string
	placeholderSet bool
	dbPath         string
	theme          string
	noBell         bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Write short notes under a character or word limit",
		Long: `jot opens a single-line editor that refuses edits past a fixed limit.
The counter under the input turns yellow at half the limit and red at the limit.

Key bindings:
  Enter   Save the note
  Ctrl+L  Clear the input
  Ctrl+T  Cycle theme
  Esc     Quit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.placeholderSet = cmd.Flags().Changed("placeholder")
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			return run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", defaultDBPath(), "path to the notes database")
	root.Flags().IntVar(&opts.max, "max", config.DefaultCharacterLimit, "maximum number of units")
	root.Flags().BoolVar(&opts.words, "words", false, "limit words instead of characters")
	root.Flags().StringVar(&opts.placeholder, "placeholder", "", "placeholder shown while the input is empty")
	root.Flags().StringVar(&opts.theme, "theme", "", "color theme (default, dracula)")
	root.Flags().BoolVar(&opts.noBell, "no-bell", false, "do not ring the terminal bell when the limit is hit")

	root.AddCommand(newExportCmd(opts))
	return root
}

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.pdf]",
		Short: "Export saved notes to a PDF report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultReportPath(time.Now())
			if len(args) == 1 {
				path = args[0]
			}
			ctx := cmd.Context()
			db, err := database.Open(ctx, opts.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := tui.GeneratePDFReport(ctx, db, path)
			if err != nil {
				return err
			}
			absPath, _ := filepath.Abs(path)
			fmt.Fprintf(cmd.OutOrStdout(), "PDF report with %d notes generated: %s\n", n, absPath)
			return nil
		},
	}
}

func run(ctx context.Context, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logCloser, err := util.SetupLogger(filepath.Join(filepath.Dir(opts.dbPath), config.LogFile), config.AppName)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logCloser.Close()

	if err := os.MkdirAll(filepath.Dir(opts.dbPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, opts.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	input := buildInput(opts, os.Stderr)
	model := tui.NewAppModel(ctx, db, input)
	if opts.theme != "" && !tui.SetTheme(opts.theme) {
		util.Logger().Warn("unknown theme", "theme", opts.theme)
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func buildInput(opts *options, bellOut io.Writer) tui.LimitedInput {
	var notifier limit.Notifier = limit.NopNotifier{}
	if !opts.noBell {
		notifier = tui.NewBellNotifier(bellOut)
	}
	var kind limit.Kind = limit.ByCharacter{N: opts.max}
	if opts.words {
		kind = limit.ByWord{N: opts.max}
	}
	input := tui.NewLimitedInput(opts.placeholder, kind, notifier)
	if opts.placeholderSet {
		input = input.WithPlaceholder(opts.placeholder)
	}
	return input
}

func defaultDBPath() string {
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

func defaultReportPath(now time.Time) string {
	name := fmt.Sprintf("notes_%s.pdf", now.Format("2006-01-02"))
	return filepath.Join(util.ReportsDir(config.AppName), name)
}
