// Package cli implements the gridtop command line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridtop/gridtop/internal/config"
	"github.com/gridtop/gridtop/internal/dashboard"
	"github.com/gridtop/gridtop/internal/errors"
	"github.com/gridtop/gridtop/internal/logger"
	"github.com/gridtop/gridtop/internal/metrics"
)

// Persistent and root-command flags
var (
	configFlag   string
	intervalFlag string
	coresFlag    int
	seedFlag     int64
	dotFlag      bool
	noBorderFlag bool
)

// rootCmd launches the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "gridtop",
	Short: "Terminal system monitor dashboard",
	Long: `gridtop renders CPU, memory and disk metrics as a full-screen
terminal dashboard with braille line charts and scrollable tables.

Keyboard shortcuts:
  tab / shift+tab  Cycle widget focus
  up/k, down/j     Move table selection
  Enter            Expand focused widget
  Esc              Collapse / go back
  ?                Show help
  q / Ctrl+C       Quit

Examples:
  gridtop
  gridtop --interval 2s
  gridtop --dot --no-border`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runDashboard(cfg)
	},
}

// Execute runs the root command and prints structured errors on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval (e.g., 1s, 500ms)")
	rootCmd.Flags().IntVar(&coresFlag, "cores", 0, "number of CPU series to simulate")
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for the synthetic metric source")
	rootCmd.Flags().BoolVar(&dotFlag, "dot", false, "use one-dot-per-cell markers instead of braille")
	rootCmd.Flags().BoolVar(&noBorderFlag, "no-border", false, "hide widget borders")
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if intervalFlag != "" {
		parsed, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", intervalFlag),
				"Use a valid duration like 1s, 500ms, or 2s")
		}
		cfg.RefreshInterval = parsed
	}
	if coresFlag > 0 {
		cfg.Cores = coresFlag
	}
	if seedFlag != 0 {
		cfg.Seed = seedFlag
	}
	if dotFlag {
		cfg.DotMarker = true
	}
	if noBorderFlag {
		cfg.ShowBorder = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runDashboard starts the full-screen bubbletea program.
func runDashboard(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Not running in a terminal",
			"gridtop needs an interactive terminal for its full-screen dashboard")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := metrics.NewSynthSource(cfg.Cores, seed)
	log := logger.NewEnvLogger("[dashboard]")

	model := dashboard.NewModel(cfg, source, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Dashboard exited with an error",
			"Check terminal compatibility; set GRIDTOP_DEBUG=1 for details")
	}
	return nil
}
