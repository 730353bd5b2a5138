package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gridtop/gridtop/internal/config"
	"github.com/gridtop/gridtop/internal/errors"
)

var initForce bool

// initCmd creates the global config file interactively.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the gridtop config file",
	Long: `Initialize the gridtop configuration file.

Creates ~/.config/gridtop/config.yaml with interactive prompts for the
refresh interval, chart markers and widget chrome.

Examples:
  gridtop init
  gridtop init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
}

// initCommand runs the interactive wizard and writes the config file.
func initCommand(force bool) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set HOME and try again")
	}
	configPath := filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	interval := cfg.RefreshInterval.String()
	marker := "braille"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Refresh interval").
				Description("How often metrics refresh").
				Options(
					huh.NewOption("500ms", "500ms"),
					huh.NewOption("1s (default)", "1s"),
					huh.NewOption("2s", "2s"),
					huh.NewOption("5s", "5s"),
				).
				Value(&interval),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chart marker").
				Description("Braille markers plot at sub-cell resolution").
				Options(
					huh.NewOption("braille (default)", "braille"),
					huh.NewOption("dot", "dot"),
				).
				Value(&marker),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Draw widget borders?").
				Value(&cfg.ShowBorder),
			huh.NewConfirm().
				Title("Show scroll position on tables?").
				Value(&cfg.ShowScrollIndex),
			huh.NewConfirm().
				Title("Leave a gap row under table headers?").
				Value(&cfg.TableGap),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	cfg.RefreshInterval, _ = time.ParseDuration(interval)
	cfg.DotMarker = marker == "dot"

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}

// writeConfig marshals the config to YAML and writes it, creating the
// config directory if needed. Durations are written as strings ("1s") so
// the file stays hand-editable.
func writeConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(map[string]interface{}{
		"refresh_interval":  cfg.RefreshInterval.String(),
		"time_window":       cfg.TimeWindow.String(),
		"dot_marker":        cfg.DotMarker,
		"show_border":       cfg.ShowBorder,
		"show_scroll_index": cfg.ShowScrollIndex,
		"table_gap":         cfg.TableGap,
		"left_legend":       cfg.LeftLegend,
		"cores":             cfg.Cores,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+path)
	}
	return nil
}
