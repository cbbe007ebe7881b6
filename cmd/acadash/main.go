// Package main provides the CLI entrypoint for acadash.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/acadash/internal/config"
	"github.com/verte-zerg/acadash/internal/engine"
	"github.com/verte-zerg/acadash/internal/focus"
	"github.com/verte-zerg/acadash/internal/model"
	"github.com/verte-zerg/acadash/internal/scheduler"
	"github.com/verte-zerg/acadash/internal/stats"
	"github.com/verte-zerg/acadash/internal/store"
	"github.com/verte-zerg/acadash/internal/tips"
	"github.com/verte-zerg/acadash/internal/tui"
)

const defaultTipInterval = 30

var (
	dbPath string

	dashTipsPath    string
	dashTipInterval int
	focusPreset     int

	gridStartHour int
	gridEndHour   int
	statsWidth    int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "acadash",
		Short:         "Personal academic dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "path to the SQLite database")
	rootCmd.Flags().StringVar(&dashTipsPath, "tips", "", "tips file (one \"TITLE | description\" per line)")
	rootCmd.Flags().IntVar(&dashTipInterval, "tip-interval", defaultTipInterval, "seconds between tip rotations")
	rootCmd.Flags().IntVar(&focusPreset, "preset", focus.DefaultPresetMinutes, "initial focus preset in minutes")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newAvatarCmd())
	rootCmd.AddCommand(newModeCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newClassCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(newPhotoCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newMetricsCmd())
	rootCmd.AddCommand(newFocusCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newTipsCmd())

	return rootCmd
}

// app bundles the opened store with the engine that owns the loaded state.
type app struct {
	store  *store.Store
	engine *engine.Engine
	cfg    config.FileConfig
}

func (a *app) state() *model.AppState {
	return a.engine.State()
}

func (a *app) close() {
	if cerr := a.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func openApp(cmd *cobra.Command) (*app, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "db", &dbPath, fileCfg.Dashboard.DB)
	applyIntConfig(cmd, "preset", &focusPreset, fileCfg.Focus.Preset)

	st, err := store.Open(expandHome(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	state, err := st.LoadState(cmd.Context())
	if err != nil {
		var perr *store.PersistenceError
		if !errors.As(err, &perr) {
			if cerr := st.Close(); cerr != nil {
				// Best-effort close on load failure.
				_ = cerr
			}
			return nil, err
		}
		logErrf("warning: %v; starting from defaults\n", err)
	}
	theme := model.ThemeDark
	if state.Settings.AutoTheme {
		theme = scheduler.ThemeFor(time.Now())
	}
	eng := engine.New(&state, st, engine.Options{FocusPresetMinutes: focusPreset, Theme: theme})
	return &app{store: st, engine: eng, cfg: fileCfg}, nil
}

func withApp(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd.Context(), a, cmd, args)
	}
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	applyStringConfig(cmd, "tips", &dashTipsPath, a.cfg.Dashboard.Tips)
	applyIntConfig(cmd, "tip-interval", &dashTipInterval, a.cfg.Dashboard.TipInterval)
	if dashTipInterval <= 0 {
		return fmt.Errorf("--tip-interval must be > 0")
	}
	if focusPreset <= 0 {
		return fmt.Errorf("--preset must be > 0")
	}

	opts := tui.Options{
		Tips:        loadTips(dashTipsPath),
		TipInterval: time.Duration(dashTipInterval) * time.Second,
	}
	if !a.engine.LoggedIn() {
		logErrln("no user yet; run: acadash login <name>")
	}
	if err := tui.Run(a.engine, opts); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// loadTips reads the user tips file, falling back to the built-in tips.
func loadTips(path string) []tips.Tip {
	explicit := path != ""
	if !explicit {
		path = config.DefaultTipsPath()
	}
	list, err := tips.Load(expandHome(path))
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			logErrf("failed to load tips from %s: %v; using built-in tips\n", path, err)
		}
		return tips.Builtin()
	}
	return list
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if _, err := config.EnsureConfig(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func gridRange(cmd *cobra.Command, cfg config.FileConfig) (int, int, error) {
	applyIntConfig(cmd, "start-hour", &gridStartHour, cfg.Grid.StartHour)
	applyIntConfig(cmd, "end-hour", &gridEndHour, cfg.Grid.EndHour)
	if gridStartHour < 0 || gridEndHour > 23 || gridStartHour > gridEndHour {
		return 0, 0, fmt.Errorf("grid hours must satisfy 0 <= --start-hour <= --end-hour <= 23")
	}
	return gridStartHour, gridEndHour, nil
}

func barWidth(cmd *cobra.Command, cfg config.FileConfig) int {
	applyIntConfig(cmd, "width", &statsWidth, cfg.Stats.Width)
	if statsWidth > 0 {
		return statsWidth
	}
	return stats.BarWidthFor(stats.TerminalWidth(), 30)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return home + path[1:]
		}
	}
	return path
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
