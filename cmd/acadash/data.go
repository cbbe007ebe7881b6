package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/acadash/internal/scheduler"
	"github.com/verte-zerg/acadash/internal/stats"
	"github.com/verte-zerg/acadash/internal/statsui"
	"github.com/verte-zerg/acadash/internal/store"
	"github.com/verte-zerg/acadash/internal/tips"
)

var (
	exportOut  string
	resetYes   bool
	tipsPath   string
	tipsRandom bool
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the schedule and focus report",
		Args:  cobra.NoArgs,
		RunE:  withApp(runStatsCmd),
	}
	cmd.Flags().IntVar(&gridStartHour, "start-hour", stats.DefaultGridStartHour, "first hour of the weekly grid")
	cmd.Flags().IntVar(&gridEndHour, "end-hour", stats.DefaultGridEndHour, "last hour of the weekly grid")
	cmd.Flags().IntVar(&statsWidth, "width", 0, "bar width (default: fit terminal)")
	return cmd
}

func runStatsCmd(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
	startHour, endHour, err := gridRange(cmd, a.cfg)
	if err != nil {
		return err
	}
	width := barWidth(cmd, a.cfg)
	st := a.state()
	now := time.Now()

	w := os.Stdout
	countdown := scheduler.NextClass(st.Schedules, now)
	if _, err := fmt.Fprintf(w, "Next class: %s (%s)\n\n", countdown.Label(), countdown.Clock()); err != nil {
		return err
	}
	if err := stats.RenderSummary(w, a.engine.Stats()); err != nil {
		return err
	}
	if err := stats.RenderWeeklyBars(w, stats.WeeklyBars(st.Schedules, st.Settings.FirstDay), width); err != nil {
		return err
	}
	if err := stats.RenderSubjects(w, stats.SubjectBreakdown(st.Schedules), width); err != nil {
		return err
	}
	cellWidth := (stats.TerminalWidth() - 7) / 7
	if err := stats.RenderGrid(w, a.engine.Grid(startHour, endHour), cellWidth); err != nil {
		return err
	}
	return printLastSaved(ctx, w, a.store)
}

func printLastSaved(ctx context.Context, w io.Writer, st *store.Store) error {
	saved, ok, err := st.UpdatedAt(ctx, store.StateKey)
	if err != nil {
		return fmt.Errorf("failed to read save time: %w", err)
	}
	if !ok {
		_, err = fmt.Fprintln(w, "\nLast saved: never")
		return err
	}
	_, err = fmt.Fprintf(w, "\nLast saved: %s\n", saved.Local().Format("2006-01-02 15:04"))
	return err
}

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Open the interactive metrics viewer",
		Args:  cobra.NoArgs,
		RunE: withApp(func(_ context.Context, a *app, cmd *cobra.Command, _ []string) error {
			startHour, endHour, err := gridRange(cmd, a.cfg)
			if err != nil {
				return err
			}
			if !stats.IsTerminal(os.Stdout) {
				return fmt.Errorf("metrics needs a terminal; use: acadash stats")
			}
			opts := statsui.Options{GridStartHour: startHour, GridEndHour: endHour}
			if err := statsui.Run(a.state(), opts); err != nil {
				return fmt.Errorf("failed to run metrics TUI: %w", err)
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&gridStartHour, "start-hour", stats.DefaultGridStartHour, "first hour of the weekly grid")
	cmd.Flags().IntVar(&gridEndHour, "end-hour", stats.DefaultGridEndHour, "last hour of the weekly grid")
	return cmd
}

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Focus session records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "log",
		Short: "Print recent focus sessions and totals",
		Args:  cobra.NoArgs,
		RunE: withApp(func(_ context.Context, a *app, _ *cobra.Command, _ []string) error {
			m := a.state().Metrics
			if _, err := fmt.Printf("Sessions %d  Total %s  Streak %d\n\n",
				m.FocusSessions, stats.FocusTotalText(m.TotalFocusMinutes), m.Streak); err != nil {
				return err
			}
			return stats.RenderHistory(os.Stdout, m)
		}),
	})
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of all data",
		Args:  cobra.NoArgs,
		RunE: withApp(func(_ context.Context, a *app, _ *cobra.Command, _ []string) error {
			if exportOut == "-" {
				return store.Export(os.Stdout, a.state())
			}
			path := exportOut
			if path == "" {
				path = store.ExportFileName(time.Now())
			}
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create backup: %w", err)
			}
			if err := store.Export(file, a.state()); err != nil {
				if cerr := file.Close(); cerr != nil {
					// Best-effort close on encode failure.
					_ = cerr
				}
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout (default acadash_backup_YYYY-MM-DD.json)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON backup over the current data (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			var (
				payload []byte
				err     error
			)
			if args[0] == "-" {
				payload, err = io.ReadAll(os.Stdin)
			} else {
				payload, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}
			if err := a.engine.Import(ctx, payload); err != nil {
				return err
			}
			fmt.Println("Backup imported")
			return nil
		}),
	}
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			if !resetYes {
				return fmt.Errorf("this deletes every class, note, photo and metric; rerun with --yes")
			}
			if err := a.engine.Reset(ctx); err != nil {
				return err
			}
			fmt.Println("All data deleted")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion")
	return cmd
}

func newTipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Print study tips",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list := loadTips(tipsPath)
			if tipsRandom {
				if tip, ok := tips.NewRotator(list).Next(); ok {
					fmt.Println(tip)
				}
				return nil
			}
			for _, tip := range list {
				fmt.Println(tip)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tipsPath, "file", "", "tips file (default: built-in or ~/.config/acadash/tips.txt)")
	cmd.Flags().BoolVar(&tipsRandom, "random", false, "print one random tip")
	return cmd
}

func readAllStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
