package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/acadash/internal/schedule"
	"github.com/verte-zerg/acadash/internal/stats"
)

var (
	className     string
	classLecturer string
	classDay      string
	classRoom     string
	classStart    string
	classEnd      string
	classSKS      int
	classColor    string

	classListDay string
)

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage the weekly class schedule",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring class",
		Args:  cobra.NoArgs,
		RunE:  withApp(runClassAdd),
	}
	addCmd.Flags().StringVar(&className, "name", "", "class name (required)")
	addCmd.Flags().StringVar(&classLecturer, "lecturer", "", "lecturer")
	addCmd.Flags().StringVar(&classDay, "day", "", "weekday: 0-6 (0=Sunday) or a name like mon")
	addCmd.Flags().StringVar(&classRoom, "room", "", "room")
	addCmd.Flags().StringVar(&classStart, "start", "", "start time HH:MM")
	addCmd.Flags().StringVar(&classEnd, "end", "", "end time HH:MM")
	addCmd.Flags().IntVar(&classSKS, "sks", 0, "credit units (default 2)")
	addCmd.Flags().StringVar(&classColor, "color", "", "hex color like #0ea5e9")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a class (notes and photos are kept)",
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(runClassRm),
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List classes by day",
		Args:  cobra.NoArgs,
		RunE:  withApp(runClassLs),
	}
	lsCmd.Flags().StringVar(&classListDay, "day", "", "only this weekday (0-6 or name)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a class with its note and photos",
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(runClassShow),
	}

	cmd.AddCommand(addCmd, rmCmd, lsCmd, showCmd)
	return cmd
}

func runClassAdd(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
	day, err := parseDay(classDay)
	if err != nil {
		return err
	}
	in := schedule.ClassInput{
		Name:     className,
		Lecturer: classLecturer,
		Day:      day,
		Room:     classRoom,
		Start:    classStart,
		End:      classEnd,
		Color:    classColor,
	}
	if cmd.Flags().Changed("sks") {
		sks := classSKS
		in.CreditUnits = &sks
	}
	entry, err := a.engine.AddClass(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s on %s %s-%s (%s)\n", entry.Name, stats.DayName(entry.Day), entry.Start, entry.End, entry.ID)
	return nil
}

func runClassRm(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
	id := args[0]
	entry, ok := a.engine.Schedule().Get(id)
	if !ok {
		logErrf("no class with id %s\n", id)
		return nil
	}
	if err := a.engine.RemoveClass(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", entry.Name)
	return nil
}

func runClassLs(_ context.Context, a *app, _ *cobra.Command, _ []string) error {
	days := stats.OrderedDays(a.state().Settings.FirstDay)
	if classListDay != "" {
		day, err := parseDay(classListDay)
		if err != nil {
			return err
		}
		days = []int{day}
	}
	for _, day := range days {
		classes := a.engine.Schedule().ListByDay(day)
		if len(classes) == 0 && classListDay == "" {
			continue
		}
		if err := stats.RenderDay(os.Stdout, day, classes, a.state().Notes); err != nil {
			return err
		}
	}
	if len(a.state().Schedules) == 0 && classListDay == "" {
		fmt.Println("No classes yet. Add one with: acadash class add --name ... --day mon --start 08:00 --end 09:40")
	}
	return nil
}

func runClassShow(_ context.Context, a *app, _ *cobra.Command, args []string) error {
	repo := a.engine.Schedule()
	c, ok := repo.Get(args[0])
	if !ok {
		return fmt.Errorf("no class with id %s", args[0])
	}
	fmt.Printf("%s\n", c.Name)
	fmt.Printf("  day:      %s\n", stats.DayName(c.Day))
	fmt.Printf("  time:     %s-%s\n", c.Start, c.End)
	fmt.Printf("  lecturer: %s\n", orDash(c.Lecturer))
	fmt.Printf("  room:     %s\n", orDash(c.Room))
	fmt.Printf("  sks:      %d\n", c.CreditUnits)
	fmt.Printf("  color:    %s\n", c.Color)
	fmt.Printf("  photos:   %d\n", len(repo.Photos(c.ID)))
	if note := repo.Note(c.ID); note != "" {
		fmt.Printf("\n%s\n", note)
	}
	return nil
}

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Per-class notes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <class-id> <text>",
		Short: "Replace the note of a class (use - to read stdin)",
		Args:  cobra.MinimumNArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if text == "-" {
				raw, err := readAllStdin()
				if err != nil {
					return err
				}
				text = raw
			}
			return a.engine.SetNote(ctx, args[0], text)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <class-id>",
		Short: "Print the note of a class",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(_ context.Context, a *app, _ *cobra.Command, args []string) error {
			if !a.engine.Schedule().HasNote(args[0]) {
				logErrf("no note for %s\n", args[0])
				return nil
			}
			fmt.Println(a.engine.Schedule().Note(args[0]))
			return nil
		}),
	})
	return cmd
}

func newPhotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Per-class photos",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <class-id> <file>...",
		Short: "Attach image files to a class",
		Args:  cobra.MinimumNArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			blobs := make([]string, 0, len(args)-1)
			for _, path := range args[1:] {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				blob, err := schedule.EncodePhoto(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				blobs = append(blobs, blob)
			}
			if err := a.engine.AddPhotos(ctx, args[0], blobs); err != nil {
				return err
			}
			fmt.Printf("Attached %d photo(s)\n", len(blobs))
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "ls <class-id>",
		Short: "List the photos of a class",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(_ context.Context, a *app, _ *cobra.Command, args []string) error {
			photos := a.engine.Schedule().Photos(args[0])
			if len(photos) == 0 {
				fmt.Println("No photos")
				return nil
			}
			for i, p := range photos {
				mime, _, _ := strings.Cut(strings.TrimPrefix(p, "data:"), ";")
				fmt.Printf("%d  %s  %d bytes\n", i+1, mime, len(p))
			}
			return nil
		}),
	})
	return cmd
}

var dayAliases = map[string]int{
	"sun": 0, "sunday": 0, "min": 0, "minggu": 0,
	"mon": 1, "monday": 1, "sen": 1, "senin": 1,
	"tue": 2, "tuesday": 2, "sel": 2, "selasa": 2,
	"wed": 3, "wednesday": 3, "rab": 3, "rabu": 3,
	"thu": 4, "thursday": 4, "kam": 4, "kamis": 4,
	"fri": 5, "friday": 5, "jum": 5, "jumat": 5,
	"sat": 6, "saturday": 6, "sab": 6, "sabtu": 6,
}

// parseDay accepts 0-6 (0=Sunday) or an English or Indonesian day name.
func parseDay(value string) (int, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0, &schedule.ValidationError{Field: "day", Message: "is required"}
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 6 {
			return 0, &schedule.ValidationError{Field: "day", Message: "must be between 0 and 6"}
		}
		return n, nil
	}
	if day, ok := dayAliases[value]; ok {
		return day, nil
	}
	return 0, &schedule.ValidationError{Field: "day", Message: fmt.Sprintf("unknown day %q", value)}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
