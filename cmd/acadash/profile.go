package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/acadash/internal/engine"
	"github.com/verte-zerg/acadash/internal/model"
)

var (
	profileName     string
	profileUni      string
	profileMajor    string
	profileSemester string
	profileNIM      string
	profileMotto    string
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Set your display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			if err := a.engine.Login(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Printf("Welcome, %s %s\n", a.state().Avatar, a.state().User)
			return nil
		}),
	}
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Args:  cobra.NoArgs,
		RunE:  withApp(runProfileCmd),
	}
	cmd.Flags().StringVar(&profileName, "name", "", "display name")
	cmd.Flags().StringVar(&profileUni, "uni", "", "university")
	cmd.Flags().StringVar(&profileMajor, "major", "", "major")
	cmd.Flags().StringVar(&profileSemester, "semester", "", "semester")
	cmd.Flags().StringVar(&profileNIM, "nim", "", "student id number")
	cmd.Flags().StringVar(&profileMotto, "motto", "", "motto")
	return cmd
}

func runProfileCmd(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
	p := a.state().Profile
	fields := []struct {
		flag   string
		value  string
		target *string
	}{
		{"name", profileName, &p.Name},
		{"uni", profileUni, &p.Uni},
		{"major", profileMajor, &p.Major},
		{"semester", profileSemester, &p.Semester},
		{"nim", profileNIM, &p.NIM},
		{"motto", profileMotto, &p.Motto},
	}
	changed := false
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.target = f.value
			changed = true
		}
	}
	if changed {
		if err := a.engine.SaveProfile(ctx, p); err != nil {
			return err
		}
	}
	st := a.state()
	fmt.Printf("%s %s\n", st.Avatar, orDash(st.User))
	fmt.Printf("  university: %s\n", orDash(st.Profile.Uni))
	fmt.Printf("  major:      %s\n", orDash(st.Profile.Major))
	fmt.Printf("  semester:   %s\n", orDash(st.Profile.Semester))
	fmt.Printf("  nim:        %s\n", orDash(st.Profile.NIM))
	fmt.Printf("  motto:      %s\n", orDash(st.Profile.Motto))
	return nil
}

func newAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar",
		Short: "Cycle to the next avatar",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
			avatar, err := a.engine.CycleAvatar(ctx)
			if err != nil {
				return err
			}
			fmt.Println(avatar)
			return nil
		}),
	}
}

func newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mode [weekday|weekend]",
		Short:     "Show or set the dashboard mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.ModeWeekday), string(model.ModeWeekend)},
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := a.engine.SetMode(ctx, model.Mode(strings.ToLower(args[0]))); err != nil {
					return err
				}
			}
			mode := a.state().Mode
			fmt.Printf("%s: %s\n", mode, model.ModeDescription(mode))
			return nil
		}),
	}
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print all settings",
		Args:  cobra.NoArgs,
		RunE: withApp(func(_ context.Context, a *app, _ *cobra.Command, _ []string) error {
			printSettings(a.state().Settings)
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set morning_time, night_time, first_day, star_intensity, accent, accent2 or a toggle",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			return a.engine.SetSetting(ctx, args[0], args[1])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "toggle <key>",
		Short:     "Flip a notification or auto-theme toggle",
		Args:      cobra.ExactArgs(1),
		ValidArgs: engine.ToggleKeys(),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			on, err := a.engine.ToggleSetting(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s = %t\n", args[0], on)
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "accent <color> <color2>",
		Short: "Set both accent colors",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, _ *cobra.Command, args []string) error {
			return a.engine.SetAccent(ctx, args[0], args[1])
		}),
	})
	return cmd
}

func printSettings(s model.Settings) {
	rows := [][2]string{
		{"notif_class", fmt.Sprintf("%t", s.NotifClass)},
		{"notif_morning", fmt.Sprintf("%t", s.NotifMorning)},
		{"notif_night", fmt.Sprintf("%t", s.NotifNight)},
		{"notif_study", fmt.Sprintf("%t", s.NotifStudy)},
		{"auto_theme", fmt.Sprintf("%t", s.AutoTheme)},
		{"morning_time", s.MorningTime},
		{"night_time", s.NightTime},
		{"first_day", fmt.Sprintf("%d", s.FirstDay)},
		{"star_intensity", fmt.Sprintf("%d", s.StarIntensity)},
		{"accent", s.Accent},
		{"accent2", s.Accent2},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(os.Stdout, "%-15s %s\n", row[0], row[1]); err != nil {
			return
		}
	}
}
