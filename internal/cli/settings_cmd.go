package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/lucasferreira/webquest/internal/cli/formatter"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(app.Settings.Get(context.Background())))
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app), newSettingsEditCmd(app))
	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var theme, difficulty string
	var sound, animations, hints bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings via flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.SettingsPatch
			if cmd.Flags().Changed("theme") {
				t := domain.Theme(theme)
				patch.Theme = &t
			}
			if cmd.Flags().Changed("difficulty") {
				d := domain.Difficulty(difficulty)
				patch.Difficulty = &d
			}
			if cmd.Flags().Changed("sound") {
				patch.SoundEnabled = &sound
			}
			if cmd.Flags().Changed("animations") {
				patch.AnimationsEnabled = &animations
			}
			if cmd.Flags().Changed("hints") {
				patch.HintsEnabled = &hints
			}

			updated, err := app.Settings.Update(context.Background(), patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Color theme: light, dark or system")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Quiz difficulty: easy, medium or hard")
	cmd.Flags().BoolVar(&sound, "sound", true, "Enable sound effects")
	cmd.Flags().BoolVar(&animations, "animations", true, "Enable animations")
	cmd.Flags().BoolVar(&hints, "hints", true, "Show explanations for wrong quiz answers")
	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Change settings interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("no terminal: use `webquest settings set` instead")
			}

			ctx := context.Background()
			current := app.Settings.Get(ctx)

			theme := current.Theme
			difficulty := current.Difficulty
			sound := current.SoundEnabled
			animations := current.AnimationsEnabled
			hints := current.HintsEnabled

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[domain.Theme]().
						Title("Theme").
						Options(
							huh.NewOption("System", domain.ThemeSystem),
							huh.NewOption("Light", domain.ThemeLight),
							huh.NewOption("Dark", domain.ThemeDark),
						).
						Value(&theme),
					huh.NewSelect[domain.Difficulty]().
						Title("Difficulty").
						Options(
							huh.NewOption("Easy", domain.DifficultyEasy),
							huh.NewOption("Medium", domain.DifficultyMedium),
							huh.NewOption("Hard", domain.DifficultyHard),
						).
						Value(&difficulty),
					huh.NewConfirm().Title("Sound effects?").Value(&sound),
					huh.NewConfirm().Title("Animations?").Value(&animations),
					huh.NewConfirm().Title("Quiz hints?").Value(&hints),
				),
			).WithTheme(webquestHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return fmt.Errorf("running settings form: %w", err)
			}

			updated, err := app.Settings.Update(ctx, domain.SettingsPatch{
				Theme:             &theme,
				Difficulty:        &difficulty,
				SoundEnabled:      &sound,
				AnimationsEnabled: &animations,
				HintsEnabled:      &hints,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(updated))
			return nil
		},
	}
}
