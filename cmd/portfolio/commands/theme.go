package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/pkg/plotpage"
	"github.com/n3il-kb/portfolio/pkg/site"
)

// NewThemeCommand creates the color scheme preference command.
func NewThemeCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light dark|light|dark]",
		Short: "Show or set the color scheme",
		Long: `Show the stored color scheme, or store a new one.

The scheme is one of "light dark" (Automatic), "light" or "dark"; labels
are accepted too. The next build uses it for every page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := g.prefsPath()
			if err != nil {
				return err
			}

			prefs, err := site.LoadPreferences(path)
			if err != nil && len(args) == 0 {
				return err
			}

			out := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintf(out, "%s (%s)\n", prefs.ColorScheme.Label(), prefs.ColorScheme)

				return nil
			}

			theme, err := plotpage.ParseTheme(args[0])
			if err != nil {
				return err
			}

			prefs.ColorScheme = theme

			err = prefs.Save(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "color scheme set to %s (%s)\n", theme.Label(), theme)

			return nil
		},
	}
}
