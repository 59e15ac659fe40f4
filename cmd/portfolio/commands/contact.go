package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/pkg/config"
	"github.com/n3il-kb/portfolio/pkg/site"
)

// NewContactCommand creates the mailto URL command.
func NewContactCommand(g *Globals) *cobra.Command {
	var (
		action string
		fields []string
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Print the mailto URL for a contact message",
		Example: `  portfolio contact --field subject="Hello there" --field body="Nice site!"
  # mailto:nbango@ucsd.edu?subject=Hello%20there&body=Nice%20site!`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if action == "" {
				cfg, err := config.LoadConfig(g.ConfigPath)
				if err != nil {
					return err
				}

				action = cfg.Site.ContactAction
			}

			parsed, err := parseFields(fields)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), site.MailtoURL(action, parsed))

			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "form action (overrides site.contact_action)")
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "form field as name=value, repeatable and ordered")

	return cmd
}

func parseFields(raw []string) ([]site.Field, error) {
	fields := make([]site.Field, 0, len(raw))

	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: field %q is not name=value", errUsage, r)
		}

		fields = append(fields, site.Field{Name: name, Value: value})
	}

	return fields, nil
}
