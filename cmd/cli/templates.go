package cli

import (
	"fmt"
	"strings"

	"github.com/autoflow/autoflow/pkg/templates"
	"github.com/spf13/cobra"
)

func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in automation templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			library := templates.NewLibrary()

			for _, template := range library.All() {
				fmt.Printf("%s (%s)\n", template.Name, template.ID)
				fmt.Printf("  Category: %s\n", template.Category)
				fmt.Printf("  Tags: %s\n", strings.Join(template.Tags, ", "))
				fmt.Printf("  %s\n\n", template.Description)
			}

			return nil
		},
	}

	return cmd
}
