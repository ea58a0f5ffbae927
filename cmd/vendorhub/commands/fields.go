package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vendorhub/internal/schema"
)

// fields: print the registration schema for form tooling.
func fieldsCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the registration field schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range schema.Sections() {
				if section != "" && s.String() != section {
					continue
				}
				fmt.Printf("[%s]\n", s)
				for _, f := range schema.FieldsOf(s) {
					required := ""
					if f.Required {
						required = "  required"
					}
					fmt.Printf("  %-32s %-8s%s\n", f.Name, f.Kind, required)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "limit to one section (company, address, bank, categorization, compliance, agreements)")
	return cmd
}
