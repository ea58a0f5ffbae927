package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vendorhub/internal/validate"
)

// validate: run the validation engine only; nothing touches the network.
func validateCmd() *cobra.Command {
	var (
		formFile string
		sets     []string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the registration form without submitting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := loadForm(formFile, sets)
			if err != nil {
				return err
			}

			if save {
				if err := appCtx.Drafts.Save(form); err != nil {
					return err
				}
			}

			errs := validate.Validate(form)
			if len(errs) == 0 {
				fmt.Printf("Form is valid (%d field(s) populated).\n", form.Len())
				return nil
			}
			fmt.Println("The form has validation errors:")
			printFieldErrors(errs)
			return fmt.Errorf("%d field(s) need attention", len(errs))
		},
	}

	cmd.Flags().StringVar(&formFile, "form", "", "JSON form file (default: the saved draft)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a field, name=value (repeatable)")
	cmd.Flags().BoolVar(&save, "save", false, "save the assembled form as the draft")
	return cmd
}
