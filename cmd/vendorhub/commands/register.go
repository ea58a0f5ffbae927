package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vendorhub/internal/domain"
)

// register: validate the form and submit it to the public registration
// endpoint. On confirmed success the saved draft is discarded.
func registerCmd() *cobra.Command {
	var (
		formFile string
		sets     []string
		keep     bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Validate and submit the vendor registration form",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := loadForm(formFile, sets)
			if err != nil {
				return err
			}

			res := appCtx.Registration.Submit(cmd.Context(), form)
			switch res.State {
			case domain.Succeeded:
				fmt.Println("Registration submitted successfully.")
				fmt.Printf("  reference: %s\n", res.Ref)
				if code, ok := res.Body["vendor_code"].(string); ok {
					fmt.Printf("  vendor code: %s\n", code)
				}
				if !keep {
					if err := appCtx.Drafts.Clear(); err != nil {
						return err
					}
				}
				return nil
			case domain.Failed:
				if res.Kind == domain.KindValidation {
					fmt.Println("The form has validation errors:")
					printFieldErrors(res.FieldErrors)
					return fmt.Errorf("%d field(s) need attention", len(res.FieldErrors))
				}
				return fmt.Errorf("registration %s: %s", res.Kind, res.Detail)
			default:
				return fmt.Errorf("unexpected submission state %s", res.State)
			}
		},
	}

	cmd.Flags().StringVar(&formFile, "form", "", "JSON form file (default: the saved draft)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a field, name=value (repeatable)")
	cmd.Flags().BoolVar(&keep, "keep-draft", false, "do not clear the draft on success")
	return cmd
}
