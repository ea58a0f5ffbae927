package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vendorhub/internal/app"
)

var (
	baseURL string
	home    string
	verbose bool

	appCtx *app.Wire
	cfg    app.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:           "vendorhub",
		Short:         "Vendor onboarding client for the VendorHub API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if home != "" {
				cfg.Home = home
			}
			if verbose || cfg.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default $VENDORHUB_BASE_URL)")
	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.vendorhub)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		fieldsCmd(),
		validateCmd(),
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		recoverCmd(),
		healthCmd(),
	)
	return root.Execute()
}
