package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootFlags struct {
	configFile string
	logLevel   string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "openloop",
		Short:         "OpenLoop multi-account bandwidth sharing bot",
		Long:          "openloop registers accounts, keeps their session tokens fresh and shares bandwidth for every account on a fixed interval, completing available missions along the way.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "version", "help":
				return nil
			}

			wired, err := wireApp(wireOptions{
				configFile: flags.configFile,
				logLevel:   flags.logLevel,
				quiet:      flags.quiet,
				logOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "path to an openloop.toml config file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and errors, no spinner")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newSetupCmd(app, flags),
		newTokensCmd(app, flags),
		newAccountCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
