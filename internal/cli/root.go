package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command; with no subcommand it starts the
// interactive classification loop.
var rootCmd = &cobra.Command{
	Use:   "labelguard",
	Short: "labelguard - confidence-gated text classification with human fallback",
	Long: `labelguard classifies each line you type with an external model.

When the model is confident (at or above the threshold, 0.80 by default) its
label is accepted. Otherwise you are asked to confirm or correct the label
before it is recorded. Every decision is written to the log file (app.log).

Type 'exit' or 'quit' to leave.`,
	Args:          cobra.NoArgs,
	RunE:          runInteractive,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ErrorMessage returns the text main should print for err, or "" when the
// operator has already seen a message for it.
func ErrorMessage(err error) string {
	if err == nil || errors.Is(err, ErrStartup) {
		return ""
	}
	return err.Error()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "labelguard v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.labelguard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.labelguard")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
