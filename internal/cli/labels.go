package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// labelsCmd prints the label vocabulary accepted during clarification
var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the labels the classifier can produce",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, l := range cfg.LabelSet() {
			fmt.Fprintln(out, l)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}
