package cmd

import (
	"github.com/spf13/cobra"

	"primerd/config"
	"primerd/design"
)

// troubleshootCmd represents the troubleshoot command
var troubleshootCmd = &cobra.Command{
	Use:   "troubleshoot",
	Short: "Design primers, relaxing constraints until some are found",
	Long: `Design primer pairs with the protocol defaults, retrying with
progressively relaxed constraints when nothing is found:

1. GC clamp of 2 (the default)
2. GC clamp reduced to 1
3. GC clamp reduced to 0
4. Tm range widened by ±1°C

The printed result names every relaxation step that was applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.New()
		if err != nil {
			return err
		}

		seq, err := readSeq()
		if err != nil {
			return err
		}

		numReturn, err := cmd.Flags().GetInt("num-return")
		if err != nil {
			return err
		}

		result, err := design.Troubleshoot(conf.Oracle(), seq, numReturn)
		if err != nil {
			return err
		}

		return printJSON(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(troubleshootCmd)

	troubleshootCmd.Flags().StringVarP(&seqArg, "seq", "s", "", "DNA sequence with a [n] placeholder for the target region")
	troubleshootCmd.Flags().StringVarP(&seqPathArg, "seq-file", "f", "", "path to a file holding the sequence")
	troubleshootCmd.Flags().IntP("num-return", "n", 5, "maximum number of primer pairs to return")
}
