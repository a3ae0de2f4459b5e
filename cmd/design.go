package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"primerd/config"
	"primerd/design"
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design primer pairs for a sequence with a [n] target marker",
	Long: `Design PCR primer pairs flanking the [n]-marked position of a sequence.

The sequence is cleaned of its marker and handed to primer3 with the lab
protocol constraints (sizes, Tm band, GC clamp). Pairs come back ranked by
primer3's penalty, best first, and are printed as JSON. A single search is
made; use "primerd troubleshoot" to relax constraints automatically when
nothing satisfies them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.New()
		if err != nil {
			return err
		}

		seq, err := readSeq()
		if err != nil {
			return err
		}

		result, err := design.Design(conf.Oracle(), seq, conf.Params())
		if err != nil {
			return err
		}

		return printJSON(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&seqArg, "seq", "s", "", "DNA sequence with a [n] placeholder for the target region")
	designCmd.Flags().StringVarP(&seqPathArg, "seq-file", "f", "", "path to a file holding the sequence")

	designCmd.Flags().Int("size-min", 20, "minimum primer size in bp")
	designCmd.Flags().Int("size-opt", 25, "optimal primer size in bp")
	designCmd.Flags().Int("size-max", 30, "maximum primer size in bp")
	designCmd.Flags().Float64("tm-min", 64.0, "minimum melting temperature in °C")
	designCmd.Flags().Float64("tm-opt", 65.0, "optimal melting temperature in °C")
	designCmd.Flags().Float64("tm-max", 66.0, "maximum melting temperature in °C")
	designCmd.Flags().Int("gc-clamp", 2, "required G/C bases at each primer's 3' end")
	designCmd.Flags().IntP("num-return", "n", 5, "maximum number of primer pairs to return")

	// Bind the parameters to viper
	viper.BindPFlag("design.size-min", designCmd.Flags().Lookup("size-min"))
	viper.BindPFlag("design.size-opt", designCmd.Flags().Lookup("size-opt"))
	viper.BindPFlag("design.size-max", designCmd.Flags().Lookup("size-max"))
	viper.BindPFlag("design.tm-min", designCmd.Flags().Lookup("tm-min"))
	viper.BindPFlag("design.tm-opt", designCmd.Flags().Lookup("tm-opt"))
	viper.BindPFlag("design.tm-max", designCmd.Flags().Lookup("tm-max"))
	viper.BindPFlag("design.gc-clamp", designCmd.Flags().Lookup("gc-clamp"))
	viper.BindPFlag("design.num-return", designCmd.Flags().Lookup("num-return"))
}

// printJSON writes a result to the command's stdout, indented.
func printJSON(cmd *cobra.Command, result *design.Result) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
