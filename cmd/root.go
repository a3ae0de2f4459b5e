// Package cmd is for command line interactions with the primerd application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "primerd",
	Short: `Design PCR primer pairs around a [n]-marked target position.
Sequences are searched with primer3 and constraints are relaxed
automatically when no primers satisfy them`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().String("primer3", "primer3_core", "path to the primer3_core executable")
	rootCmd.PersistentFlags().String("thermo-params", "", "path to primer3's thermodynamic parameter folder")

	viper.BindPFlag("primer3.path", rootCmd.PersistentFlags().Lookup("primer3"))
	viper.BindPFlag("primer3.thermo-params", rootCmd.PersistentFlags().Lookup("thermo-params"))
}
