// Package cmd is for command line interactions with the sonicat tools
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "sonicat",
	Short: `Simulate DNA sequencing sample prep on FASTA sequences.
Inject per-base errors with "mutate" or shear sequences into reads with "shear"`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
