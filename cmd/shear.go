package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mys721tx/sonicat/config"
	"github.com/mys721tx/sonicat/internal/sonicat"
)

// shearCmd breaks the input sequences into short overlapping fragments and
// replicates each fragment to a randomly drawn sequencing depth
var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Sonicate FASTA sequences in silico",
	Long: `Slide a fixed-length window across every sequence in the input and emit
each window a random number of times, simulating the uneven coverage of
sonicated, shotgun-sequenced DNA. The copy count of each window is drawn
from a Poisson distribution whose mean is the average read depth.

Sequences shorter than the read length produce no fragments. Emitted
fragments are named seq_1, seq_2, ... in emission order.`,
	Run: sonicat.ShearCmd,
}

// set flags
func init() {
	rootCmd.AddCommand(shearCmd)

	shearCmd.Flags().StringP("in", "i", "", "Input FASTA file, defaults to stdin")
	shearCmd.Flags().StringP("out", "o", "", "Output FASTA file, defaults to stdout")
	shearCmd.Flags().Float64P("depth", "d", config.DefaultDepth, "Average read depth")
	shearCmd.Flags().IntP("length", "l", config.DefaultLength, "Read length")

	// bind the sampling parameters to viper
	viper.BindPFlag("depth", shearCmd.Flags().Lookup("depth"))
	viper.BindPFlag("length", shearCmd.Flags().Lookup("length"))
}
