package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mys721tx/sonicat/config"
	"github.com/mys721tx/sonicat/internal/sonicat"
)

// mutateCmd injects per-base sequencing/PCR errors into the input sequences
var mutateCmd = &cobra.Command{
	Use:   "mutate",
	Short: "Mutate FASTA sequences in silico",
	Long: `Apply per-nucleotide substitution, insertion and deletion errors to every
sequence in the input. Each base draws one of four outcomes (substitute,
insert, delete, keep) with probability proportional to the configured rates,
independently of every other base.

The default rates are the per-base error rates reported in
Brodin et al. 2013, doi:10.1371/journal.pone.0070388`,
	Run: sonicat.MutateCmd,
}

// set flags
func init() {
	rootCmd.AddCommand(mutateCmd)

	mutateCmd.Flags().StringP("in", "i", "", "Input FASTA file, defaults to stdin")
	mutateCmd.Flags().StringP("out", "o", "", "Output FASTA file, defaults to stdout")
	mutateCmd.Flags().Float64P("substitution", "s", config.DefaultSubstitution, "Probability of substitution per nucleotide")
	mutateCmd.Flags().Float64P("insertion", "n", config.DefaultInsertion, "Probability of insertion per nucleotide")
	mutateCmd.Flags().Float64P("deletion", "d", config.DefaultDeletion, "Probability of deletion per nucleotide")

	// bind the rate parameters to viper
	viper.BindPFlag("substitution", mutateCmd.Flags().Lookup("substitution"))
	viper.BindPFlag("insertion", mutateCmd.Flags().Lookup("insertion"))
	viper.BindPFlag("deletion", mutateCmd.Flags().Lookup("deletion"))
}
