package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes Markdown documentation for the command tree.
var docsCmd = &cobra.Command{
	Use:    "docs [directory]",
	Short:  "Generate Markdown docs for the sonicat commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}

		if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
