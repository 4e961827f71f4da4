package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbsubmit/internal/localize"
	"github.com/pdiddy/nbsubmit/pkg/types"
)

var localizeCmd = &cobra.Command{
	Use:   "localize",
	Short: "Rewrite a Colab workflow notebook for local execution",
	Long: `Localize drops cells that only make sense in the hosted Colab
environment (repo cloning, credential prompts, dependency installs),
rewrites hosted paths to notebook-relative ones, and prepends an
environment setup cell. The built-in rules can be replaced with --rules.`,
	RunE: runLocalize,
}

func runLocalize(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	rules, _ := cmd.Flags().GetString("rules")

	cfg := types.LocalizeConfig{
		InputPath:  input,
		OutputPath: output,
		RulesPath:  rules,
	}

	return localize.Run(cfg, os.Stdout)
}

func init() {
	localizeCmd.Flags().StringP("input", "i", "", "path to the Colab workflow notebook (.ipynb)")
	localizeCmd.Flags().StringP("output", "o", "local.ipynb", "output notebook path")
	localizeCmd.Flags().String("rules", "", "YAML rules file replacing the built-in skip/rewrite rules")
	localizeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(localizeCmd)
}
