package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify AFFILIATION...",
	Short: "Classify affiliation strings (keyword-tuning aid)",
	Long: `Classify prints the academic/non-academic verdict for each affiliation
string given on the command line, using the same keyword matching as fetch.
Useful for tuning a custom keyword file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("keywords", "", "YAML file with custom classifier keyword lists")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cls, err := buildClassifier(cmd)
	if err != nil {
		return err
	}

	for _, aff := range args {
		verdict := "academic"
		if cls.IsNonAcademic(aff) {
			verdict = "non-academic"
		}
		fmt.Printf("%-13s %s\n", verdict, aff)
	}
	return nil
}
