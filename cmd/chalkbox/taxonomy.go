package main

import (
	"fmt"

	"github.com/jonathan/chalkbox/internal/skills"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print or check the skill taxonomy",
	Long: `Prints the effective taxonomy (built-in or --taxonomy) in the on-disk YAML format.
With --validate, checks a taxonomy file against the schema instead.`,
	RunE: runTaxonomy,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize SKILL...",
	Short: "Show the canonical name each skill maps to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalize,
}

var taxonomyValidate string

func init() {
	taxonomyCmd.Flags().StringVar(&taxonomyValidate, "validate", "", "Path to a taxonomy file to validate")
	taxonomyCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if taxonomyValidate != "" {
		t, err := skills.LoadTaxonomy(taxonomyValidate)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s: valid (%d skills, match mode %s)\n", taxonomyValidate, t.Len(), t.Mode())
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	t, err := cfg.LoadTaxonomy()
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode taxonomy: %w", err)
	}
	return enc.Close()
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	t, err := cfg.LoadTaxonomy()
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, arg := range args {
		if _, err := fmt.Fprintf(out, "%s => %s\n", arg, t.Normalize(arg)); err != nil {
			return err
		}
	}
	return nil
}
