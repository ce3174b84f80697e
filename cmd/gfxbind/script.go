package main

import (
	"fmt"
	"os"

	"github.com/milk9111/gfxbind/script"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagResult string

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "Run a tengo layout script",
	Long: `Runs a tengo script with the configured regions bound to the global
"regions" and the builtin "geom" module importable. The rect map named by
--result is printed as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}

		res, err := script.NewRuntime().Run(cmd.Context(), args[0], src, map[string]any{
			"regions": cfg.Regions,
		})
		if err != nil {
			return err
		}
		out, err := res.Regions(flagResult)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(out)
	},
}

func init() {
	scriptCmd.Flags().StringVar(&flagResult, "result", "regions", "Global holding the rect map to print")
}
