// gfxbind exercises the geometry, shader and input wrappers from the
// command line.
//
// Usage:
//
//	gfxbind rect contains <l> <t> <w> <h> <x> <y>   - Point containment
//	gfxbind rect intersect <rect> <rect>            - Overlap of two rects
//	gfxbind rect convert <l> <t> <w> <h>            - Int/float conversion
//	gfxbind rect encode <l> <t> <w> <h>             - Binary layout as hex
//	gfxbind script <file>                           - Run a tengo layout script
//	gfxbind view                                    - Interactive viewer
//
// Global flags:
//
//	--config <path>     - YAML configuration (default: embedded)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/milk9111/gfxbind/config"
	"github.com/milk9111/gfxbind/logging"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "gfxbind",
	Short:         "Rectangle geometry, shaders and input over ebiten",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logging.SetLogger(logging.New(level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML configuration (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(rectCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(viewCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(flagConfig)
}
