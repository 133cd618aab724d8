package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/go4d/internal/app"
	"github.com/philipparndt/go4d/pkg/config"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	shapeName  string
	zoom       float64
	width      int
	height     int
	seed       uint64
	frozen     bool
)

var rootCmd = &cobra.Command{
	Use:   "go4d",
	Short: "Interactive 4D polytope viewer",
	Long: `go4d renders rotating four-dimensional polytopes (hypercube, 5-cell, 16-cell,
24-cell, 8-cell) projected down to the screen through two perspective stages.
Without a subcommand it opens the interactive viewer.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg, configPath)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Settings file (.yaml, .yml or .toml)")
	flags.StringVarP(&shapeName, "shape", "s", "", "Initial shape: "+strings.Join(shapeNames(), ", "))
	flags.Float64VarP(&zoom, "zoom", "z", 0, "Zoom factor (0.1 to 10)")
	flags.IntVar(&width, "width", 0, "Viewport width in pixels")
	flags.IntVar(&height, "height", 0, "Viewport height in pixels")
	flags.Uint64Var(&seed, "seed", 0, "Seed for the random startup rates (0 = time based)")
	flags.BoolVar(&frozen, "frozen", false, "Start with free rotation turned off")

	_ = rootCmd.RegisterFlagCompletionFunc("shape", completeShapes)
}

// loadConfig reads the config file if one was given and applies the flags
// that were set explicitly on top of it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("shape") {
		cfg.Shape = shapeName
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("frozen") {
		cfg.FreeRotation = !frozen
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func shapeNames() []string {
	shapes := polytope.Shapes()
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = strings.ToLower(s.String())
	}
	return names
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
