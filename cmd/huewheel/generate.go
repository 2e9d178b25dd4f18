// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/huewheel/internal/config"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"github.com/thatcatcamp/huewheel/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate [color]",
	Short: "Generate a palette",
	Long: `Generate a palette from a CSS color name or #hex literal.

Color, scheme and format default to palette.default_color,
palette.default_scheme and output.format from the config.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initConfig())

		p, err := generateFromFlags(cmd, args)
		exitOnError(err)

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = config.GetString("output.format")
		}
		format, err := render.ParseFormat(formatName)
		exitOnError(err)

		out, _ := cmd.Flags().GetString("out")
		exitOnError(writeOutput(out, p, format))
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [color]",
	Short: "Show a palette as colored blocks in the terminal",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initConfig())

		p, err := generateFromFlags(cmd, args)
		exitOnError(err)

		exitOnError(render.Render(os.Stdout, p, render.Terminal))
	},
}

func init() {
	generateCmd.Flags().StringP("scheme", "s", "", "Color scheme (see 'huewheel schemes')")
	generateCmd.Flags().StringP("format", "f", "", "Output format: sass, css, yaml, json, html, terminal, ansi")
	generateCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
	previewCmd.Flags().StringP("scheme", "s", "", "Color scheme (see 'huewheel schemes')")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
}

// generateFromFlags builds the palette for the color argument and the
// --scheme flag, falling back to the configured defaults
func generateFromFlags(cmd *cobra.Command, args []string) (*palette.Palette, error) {
	color := config.GetString("palette.default_color")
	if len(args) > 0 {
		color = args[0]
	}
	scheme, _ := cmd.Flags().GetString("scheme")
	if scheme == "" {
		scheme = config.GetString("palette.default_scheme")
	}
	return palette.Generate(color, scheme)
}

// writeOutput renders p to path, or stdout when path is empty. The file is
// only created once rendering succeeded.
func writeOutput(path string, p *palette.Palette, format render.Format) error {
	if path == "" {
		return render.Render(os.Stdout, p, format)
	}

	out, err := render.String(p, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d colors to %s\n", p.Len(), path)
	return nil
}

