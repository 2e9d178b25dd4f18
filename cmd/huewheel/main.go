// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huewheel",
	Short: "huewheel - color palette generator",
	Long: `huewheel derives a full named palette from one base color.

A scheme rotates the base hue to one or more related hues, and every hue is
expanded into a ramp of three tints and three shades. Palettes render as
Sass variables, CSS custom properties, YAML, JSON, an HTML swatch page or
colored terminal output, and can be saved to a local library.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitOnError prints err the way every command reports failures and exits
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
