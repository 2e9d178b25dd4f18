// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/huewheel/internal/colors"
	"github.com/thatcatcamp/huewheel/internal/schemes"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List color schemes",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCHEME\tOFFSETS\tDESCRIPTION")
		for _, d := range schemes.List() {
			offsets := make([]string, 0, len(d.Offsets))
			for _, o := range d.Offsets {
				offsets = append(offsets, fmt.Sprintf("%s %+d", o.Name, o.Steps))
			}
			if len(offsets) == 0 {
				offsets = append(offsets, "-")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, strings.Join(offsets, ", "), d.Description)
		}
		w.Flush()
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List known color names",
	Run: func(cmd *cobra.Command, args []string) {
		showHex, _ := cmd.Flags().GetBool("hex")

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range colors.Names() {
			if !showHex {
				fmt.Fprintln(w, name)
				continue
			}
			c, err := colors.FromName(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\n", name, c.Hex())
		}
		w.Flush()
	},
}

func init() {
	colorsCmd.Flags().Bool("hex", false, "Show the hex value of each color")

	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(colorsCmd)
}
