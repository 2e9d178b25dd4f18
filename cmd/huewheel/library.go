// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/huewheel/internal/backup"
	"github.com/thatcatcamp/huewheel/internal/config"
	"github.com/thatcatcamp/huewheel/internal/db"
	"github.com/thatcatcamp/huewheel/internal/library"
	"github.com/thatcatcamp/huewheel/internal/palette"
	"github.com/thatcatcamp/huewheel/internal/render"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage saved palettes",
	Long:  "Save, list, show and delete named palettes",
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name> <color>",
	Short: "Generate a palette and save it under a name",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		scheme, _ := cmd.Flags().GetString("scheme")
		if scheme == "" {
			scheme = config.GetString("palette.default_scheme")
		}

		p, err := palette.Generate(args[1], scheme)
		exitOnError(err)

		saved, err := library.Save(db.GetDB(), args[0], p)
		exitOnError(err)

		fmt.Printf("Palette saved: %s (%s, %d colors)\n", saved.Name, p.Title(), len(saved.Entries))
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		saved, err := library.List(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing palettes: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOLOR\tHEX\tSCHEME\tCREATED")
		for _, s := range saved {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.Name, s.BaseColor, s.BaseHex, s.Scheme, s.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a saved palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		formatName, _ := cmd.Flags().GetString("format")
		if formatName == "" {
			formatName = config.GetString("output.format")
		}
		format, err := render.ParseFormat(formatName)
		exitOnError(err)

		p, err := library.Load(db.GetDB(), args[0])
		exitOnError(err)

		exitOnError(render.Render(os.Stdout, p, format))
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		if err := library.Delete(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting palette: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Palette deleted: %s\n", args[0])
	},
}

var libraryExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a YAML snapshot of the library",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		if len(args) == 0 {
			exitOnError(backup.Export(db.GetDB(), os.Stdout))
			return
		}

		f, err := os.Create(args[0])
		exitOnError(err)
		if err := backup.Export(db.GetDB(), f); err != nil {
			f.Close()
			exitOnError(err)
		}
		exitOnError(f.Close())
		fmt.Fprintf(os.Stderr, "Library exported to %s\n", args[0])
	},
}

var libraryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import palettes from a YAML snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		f, err := os.Open(args[0])
		exitOnError(err)
		defer f.Close()

		imported, skipped, err := backup.Import(db.GetDB(), f)
		exitOnError(err)

		fmt.Printf("Imported %d palettes (%d skipped, name already in use)\n", imported, skipped)
	},
}

var libraryBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a timestamped snapshot into backup.path",
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(initLibraryDB())

		manager := newBackupManager()
		path, err := manager.CreateBackup(db.GetDB())
		exitOnError(err)

		fmt.Printf("Backup written: %s\n", path)
	},
}

// newBackupManager configures a backup manager from backup.path and backup.keep
func newBackupManager() *backup.BackupManager {
	manager := backup.NewBackupManager(expandHome(config.GetString("backup.path")))
	manager.Keep = config.GetInt("backup.keep")
	return manager
}

func init() {
	librarySaveCmd.Flags().StringP("scheme", "s", "", "Color scheme (see 'huewheel schemes')")
	libraryShowCmd.Flags().StringP("format", "f", "", "Output format: sass, css, yaml, json, html, terminal, ansi")

	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryImportCmd)
	libraryCmd.AddCommand(libraryBackupCmd)
	rootCmd.AddCommand(libraryCmd)
}
