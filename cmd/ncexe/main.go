// Command ncexe is an interactive terminal viewer for ELF and Mach-O
// executables (spec.md §1). It wires the Configuration loader, the
// Executable Registry, and the screen stack together behind a single
// cobra root command, grounded on dcosson-h2/internal/cmd's RunE shape and
// brianmcjilton-nnav/cmd/nnav/main.go's tea.NewProgram wiring sequence.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ncexe/internal/config"
	"ncexe/internal/exe"
	"ncexe/internal/theme"
	"ncexe/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ncexe:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var showNotExe bool
	var themeName string

	cmd := &cobra.Command{
		Use:   "ncexe <path> [path...]",
		Short: "Interactive viewer for ELF and Mach-O executable headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg = cfg.Merge(themeName, showNotExe)

			files, err := openAll(args)
			if err != nil {
				return err
			}
			defer closeAll(files)

			colors := theme.Get(cfg.Theme)
			root := exe.FileListScreen(files, cfg.ShowNotExe, colors)
			if root.Region.Len() == 0 {
				return fmt.Errorf("no files of interest")
			}

			p := tea.NewProgram(ui.NewRootModel(root), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file path")
	cmd.Flags().BoolVarP(&showNotExe, "show-notexe", "s", false, "include non-executable files in the file list")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "color theme (default \"dark\")")

	return cmd
}

// openAll opens every path via the registry. Per spec.md §4.2, a bad
// individual file never aborts the batch — it becomes a NotExecutable
// entry — so this only returns an error for something outside that
// contract (none currently reachable; kept for symmetry with exe.Open).
func openAll(paths []string) ([]*exe.MappedExecutable, error) {
	files := make([]*exe.MappedExecutable, 0, len(paths))
	for _, p := range paths {
		f, err := exe.Open(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func closeAll(files []*exe.MappedExecutable) {
	for _, f := range files {
		f.Close()
	}
}
