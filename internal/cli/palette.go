package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hmarchant/retint/internal/colour"
)

var (
	// Palette command flags
	palettePreview bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <palette.json>",
	Short: "Preview a palette file in the terminal",
	Long: `Preview a palette file: each colour is listed with its hex code and
rgb() notation, plus a truecolor swatch when stdout is a terminal.

Examples:
  # Preview a palette with swatches
  retint palette gruvbox.json

  # Force swatches when piping through a pager
  retint palette gruvbox.json --preview`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().BoolVar(&palettePreview, "preview", false, "force colour swatches even when stdout is not a terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	palette, err := loadPalette(args[0])
	if err != nil {
		return err
	}

	showSwatches := palettePreview || term.IsTerminal(int(os.Stdout.Fd()))

	header := color.New(color.Bold).Sprintf("Palette with %d colours", palette.Len())
	fmt.Fprintln(cmd.OutOrStdout(), header)

	for i, c := range palette.Colours {
		label := color.New(color.Faint).Sprintf("%2d:", i+1)
		if showSwatches {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s\n", label, colour.FormatWithSwatch(c, 8), c.RGBString())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s %s\n", label, c.Hex(), c.RGBString())
		}
	}
	return nil
}
