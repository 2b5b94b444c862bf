package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmarchant/retint/internal/colour"
	"github.com/hmarchant/retint/internal/image"
)

var (
	// Extract command flags
	extractColours int
	extractOutput  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a palette from an image",
	Long: `Extract a colour palette from an image using k-means clustering.

The result is a JSON array of hex colour strings, ready to be used as the
--palette argument of the translate command.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 colours (default) from a wallpaper
  retint extract wallpaper.jpg

  # Extract 16 colours and save them as a palette file
  retint extract -c 16 -o palette.json wallpaper.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 8, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	imagePath := args[0]

	if err := image.ValidatePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	img, err := image.Load(imagePath)
	if err != nil {
		return err
	}

	palette, err := colour.FromImage(img, extractColours)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Debug("palette extracted", "colours", palette.Len())

	out, err := json.MarshalIndent(palette.Hex(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding palette: %w", err)
	}

	if extractOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(extractOutput, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing palette: %w", err)
	}
	logger.Debug("palette written", "path", extractOutput)
	return nil
}
