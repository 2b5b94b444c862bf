package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hmarchant/retint/internal/colour"
	"github.com/hmarchant/retint/internal/scheme"
)

var (
	// Translate command flags
	translatePalette  string
	translateOutput   string
	translateName     string
	translateSkipKeys []string
	translateIndent   int
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate <scheme.json>",
	Short: "Translate a colour scheme to match a palette",
	Long: `Translate a colour scheme so every colour in it becomes the nearest
colour of the supplied palette.

The scheme is a JSON object of arbitrary nesting whose string values hold
colours in rgb()/rgba() notation. The palette is a JSON array of hex colour
strings ("#rrggbb" or "#aarrggbb"). Matching uses Euclidean distance in RGB
space; alpha is preserved on parse but ignored for matching. Key order in
the output mirrors the input.

Subtrees under skipped keys (default: meta) are copied verbatim without
colour interpretation, at any nesting depth.

Examples:
  # Translate a KiCad colour scheme onto a palette
  retint translate user.json -p palette.json -o translated.json

  # Name the resulting scheme (stored under meta.name)
  retint translate user.json -p palette.json -n "Gruvbox Dark" -o out.json

  # Skip additional non-colour subtrees
  retint translate theme.json -p palette.json --skip-keys meta,fonts

  # Print to stdout with 4-space indentation
  retint translate user.json -p palette.json --indent 4`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	addTranslateFlags(translateCmd.Flags())
	translateCmd.MarkFlagRequired("palette")
}

// addTranslateFlags registers the translate command's flags on a flag set.
func addTranslateFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&translatePalette, "palette", "p", "", "palette file: JSON array of hex colour strings (required)")
	fs.StringVarP(&translateOutput, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&translateName, "name", "n", "", "name to store under the scheme's meta.name")
	fs.StringSliceVar(&translateSkipKeys, "skip-keys", []string{"meta"}, "keys whose subtrees are copied without translation")
	fs.IntVar(&translateIndent, "indent", 2, "indentation width for the output JSON")
}

// runTranslate executes the translate command.
func runTranslate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	schemePath := args[0]

	data, err := os.ReadFile(schemePath)
	if err != nil {
		return fmt.Errorf("reading scheme: %w", err)
	}

	original := scheme.NewObject()
	if err := json.Unmarshal(data, original); err != nil {
		return fmt.Errorf("parsing scheme: %w", err)
	}
	logger.Debug("scheme loaded", "path", schemePath, "keys", original.Len())

	palette, err := loadPalette(translatePalette)
	if err != nil {
		return err
	}
	logger.Debug("palette decoded", "path", translatePalette, "colours", palette.Len())

	translated, err := scheme.Translate(original, palette, translateSkipKeys)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	if translateName != "" {
		injectName(translated, translateName)
	}

	out, err := json.MarshalIndent(translated, "", strings.Repeat(" ", translateIndent))
	if err != nil {
		return fmt.Errorf("encoding translated scheme: %w", err)
	}

	if translateOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(translateOutput, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing translated scheme: %w", err)
	}
	logger.Debug("translated scheme written", "path", translateOutput)
	return nil
}

// loadPalette reads a JSON array of hex colour strings and decodes it into a
// palette. Decoding happens once here; translation only reads the result.
func loadPalette(path string) (*colour.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}

	var specs []string
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("palette must be a JSON array of hex colour strings: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("palette %s contains no colours", path)
	}

	palette, err := colour.FromHexStrings(specs)
	if err != nil {
		return nil, fmt.Errorf("decoding palette: %w", err)
	}
	return palette, nil
}

// injectName stores name under the scheme's meta block, creating the block
// if absent. The block is cloned first so shared subtrees stay untouched.
func injectName(translated *scheme.Object, name string) {
	meta := scheme.NewObject()
	if v, ok := translated.Get("meta"); ok {
		if obj, ok := v.(*scheme.Object); ok {
			meta = obj.Clone()
		}
	}
	meta.Set("name", name)
	translated.Set("meta", meta)
}
