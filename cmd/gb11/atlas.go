package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gb11/internal/atlas"
	"github.com/vovakirdan/gb11/internal/config"
)

var (
	flagPNG      string
	flagPNGScale int
)

var atlasCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Check or export the tile atlas",
	Long: `Builds the tile atlas and reports its size. With --png the atlas is
drawn with the configured palette and written as an enlarged PNG.

Examples:
  gb11 atlas
  gb11 atlas --png atlas.png --png-scale 8
  gb11 atlas --atlas ./my-tiles.yaml`,
	Args: cobra.NoArgs,
	RunE: runAtlas,
}

func init() {
	atlasCmd.Flags().StringVar(&flagPNG, "png", "", "Write the atlas as a PNG to this file")
	atlasCmd.Flags().IntVar(&flagPNGScale, "png-scale", 4, "PNG scale factor")
}

func runAtlas(cmd *cobra.Command, args []string) error {
	a, err := atlas.Load(flagAtlas)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Atlas: %dx%d tiles (%dx%d px), %d required tiles present.\n",
		a.Cols(), a.Rows(), a.Width(), a.Height(), len(atlas.Required))

	if flagPNG == "" {
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	pal := cfg.NewPalette()

	f, err := os.Create(flagPNG)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagPNG, err)
	}
	if err := atlas.WritePNG(f, a, &pal, flagPNGScale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", flagPNG, err)
	}
	fmt.Fprintf(out, "Wrote %s\n", flagPNG)
	return nil
}
