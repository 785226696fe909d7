package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
)

// Asset command flags
var (
	assetIn     string
	assetOut    string
	assetWidths []int
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Prepare app artwork",
	Long: `Prepare artwork for the Wayfarer app.

Destination artwork is committed once at full resolution; the scale
command produces the per-density variants the app bundles.`,
}

var assetsScaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Scale artwork into per-width variants",
	Long: `Scale an image into one PNG per requested width.

The source may be PNG or JPEG. Each variant keeps the source aspect
ratio and is resampled with a Catmull-Rom kernel, which stays sharp
when downscaling photographs. Output files are named after the source
with a width suffix (e.g. seoul_640w.png).`,
	Example: `  # Produce the default density variants next to the source
  wayfarerctl assets scale --in artwork/seoul.png

  # Explicit widths into a separate directory
  wayfarerctl assets scale --in artwork/seoul.png --out build/assets --widths 320,640`,
	RunE: runAssetsScale,
}

func init() {
	assetsScaleCmd.Flags().StringVar(&assetIn, "in", "", "Source image (PNG or JPEG)")
	assetsScaleCmd.Flags().StringVar(&assetOut, "out", "", "Output directory (default: the source's directory)")
	assetsScaleCmd.Flags().IntSliceVar(&assetWidths, "widths", []int{320, 640, 960}, "Target widths in pixels")
	_ = assetsScaleCmd.MarkFlagRequired("in")

	assetsCmd.AddCommand(assetsScaleCmd)
}

func runAssetsScale(cmd *cobra.Command, args []string) error {
	outDir := assetOut
	if outDir == "" {
		outDir = filepath.Dir(assetIn)
	}

	written, err := scaleAsset(assetIn, outDir, assetWidths)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

// scaleAsset decodes the source image and writes one PNG per width into
// outDir. It returns the paths written, in the order of widths.
func scaleAsset(inPath, outDir string, widths []int) ([]string, error) {
	for _, width := range widths {
		if width < 1 {
			return nil, fmt.Errorf("invalid width %d: must be at least 1", width)
		}
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no widths given")
	}

	f, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", inPath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Base(inPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var written []string
	for _, width := range widths {
		dst := scaleImage(src, width)

		outPath := filepath.Join(outDir, fmt.Sprintf("%s_%dw.png", base, width))
		out, err := os.Create(outPath)
		if err != nil {
			return written, fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		if err := png.Encode(out, dst); err != nil {
			out.Close()
			return written, fmt.Errorf("failed to encode %s: %w", outPath, err)
		}
		if err := out.Close(); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		written = append(written, outPath)
	}
	return written, nil
}

// scaleImage resamples src to the given width, preserving aspect ratio.
func scaleImage(src image.Image, width int) *image.RGBA {
	bounds := src.Bounds()
	height := (bounds.Dy()*width + bounds.Dx()/2) / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
