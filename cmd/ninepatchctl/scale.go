package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgood7123/android-9-patch/internal/format"
	"github.com/mgood7123/android-9-patch/internal/pngchunk"
	"github.com/mgood7123/android-9-patch/ninepatch"
)

var (
	scaleX      float32
	scaleY      float32
	scaleWidth  int
	scaleHeight int
	scaleOutput string
)

func init() {
	cmd := newScaleCmd()
	cmd.Flags().Float32Var(&scaleX, "sx", 0, "Horizontal scale factor (default: width / image width)")
	cmd.Flags().Float32Var(&scaleY, "sy", 0, "Vertical scale factor (default: height / image height)")
	cmd.Flags().IntVar(&scaleWidth, "width", 0, "Scaled image width (default: image width * sx, rounded)")
	cmd.Flags().IntVar(&scaleHeight, "height", 0, "Scaled image height (default: image height * sy, rounded)")
	cmd.Flags().StringVarP(&scaleOutput, "output", "o", "", "Write a copy of the file with the rescaled npTc chunk")
	rootCmd.AddCommand(cmd)
}

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale <file.9.png>",
		Short: "Compute the 9-patch geometry of a resized image",
		Long: `The scale command rescales the padding and stretch divs of a 9-patch as a
decoder does when it samples the image to a different size. Each axis takes
either a scale factor or a target size; the other is derived from the image
header.

With --output the rescaled chunk replaces npTc in a copy of the file. Pixel
data and the image header are copied unchanged.

Example:
  ninepatchctl scale button.9.png --sx 2 --sy 2
  ninepatchctl scale button.9.png --width 96 --height 48 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(args)
		},
	}
	return cmd
}

type scaleResult struct {
	File   string     `json:"file"`
	ScaleX float32    `json:"sx"`
	ScaleY float32    `json:"sy"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Patch  *patchInfo `json:"patch"`
	Output string     `json:"output,omitempty"`
}

// resolveAxis derives the missing one of factor and size from the original
// image dimension.
func resolveAxis(axis string, factor float32, size int, orig uint32) (float32, int, error) {
	switch {
	case factor == 0 && size == 0:
		return 0, 0, fmt.Errorf("%s: need a scale factor or a target size", axis)
	case factor < 0 || size < 0:
		return 0, 0, fmt.Errorf("%s: scale factor and size must be positive", axis)
	case factor == 0:
		if orig == 0 {
			return 0, 0, fmt.Errorf("%s: image header has no size", axis)
		}
		return float32(size) / float32(orig), size, nil
	case size == 0:
		return factor, int(float32(orig)*factor + 0.5), nil
	default:
		return factor, size, nil
	}
}

func runScale(args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}
	p := img.peeker
	if !p.HasPatch() {
		return errors.New("no 9-patch chunk to scale")
	}

	sx, width, err := resolveAxis("x", scaleX, scaleWidth, img.header.Width)
	if err != nil {
		return err
	}
	sy, height, err := resolveAxis("y", scaleY, scaleHeight, img.header.Height)
	if err != nil {
		return err
	}
	printVerbose("Scaling by %.4f x %.4f to %d x %d\n", sx, sy, width, height)
	p.Scale(sx, sy, width, height)

	encoded, err := p.Encode()
	if err != nil {
		return err
	}
	patch := p.Patch()
	res := scaleResult{
		File: img.path, ScaleX: sx, ScaleY: sy, Width: width, Height: height,
		Patch: &patchInfo{
			Size:        p.PatchSize(),
			XDivs:       patch.XDivs(),
			YDivs:       patch.YDivs(),
			Colors:      patch.Colors(),
			Padding:     p.Padding(),
			Fingerprint: fmt.Sprintf("%016x", ninepatch.Fingerprint(encoded)),
		},
	}

	if scaleOutput != "" {
		if err := writeScaled(img.path, scaleOutput, encoded); err != nil {
			return err
		}
		res.Output = scaleOutput
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("\nScaled 9-Patch (%d x %d):\n", width, height)
	printInfo("  X divs: %v\n", res.Patch.XDivs)
	printInfo("  Y divs: %v\n", res.Patch.YDivs)
	printInfo("  Padding: left=%d right=%d top=%d bottom=%d\n",
		res.Patch.Padding.Left, res.Patch.Padding.Right, res.Patch.Padding.Top, res.Patch.Padding.Bottom)
	if res.Output != "" {
		printInfo("  Written to %s\n", res.Output)
	}
	return nil
}

func writeScaled(src, dst string, payload []byte) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := pngchunk.Replace(raw, format.TagNinePatch, payload)
	if err != nil {
		return fmt.Errorf("failed to rewrite %s: %w", src, err)
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	opts.Log().Info("wrote rescaled 9-patch", "file", dst, "bytes", len(out))
	return nil
}
