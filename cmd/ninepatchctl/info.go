package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgood7123/android-9-patch/internal/pngchunk"
	"github.com/mgood7123/android-9-patch/ninepatch"
	"github.com/mgood7123/android-9-patch/ninepatch/peeker"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.9.png>",
		Short: "Report the 9-patch geometry of a PNG file",
		Long: `The info command reads the 9-patch chunks of a PNG file and displays
the image size, stretch divs, region colors, padding and layout insets.

Example:
  ninepatchctl info button.9.png
  ninepatchctl info button.9.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// patchInfo is the JSON form of a 9-patch.
type patchInfo struct {
	Size        int               `json:"size"`
	XDivs       []int32           `json:"x_divs"`
	YDivs       []int32           `json:"y_divs"`
	Colors      []uint32          `json:"colors"`
	Padding     ninepatch.Padding `json:"padding"`
	Fingerprint string            `json:"fingerprint"`
}

type imageInfo struct {
	File     string         `json:"file"`
	FileSize int            `json:"file_size"`
	Header   pngchunk.IHDR  `json:"header"`
	Chunks   []string       `json:"chunks"`
	Patch    *patchInfo     `json:"patch,omitempty"`
	Insets   *peeker.Insets `json:"insets,omitempty"`
}

func describe(img *image) imageInfo {
	info := imageInfo{File: img.path, FileSize: img.size, Header: img.header, Chunks: img.tags}
	if p := img.peeker.Patch(); p != nil {
		info.Patch = &patchInfo{
			Size:        img.peeker.PatchSize(),
			XDivs:       p.XDivs(),
			YDivs:       p.YDivs(),
			Colors:      p.Colors(),
			Padding:     img.peeker.Padding(),
			Fingerprint: fmt.Sprintf("%016x", ninepatch.Fingerprint(img.rawPatch)),
		}
	}
	if ins, ok := img.peeker.Insets(); ok {
		info.Insets = &ins
	}
	return info
}

func runInfo(args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}
	info := describe(img)

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	printInfo("\n9-Patch Information:\n")
	printInfo("  File: %s (%d bytes)\n", info.File, info.FileSize)
	printInfo("  Image: %d x %d\n", info.Header.Width, info.Header.Height)
	printVerbose("  Chunks: %v\n", info.Chunks)

	if info.Patch == nil {
		printInfo("  No 9-patch chunk\n")
		return nil
	}
	pi := info.Patch
	printInfo("  Chunk size: %d bytes\n", pi.Size)
	printInfo("  X divs (%d): %v\n", len(pi.XDivs), pi.XDivs)
	printInfo("  Y divs (%d): %v\n", len(pi.YDivs), pi.YDivs)
	printInfo("  Colors (%d): %s\n", len(pi.Colors), formatColors(pi.Colors))
	printInfo("  Padding: left=%d right=%d top=%d bottom=%d\n",
		pi.Padding.Left, pi.Padding.Right, pi.Padding.Top, pi.Padding.Bottom)
	printInfo("  Fingerprint: %s\n", pi.Fingerprint)

	if ins := info.Insets; ins != nil {
		printInfo("  Optical insets: %v\n", ins.Optical)
		printInfo("  Outline insets: %v radius=%.2f alpha=%d\n", ins.Outline, ins.OutlineRadius, ins.OutlineAlpha)
	}
	return nil
}

func formatColors(colors []uint32) string {
	out := make([]byte, 0, len(colors)*11)
	for i, c := range colors {
		if i > 0 {
			out = append(out, ' ')
		}
		switch c {
		case ninepatch.NoColor:
			out = append(out, "none"...)
		case ninepatch.TransparentColor:
			out = append(out, "transparent"...)
		default:
			out = fmt.Appendf(out, "#%08x", c)
		}
	}
	return string(out)
}
