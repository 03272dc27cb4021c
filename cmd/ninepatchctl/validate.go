package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgood7123/android-9-patch/ninepatch"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.9.png>",
		Short: "Check that a PNG file carries a well-formed 9-patch",
		Long: `The validate command reads every 9-patch chunk of a PNG file and reports
chunks that were skipped because of a bad length, the sentinel flag, or divs
that are not strictly increasing or fall outside the image.

Example:
  ninepatchctl validate button.9.png
  ninepatchctl validate button.9.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]
	printVerbose("Validating: %s\n", path)

	img, err := loadImage(path)
	if err != nil {
		return err
	}
	report := checkImage(img)

	result := map[string]interface{}{
		"file":        path,
		"has_patch":   img.peeker.HasPatch(),
		"valid":       img.peeker.HasPatch() && !report.HasErrors(),
		"diagnostics": report.Diagnostics,
		"summary":     report.Summary,
	}

	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		printInfo("\nValidating %s...\n\n", path)
		tags, groups := report.ByTag()
		for _, tag := range tags {
			printInfo("%s:\n", tag)
			for _, d := range groups[tag] {
				printInfo("  %s\n", d)
			}
		}
		printInfo("\n%d error(s), %d warning(s), %d info\n",
			report.Summary.Errors, report.Summary.Warnings, report.Summary.Info)
		if img.peeker.HasPatch() {
			printInfo("  ✓ 9-patch chunk found\n")
		} else {
			printInfo("  ✗ No usable 9-patch chunk\n")
		}
	}

	if result["valid"] != true {
		return fmt.Errorf("validation failed: %s", path)
	}
	return nil
}

// checkImage extends the peeker's diagnostics with checks that need the image
// size.
func checkImage(img *image) *types.DiagnosticReport {
	report := img.peeker.Diagnostics()
	if img.rawPatch != nil && !ninepatch.IsNinePatchChunk(img.rawPatch) {
		report.Add(types.Diagnostic{
			Severity: types.SevError, Tag: "npTc", Offset: img.rawPatchOffset,
			Message: "chunk is flagged as not a 9-patch",
		})
	}
	p := img.peeker.Patch()
	if p == nil {
		return report
	}
	checkDivs(report, img.rawPatchOffset, "x", p.XDivs(), img.header.Width)
	checkDivs(report, img.rawPatchOffset, "y", p.YDivs(), img.header.Height)
	if n := p.NumColors(); n == 0 {
		report.Add(types.Diagnostic{
			Severity: types.SevInfo, Tag: "npTc", Offset: img.rawPatchOffset,
			Message: "no region colors",
		})
	}
	return report
}

func checkDivs(report *types.DiagnosticReport, offset int, axis string, divs []int32, limit uint32) {
	for i, d := range divs {
		if i > 0 && d <= divs[i-1] {
			report.Add(types.Diagnostic{
				Severity: types.SevWarning, Tag: "npTc", Offset: offset,
				Message: fmt.Sprintf("%s div %d (%d) does not increase", axis, i, d),
			})
		}
		if d < 0 || (limit > 0 && int64(d) > int64(limit)) {
			report.Add(types.Diagnostic{
				Severity: types.SevError, Tag: "npTc", Offset: offset,
				Message:  fmt.Sprintf("%s div %d is outside the image", axis, i),
				Expected: int(limit), Actual: int(d),
			})
		}
	}
}
