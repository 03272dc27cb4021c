package main

import (
	"encoding/hex"
	"errors"

	"github.com/spf13/cobra"
)

var dumpHost bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpHost, "host", false, "Dump the decoded record in host byte order")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.9.png>",
		Short: "Hex dump the npTc chunk",
		Long: `The dump command prints the npTc payload as stored in the file, or with
--host the record after decoding: flag set, offsets recomputed and values
in host byte order.

Example:
  ninepatchctl dump button.9.png
  ninepatchctl dump button.9.png --host`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}
	raw := img.rawPatch
	if dumpHost {
		raw = img.peeker.Patch().Bytes()
	}
	if raw == nil {
		return errors.New("no 9-patch chunk")
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   img.path,
			"offset": img.rawPatchOffset,
			"host":   dumpHost,
			"hex":    hex.EncodeToString(raw),
		})
	}
	printVerbose("npTc payload at 0x%x\n", img.rawPatchOffset)
	printInfo("%s", hex.Dump(raw))
	return nil
}
