package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgood7123/android-9-patch/internal/format"
	"github.com/mgood7123/android-9-patch/internal/mmfile"
	"github.com/mgood7123/android-9-patch/internal/pngchunk"
)

var chunksDepth int

func init() {
	cmd := newChunksCmd()
	cmd.Flags().IntVar(&chunksDepth, "depth", 4, "Maximum nesting depth for resource chunks")
	rootCmd.AddCommand(cmd)
}

func newChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <file>",
		Short: "List the chunks of a PNG or compiled resource file",
		Long: `The chunks command lists the chunk stream of a file. PNG files are walked
chunk by chunk with CRC checks. Anything else is treated as compiled Android
resource data (resources.arsc, binary XML): every chunk header is validated
before it is trusted, and container chunks are descended into.

Example:
  ninepatchctl chunks button.9.png
  ninepatchctl chunks resources.arsc --depth 2 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChunks(args)
		},
	}
	return cmd
}

type chunkEntry struct {
	Offset     int    `json:"offset"`
	Type       string `json:"type"`
	HeaderSize int    `json:"header_size,omitempty"`
	Size       int    `json:"size"`
	Depth      int    `json:"depth"`
}

func runChunks(args []string) error {
	path := args[0]
	m, err := mmfile.Open(path, 0, -1, opts)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer m.Close()

	data := m.Data()
	var entries []chunkEntry
	if bytes.HasPrefix(data, pngchunk.Signature) {
		err = pngchunk.Walk(data, func(c pngchunk.Chunk) bool {
			entries = append(entries, chunkEntry{Offset: c.Offset - 8, Type: c.Tag, Size: len(c.Payload)})
			return true
		})
	} else {
		err = format.WalkResTree(data, format.ResContainerTypes, chunksDepth, opts.Log(), func(c format.ResChunk) bool {
			entries = append(entries, chunkEntry{
				Offset: c.Offset, Type: format.ResTypeName(c.Type),
				HeaderSize: int(c.HeaderSize), Size: int(c.Size), Depth: c.Depth,
			})
			return true
		})
	}

	if jsonOut {
		res := map[string]interface{}{"file": path, "chunks": entries}
		if err != nil {
			res["error"] = err.Error()
		}
		if perr := printJSON(res); perr != nil {
			return perr
		}
		return err
	}

	printInfo("\n%-10s  %-24s  %8s  %10s\n", "OFFSET", "TYPE", "HEADER", "SIZE")
	for _, e := range entries {
		printInfo("0x%08x  %-24s  %8d  %10d\n",
			e.Offset, strings.Repeat("  ", e.Depth)+e.Type, e.HeaderSize, e.Size)
	}
	printInfo("\n%d chunk(s)\n", len(entries))
	return err
}
