package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgood7123/android-9-patch/internal/pngchunk"
	"github.com/mgood7123/android-9-patch/internal/testutil"
	"github.com/mgood7123/android-9-patch/ninepatch"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var out bytes.Buffer
	_, err = out.ReadFrom(r)
	require.NoError(t, err)
	return out.String(), fnErr
}

// decodeJSON unmarshals captured output into a generic map
func decodeJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output is not JSON: %s", output)
	return result
}

func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	scaleX, scaleY, scaleWidth, scaleHeight, scaleOutput = 0, 0, 0, 0, ""
	dumpHost = false
	chunksDepth = 4
}

// samplePNG is a 20x10 image with two x divs, two y divs and 9 colors.
func samplePNG(t *testing.T) string {
	t.Helper()
	colors := []uint32{1, 1, 1, 1, 0, 1, 1, 1, 0xff00ff00}
	patch := testutil.FilePayload(t, []int32{4, 12}, []int32{2, 6}, colors, ninepatch.Padding{Left: 1, Right: 2, Top: 3, Bottom: 4})
	lb := testutil.HostWords(1, 2, 3, 4)
	return testutil.WritePNG(t, 20, 10, pngchunk.Encode("npTc", patch), pngchunk.Encode("npLb", lb))
}
