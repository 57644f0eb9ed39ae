package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *cobra.Command {
	root := &cobra.Command{Use: "lv", Short: "Listing valuator client"}
	root.AddCommand(&cobra.Command{
		Use:   "estimate",
		Short: "Estimate a vehicle price",
		Run:   func(*cobra.Command, []string) {},
	})
	return root
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{"markdown", []string{"lv.md", "lv_estimate.md"}},
		{"man", []string{"lv.1", "lv-estimate.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(t.TempDir(), "out")
			require.NoError(t, generate(testTree(), tt.format, dir))

			for _, name := range tt.want {
				_, err := os.Stat(filepath.Join(dir, name))
				assert.NoError(t, err, name)
			}
		})
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := generate(testTree(), "html", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "html"`)
}
