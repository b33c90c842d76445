package toolutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := StatusPrinter{File: &buf, Padding: 6}
	p.Section("bench")
	p.Print("p50", "1ms")
	p.Print("toolongkey", 2)
	require.Equal(t, "bench:\n   p50=1ms\ntoolongkey=2\n", buf.String())
}

func TestReadYaml(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "c.yml")
	require.NoError(t, os.WriteFile(file, []byte("size: 3\n"), 0o644))

	var dest struct {
		Size int `json:"size"`
	}
	require.NoError(t, ReadYaml(&dest, file))
	require.Equal(t, 3, dest.Size)

	require.NoError(t, os.WriteFile(file, []byte("other: 3\n"), 0o644))
	require.Error(t, ReadYaml(&dest, file))
	require.Error(t, ReadYaml(&dest, filepath.Join(dir, "missing.yml")))
}
