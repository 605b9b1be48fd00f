package metric

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSamples(t *testing.T) {
	series := &common.TimingSeries{
		Sizes:   []int{25, 50},
		Elapsed: []time.Duration{time.Second, 2 * time.Second},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSamples(&buf, series))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "index,size,elapsed_seconds", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "1,50,"), lines[2])
}

func TestExportSamples(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	series := quadraticSeries()

	path, err := ExportSamples(dir, "nested", series)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := ReadSamples(f)
	require.NoError(t, err)
	require.Len(t, records, series.Len())
	for i, rec := range records {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, series.Sizes[i], rec.Size)
		assert.InDelta(t, series.Elapsed[i].Seconds(), rec.ElapsedSeconds, 1e-12)
	}
}
