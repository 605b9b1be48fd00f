package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/eth-easl/analyzer/pkg/driver"
	mc "github.com/eth-easl/analyzer/pkg/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepExportRoundTrip(t *testing.T) {
	req, err := common.Validator{}.Validate(common.RawRequest{Algorithm: "binary", MaxSize: "500", Step: "100"})
	require.NoError(t, err)

	series, err := driver.NewDriver(nil).RunSweep(req)
	require.NoError(t, err)

	path, err := mc.ExportSamples(filepath.Join(t.TempDir(), "out"), req.Algorithm.Key, series)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := mc.ReadSamples(f)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i, rec := range records {
		assert.Equal(t, (i+1)*100, rec.Size)
		assert.GreaterOrEqual(t, rec.ElapsedSeconds, 0.0)
	}
}
