package test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/eth-easl/analyzer/pkg/chart"
	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/eth-easl/analyzer/pkg/driver"
	mc "github.com/eth-easl/analyzer/pkg/metric"
	"github.com/eth-easl/analyzer/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAlgorithmsSweep(t *testing.T) {
	d := driver.NewDriver(&driver.DriverConfiguration{Observer: mc.NewCollector()})

	for _, key := range common.AvailableAlgorithms() {
		t.Run(key, func(t *testing.T) {
			req, err := common.Validator{}.Validate(common.RawRequest{Algorithm: key, MaxSize: "200", Step: "40"})
			require.NoError(t, err)

			series, err := d.RunSweep(req)
			require.NoError(t, err)

			assert.Equal(t, []int{40, 80, 120, 160, 200}, series.Sizes)
			assert.Equal(t, len(series.Sizes), len(series.Elapsed))
			for _, e := range series.Elapsed {
				assert.GreaterOrEqual(t, e, time.Duration(0))
			}
		})
	}
}

func TestSweepPlotAndPersist(t *testing.T) {
	req, err := common.Validator{}.Validate(common.RawRequest{Algorithm: "nested", MaxSize: "300", Step: "60"})
	require.NoError(t, err)

	started := time.Now()
	series, err := driver.NewDriver(nil).RunSweep(req)
	require.NoError(t, err)

	png, err := chart.Render(series, req.Algorithm.Title())
	require.NoError(t, err)
	finished := time.Now()

	images, err := store.NewImageStore(filepath.Join(t.TempDir(), "graphs"))
	require.NoError(t, err)
	digest, path, err := images.Put(png)
	require.NoError(t, err)

	records, err := store.NewSQLStore(filepath.Join(t.TempDir(), "analysis.db"))
	require.NoError(t, err)
	defer records.Close()

	record := &common.AnalysisRecord{
		Algorithm:      req.Algorithm.Name,
		Items:          req.MaxSize,
		Steps:          req.Step,
		StartTime:      common.UnixMilliseconds(started),
		EndTime:        common.UnixMilliseconds(finished),
		TotalTimeMs:    common.DurationToMilliseconds(finished.Sub(started)),
		TimeComplexity: req.Algorithm.Complexity,
		GraphBase64:    chart.DataURI(png),
		GraphPath:      path,
	}
	id, err := records.Save(context.Background(), record)
	require.NoError(t, err)

	got, err := records.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Nested Loops", got.Algorithm)
	assert.Equal(t, common.ComplexityQuadratic, got.TimeComplexity)
	assert.Equal(t, path, got.GraphPath)

	stored, err := images.Get(digest)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(png, stored))
}
