package metric

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// WriteSamples marshals one CSV row per sample, header included.
func WriteSamples(w io.Writer, series *common.TimingSeries) error {
	records := SampleRecords(series)
	return gocsv.Marshal(&records, w)
}

func ReadSamples(r io.Reader) ([]SampleRecord, error) {
	var records []SampleRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ExportSamples writes the series to <outputDir>/<name>.csv and returns the path.
func ExportSamples(outputDir, name string, series *common.TimingSeries) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outputDir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	records := SampleRecords(series)
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return "", err
	}

	log.Debugf("Exported %d samples to %s", len(records), path)
	return path, nil
}
