package metric

import (
	"github.com/eth-easl/analyzer/pkg/common"
)

type SampleRecord struct {
	Index          int     `csv:"index"`
	Size           int     `csv:"size"`
	ElapsedSeconds float64 `csv:"elapsed_seconds"`
}

func SampleRecords(series *common.TimingSeries) []SampleRecord {
	records := make([]SampleRecord, series.Len())
	for i, size := range series.Sizes {
		records[i] = SampleRecord{
			Index:          i,
			Size:           size,
			ElapsedSeconds: series.Elapsed[i].Seconds(),
		}
	}
	return records
}
