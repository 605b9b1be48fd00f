package driver

import (
	"errors"
	"fmt"
	"time"

	"github.com/eth-easl/analyzer/pkg/common"
	log "github.com/sirupsen/logrus"
)

var ErrExecutionFailed = errors.New("algorithm execution failed")

// SampleObserver is notified after every timed sample.
type SampleObserver interface {
	ObserveSample(algorithm string, size int, elapsed time.Duration)
}

type DriverConfiguration struct {
	Observer SampleObserver
}

type Driver struct {
	Configuration *DriverConfiguration
}

func NewDriver(driverConfig *DriverConfiguration) *Driver {
	if driverConfig == nil {
		driverConfig = &DriverConfiguration{}
	}
	return &Driver{Configuration: driverConfig}
}

// walkSizes calls visit for start, start+step, ... up to and including maxSize,
// stopping early when visit returns false. A non-positive start means the
// progression begins at step. The walk never computes a size beyond maxSize,
// so it cannot overflow.
func walkSizes(start, maxSize, step int, visit func(size int) bool) {
	if step <= 0 {
		return
	}
	if start <= 0 {
		start = step
	}

	for size := start; size <= maxSize; size += step {
		if !visit(size) {
			return
		}
		if size > maxSize-step {
			return
		}
	}
}

// Sizes returns the progression walked by RunSweep.
func Sizes(start, maxSize, step int) []int {
	var sizes []int
	walkSizes(start, maxSize, step, func(size int) bool {
		sizes = append(sizes, size)
		return true
	})
	return sizes
}

// RunSweep times the requested algorithm once per size. Samples run one after
// another on the calling goroutine so that timing windows never overlap.
func (d *Driver) RunSweep(req common.AnalysisRequest) (*common.TimingSeries, error) {
	log.Debugf("Sweeping %s over [%d..%d] step %d",
		req.Algorithm.Key, req.FirstSize(), req.MaxSize, req.Step)

	series := &common.TimingSeries{}
	var runErr error

	walkSizes(req.Start, req.MaxSize, req.Step, func(size int) bool {
		start := time.Now()
		err := req.Algorithm.Run(size)
		elapsed := time.Since(start)

		if err != nil {
			runErr = fmt.Errorf("%w: %s at size %d: %w", ErrExecutionFailed, req.Algorithm.Key, size, err)
			return false
		}

		series.Sizes = append(series.Sizes, size)
		series.Elapsed = append(series.Elapsed, elapsed)

		log.Tracef("(Sample)\t %s: size=%d elapsed=%v", req.Algorithm.Key, size, elapsed)
		if d.Configuration.Observer != nil {
			d.Configuration.Observer.ObserveSample(req.Algorithm.Key, size, elapsed)
		}
		return true
	})

	if runErr != nil {
		return nil, runErr
	}
	return series, nil
}
