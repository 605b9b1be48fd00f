package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingAlgorithm  = errors.New("missing algorithm")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidStep       = errors.New("invalid step")
	ErrStepExceedsSize   = errors.New("step exceeds size")
	ErrInvalidStart      = errors.New("invalid start")
	ErrSizeLimitExceeded = errors.New("size exceeds the configured limit")
)

var validationErrors = []error{
	ErrMissingAlgorithm,
	ErrUnknownAlgorithm,
	ErrInvalidSize,
	ErrInvalidStep,
	ErrStepExceedsSize,
	ErrInvalidStart,
	ErrSizeLimitExceeded,
}

// RawRequest carries the unparsed analysis parameters as received.
type RawRequest struct {
	Algorithm string
	MaxSize   string
	Step      string
	Start     string
}

// Validator turns raw parameters into an AnalysisRequest.
// MaxItems caps the accepted max size; zero disables the cap.
type Validator struct {
	MaxItems int
}

func NormalizeAlgorithmKey(key string) string {
	return strings.ToLower(strings.Trim(key, AlgorithmQuoteCutset))
}

func (v Validator) Validate(raw RawRequest) (AnalysisRequest, error) {
	key := NormalizeAlgorithmKey(raw.Algorithm)
	if key == "" {
		return AnalysisRequest{}, ErrMissingAlgorithm
	}
	algorithm, ok := LookupAlgorithm(key)
	if !ok {
		return AnalysisRequest{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
	}

	maxSize, ok := parsePositive(raw.MaxSize)
	if !ok {
		return AnalysisRequest{}, fmt.Errorf("%w: %q", ErrInvalidSize, raw.MaxSize)
	}
	step, ok := parsePositive(raw.Step)
	if !ok {
		return AnalysisRequest{}, fmt.Errorf("%w: %q", ErrInvalidStep, raw.Step)
	}
	if step > maxSize {
		return AnalysisRequest{}, fmt.Errorf("%w: %d > %d", ErrStepExceedsSize, step, maxSize)
	}

	start := 0
	if strings.TrimSpace(raw.Start) != "" {
		start, ok = parsePositive(raw.Start)
		if !ok || start > maxSize {
			return AnalysisRequest{}, fmt.Errorf("%w: %q", ErrInvalidStart, raw.Start)
		}
	}

	if v.MaxItems > 0 && maxSize > v.MaxItems {
		return AnalysisRequest{}, fmt.Errorf("%w: %d > %d", ErrSizeLimitExceeded, maxSize, v.MaxItems)
	}

	return AnalysisRequest{
		Algorithm: algorithm,
		MaxSize:   maxSize,
		Step:      step,
		Start:     start,
	}, nil
}

// RejectionKind returns the sentinel rejection wrapped by err.
func RejectionKind(err error) (error, bool) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}

// IsValidationError reports whether err is one of the request rejections.
func IsValidationError(err error) bool {
	_, ok := RejectionKind(err)
	return ok
}

func parsePositive(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
