package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eth-easl/analyzer/pkg/chart"
	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/eth-easl/analyzer/pkg/metric"
	"github.com/eth-easl/analyzer/pkg/store"
)

const (
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatCSV  = "csv"

	maxRecordBytes = 32 << 20
)

type homeResponse struct {
	Available []string `json:"available"`
	Example   string   `json:"example"`
}

type analyzeResponse struct {
	common.AnalysisRecord

	Sizes       []int      `json:"sizes"`
	Times       []float64  `json:"times"`
	Fit         metric.Fit `json:"fit"`
	GraphDigest string     `json:"graph_digest,omitempty"`
}

type saveResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, homeResponse{
		Available: common.AvailableAlgorithms(),
		Example:   common.ExampleQuery,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := entryFrom(r.Context())
	q := r.URL.Query()

	req, err := s.validator.Validate(common.RawRequest{
		Algorithm: q.Get("algo"),
		MaxSize:   q.Get("n"),
		Step:      q.Get("steps"),
		Start:     q.Get("start"),
	})
	if err != nil {
		s.collector.ObserveRejection(rejectionReason(err))
		logger.Debugf("Rejected analysis request: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatPNG && format != FormatCSV {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid format %q", format))
		return
	}

	save := false
	if raw := q.Get("save"); raw != "" {
		if save, err = strconv.ParseBool(raw); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid save flag %q", raw))
			return
		}
	}
	if save && format != FormatJSON {
		writeError(w, http.StatusBadRequest, "save requires the json format")
		return
	}
	if save && s.records == nil {
		writeError(w, http.StatusServiceUnavailable, "DB not available")
		return
	}

	started := time.Now()
	series, err := s.driver.RunSweep(req)
	if err != nil {
		s.collector.ObserveSweep(req.Algorithm.Key, metric.OutcomeFailure)
		logger.Warnf("Sweep failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.collector.ObserveSweep(req.Algorithm.Key, metric.OutcomeSuccess)
	logger.Infof("Swept %s over %d sizes in %v", req.Algorithm.Key, series.Len(), series.Total())

	if format == FormatCSV {
		w.Header().Set("Content-Type", "text/csv")
		if err := metric.WriteSamples(w, series); err != nil {
			logger.Errorf("Failed to write samples: %v", err)
		}
		return
	}

	png, err := chart.Render(series, req.Algorithm.Title())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if format == FormatPNG {
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
		return
	}

	finished := time.Now()
	resp := analyzeResponse{
		AnalysisRecord: common.AnalysisRecord{
			Algorithm:      req.Algorithm.Name,
			Items:          req.MaxSize,
			Steps:          req.Step,
			StartTime:      common.UnixMilliseconds(started),
			EndTime:        common.UnixMilliseconds(finished),
			TotalTimeMs:    common.DurationToMilliseconds(finished.Sub(started)),
			TimeComplexity: req.Algorithm.Complexity,
			GraphBase64:    chart.DataURI(png),
		},
		Sizes: series.Sizes,
		Times: series.Seconds(),
		Fit:   metric.FitSeries(series),
	}

	if save {
		if s.images != nil {
			digest, path, err := s.images.Put(png)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			resp.GraphDigest = digest
			resp.GraphPath = path
		}

		id, err := s.records.Save(r.Context(), &resp.AnalysisRecord)
		if err != nil {
			logger.Errorf("Failed to save analysis: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.ID = id
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if s.records == nil {
		writeError(w, http.StatusServiceUnavailable, "DB not available")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecordBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, "No data")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "No data")
		return
	}
	for _, name := range common.RequiredRecordFields {
		if _, ok := fields[name]; !ok {
			writeError(w, http.StatusBadRequest, "Missing fields")
			return
		}
	}

	var record common.AnalysisRecord
	if err := json.Unmarshal(body, &record); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	record.ID = 0
	record.GraphPath = ""

	id, err := s.records.Save(r.Context(), &record)
	if err != nil {
		entryFrom(r.Context()).Errorf("Failed to save analysis: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, saveResponse{Status: "success", ID: id})
}

func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	if s.records == nil {
		writeError(w, http.StatusServiceUnavailable, "DB not available")
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Missing id")
		return
	}

	record, err := s.records.Get(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, record)
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if s.images == nil {
		writeError(w, http.StatusServiceUnavailable, "image store not available")
		return
	}

	data, err := s.images.Get(r.PathValue("digest"))
	switch {
	case errors.Is(err, store.ErrInvalidDigest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}
}

// rejectionReason maps a validation error onto its bare kind, for metric labels.
func rejectionReason(err error) string {
	if kind, ok := common.RejectionKind(err); ok {
		return kind.Error()
	}
	return "other"
}
