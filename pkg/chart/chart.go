package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/eth-easl/analyzer/pkg/common"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch

	PNGDataURIPrefix = "data:image/png;base64,"
)

var (
	// #2196F3
	lineColor = color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	gridColor = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0x80}
)

var ErrEmptySeries = errors.New("cannot plot an empty series")

// New builds the size-vs-time line plot of a series.
func New(series *common.TimingSeries, title string) (*plot.Plot, error) {
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Input Size"
	p.Y.Label.Text = "Time (s)"
	p.Y.Min = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(getXY(series))
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	points.Color = lineColor
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	return p, nil
}

// Render returns the plot encoded as PNG.
func Render(series *common.TimingSeries, title string) ([]byte, error) {
	p, err := New(series, title)
	if err != nil {
		return nil, err
	}

	w, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the plot to path; the image format follows the file extension.
func Save(path string, series *common.TimingSeries, title string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	p, err := New(series, title)
	if err != nil {
		return err
	}

	log.Debugf("Saving plot %q to %s", title, path)
	return p.Save(Width, Height, path)
}

func DataURI(png []byte) string {
	return PNGDataURIPrefix + base64.StdEncoding.EncodeToString(png)
}

func getXY(series *common.TimingSeries) plotter.XYs {
	pts := make(plotter.XYs, series.Len())
	for i := range pts {
		pts[i].X = float64(series.Sizes[i])
		pts[i].Y = series.Elapsed[i].Seconds()
	}
	return pts
}
