package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/eth-easl/analyzer/pkg/chart"
	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/eth-easl/analyzer/pkg/config"
	"github.com/eth-easl/analyzer/pkg/driver"
	"github.com/eth-easl/analyzer/pkg/metric"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		algorithm  = flag.String("algo", common.Bubble, "Algorithm to sweep: bubble, linear, binary, nested")
		minSize    = flag.Int("min", 0, "First input size (defaults to the step)")
		maxSize    = flag.Int("max", 1000, "Largest input size")
		step       = flag.Int("step", 100, "Increment between input sizes")
		outputDir  = flag.String("o", "figs", "Path to the directory for output figures and samples")
		maxItems   = flag.Int("max-items", config.DefaultMaxItems, "Upper bound accepted for -max")
		debugLevel = flag.String("d", "info", "Debug level: info, debug, trace")
	)
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *debugLevel {
	case "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug mode is enabled")
	case "trace":
		log.SetLevel(log.TraceLevel)
	}

	raw := common.RawRequest{
		Algorithm: *algorithm,
		MaxSize:   strconv.Itoa(*maxSize),
		Step:      strconv.Itoa(*step),
	}
	if *minSize != 0 {
		raw.Start = strconv.Itoa(*minSize)
	}

	req, err := common.Validator{MaxItems: *maxItems}.Validate(raw)
	if err != nil {
		log.Fatal("Invalid sweep parameters: ", err)
	}

	series, err := driver.NewDriver(nil).RunSweep(req)
	if err != nil {
		log.Fatal(err)
	}

	figPath := filepath.Join(*outputDir, req.Algorithm.Key+".png")
	if err := chart.Save(figPath, series, req.Algorithm.Title()); err != nil {
		log.Fatal(err)
	}

	csvPath, err := metric.ExportSamples(*outputDir, req.Algorithm.Key, series)
	if err != nil {
		log.Fatal(err)
	}

	fit := metric.FitSeries(series)
	if fit.Exponent != nil {
		log.Infof("%s: %d samples, mean %.6fs, empirical exponent %.2f",
			req.Algorithm.Title(), fit.Samples, fit.MeanSeconds, *fit.Exponent)
	} else {
		log.Infof("%s: %d samples, mean %.6fs", req.Algorithm.Title(), fit.Samples, fit.MeanSeconds)
	}
	log.Info("Wrote ", figPath, " and ", csvPath)
}
