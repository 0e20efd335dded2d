package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lca-bot/inventory"
	"lca-bot/lcia"
)

// Fixed artifact names, overwritten on every run.
const (
	ChartFileName  = "chart.png"
	ReportFileName = "lca_report.pdf"
)

// Result is the outcome of one assessment run.
type Result struct {
	ID        string `json:"id"`
	Model     Model  `json:"model"`
	ChartPNG  []byte `json:"-"`
	ChartPath string `json:"chart_path"`
	PDFPath   string `json:"pdf_path"`
}

// Runner drives one assessment: fetch inventory, aggregate, build the
// report model, then write the chart and the PDF.
type Runner struct {
	Source    inventory.Source
	OutputDir string
	PDF       PDFRenderer
	Logger    zerolog.Logger
	Now       func() time.Time
}

// NewRunner returns a Runner writing artifacts to outputDir.
func NewRunner(src inventory.Source, outputDir string, pdf PDFRenderer, logger zerolog.Logger) *Runner {
	return &Runner{
		Source:    src,
		OutputDir: outputDir,
		PDF:       pdf,
		Logger:    logger,
		Now:       time.Now,
	}
}

// ReportPath returns where the PDF is written.
func (r *Runner) ReportPath() string {
	return filepath.Join(r.OutputDir, ReportFileName)
}

// ChartPath returns where the chart image is written.
func (r *Runner) ChartPath() string {
	return filepath.Join(r.OutputDir, ChartFileName)
}

// Run executes one assessment for product. It returns lcia.ErrEmptyInventory
// when the source yields no rows and a *ReportWriteError when an artifact
// cannot be rendered or written.
func (r *Runner) Run(ctx context.Context, product string) (*Result, error) {
	id := uuid.New().String()
	log := r.Logger.With().Str("run_id", id).Str("product", product).Logger()

	table, err := r.Source.Fetch(ctx, product)
	if err != nil {
		log.Error().Err(err).Msg("fetching inventory failed")
		return nil, fmt.Errorf("fetching inventory: %w", err)
	}

	summary, err := lcia.Aggregate(table)
	if err != nil {
		log.Warn().Err(err).Msg("aggregation failed")
		return nil, err
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	res := &Result{
		ID:        id,
		Model:     BuildModel(product, table, summary, now()),
		ChartPath: r.ChartPath(),
		PDFPath:   r.ReportPath(),
	}

	png, err := RenderChart(res.Model)
	if err != nil {
		return nil, r.fail(log, ArtifactChart, res.ChartPath, err)
	}
	if err := os.WriteFile(res.ChartPath, png, 0o644); err != nil {
		return nil, r.fail(log, ArtifactChart, res.ChartPath, err)
	}
	res.ChartPNG = png

	var buf bytes.Buffer
	if err := r.PDF.Render(&buf, res.Model, png); err != nil {
		return nil, r.fail(log, ArtifactPDF, res.PDFPath, err)
	}
	if err := os.WriteFile(res.PDFPath, buf.Bytes(), 0o644); err != nil {
		return nil, r.fail(log, ArtifactPDF, res.PDFPath, err)
	}

	log.Info().
		Float64("ghg_total", summary.GHGTotal).
		Float64("energy_total", summary.EnergyTotal).
		Float64("water_total", summary.WaterTotal).
		Str("top_process", summary.TopProcess).
		Str("pdf", res.PDFPath).
		Msg("assessment completed")

	return res, nil
}

func (r *Runner) fail(log zerolog.Logger, artifact, path string, err error) error {
	log.Error().Err(err).Str("artifact", artifact).Str("path", path).Msg("report write failed")
	return &ReportWriteError{Artifact: artifact, Path: path, Err: err}
}
