package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart dimensions in pixels.
const (
	ChartWidth  = 900
	ChartHeight = 500
)

//nolint:gochecknoglobals // Shared bar fill color.
var barColor = drawing.Color{R: 31, G: 119, B: 180, A: 255}

// RenderChart draws the per-process GHG bar chart as a PNG.
func RenderChart(m Model) ([]byte, error) {
	if len(m.Inventory) == 0 {
		return nil, errors.New("no processes to chart")
	}

	bars := make([]chart.Value, 0, len(m.Inventory))
	maxGHG := 0.0
	for _, r := range m.Inventory {
		bars = append(bars, chart.Value{
			Label: r.Process,
			Value: r.GHGKgCO2e,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		})
		maxGHG = max(maxGHG, r.GHGKgCO2e)
	}
	if maxGHG == 0 {
		maxGHG = 1
	}

	graph := chart.BarChart{
		Title:      "GHG Emissions (kg CO2-eq)",
		Width:      ChartWidth,
		Height:     ChartHeight,
		BarWidth:   90,
		BarSpacing: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxGHG * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering GHG chart: %w", err)
	}
	return buf.Bytes(), nil
}
