package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFRenderer_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDFRenderer{Compress: false}.Render(&buf, widgetModel(t), nil))

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	want := []string{
		Title,
		"Life Cycle Assessment: Widget",
		"1. Goal & Scope",
		"Goal: Assess environmental impacts of Widget over its full life cycle.",
		"2. Inventory",
		"Manufacturing: 80.00 MJ, 9.00 kg CO2-eq, 30.00 L",
		"3. Impact Assessment",
		"Total GHG: 18.50 kg CO2-eq",
		"Total Energy: 175.00 MJ",
		"Total Water: 105.00 L",
		"4. Interpretation",
		"Most impactful process: Manufacturing",
	}
	last := -1
	for _, s := range want {
		idx := indexAfter(out, s, last)
		require.GreaterOrEqual(t, idx, 0, "missing or out of order: %q", s)
		last = idx
	}
}

// indexAfter finds s in out after position from.
func indexAfter(out, s string, from int) int {
	start := from + 1
	i := strings.Index(out[start:], s)
	if i < 0 {
		return -1
	}
	return start + i
}

func TestPDFRenderer_EmbedsChart(t *testing.T) {
	m := widgetModel(t)
	data, err := RenderChart(m)
	require.NoError(t, err)

	var withChart, without bytes.Buffer
	require.NoError(t, PDFRenderer{Compress: true}.Render(&withChart, m, data))
	require.NoError(t, PDFRenderer{Compress: true}.Render(&without, m, nil))

	assert.Contains(t, withChart.String(), "/Subtype /Image")
	assert.NotContains(t, without.String(), "/Subtype /Image")
}

func TestPDFRenderer_InvalidChart(t *testing.T) {
	var buf bytes.Buffer
	err := PDFRenderer{}.Render(&buf, widgetModel(t), []byte("not a png"))
	require.Error(t, err)
}

func TestPDFRenderer_NonLatinProduct(t *testing.T) {
	m := widgetModel(t)
	m.Product = "Café 杯子"

	var buf bytes.Buffer
	require.NoError(t, PDFRenderer{Compress: true}.Render(&buf, m, nil))
	assert.NotZero(t, buf.Len())
}
