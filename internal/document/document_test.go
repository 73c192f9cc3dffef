package document_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spec-kit/ticket-reports/internal/document"
	"github.com/spec-kit/ticket-reports/internal/domain"
	"github.com/spec-kit/ticket-reports/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func sampleParams(chartsDir string) document.Params {
	return document.Params{
		Title:       "Weekly Analysis Report",
		WindowLabel: "Last 7 Days",
		ChartsDir:   chartsDir,
		GeneratedAt: generatedAt,
	}
}

func sampleCatalog() domain.SummaryViews {
	return domain.SummaryViews{
		Catalog: []domain.GroupCount{
			{Name: "Harlan 1", Count: 4},
			{Name: "Isom", Count: 2},
			{Name: "Hyden", Count: 0},
		},
	}
}

// writeChart drops a decodable PNG where the builder expects an artifact.
func writeChart(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.Black)
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestGenerateWithoutChartArtifacts(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Weekly_Analysis_Report.pdf")

	// No chart files exist; the builder keeps the headings and drops
	// only the images.
	pages, err := document.Generate(out, sampleParams(filepath.Join(dir, "charts")), sampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, 2, pages)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGenerateEmbedsCharts(t *testing.T) {
	dir := t.TempDir()
	chartsDir := filepath.Join(dir, "charts")
	writeChart(t, chartsDir, render.StoresPieFile)
	writeChart(t, chartsDir, render.TopStoresFile)
	writeChart(t, chartsDir, render.TechsFile)
	out := filepath.Join(dir, "report.pdf")

	bare, err := document.Generate(filepath.Join(dir, "bare.pdf"), sampleParams(filepath.Join(dir, "none")), sampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, 2, bare)

	// Images are placed at their print sizes, so the first page cannot
	// hold both store charts: the bars break onto page two and the
	// assignee section starts page three.
	pages, err := document.Generate(out, sampleParams(chartsDir), sampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	withImages, err := os.Stat(out)
	require.NoError(t, err)
	withoutImages, err := os.Stat(filepath.Join(dir, "bare.pdf"))
	require.NoError(t, err)
	assert.Greater(t, withImages.Size(), withoutImages.Size())
}

func TestGenerateEmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")

	pages, err := document.Generate(out, sampleParams(dir), domain.SummaryViews{})
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestGenerateOverwritesPriorRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.pdf")

	_, err := document.Generate(out, sampleParams(dir), sampleCatalog())
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = document.Generate(out, sampleParams(dir), domain.SummaryViews{})
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus.pdf")
	require.NoError(t, os.WriteFile(bogus, []byte("not a pdf"), 0o644))

	_, err := document.Verify(bogus)
	assert.Error(t, err)
}
