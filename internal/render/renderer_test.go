package render_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spec-kit/ticket-reports/internal/domain"
	"github.com/spec-kit/ticket-reports/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err, "artifact must be a decodable PNG")
	return cfg.Width, cfg.Height
}

func sampleViews() domain.SummaryViews {
	return domain.SummaryViews{
		TopStores: []domain.GroupCount{
			{Name: "Jenkins kiosk", Count: 5},
			{Name: "Hyden front desk", Count: 3},
		},
		TopStoresWide: []domain.GroupCount{
			{Name: "Jenkins kiosk", Count: 5},
			{Name: "Hyden front desk", Count: 3},
			{Name: "Martin", Count: 1},
		},
		Technicians: []domain.GroupCount{
			{Name: "Jacob Abrams", Count: 4},
			{Name: "Richard Roe", Count: 2},
		},
	}
}

func TestRenderAllWritesArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := render.NewRenderer(dir, "Last 7 Days")

	res, err := r.RenderAll(sampleViews())
	require.NoError(t, err)

	require.Len(t, res.Rendered, 3)
	assert.Empty(t, res.Skipped)

	w, h := decodeSize(t, filepath.Join(dir, render.StoresPieFile))
	assert.Equal(t, 1500, w)
	assert.Equal(t, 1200, h)

	w, h = decodeSize(t, filepath.Join(dir, render.TopStoresFile))
	assert.Equal(t, 1800, w)
	assert.Equal(t, 1200, h)

	w, h = decodeSize(t, filepath.Join(dir, render.TechsFile))
	assert.Equal(t, 1500, w)
	assert.Equal(t, 900, h)
}

func TestRenderAllSkipsEmptyViews(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := render.NewRenderer(dir, "Last 7 Days")

	res, err := r.RenderAll(domain.SummaryViews{})
	require.NoError(t, err)

	assert.Empty(t, res.Rendered)
	assert.Equal(t, []string{render.StoresPieFile, render.TopStoresFile, render.TechsFile}, res.Skipped)

	// The directory is still created; no artifact files are.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderAllPartialViews(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := render.NewRenderer(dir, "Last 7 Days")

	views := sampleViews()
	views.Technicians = nil

	res, err := r.RenderAll(views)
	require.NoError(t, err)

	assert.Len(t, res.Rendered, 2)
	assert.Equal(t, []string{render.TechsFile}, res.Skipped)
	_, err = os.Stat(filepath.Join(dir, render.TechsFile))
	assert.True(t, os.IsNotExist(err))
}

func TestRenderAllOverwritesPriorArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	stale := filepath.Join(dir, render.StoresPieFile)
	require.NoError(t, os.WriteFile(stale, []byte("not a png"), 0o644))

	r := render.NewRenderer(dir, "Last 7 Days")
	_, err := r.RenderAll(sampleViews())
	require.NoError(t, err)

	w, _ := decodeSize(t, stale)
	assert.Equal(t, 1500, w)
}

func TestRenderAllSingleGroupBars(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := render.NewRenderer(dir, "Last 30 Days")

	views := domain.SummaryViews{
		TopStoresWide: []domain.GroupCount{{Name: "Jenkins", Count: 1}},
	}
	res, err := r.RenderAll(views)
	require.NoError(t, err)

	require.Len(t, res.Rendered, 1)
	assert.Equal(t, render.TopStoresFile, res.Rendered[0].Name)
	assert.Equal(t, 1, res.Rendered[0].Groups)
}
