package pivot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "top_products.yaml", `
name: top_products
description: Most logged products
dimensions: [product]
top_n: 10
window: 7d
`)
	writePreset(t, dir, "gender_by_device.yml", `
name: gender_by_device
dimensions: [device, gender]
metric: unique_actors
`)
	writePreset(t, dir, "empty.yaml", "# nothing here\n")
	writePreset(t, dir, "README.md", "not a preset")

	repo, err := LoadPresets(dir)
	require.NoError(t, err)

	presets := repo.List()
	require.Len(t, presets, 2)
	assert.Equal(t, "gender_by_device", presets[0].Name)
	assert.Equal(t, "top_products", presets[1].Name)

	top, err := repo.Get("top_products")
	require.NoError(t, err)
	assert.Equal(t, []DimensionID{DimProduct}, top.Dimensions)
	assert.Equal(t, MetricLogs, top.Metric)
	assert.Equal(t, 7*24*time.Hour, top.Window.Size)
	assert.Len(t, top.Fingerprint, 64)

	gender, err := repo.Get("gender_by_device")
	require.NoError(t, err)
	assert.Equal(t, MetricUniqueActors, gender.Metric)
	assert.Equal(t, "7d", gender.WindowLabel)

	end := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	q := top.Query(end)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), q.Start)
	assert.Equal(t, end, q.End)
	assert.Equal(t, 10, q.TopN)
}

func TestLoadPresets_MissingDirIsEmpty(t *testing.T) {
	repo, err := LoadPresets(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, repo.List())

	_, err = repo.Get("anything")
	assert.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestLoadPresets_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "unknown dimension",
			files:   map[string]string{"a.yaml": "name: a\ndimensions: [mood]\n"},
			wantErr: "unknown dimension",
		},
		{
			name:    "unknown metric",
			files:   map[string]string{"a.yaml": "name: a\nmetric: sum\n"},
			wantErr: "unknown metric",
		},
		{
			name:    "bad window",
			files:   map[string]string{"a.yaml": "name: a\nwindow: fortnight\n"},
			wantErr: "invalid window",
		},
		{
			name:    "top_n out of range",
			files:   map[string]string{"a.yaml": "name: a\ntop_n: 900\n"},
			wantErr: "top_n must be within",
		},
		{
			name:    "malformed yaml",
			files:   map[string]string{"a.yaml": "name: [unterminated\n"},
			wantErr: "parsing yaml",
		},
		{
			name: "duplicate name",
			files: map[string]string{
				"a.yaml": "name: same\n",
				"b.yaml": "name: same\n",
			},
			wantErr: "duplicate preset name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tc.files {
				writePreset(t, dir, name, body)
			}

			_, err := LoadPresets(dir)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
