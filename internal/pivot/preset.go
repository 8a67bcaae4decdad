package pivot

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	coreagg "github.com/aevon-lab/project-tally/internal/core/aggregation"
	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound is returned for an unknown preset name.
var ErrPresetNotFound = errors.New("pivot preset not found")

// Preset is a named pivot query over a trailing window, e.g. "top products
// of the last 7 days". Presets are loaded once at startup.
type Preset struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Dimensions  []DimensionID      `json:"dimensions"`
	Metric      Metric             `json:"metric"`
	TopN        int                `json:"top_n"`
	Window      coreagg.WindowSpec `json:"-"`
	WindowLabel string             `json:"window"`
	Fingerprint string             `json:"fingerprint"` // SHA-256 of the raw YAML file
}

// Query returns the preset as a pivot query for the window ending at end.
func (p Preset) Query(end time.Time) Query {
	start, end := p.Window.Ending(end)
	return Query{
		Dimensions: append([]DimensionID(nil), p.Dimensions...),
		Metric:     p.Metric,
		TopN:       p.TopN,
		Start:      start,
		End:        end,
	}
}

// rawPreset is the on-disk YAML shape.
type rawPreset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Dimensions  []string `yaml:"dimensions"`
	Metric      string   `yaml:"metric"`
	TopN        int      `yaml:"top_n"`
	Window      string   `yaml:"window"`
}

// PresetRepository holds the presets found in one directory. Each *.yaml
// file contains exactly one preset at the top level.
type PresetRepository struct {
	dir     string
	presets map[string]Preset
}

// LoadPresets reads every preset file of dir. A missing directory yields an
// empty repository; a malformed file fails the whole load.
func LoadPresets(dir string) (*PresetRepository, error) {
	repo := &PresetRepository{
		dir:     dir,
		presets: make(map[string]Preset),
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PresetRepository) load() error {
	if r.dir == "" {
		return nil
	}

	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pivot preset dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("pivot preset path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading pivot preset dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(r.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading preset file %s: %w", path, err)
		}

		preset, err := parsePreset(data)
		if err != nil {
			return fmt.Errorf("preset file %s: %w", path, err)
		}
		if preset.Name == "" {
			continue // comment-only file
		}

		if _, exists := r.presets[preset.Name]; exists {
			return fmt.Errorf("preset %q: duplicate preset name (check multiple YAML files)", preset.Name)
		}
		r.presets[preset.Name] = preset
	}
	return nil
}

func parsePreset(data []byte) (Preset, error) {
	var raw rawPreset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Preset{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if raw.Name == "" {
		return Preset{}, nil
	}

	dims := make([]DimensionID, 0, len(raw.Dimensions))
	for _, d := range raw.Dimensions {
		id, err := ParseDimension(d)
		if err != nil {
			return Preset{}, fmt.Errorf("preset %q: %w", raw.Name, err)
		}
		dims = append(dims, id)
	}

	metric, err := ParseMetric(raw.Metric)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", raw.Name, err)
	}

	if raw.TopN < 0 || raw.TopN > MaxTopN {
		return Preset{}, fmt.Errorf("preset %q: top_n must be within [0, %d]", raw.Name, MaxTopN)
	}

	if raw.Window == "" {
		raw.Window = "7d"
	}
	window, err := coreagg.ParseWindowSize(raw.Window)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q: %w", raw.Name, err)
	}

	return Preset{
		Name:        raw.Name,
		Description: raw.Description,
		Dimensions:  dims,
		Metric:      metric,
		TopN:        raw.TopN,
		Window:      window,
		WindowLabel: raw.Window,
		Fingerprint: fmt.Sprintf("%x", sha256.Sum256(data)),
	}, nil
}

// Get returns the preset with the given name.
func (r *PresetRepository) Get(name string) (Preset, error) {
	preset, ok := r.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return preset, nil
}

// List returns every preset ordered by name.
func (r *PresetRepository) List() []Preset {
	presets := make([]Preset, 0, len(r.presets))
	for _, preset := range r.presets {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets
}
