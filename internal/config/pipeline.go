// Package config loads JSON pipeline descriptions and turns them into
// sensor pipelines.
package config

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CastilloDelSol/GenericSensor/dsp/core"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/poly"
	"github.com/CastilloDelSol/GenericSensor/dsp/mapper/table"
	"github.com/CastilloDelSol/GenericSensor/dsp/proc"
	"github.com/CastilloDelSol/GenericSensor/dsp/registry"
	"github.com/CastilloDelSol/GenericSensor/dsp/sensor"
	"github.com/CastilloDelSol/GenericSensor/internal/monitoring"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// ErrRole is returned when a filter is placed in a mapper slot or the
// other way round.
var ErrRole = errors.New("config: processor role does not match slot")

// PipelineConfig describes one sensor pipeline.
type PipelineConfig struct {
	Info    *InfoConfig   `json:"info,omitempty"`
	Mappers []StageConfig `json:"mappers,omitempty"`
	Filters []StageConfig `json:"filters,omitempty"`

	// History is the number of stage traces to record. Zero disables the
	// recorder.
	History *int `json:"history,omitempty"`
	// SampleRate of the raw samples in Hz, used by spectral diagnostics.
	SampleRate *float64 `json:"sample_rate,omitempty"`
}

// InfoConfig is the JSON form of sensor.Info.
type InfoConfig struct {
	Manufacturer string  `json:"manufacturer,omitempty"`
	Model        string  `json:"model,omitempty"`
	Serial       string  `json:"serial,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Lower        float64 `json:"lower"`
	Upper        float64 `json:"upper"`
}

// StageConfig describes the processor of one slot. An entry with neither
// a type nor a record leaves the slot empty.
type StageConfig struct {
	Type   string             `json:"type,omitempty"`
	Params map[string]float64 `json:"params,omitempty"`
	Points [][2]float64       `json:"points,omitempty"`
	Coeffs []float64          `json:"coeffs,omitempty"`

	// Record is a hex encoded binary configuration record. It takes the
	// place of Type and its parameters.
	Record string `json:"record,omitempty"`
}

// Empty reports whether the stage leaves its slot empty.
func (s StageConfig) Empty() bool { return s.Type == "" && s.Record == "" }

// registryParams converts the stage to registry parameters.
func (s StageConfig) registryParams() registry.Params {
	pts := make([]table.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = table.Point{X: p[0], FX: p[1]}
	}

	return registry.Params{Type: s.Type, Num: s.Params, Points: pts, Coeffs: s.Coeffs}
}

// Load reads a PipelineConfig from a JSON file.
// The file must have a .json extension and be under the max file size.
func Load(path string) (*PipelineConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a JSON pipeline description.
func Parse(data []byte) (*PipelineConfig, error) {
	cfg := &PipelineConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid. Processor
// type names are checked when the pipeline is built.
func (c *PipelineConfig) Validate() error {
	if len(c.Mappers) > sensor.NumMappers {
		return fmt.Errorf("at most %d mappers allowed, got %d", sensor.NumMappers, len(c.Mappers))
	}

	if len(c.Filters) > sensor.NumFilters {
		return fmt.Errorf("at most %d filters allowed, got %d", sensor.NumFilters, len(c.Filters))
	}

	if c.History != nil && *c.History < 0 {
		return fmt.Errorf("history must be non-negative, got %d", *c.History)
	}

	if c.SampleRate != nil && !(*c.SampleRate > 0) {
		return fmt.Errorf("sample_rate must be positive, got %f", *c.SampleRate)
	}

	if c.Info != nil {
		if !core.IsFinite(c.Info.Lower) || !core.IsFinite(c.Info.Upper) {
			return errors.New("info range must be finite")
		}
	}

	for i, s := range c.Mappers {
		if err := s.validate(); err != nil {
			return fmt.Errorf("mapper %d: %w", i, err)
		}
	}

	for i, s := range c.Filters {
		if err := s.validate(); err != nil {
			return fmt.Errorf("filter %d: %w", i, err)
		}
	}

	return nil
}

func (s StageConfig) validate() error {
	if s.Type != "" && s.Record != "" {
		return errors.New("type and record are mutually exclusive")
	}

	if len(s.Points) > table.MaxPoints {
		return fmt.Errorf("at most %d points allowed, got %d", table.MaxPoints, len(s.Points))
	}

	if len(s.Coeffs) > poly.MaxDegree+1 {
		return fmt.Errorf("at most %d coefficients allowed, got %d", poly.MaxDegree+1, len(s.Coeffs))
	}

	for k, v := range s.Params {
		if !core.IsFinite(v) {
			return fmt.Errorf("param %s must be finite", k)
		}
	}

	return nil
}

// GetHistory returns the history value or the default.
func (c *PipelineConfig) GetHistory() int {
	if c.History == nil {
		return 0 // default
	}
	return *c.History
}

// GetSampleRate returns the sample_rate value or the default.
func (c *PipelineConfig) GetSampleRate() float64 {
	if c.SampleRate == nil {
		return 1 // default
	}
	return *c.SampleRate
}

// SensorInfo returns the descriptor, zero when none is configured.
func (c *PipelineConfig) SensorInfo() sensor.Info {
	if c.Info == nil {
		return sensor.Info{}
	}

	i := c.Info
	return sensor.NewInfo(i.Manufacturer, i.Model, i.Serial, i.Unit, i.Lower, i.Upper)
}

// Build creates the described pipeline using reg. A nil reg uses
// registry.Default.
func (c *PipelineConfig) Build(reg *registry.Registry) (*sensor.Pipeline, error) {
	if reg == nil {
		reg = registry.Default()
	}

	opts := []sensor.Option{sensor.WithInfo(c.SensorInfo())}
	if n := c.GetHistory(); n > 0 {
		opts = append(opts, sensor.WithRecorder(sensor.NewRecorder(n)))
	}

	p := sensor.New(opts...)

	for i, s := range c.Mappers {
		pr, err := s.build(reg)
		if err != nil {
			return nil, fmt.Errorf("mapper %d: %w", i, err)
		}
		if pr == nil {
			continue
		}
		if _, ok := pr.(proc.Mapper); !ok {
			return nil, fmt.Errorf("mapper %d: %w: %s", i, ErrRole, pr.Kind())
		}

		p.SetMapper(i, pr)
	}

	for i, s := range c.Filters {
		pr, err := s.build(reg)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		if pr == nil {
			continue
		}
		if _, ok := pr.(proc.Filter); !ok {
			return nil, fmt.Errorf("filter %d: %w: %s", i, ErrRole, pr.Kind())
		}

		p.SetFilter(i, pr)
	}

	monitoring.Logf("config: built pipeline with %d mappers and %d filters", len(c.Mappers), len(c.Filters))

	return p, nil
}

func (s StageConfig) build(reg *registry.Registry) (proc.Processor, error) {
	if s.Empty() {
		return nil, nil
	}

	if s.Record == "" {
		return reg.Build(s.registryParams())
	}

	raw, err := hex.DecodeString(s.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	var rec proc.Config
	if err := rec.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	return reg.Restore(rec)
}
