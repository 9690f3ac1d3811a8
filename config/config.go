// Package config loads batches of size computations from YAML or TOML files.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/xaionaro-go/framesize/logger"
)

type Format int

const (
	FormatUndefined = Format(iota)
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "undefined"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("unknown_%d", int(f))
	}
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatUndefined, fmt.Errorf("unable to detect the format of '%s': unknown extension", path)
	}
}

type Jobs struct {
	Jobs []Job `yaml:"jobs" toml:"jobs"`
}

func Parse(data []byte, format Format) (*Jobs, error) {
	var jobs Jobs
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("unable to parse YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("unable to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	for idx := range jobs.Jobs {
		if jobs.Jobs[idx].Name == "" {
			jobs.Jobs[idx].Name = fmt.Sprintf("job%d", idx)
		}
	}
	return &jobs, nil
}

func Load(ctx context.Context, path string) (_ret *Jobs, _err error) {
	logger.Tracef(ctx, "Load(%s)", path)
	defer func() { logger.Tracef(ctx, "/Load(%s): %v", path, _err) }()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	jobs, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("unable to load '%s': %w", path, err)
	}
	logger.Debugf(ctx, "loaded %d jobs from '%s': %s", len(jobs.Jobs), path, spew.Sdump(jobs))
	return jobs, nil
}

func (jobs Jobs) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(jobs)
	case FormatTOML:
		var buf strings.Builder
		if err := toml.NewEncoder(&buf).Encode(jobs); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
