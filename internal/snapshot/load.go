package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janekbaraniewski/opsboard/internal/core"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the decoder from the file extension. Anything that is not
// .yaml/.yml is read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func Load(path string) (core.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	snap, err := Decode(data, DetectFormat(path))
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snap, nil
}

func Decode(data []byte, format Format) (core.Snapshot, error) {
	var snap core.Snapshot
	if len(bytes.TrimSpace(data)) == 0 {
		return snap, nil
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return core.Snapshot{}, err
		}
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			return core.Snapshot{}, err
		}
	}
	return snap, nil
}

func Encode(snap core.Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(snap)
	default:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Save writes snap to path, encoded for the path's extension.
func Save(path string, snap core.Snapshot) error {
	data, err := Encode(snap, DetectFormat(path))
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
