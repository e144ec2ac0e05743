package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/satlens/satlens/internal/model"
)

// Format identifies the encoding of a block-record file.
type Format int

const (
	// FormatJSON is the upstream parser's default output encoding.
	FormatJSON Format = iota

	// FormatYAML is accepted for hand-edited block files.
	FormatYAML
)

// ErrUnknownBlockKind is returned when a block record carries a kind tag
// this version of satlens does not understand.
var ErrUnknownBlockKind = errors.New("unknown block kind")

// DetectFormat picks the encoding from the file extension.
// Unknown extensions fall back to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the block records at path into a Log.
func Load(path string) (*model.Log, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log, err := Decode(f, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return log, nil
}

// Decode reads block records from r in the given format.
func Decode(r io.Reader, format Format) (*model.Log, error) {
	if format == FormatYAML {
		return decodeYAML(r)
	}
	return decodeJSON(r)
}

// newBlock maps a kind tag to an empty block record of the matching type.
func newBlock(kind model.BlockKind) (model.Block, error) {
	switch kind {
	case model.KindSolver:
		return &model.SolverBlock{}, nil
	case model.KindInitialModel:
		return &model.InitialModelBlock{}, nil
	case model.KindSearchProgress:
		return &model.SearchProgressBlock{}, nil
	case model.KindResponse:
		return &model.ResponseBlock{}, nil
	case model.KindPresolveSummary:
		return &model.PresolveSummaryBlock{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockKind, kind)
	}
}

// decodeJSON decodes the JSON block file layout.
// Each block is decoded twice: once for the kind tag, once into the
// concrete record type the tag names.
func decodeJSON(r io.Reader) (*model.Log, error) {
	var file struct {
		Comments []string          `json:"comments"`
		Blocks   []json.RawMessage `json:"blocks"`
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}

	log := &model.Log{Comments: file.Comments}
	for i, raw := range file.Blocks {
		var tag struct {
			Kind model.BlockKind `json:"kind"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}

		block, err := newBlock(tag.Kind)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if err := json.Unmarshal(raw, block); err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, tag.Kind, err)
		}
		log.Blocks = append(log.Blocks, block)
	}

	return log, nil
}

// decodeYAML decodes the YAML block file layout.
func decodeYAML(r io.Reader) (*model.Log, error) {
	var file struct {
		Comments []string    `yaml:"comments"`
		Blocks   []yaml.Node `yaml:"blocks"`
	}

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &model.Log{}, nil
		}
		return nil, err
	}

	log := &model.Log{Comments: file.Comments}
	for i, node := range file.Blocks {
		var tag struct {
			Kind model.BlockKind `yaml:"kind"`
		}
		if err := node.Decode(&tag); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}

		block, err := newBlock(tag.Kind)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if err := node.Decode(block); err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, tag.Kind, err)
		}
		log.Blocks = append(log.Blocks, block)
	}

	return log, nil
}
