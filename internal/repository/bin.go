package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"bindash/internal/model"
)

// BinRepository supplies the initial bin collection. Implementations are read-only.
type BinRepository interface {
	// List returns the whole collection in its natural order.
	List(ctx context.Context) ([]model.TrashBin, error)
}

// Format is the encoding of a seed document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName picks the format from a file or object name's extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported seed format %q", path.Ext(name))
	}
}

// seedDocument is the on-disk layout shared by file and object seeds:
//
//	bins:
//	  - id: "1"
//	    location: Park
//	    fill_level: 45
type seedDocument struct {
	Bins []model.TrashBin `json:"bins" yaml:"bins"`
}

// DecodeBins parses a seed document and validates the collection.
func DecodeBins(r io.Reader, f Format) ([]model.TrashBin, error) {
	var doc seedDocument
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json seed: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed format %q", f)
	}
	if err := model.ValidateBins(doc.Bins); err != nil {
		return nil, err
	}
	if doc.Bins == nil {
		doc.Bins = []model.TrashBin{}
	}
	return doc.Bins, nil
}
