package model

import (
	"errors"
	"fmt"
)

// Fill level bounds, in percent.
const (
	MinFillLevel = 0
	MaxFillLevel = 100
)

// ErrInvalidBin is returned when a bin collection fails validation.
var ErrInvalidBin = errors.New("invalid trash bin")

// TrashBin is a monitored waste-collection container.
// Like the rest of this package it carries no persistence tags; repositories map it themselves.
type TrashBin struct {
	ID        string `json:"id" yaml:"id"`
	Location  string `json:"location" yaml:"location"`
	FillLevel int    `json:"fill_level" yaml:"fill_level"`
}

// Validate checks a single bin.
func (b TrashBin) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidBin)
	}
	if b.FillLevel < MinFillLevel || b.FillLevel > MaxFillLevel {
		return fmt.Errorf("%w: bin %s fill level %d out of range [%d,%d]",
			ErrInvalidBin, b.ID, b.FillLevel, MinFillLevel, MaxFillLevel)
	}
	return nil
}

// ValidateBins checks every bin and rejects duplicate IDs.
func ValidateBins(bins []TrashBin) error {
	seen := make(map[string]struct{}, len(bins))
	for _, b := range bins {
		if err := b.Validate(); err != nil {
			return err
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidBin, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}
