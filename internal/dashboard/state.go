package dashboard

import (
	"errors"
	"fmt"
)

// SortField names a TrashBin field the view can be ordered by.
type SortField string

const (
	SortByID        SortField = "id"
	SortByLocation  SortField = "location"
	SortByFillLevel SortField = "fillLevel"
)

// SortDirection is either ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// State is the transient, user-controlled part of the dashboard.
type State struct {
	Search    string        `json:"search"`
	SortField SortField     `json:"sort"`
	Direction SortDirection `json:"order"`
}

// DefaultState is an empty search ordered by id ascending.
func DefaultState() State {
	return State{SortField: SortByID, Direction: Ascending}
}

// fillLevelKey is the JSON name of the fill level, accepted as a sort key so
// clients can sort by the field names they receive.
const fillLevelKey = "fill_level"

// ParseSortField accepts the empty string as the default field.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case "":
		return SortByID, nil
	case fillLevelKey:
		return SortByFillLevel, nil
	case SortByID, SortByLocation, SortByFillLevel:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
}

// ParseSortDirection accepts the empty string as ascending.
func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case "":
		return Ascending, nil
	case Ascending, Descending:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
	}
}

// NewState builds a validated State from raw request values.
func NewState(search, field, direction string) (State, error) {
	f, err := ParseSortField(field)
	if err != nil {
		return State{}, err
	}
	d, err := ParseSortDirection(direction)
	if err != nil {
		return State{}, err
	}
	return State{Search: search, SortField: f, Direction: d}, nil
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ToggleSort flips the direction when field is already the sort field,
// otherwise it switches to field in ascending order. The search term is kept.
func (s State) ToggleSort(field SortField) State {
	if s.SortField == field {
		s.Direction = s.Direction.Flip()
		return s
	}
	s.SortField = field
	s.Direction = Ascending
	return s
}
