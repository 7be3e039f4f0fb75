package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"bindash/internal/model"
)

// Sort returns a new slice ordered by field. Descending reverses the
// comparison, not the result, so equal keys keep their input order either way.
// An unknown field orders by id.
func Sort(bins []model.TrashBin, field SortField, direction SortDirection) []model.TrashBin {
	out := slices.Clone(bins)
	if out == nil {
		out = []model.TrashBin{}
	}
	compare := compareBy(field)
	if direction == Descending {
		slices.SortStableFunc(out, func(a, b model.TrashBin) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}

func compareBy(field SortField) func(a, b model.TrashBin) int {
	switch field {
	case SortByFillLevel:
		return func(a, b model.TrashBin) int { return cmp.Compare(a.FillLevel, b.FillLevel) }
	case SortByLocation:
		return func(a, b model.TrashBin) int { return strings.Compare(a.Location, b.Location) }
	default:
		return func(a, b model.TrashBin) int { return strings.Compare(a.ID, b.ID) }
	}
}
