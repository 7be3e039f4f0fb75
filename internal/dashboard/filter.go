package dashboard

import (
	"strings"

	"bindash/internal/model"
)

// Filter returns the bins whose location contains term, ignoring case.
// An empty term returns a copy of all bins.
func Filter(bins []model.TrashBin, term string) []model.TrashBin {
	needle := strings.ToLower(term)
	out := make([]model.TrashBin, 0, len(bins))
	for _, b := range bins {
		if strings.Contains(strings.ToLower(b.Location), needle) {
			out = append(out, b)
		}
	}
	return out
}
