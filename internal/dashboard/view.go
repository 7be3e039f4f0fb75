package dashboard

import "bindash/internal/model"

// Row is one bin ready for the table and the chart.
type Row struct {
	model.TrashBin
	Class FillClass `json:"class"`
	Color string    `json:"color"`
}

// View is the derived, ordered and classified subset for a State.
type View struct {
	State State `json:"state"`
	Rows  []Row `json:"data"`
	Total int   `json:"total"`
}

// NewRow classifies a single bin.
func NewRow(b model.TrashBin) Row {
	class := Classify(b.FillLevel)
	return Row{TrashBin: b, Class: class, Color: class.Color()}
}

// Derive filters bins by the state's search term, sorts the result and
// classifies every row.
func Derive(bins []model.TrashBin, state State) View {
	sorted := Sort(Filter(bins, state.Search), state.SortField, state.Direction)
	rows := make([]Row, 0, len(sorted))
	for _, b := range sorted {
		rows = append(rows, NewRow(b))
	}
	return View{State: state, Rows: rows, Total: len(rows)}
}
