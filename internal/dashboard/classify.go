package dashboard

// FillClass buckets a fill level for display.
type FillClass string

const (
	FillHigh   FillClass = "high"
	FillMedium FillClass = "medium"
	FillLow    FillClass = "low"
)

// Classification thresholds. A level equal to a threshold falls in the lower class.
const (
	HighThreshold   = 70
	MediumThreshold = 50
)

// Classify maps a fill level to its class: above 70 is high, above 50 is
// medium, anything else is low.
func Classify(fillLevel int) FillClass {
	switch {
	case fillLevel > HighThreshold:
		return FillHigh
	case fillLevel > MediumThreshold:
		return FillMedium
	default:
		return FillLow
	}
}

// Color is the chart color used for the class.
func (c FillClass) Color() string {
	switch c {
	case FillHigh:
		return "red"
	case FillMedium:
		return "orange"
	default:
		return "#82ca9d"
	}
}

// Classes lists every class from fullest to emptiest.
func Classes() []FillClass {
	return []FillClass{FillHigh, FillMedium, FillLow}
}
