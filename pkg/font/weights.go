package font

// Weight maps a weight label used in file names to its CSS font-weight.
type Weight struct {
	Label  string
	Number int
}

// WeightTable is an ordered, read-only set of weight labels.
// Order matters: the filename parser tries labels in table order.
type WeightTable struct {
	weights []Weight
}

// DefaultWeights is the nine-label table Google Fonts file names use.
var DefaultWeights = NewWeightTable(
	Weight{Label: "Thin", Number: 100},
	Weight{Label: "ExtraLight", Number: 200},
	Weight{Label: "Light", Number: 300},
	Weight{Label: "Regular", Number: 400},
	Weight{Label: "Medium", Number: 500},
	Weight{Label: "SemiBold", Number: 600},
	Weight{Label: "Bold", Number: 700},
	Weight{Label: "ExtraBold", Number: 800},
	Weight{Label: "Black", Number: 900},
)

// NewWeightTable copies weights into a new table.
func NewWeightTable(weights ...Weight) WeightTable {
	return WeightTable{weights: append([]Weight(nil), weights...)}
}

// Number returns the numeric weight for label.
func (t WeightTable) Number(label string) (int, bool) {
	for _, w := range t.weights {
		if w.Label == label {
			return w.Number, true
		}
	}
	return 0, false
}

// Label returns the label registered for a numeric weight.
func (t WeightTable) Label(number int) (string, bool) {
	for _, w := range t.weights {
		if w.Number == number {
			return w.Label, true
		}
	}
	return "", false
}

// Resolve returns the numeric weight for label, DefaultFontWeight when the
// label is empty or unknown.
func (t WeightTable) Resolve(label string) int {
	if n, ok := t.Number(label); ok {
		return n
	}
	return DefaultFontWeight
}

// prefix returns the first label in table order that s starts with.
func (t WeightTable) prefix(s string) string {
	for _, w := range t.weights {
		if len(s) >= len(w.Label) && s[:len(w.Label)] == w.Label {
			return w.Label
		}
	}
	return ""
}

// Labels returns the labels in table order.
func (t WeightTable) Labels() []string {
	labels := make([]string, len(t.weights))
	for i, w := range t.weights {
		labels[i] = w.Label
	}
	return labels
}
