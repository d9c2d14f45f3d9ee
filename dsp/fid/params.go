package fid

// Component is one damped complex sinusoid.
type Component struct {
	// Amplitude is a real scale factor.
	Amplitude float64
	// Phase rotates the complex amplitude, in radians.
	Phase float64
	// Frequency is in cycles per unit time, in the units of the spectral width.
	Frequency float64
	// Damping is the decay rate applied as exp(-Damping*t). Negative values grow.
	Damping float64
}

// Table is an ordered, immutable set of components.
//
// The zero Table has no components and synthesizes an all-zero signal.
type Table struct {
	rows []Component
}

// TableOf returns a table holding copies of components.
func TableOf(components ...Component) Table {
	rows := make([]Component, len(components))
	copy(rows, components)
	return Table{rows: rows}
}

// NewTable builds a table from four parallel columns. Row i takes the i-th
// element of every column. It returns a [*ShapeError] if the column lengths
// differ.
func NewTable(amplitude, phase, frequency, damping []float64) (Table, error) {
	m := len(amplitude)
	if len(phase) != m || len(frequency) != m || len(damping) != m {
		return Table{}, &ShapeError{
			Row:     -1,
			Lengths: [4]int{len(amplitude), len(phase), len(frequency), len(damping)},
		}
	}

	rows := make([]Component, m)
	for i := range rows {
		rows[i] = Component{
			Amplitude: amplitude[i],
			Phase:     phase[i],
			Frequency: frequency[i],
			Damping:   damping[i],
		}
	}
	return Table{rows: rows}, nil
}

// NewTableFromRows builds a table from an M x 4 matrix whose rows are
// (amplitude, phase, frequency, damping). It returns a [*ShapeError] for
// the first row that does not have exactly four fields.
func NewTableFromRows(rows [][]float64) (Table, error) {
	out := make([]Component, len(rows))
	for i, r := range rows {
		if len(r) != 4 {
			return Table{}, &ShapeError{Row: i, Width: len(r)}
		}
		out[i] = Component{Amplitude: r[0], Phase: r[1], Frequency: r[2], Damping: r[3]}
	}
	return Table{rows: out}, nil
}

// Len returns the number of components.
func (t Table) Len() int { return len(t.rows) }

// At returns component i.
func (t Table) At(i int) Component { return t.rows[i] }

// Components returns a copy of the rows.
func (t Table) Components() []Component {
	out := make([]Component, len(t.rows))
	copy(out, t.rows)
	return out
}

// Columns returns the table as four freshly allocated parallel columns.
func (t Table) Columns() (amplitude, phase, frequency, damping []float64) {
	m := len(t.rows)
	amplitude = make([]float64, m)
	phase = make([]float64, m)
	frequency = make([]float64, m)
	damping = make([]float64, m)
	for i, c := range t.rows {
		amplitude[i] = c.Amplitude
		phase[i] = c.Phase
		frequency[i] = c.Frequency
		damping[i] = c.Damping
	}
	return amplitude, phase, frequency, damping
}
