// Package dataset holds the tabular player statistics a scouting analysis runs on.
//
// A Dataset is read-only after construction. Filtering produces a new Dataset that shares
// the underlying rows, so the uploaded data is never modified by an analysis.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type record struct {
	index int
	cells []any
}

// Dataset is an ordered set of named columns and rows of cells. Cells are nil, string,
// float64 or int values.
type Dataset struct {
	name    string
	columns []string
	index   map[string]int
	rows    []*record
}

// New builds a dataset from a header and rows. Short rows are padded with nil cells; rows
// wider than the header and duplicate column names are rejected.
func New(name string, columns []string, rows [][]any) (*Dataset, error) {
	d := &Dataset{
		name:    name,
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([]*record, 0, len(rows)),
	}
	for i, c := range d.columns {
		if _, dup := d.index[c]; dup {
			return nil, &DataLoadError{Source: name, Err: fmt.Errorf("duplicate column %q", c)}
		}
		d.index[c] = i
	}
	for i, r := range rows {
		if len(r) > len(columns) {
			return nil, &DataLoadError{Source: name, Err: fmt.Errorf("row %d has %d cells, header has %d", i+1, len(r), len(columns))}
		}
		cells := make([]any, len(columns))
		for j, v := range r {
			cells[j] = normalizeCell(v)
		}
		d.rows = append(d.rows, &record{index: i, cells: cells})
	}
	return d, nil
}

// Name returns the source name the dataset was loaded from.
func (d *Dataset) Name() string { return d.name }

// Columns returns the column names in file order.
func (d *Dataset) Columns() []string { return append([]string(nil), d.columns...) }

// HasColumn reports whether a column with exactly this name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns the i-th row of this dataset.
func (d *Dataset) Row(i int) Row { return Row{ds: d, rec: d.rows[i]} }

// Rows returns every row in order.
func (d *Dataset) Rows() []Row {
	out := make([]Row, len(d.rows))
	for i, r := range d.rows {
		out[i] = Row{ds: d, rec: r}
	}
	return out
}

// Where returns a dataset holding the rows for which keep returns true, in order.
func (d *Dataset) Where(keep func(Row) bool) *Dataset {
	out := &Dataset{name: d.name, columns: d.columns, index: d.index}
	for _, r := range d.rows {
		if keep(Row{ds: d, rec: r}) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// Numbers returns a column coerced to numbers; cells that do not parse become 0.
// A missing column yields nil.
func (d *Dataset) Numbers(column string) []float64 {
	j, ok := d.index[column]
	if !ok {
		return nil
	}
	out := make([]float64, len(d.rows))
	for i, r := range d.rows {
		if v, ok := ToFloat(r.cells[j]); ok {
			out[i] = v
		}
	}
	return out
}

// Validate checks the schema and reports every missing required column at once.
func (d *Dataset) Validate(s Schema) error {
	var missing []string
	for _, c := range s.Required {
		if !d.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Source: d.name, Columns: missing}
	}
	return nil
}

// Row is a read-only view of one player record.
type Row struct {
	ds  *Dataset
	rec *record
}

// Index is the row's position in the dataset it was originally loaded into.
func (r Row) Index() int { return r.rec.index }

// Get returns the raw cell of a column.
func (r Row) Get(column string) (any, bool) {
	j, ok := r.ds.index[column]
	if !ok {
		return nil, false
	}
	v := r.rec.cells[j]
	return v, v != nil
}

// Text returns a text cell. Numbers and blanks are not text.
func (r Row) Text(column string) (string, bool) {
	v, ok := r.Get(column)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Display renders any cell as text for identity columns.
func (r Row) Display(column string) (string, bool) {
	v, ok := r.Get(column)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	default:
		return fmt.Sprint(x), true
	}
}

// Number coerces a cell to a number. ok is false for missing, blank or non-numeric cells.
func (r Row) Number(column string) (float64, bool) {
	v, ok := r.Get(column)
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// ToFloat coerces a cell to a finite number.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func normalizeCell(v any) any {
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return v
	}
}

// Schema lists the columns a dataset must carry.
type Schema struct {
	Required []string
}

// DefaultSchema requires the position-code column only; identity and metric columns are
// optional and resolved later.
func DefaultSchema() Schema {
	return Schema{Required: []string{ColumnPosition}}
}
