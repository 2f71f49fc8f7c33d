package xgbtrees

// Column is the external interface a columnar batch value must satisfy to
// be scored: a sequence of values convertible to float64 (column names
// live on Batch). This
// package treats the caller's columnar I/O library as a collaborator
// described only by this interface — it never imports one directly.
// See the arrowbatch subpackage for an Apache Arrow adapter.
type Column interface {
	// Len returns the number of rows in the column.
	Len() int
	// Float64At returns the row's value as float64 and true, or false if
	// the value is missing/null.
	Float64At(i int) (float64, bool)
}

// Float64Column is a Column backed by a plain []float64. A nil Valid slice
// means every value is present; otherwise Valid[i] == false marks row i as
// missing.
type Float64Column struct {
	Values []float64
	Valid  []bool
}

func (c *Float64Column) Len() int { return len(c.Values) }

func (c *Float64Column) Float64At(i int) (float64, bool) {
	if c.Valid != nil && !c.Valid[i] {
		return 0, false
	}
	return c.Values[i], true
}

// Int64Column is a Column backed by []int64, cast to float64 on read.
type Int64Column struct {
	Values []int64
	Valid  []bool
}

func (c *Int64Column) Len() int { return len(c.Values) }

func (c *Int64Column) Float64At(i int) (float64, bool) {
	if c.Valid != nil && !c.Valid[i] {
		return 0, false
	}
	return float64(c.Values[i]), true
}

// BooleanColumn is a Column backed by []bool; true converts to 1.0, false
// to 0.0.
type BooleanColumn struct {
	Values []bool
	Valid  []bool
}

func (c *BooleanColumn) Len() int { return len(c.Values) }

func (c *BooleanColumn) Float64At(i int) (float64, bool) {
	if c.Valid != nil && !c.Valid[i] {
		return 0, false
	}
	if c.Values[i] {
		return 1.0, true
	}
	return 0.0, true
}

// Batch is a named, ordered set of equal-length columns: one row per
// index across all columns, one column per feature. Names and Columns
// must be the same length and in the same order a FeatureTree's
// feature_offset expects.
type Batch struct {
	Names   []string
	Columns []Column
}

// NumRows returns the row count of the batch's first column, or 0 if the
// batch has no columns.
func (b *Batch) NumRows() int {
	if len(b.Columns) == 0 {
		return 0
	}
	return b.Columns[0].Len()
}
