// Package arrowbatch adapts Apache Arrow record batches to the xgbtrees
// Column/Batch interfaces. It is kept separate from the core xgbtrees
// package so that the prediction and pruning logic never has to know
// about a specific columnar I/O library — this is the one adapter that
// does, grounded on the fact that the system this package reimplements
// is built around Arrow end to end.
package arrowbatch

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	xgbtrees "github.com/zhongdai/go-xgbtrees"
)

// float64Column adapts an Arrow *array.Float64.
type float64Column struct{ col *array.Float64 }

func (c float64Column) Len() int { return c.col.Len() }
func (c float64Column) Float64At(i int) (float64, bool) {
	if c.col.IsNull(i) {
		return 0, false
	}
	return c.col.Value(i), true
}

// int64Column adapts an Arrow *array.Int64.
type int64Column struct{ col *array.Int64 }

func (c int64Column) Len() int { return c.col.Len() }
func (c int64Column) Float64At(i int) (float64, bool) {
	if c.col.IsNull(i) {
		return 0, false
	}
	return float64(c.col.Value(i)), true
}

// booleanColumn adapts an Arrow *array.Boolean.
type booleanColumn struct{ col *array.Boolean }

func (c booleanColumn) Len() int { return c.col.Len() }
func (c booleanColumn) Float64At(i int) (float64, bool) {
	if c.col.IsNull(i) {
		return 0, false
	}
	if c.col.Value(i) {
		return 1.0, true
	}
	return 0.0, true
}

// FromRecord converts an Arrow record batch into an xgbtrees.Batch,
// preserving field order. Only float64, int64, and boolean columns are
// supported, matching xgbtrees' declared dtype set; any other Arrow
// column type is rejected rather than silently coerced.
func FromRecord(rec arrow.Record) (*xgbtrees.Batch, error) {
	schema := rec.Schema()
	names := make([]string, rec.NumCols())
	columns := make([]xgbtrees.Column, rec.NumCols())

	for i := 0; i < int(rec.NumCols()); i++ {
		names[i] = schema.Field(i).Name
		col := rec.Column(i)

		switch typed := col.(type) {
		case *array.Float64:
			columns[i] = float64Column{col: typed}
		case *array.Int64:
			columns[i] = int64Column{col: typed}
		case *array.Boolean:
			columns[i] = booleanColumn{col: typed}
		default:
			return nil, &xgbtrees.SchemaMismatchError{
				Detail: fmt.Sprintf("unsupported column type %s for field %q", col.DataType(), names[i]),
			}
		}
	}

	return &xgbtrees.Batch{Names: names, Columns: columns}, nil
}
