package jobcard

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Store is an ordered row collection for one card section. Rows keep
// insertion order; Delete shifts later rows down without reordering the rest.
type Store[T any] struct {
	rows []T
}

// Append adds a row at the end. No field is required to be unique.
func (s *Store[T]) Append(row T) {
	s.rows = append(s.rows, row)
}

// Update mutates the row at index i in place. An out-of-range index is a
// caller bug and fails the operation without touching the store.
func (s *Store[T]) Update(i int, mutate func(*T)) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row index %d out of range [0,%d)", i, len(s.rows))
	}
	mutate(&s.rows[i])
	return nil
}

// Delete removes the row at index i, shifting subsequent rows down by one.
func (s *Store[T]) Delete(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row index %d out of range [0,%d)", i, len(s.rows))
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

func (s *Store[T]) Len() int { return len(s.rows) }

// Rows returns the backing slice in insertion order. Callers treat it as
// read-only.
func (s *Store[T]) Rows() []T { return s.rows }

// Replace swaps in a whole new row set (used when adopting a persisted card).
func (s *Store[T]) Replace(rows []T) { s.rows = rows }

// MarshalJSON/UnmarshalJSON expose the store as a plain JSON array.
func (s Store[T]) MarshalJSON() ([]byte, error) {
	if s.rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.rows)
}

func (s *Store[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &s.rows)
}

// NormalizeTable forces every row to exactly len(columns) string cells:
// short rows are right-padded with "", long rows truncated, nil cells become
// "". Rows written against an older column schema pass through rendering
// without breaking it.
func NormalizeTable(rows [][]any, columns []string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(columns))
		for j := range columns {
			if j < len(row) && row[j] != nil {
				cells[j] = cellString(row[j])
			}
		}
		out[i] = cells
	}
	return out
}

func cellString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(x)
	}
}

// ItemRow is one line of the Items section.
type ItemRow struct {
	Description string  `json:"description"`
	DrawingNo   string  `json:"drawingNo"`
	DrawingLink string  `json:"drawingLink"`
	Grade       string  `json:"grade"`
	Qty         float64 `json:"qty"`
	Uom         string  `json:"uom"`
}

// MaterialRow is one line of the Materials Issued section.
type MaterialRow struct {
	RawMaterial string  `json:"rawMaterial"`
	HeatNo      string  `json:"heatNo"`
	DiaSize     string  `json:"diaSize"`
	Weight      float64 `json:"weight"`
	Qty         float64 `json:"qty"`
	Remark      string  `json:"remark"`
}

// GrnRow is one goods-received line.
type GrnRow struct {
	Date         string  `json:"date"`
	QtyReceived  float64 `json:"qtyReceived"`
	OkQty        float64 `json:"okQty"`
	RejectedQty  float64 `json:"rejectedQty"`
	Remarks      string  `json:"remarks"`
	QcApprovedBy string  `json:"qcApprovedBy"`
}

// Column headers for the three sections. Renderers and the persistence layer
// share these so a schema change happens in one place.
var (
	ItemColumns     = []string{"Description", "Drawing No", "Drawing Link", "Grade", "Qty", "UOM"}
	MaterialColumns = []string{"Raw Material", "Heat No", "Dia/Size", "Weight", "Qty", "Remark"}
	GrnColumns      = []string{"Date", "Qty Received", "OK Qty", "Rejected Qty", "Remarks", "QC Approved By"}
)

func (r ItemRow) cells() []any {
	uom := r.Uom
	if uom == "" {
		uom = "Nos"
	}
	return []any{r.Description, r.DrawingNo, r.DrawingLink, r.Grade, r.Qty, uom}
}

func (r MaterialRow) cells() []any {
	return []any{r.RawMaterial, r.HeatNo, r.DiaSize, r.Weight, r.Qty, r.Remark}
}

func (r GrnRow) cells() []any {
	return []any{r.Date, r.QtyReceived, r.OkQty, r.RejectedQty, r.Remarks, r.QcApprovedBy}
}

// ItemsTable returns the normalized Items table for rendering or persistence.
func (r *Record) ItemsTable() [][]string {
	return NormalizeTable(rawCells(r.Items.Rows(), ItemRow.cells), ItemColumns)
}

// MaterialsTable returns the normalized Materials table.
func (r *Record) MaterialsTable() [][]string {
	return NormalizeTable(rawCells(r.Materials.Rows(), MaterialRow.cells), MaterialColumns)
}

// GrnTable returns the normalized GRN table.
func (r *Record) GrnTable() [][]string {
	return NormalizeTable(rawCells(r.GrnEntries.Rows(), GrnRow.cells), GrnColumns)
}

func rawCells[T any](rows []T, cells func(T) []any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = cells(row)
	}
	return out
}
