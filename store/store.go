// Package store persists job cards and master lists. Two backends exist: the
// master Excel workbook (the original factory ERP file) and Postgres. Both
// speak the same section/table contract; callers commit one section at a
// time and accept partial completion, there is no cross-section transaction.
package store

// Table is a rectangular section snapshot: a header row plus string cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Adapter loads a section's current table and accepts a full replacement
// table for it.
type Adapter interface {
	Load(section string) (Table, error)
	Save(section string, t Table) error
}

// Section names shared by both backends.
const (
	SectionVendorMaster = "Vendor Master"
	SectionJobCards     = "Job Cards"
	SectionItems        = "Job Card Items"
	SectionMaterials    = "Job Card Materials"
	SectionGrn          = "Job Card GRN"
)

// SectionResult reports the outcome of one section commit.
type SectionResult struct {
	Section string `json:"section"`
	Rows    int    `json:"rows"`
	Error   string `json:"error,omitempty"`
}
