// Package jobcard holds the in-session job card aggregate: the scalar blocks,
// the three ordered row stores, and the derived QR payload. One Record exists
// per user session and is the single source of truth for every render and
// save.
package jobcard

import (
	"fmt"
	"strings"
	"time"
)

// Operations is the fixed operation vocabulary. Its order here is the render
// order for the operations line, regardless of selection order.
var Operations = []string{
	"Cutting", "Turning", "Milling", "Threading", "Drilling",
	"Punching", "Deburring", "Plating", "Packing",
}

// MachineType enumerates the machines a card may carry parameters for.
type MachineType string

const (
	MachineTraub   MachineType = "Traub"
	MachineCNC     MachineType = "CNC"
	MachineVMC     MachineType = "VMC"
	MachineLathe   MachineType = "Lathe"
	MachineMilling MachineType = "Milling"
)

var machineTypes = []MachineType{MachineTraub, MachineCNC, MachineVMC, MachineLathe, MachineMilling}

// ValidMachineType reports whether s names a known machine type.
func ValidMachineType(s string) bool {
	for _, mt := range machineTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Company is the issuing company header block. Logo holds the uploaded image
// bytes; the upload is read once into this buffer and the buffer is what
// every subsequent render consumes.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Logo    []byte `json:"-"`
}

// Vendor is the vendor block on the card.
type Vendor struct {
	ID            string `json:"id"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Mobile        string `json:"mobile"`
	GstNumber     string `json:"gstNumber"`
	Address       string `json:"address"`
}

// MachineBlock carries machine parameters. GearSetup is meaningful only for
// Traub, ProgramNo only for CNC/VMC; Normalize clears whatever the machine
// type does not define.
type MachineBlock struct {
	MachineType MachineType `json:"machineType"`
	CycleTime   string      `json:"cycleTime"`
	RPM         string      `json:"rpm"`
	Feed        string      `json:"feed"`
	GearSetup   string      `json:"gearSetup,omitempty"`
	ProgramNo   string      `json:"programNo,omitempty"`
}

// Normalize drops type-specific fields that do not belong to the selected
// machine type.
func (m *MachineBlock) Normalize() {
	if m.MachineType != MachineTraub {
		m.GearSetup = ""
	}
	if m.MachineType != MachineCNC && m.MachineType != MachineVMC {
		m.ProgramNo = ""
	}
}

// Quality is the quality-instruction block.
type Quality struct {
	Tolerance            string `json:"tolerance"`
	SurfaceFinish        string `json:"surfaceFinish"`
	Hardness             string `json:"hardness"`
	ThreadGoNogoRequired bool   `json:"threadGoNogoRequired"`
}

// Delivery is the delivery block.
type Delivery struct {
	ExpectedDate string `json:"expectedDate"`
}

// Record is the per-session job card aggregate.
type Record struct {
	JobNo              string             `json:"jobNo"`
	JobDate            string             `json:"jobDate"`
	DispatchLocation   string             `json:"dispatchLocation"`
	Company            Company            `json:"company"`
	Vendor             Vendor             `json:"vendor"`
	Items              Store[ItemRow]     `json:"items"`
	Materials          Store[MaterialRow] `json:"materials"`
	GrnEntries         Store[GrnRow]      `json:"grnEntries"`
	OperationsSelected []string           `json:"operationsSelected"`
	Machine            *MachineBlock      `json:"machine,omitempty"`
	Quality            Quality            `json:"quality"`
	Delivery           Delivery           `json:"delivery"`
}

// NewRecord returns an empty card with a time-derived job number.
func NewRecord(now time.Time) *Record {
	return &Record{
		JobNo:   fmt.Sprintf("JC-%s-%s", now.Format("20060102"), now.Format("150405")),
		JobDate: now.Format("2006-01-02"),
	}
}

// QRPayload is derived from the four identity fields on every call; it is
// never cached, so edits to any source field are always reflected.
func (r *Record) QRPayload() string {
	return BuildQRText(r.JobNo, r.JobDate, r.DispatchLocation, r.Vendor.ID)
}

// BarcodeValue is the linear-barcode content printed beside the QR code.
func (r *Record) BarcodeValue() string {
	return r.JobNo + "-" + r.Vendor.ID
}

// SelectOperations replaces the selection, keeping only known operations and
// storing them in vocabulary order.
func (r *Record) SelectOperations(selected []string) {
	chosen := make(map[string]bool, len(selected))
	for _, op := range selected {
		chosen[op] = true
	}
	r.OperationsSelected = r.OperationsSelected[:0]
	for _, op := range Operations {
		if chosen[op] {
			r.OperationsSelected = append(r.OperationsSelected, op)
		}
	}
}

// OperationsLine renders the selection for display: vocabulary order, or the
// literal "None" when nothing is selected.
func (r *Record) OperationsLine() string {
	if len(r.OperationsSelected) == 0 {
		return "None"
	}
	return strings.Join(r.OperationsSelected, ", ")
}

// GrnWarnings reports GRN rows where received != ok + rejected. The check is
// advisory: rows are accepted either way.
func (r *Record) GrnWarnings() []string {
	var warnings []string
	for i, g := range r.GrnEntries.Rows() {
		if g.QtyReceived != g.OkQty+g.RejectedQty {
			warnings = append(warnings, fmt.Sprintf(
				"GRN row %d: qty received %g does not equal ok %g + rejected %g",
				i+1, g.QtyReceived, g.OkQty, g.RejectedQty))
		}
	}
	return warnings
}
