// Package render projects a job card into its output targets: the HTML
// preview, the printable PDF and the spreadsheet workbook. All targets walk
// the same section plan so they agree on section order and on which optional
// sections are present.
package render

import "p9e.in/jobcard/jobcard"

// Section identifies one block of the rendered card.
type Section string

const (
	SectionHeader     Section = "header"
	SectionVendor     Section = "vendor"
	SectionJob        Section = "job"
	SectionCodes      Section = "codes"
	SectionItems      Section = "items"
	SectionMaterials  Section = "materials"
	SectionOperations Section = "operations"
	SectionMachine    Section = "machine"
	SectionQuality    Section = "quality"
	SectionGrn        Section = "grn"
)

// Titles as printed on the card.
var sectionTitles = map[Section]string{
	SectionHeader:     "Header",
	SectionVendor:     "Vendor Details",
	SectionJob:        "Job Details",
	SectionCodes:      "Codes",
	SectionItems:      "Items",
	SectionMaterials:  "Materials Issued",
	SectionOperations: "Operations",
	SectionMachine:    "Machine Details",
	SectionQuality:    "Quality Instructions",
	SectionGrn:        "Goods Received (GRN)",
}

// Title returns the printed heading for a section.
func (s Section) Title() string { return sectionTitles[s] }

// Plan returns the ordered sections for rec. The order is fixed; the machine
// section appears only when the card carries a machine block. Every target
// iterates this plan, so preview and exports cannot drift apart.
func Plan(rec *jobcard.Record) []Section {
	plan := []Section{
		SectionHeader, SectionVendor, SectionJob, SectionCodes,
		SectionItems, SectionMaterials, SectionOperations,
	}
	if rec.Machine != nil {
		plan = append(plan, SectionMachine)
	}
	return append(plan, SectionQuality, SectionGrn)
}

// EmptyNotice is the text shown in place of a zero-row table, so exports
// never print a header-only table.
func EmptyNotice(s Section) string {
	switch s {
	case SectionItems:
		return "No items added."
	case SectionMaterials:
		return "No materials added."
	case SectionGrn:
		return "No GRN entries added."
	}
	return ""
}

// machineRows lists the machine block as label/value pairs, respecting the
// type gate on the extra fields.
func machineRows(m *jobcard.MachineBlock) [][2]string {
	rows := [][2]string{
		{"Machine Type", string(m.MachineType)},
		{"Cycle Time", m.CycleTime},
		{"RPM", m.RPM},
		{"Feed", m.Feed},
	}
	if m.MachineType == jobcard.MachineTraub {
		rows = append(rows, [2]string{"Gear Setup", m.GearSetup})
	}
	if m.MachineType == jobcard.MachineCNC || m.MachineType == jobcard.MachineVMC {
		rows = append(rows, [2]string{"Program No", m.ProgramNo})
	}
	return rows
}
