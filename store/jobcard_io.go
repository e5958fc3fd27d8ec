package store

import (
	"fmt"
	"strconv"
	"strings"

	"p9e.in/jobcard/jobcard"
)

// JobCardColumns is the scalar snapshot schema of the Job Cards section. The
// order is load-bearing: LoadRecord reads cells positionally after
// normalization.
var JobCardColumns = []string{
	"Job Card No", "Date", "Dispatch Location",
	"Vendor ID", "Vendor Name", "Contact Person", "Mobile", "GST Number", "Vendor Address",
	"Company Name", "Company Address",
	"Operations", "Machine Type", "Cycle Time", "RPM", "Feed", "Gear Setup", "Program No",
	"Tolerance", "Surface Finish", "Hardness", "Thread Gauge", "Expected Delivery",
}

func jobCardCells(rec *jobcard.Record) []string {
	var machineType, cycleTime, rpm, feed, gearSetup, programNo string
	if m := rec.Machine; m != nil {
		machineType = string(m.MachineType)
		cycleTime, rpm, feed = m.CycleTime, m.RPM, m.Feed
		gearSetup, programNo = m.GearSetup, m.ProgramNo
	}
	thread := "No"
	if rec.Quality.ThreadGoNogoRequired {
		thread = "Yes"
	}
	return []string{
		rec.JobNo, rec.JobDate, rec.DispatchLocation,
		rec.Vendor.ID, rec.Vendor.CompanyName, rec.Vendor.ContactPerson,
		rec.Vendor.Mobile, rec.Vendor.GstNumber, rec.Vendor.Address,
		rec.Company.Name, rec.Company.Address,
		strings.Join(rec.OperationsSelected, ", "), machineType, cycleTime, rpm, feed, gearSetup, programNo,
		rec.Quality.Tolerance, rec.Quality.SurfaceFinish, rec.Quality.Hardness,
		thread, rec.Delivery.ExpectedDate,
	}
}

// SaveRecord commits rec section by section: vendor master, the scalar job
// card row, then the three line sections tagged by job number. A failing
// section is reported and the remaining sections are still attempted, so a
// partially persisted card is a possible outcome.
func SaveRecord(a Adapter, rec *jobcard.Record) []SectionResult {
	var results []SectionResult

	results = append(results, saveVendorMaster(a, rec))
	results = append(results, appendRows(a, SectionJobCards, JobCardColumns, [][]string{jobCardCells(rec)}, rec.JobNo))
	results = append(results, appendRows(a, SectionItems, tagged(jobcard.ItemColumns), tagRows(rec.JobNo, rec.ItemsTable()), rec.JobNo))
	results = append(results, appendRows(a, SectionMaterials, tagged(jobcard.MaterialColumns), tagRows(rec.JobNo, rec.MaterialsTable()), rec.JobNo))
	results = append(results, appendRows(a, SectionGrn, tagged(jobcard.GrnColumns), tagRows(rec.JobNo, rec.GrnTable()), rec.JobNo))

	return results
}

func saveVendorMaster(a Adapter, rec *jobcard.Record) SectionResult {
	res := SectionResult{Section: SectionVendorMaster}
	if rec.Vendor.ID == "" {
		return res
	}

	columns := []string{"Vendor ID", "Vendor Name", "Contact Person", "Mobile", "GST", "Address"}
	t, err := a.Load(SectionVendorMaster)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	rows := jobcard.NormalizeTable(anyRows(t.Rows), columns)
	for _, row := range rows {
		if row[0] == rec.Vendor.ID {
			return res // already on the master list
		}
	}
	rows = append(rows, []string{
		rec.Vendor.ID, rec.Vendor.CompanyName, rec.Vendor.ContactPerson,
		rec.Vendor.Mobile, rec.Vendor.GstNumber, rec.Vendor.Address,
	})
	if err := a.Save(SectionVendorMaster, Table{Columns: columns, Rows: rows}); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Rows = 1
	return res
}

// appendRows reloads a section, renormalizes what is already there against
// the current schema, drops any rows previously written for this job number
// and appends the new ones.
func appendRows(a Adapter, section string, columns []string, newRows [][]string, jobNo string) SectionResult {
	res := SectionResult{Section: section}

	t, err := a.Load(section)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	var kept [][]string
	for _, row := range jobcard.NormalizeTable(anyRows(t.Rows), columns) {
		if row[0] != jobNo {
			kept = append(kept, row)
		}
	}
	kept = append(kept, newRows...)

	if err := a.Save(section, Table{Columns: columns, Rows: kept}); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Rows = len(newRows)
	return res
}

// LoadRecord rebuilds a job card from the store by job number. Scalars come
// back exactly; line rows come back as written, though callers should treat
// their order as a multiset.
func LoadRecord(a Adapter, jobNo string) (*jobcard.Record, error) {
	t, err := a.Load(SectionJobCards)
	if err != nil {
		return nil, err
	}

	var cells []string
	for _, row := range jobcard.NormalizeTable(anyRows(t.Rows), JobCardColumns) {
		if row[0] == jobNo {
			cells = row
			break
		}
	}
	if cells == nil {
		return nil, fmt.Errorf("job card %q not found", jobNo)
	}

	rec := &jobcard.Record{
		JobNo:            cells[0],
		JobDate:          cells[1],
		DispatchLocation: cells[2],
		Vendor: jobcard.Vendor{
			ID: cells[3], CompanyName: cells[4], ContactPerson: cells[5],
			Mobile: cells[6], GstNumber: cells[7], Address: cells[8],
		},
		Company: jobcard.Company{Name: cells[9], Address: cells[10]},
		Quality: jobcard.Quality{
			Tolerance: cells[18], SurfaceFinish: cells[19], Hardness: cells[20],
			ThreadGoNogoRequired: cells[21] == "Yes",
		},
		Delivery: jobcard.Delivery{ExpectedDate: cells[22]},
	}
	if ops := cells[11]; ops != "" {
		rec.SelectOperations(strings.Split(ops, ", "))
	}
	if mt := cells[12]; mt != "" {
		rec.Machine = &jobcard.MachineBlock{
			MachineType: jobcard.MachineType(mt),
			CycleTime:   cells[13], RPM: cells[14], Feed: cells[15],
			GearSetup: cells[16], ProgramNo: cells[17],
		}
		rec.Machine.Normalize()
	}

	items, err := loadTagged(a, SectionItems, jobcard.ItemColumns, jobNo)
	if err != nil {
		return nil, err
	}
	for _, row := range items {
		rec.Items.Append(jobcard.ItemRow{
			Description: row[0], DrawingNo: row[1], DrawingLink: row[2],
			Grade: row[3], Qty: parseQty(row[4]), Uom: row[5],
		})
	}

	materials, err := loadTagged(a, SectionMaterials, jobcard.MaterialColumns, jobNo)
	if err != nil {
		return nil, err
	}
	for _, row := range materials {
		rec.Materials.Append(jobcard.MaterialRow{
			RawMaterial: row[0], HeatNo: row[1], DiaSize: row[2],
			Weight: parseQty(row[3]), Qty: parseQty(row[4]), Remark: row[5],
		})
	}

	grn, err := loadTagged(a, SectionGrn, jobcard.GrnColumns, jobNo)
	if err != nil {
		return nil, err
	}
	for _, row := range grn {
		rec.GrnEntries.Append(jobcard.GrnRow{
			Date: row[0], QtyReceived: parseQty(row[1]), OkQty: parseQty(row[2]),
			RejectedQty: parseQty(row[3]), Remarks: row[4], QcApprovedBy: row[5],
		})
	}

	return rec, nil
}

// loadTagged reads a line section and strips the leading job-number column.
func loadTagged(a Adapter, section string, columns []string, jobNo string) ([][]string, error) {
	t, err := a.Load(section)
	if err != nil {
		return nil, err
	}
	var out [][]string
	for _, row := range jobcard.NormalizeTable(anyRows(t.Rows), tagged(columns)) {
		if row[0] == jobNo {
			out = append(out, row[1:])
		}
	}
	return out, nil
}

func tagged(columns []string) []string {
	return append([]string{"Job Card No"}, columns...)
}

func tagRows(jobNo string, rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string{jobNo}, row...)
	}
	return out
}

func anyRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}

func parseQty(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
