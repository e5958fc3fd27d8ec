package store

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"p9e.in/jobcard/jobcard"
)

func testStore(t *testing.T) *WorkbookStore {
	t.Helper()
	return NewWorkbookStore(filepath.Join(t.TempDir(), "Factory_ERP.xlsx"))
}

func testRecord() *jobcard.Record {
	rec := &jobcard.Record{
		JobNo:            "JC-20240101-120000",
		JobDate:          "2024-01-01",
		DispatchLocation: "Mumbai",
		Company:          jobcard.Company{Name: "Shree Precision Works", Address: "Plot 14, MIDC, Pune"},
		Vendor: jobcard.Vendor{
			ID: "V001", CompanyName: "Apex Engineering", ContactPerson: "R. Sharma",
			Mobile: "9800000000", GstNumber: "27ABCDE1234F1Z5", Address: "Bhosari",
		},
		Quality:  jobcard.Quality{Tolerance: "±0.05", SurfaceFinish: "Ra 1.6", Hardness: "HRC 40", ThreadGoNogoRequired: true},
		Delivery: jobcard.Delivery{ExpectedDate: "2024-01-20"},
	}
	rec.SelectOperations([]string{"Cutting", "Turning", "Packing"})
	rec.Machine = &jobcard.MachineBlock{MachineType: jobcard.MachineTraub, CycleTime: "45s", RPM: "1200", Feed: "0.2", GearSetup: "42T"}
	rec.Items.Append(jobcard.ItemRow{Description: "Bush", DrawingNo: "DRG-01", DrawingLink: "http://drawings/01", Grade: "EN8", Qty: 100, Uom: "Nos"})
	rec.Items.Append(jobcard.ItemRow{Description: "Pin", DrawingNo: "DRG-02", Qty: 50, Uom: "Nos"})
	rec.Materials.Append(jobcard.MaterialRow{RawMaterial: "EN8 Rod", HeatNo: "H123", DiaSize: "25mm", Weight: 12.5, Qty: 20, Remark: "annealed"})
	rec.GrnEntries.Append(jobcard.GrnRow{Date: "2024-01-10", QtyReceived: 50, OkQty: 48, RejectedQty: 2, Remarks: "ok", QcApprovedBy: "QC1"})
	return rec
}

func TestWorkbookRoundTrip(t *testing.T) {
	ws := testStore(t)
	rec := testRecord()

	results := SaveRecord(ws, rec)
	for _, res := range results {
		if res.Error != "" {
			t.Fatalf("section %s failed: %s", res.Section, res.Error)
		}
	}

	loaded, err := LoadRecord(ws, rec.JobNo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Scalar fields must survive exactly.
	if loaded.JobNo != rec.JobNo || loaded.JobDate != rec.JobDate || loaded.DispatchLocation != rec.DispatchLocation {
		t.Errorf("job scalars: got %s/%s/%s", loaded.JobNo, loaded.JobDate, loaded.DispatchLocation)
	}
	if loaded.Vendor != rec.Vendor {
		t.Errorf("vendor = %+v, expected %+v", loaded.Vendor, rec.Vendor)
	}
	if loaded.Company.Name != rec.Company.Name || loaded.Company.Address != rec.Company.Address {
		t.Errorf("company = %+v", loaded.Company)
	}
	if loaded.Quality != rec.Quality {
		t.Errorf("quality = %+v, expected %+v", loaded.Quality, rec.Quality)
	}
	if loaded.Delivery != rec.Delivery {
		t.Errorf("delivery = %+v", loaded.Delivery)
	}
	if !reflect.DeepEqual(loaded.OperationsSelected, rec.OperationsSelected) {
		t.Errorf("operations = %v", loaded.OperationsSelected)
	}
	if loaded.Machine == nil || *loaded.Machine != *rec.Machine {
		t.Errorf("machine = %+v, expected %+v", loaded.Machine, rec.Machine)
	}

	// Row collections reload as the same multiset.
	assertSameMultiset(t, "items", loaded.ItemsTable(), rec.ItemsTable())
	assertSameMultiset(t, "materials", loaded.MaterialsTable(), rec.MaterialsTable())
	assertSameMultiset(t, "grn", loaded.GrnTable(), rec.GrnTable())
}

func TestLoadUnknownJobNo(t *testing.T) {
	ws := testStore(t)
	if _, err := LoadRecord(ws, "JC-missing"); err == nil {
		t.Error("loading an unsaved job number should fail")
	}
}

func TestSaveRecordIdempotentPerJob(t *testing.T) {
	ws := testStore(t)
	rec := testRecord()

	SaveRecord(ws, rec)
	SaveRecord(ws, rec)

	loaded, err := LoadRecord(ws, rec.JobNo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Items.Len() != rec.Items.Len() {
		t.Errorf("double save duplicated rows: %d items", loaded.Items.Len())
	}
}

func TestVendorMasterAppendsOnce(t *testing.T) {
	ws := testStore(t)
	rec := testRecord()

	SaveRecord(ws, rec)
	SaveRecord(ws, rec)

	tab, err := ws.Load(SectionVendorMaster)
	if err != nil {
		t.Fatalf("load vendor master: %v", err)
	}
	count := 0
	for _, row := range tab.Rows {
		if len(row) > 0 && row[0] == "V001" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("vendor V001 appears %d times on the master list", count)
	}
}

func TestWorkbookCreatesTemplate(t *testing.T) {
	ws := testStore(t)

	// Any load creates the master file from the template.
	if _, err := ws.Load(SectionVendorMaster); err != nil {
		t.Fatalf("load: %v", err)
	}

	tab, err := ws.Load("Customer Master")
	if err != nil {
		t.Fatalf("load customer master: %v", err)
	}
	want := []string{"Customer ID", "Customer Name", "Contact", "Email", "Address", "GST", "Payment Terms"}
	if !reflect.DeepEqual(tab.Columns, want) {
		t.Errorf("customer master header = %v", tab.Columns)
	}
}

func TestWorkbookSaveReplacesSection(t *testing.T) {
	ws := testStore(t)

	first := Table{Columns: []string{"A", "B"}, Rows: [][]string{{"1", "2"}, {"3", "4"}}}
	if err := ws.Save("Scratch", first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := Table{Columns: []string{"A", "B"}, Rows: [][]string{{"9", "8"}}}
	if err := ws.Save("Scratch", second); err != nil {
		t.Fatalf("save: %v", err)
	}

	tab, err := ws.Load("Scratch")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tab.Rows) != 1 || tab.Rows[0][0] != "9" {
		t.Errorf("save is not a full replacement: %v", tab.Rows)
	}
}

func assertSameMultiset(t *testing.T, name string, got, want [][]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: %d rows, expected %d", name, len(got), len(want))
		return
	}
	g := make([]string, len(got))
	for i, row := range got {
		g[i] = join(row)
	}
	w := make([]string, len(want))
	for i, row := range want {
		w[i] = join(row)
	}
	sort.Strings(g)
	sort.Strings(w)
	if !reflect.DeepEqual(g, w) {
		t.Errorf("%s rows differ:\ngot  %v\nwant %v", name, got, want)
	}
}

func join(row []string) string {
	out := ""
	for _, c := range row {
		out += c + "\x1f"
	}
	return out
}
