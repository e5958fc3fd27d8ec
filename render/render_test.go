package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"p9e.in/jobcard/jobcard"
)

func sampleRecord() *jobcard.Record {
	rec := &jobcard.Record{
		JobNo:            "JC-20240101-120000",
		JobDate:          "2024-01-01",
		DispatchLocation: "Mumbai",
		Company:          jobcard.Company{Name: "Shree Precision Works", Address: "Pune"},
		Vendor: jobcard.Vendor{
			ID: "V001", CompanyName: "Apex Engineering", ContactPerson: "R. Sharma",
			Mobile: "9800000000", GstNumber: "27ABCDE1234F1Z5", Address: "Bhosari",
		},
		Quality:  jobcard.Quality{Tolerance: "±0.05", SurfaceFinish: "Ra 1.6", ThreadGoNogoRequired: true},
		Delivery: jobcard.Delivery{ExpectedDate: "2024-01-20"},
	}
	rec.SelectOperations([]string{"Packing", "Cutting"})
	rec.Items.Append(jobcard.ItemRow{Description: "Bush", DrawingNo: "DRG-01", Qty: 100, Uom: "Nos"})
	rec.Materials.Append(jobcard.MaterialRow{RawMaterial: "EN8", HeatNo: "H123", Qty: 20})
	rec.GrnEntries.Append(jobcard.GrnRow{Date: "2024-01-10", QtyReceived: 50, OkQty: 48, RejectedQty: 2})
	return rec
}

func TestPlanSectionOrder(t *testing.T) {
	rec := sampleRecord()

	got := Plan(rec)
	want := []Section{
		SectionHeader, SectionVendor, SectionJob, SectionCodes,
		SectionItems, SectionMaterials, SectionOperations,
		SectionQuality, SectionGrn,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Plan without machine = %v", got)
	}

	rec.Machine = &jobcard.MachineBlock{MachineType: jobcard.MachineTraub}
	got = Plan(rec)
	if got[7] != SectionMachine {
		t.Errorf("machine section missing or misplaced: %v", got)
	}
	if len(got) != len(want)+1 {
		t.Errorf("Plan with machine has %d sections", len(got))
	}
}

func TestPreviewSectionOrder(t *testing.T) {
	rec := sampleRecord()
	rec.Machine = &jobcard.MachineBlock{MachineType: jobcard.MachineTraub, CycleTime: "45s", GearSetup: "42T"}

	html := Preview(rec)

	headings := []string{
		"Vendor Details", "Job Details", "Items", "Materials Issued",
		"Operations", "Machine Details", "Quality Instructions", "Goods Received (GRN)",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(html, h)
		if idx < 0 {
			t.Fatalf("preview missing section %q", h)
		}
		if idx < last {
			t.Errorf("section %q out of order", h)
		}
		last = idx
	}
}

func TestPreviewOperationsLine(t *testing.T) {
	rec := sampleRecord()
	if html := Preview(rec); !strings.Contains(html, "<p>Cutting, Packing</p>") {
		t.Error("operations line should list selections in vocabulary order")
	}

	rec.SelectOperations(nil)
	if html := Preview(rec); !strings.Contains(html, "<p>None</p>") {
		t.Error("empty selection should render the literal None")
	}
}

func TestPreviewQualityFlag(t *testing.T) {
	rec := sampleRecord()
	if html := Preview(rec); !strings.Contains(html, "Thread GO / NO-GO gauge check required.") {
		t.Error("true flag should render the gauge sentence")
	}

	rec.Quality.ThreadGoNogoRequired = false
	if html := Preview(rec); strings.Contains(html, "Thread GO / NO-GO") {
		t.Error("false flag must render nothing, not a placeholder")
	}
}

func TestPreviewEmptyFieldsRenderEmpty(t *testing.T) {
	rec := &jobcard.Record{JobNo: "JC-1"}
	html := Preview(rec)
	if strings.Contains(html, "<td>None</td>") {
		t.Error("unset string fields must render empty, never None")
	}
}

func TestPreviewAndWorkbookSectionParity(t *testing.T) {
	for _, withMachine := range []bool{false, true} {
		rec := sampleRecord()
		if withMachine {
			rec.Machine = &jobcard.MachineBlock{MachineType: jobcard.MachineCNC, ProgramNo: "O1234"}
		}

		html := Preview(rec)
		f, err := Workbook(rec)
		if err != nil {
			t.Fatalf("workbook: %v", err)
		}

		previewHasMachine := strings.Contains(html, "Machine Details")
		workbookHasMachine := false
		for _, sheet := range f.GetSheetList() {
			if sheet == "Machine Details" {
				workbookHasMachine = true
			}
		}

		if previewHasMachine != withMachine || workbookHasMachine != withMachine {
			t.Errorf("machine=%v: preview has %v, workbook has %v",
				withMachine, previewHasMachine, workbookHasMachine)
		}
	}
}

func TestWorkbookSheets(t *testing.T) {
	f, err := Workbook(sampleRecord())
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	want := []string{"Job Details", "Items", "Materials", "Operations", "GRN"}
	got := f.GetSheetList()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, expected %v", got, want)
	}
}

func TestWorkbookEmptyItemsNotice(t *testing.T) {
	rec := sampleRecord()
	rec.Items.Replace(nil)

	f, err := Workbook(rec)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	notice, err := f.GetCellValue("Items", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if notice != "No items added." {
		t.Errorf("empty items cell = %q, expected the notice", notice)
	}

	header, _ := f.GetCellValue("Items", "A1")
	if header != "Description" {
		t.Errorf("header row = %q", header)
	}
}

func TestPDFOutput(t *testing.T) {
	rec := sampleRecord()
	rec.Machine = &jobcard.MachineBlock{MachineType: jobcard.MachineTraub, CycleTime: "45s", RPM: "1200", GearSetup: "42T"}

	data, err := PDF(rec)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF stream")
	}
}

func TestPDFEmptyTables(t *testing.T) {
	rec := &jobcard.Record{JobNo: "JC-1", Company: jobcard.Company{Name: "X"}}
	data, err := PDF(rec)
	if err != nil {
		t.Fatalf("pdf with empty tables: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty card should still render")
	}
}

func TestTruncateSheetName(t *testing.T) {
	long := strings.Repeat("x", 40)
	if got := TruncateSheetName(long); len(got) != 31 {
		t.Errorf("truncated length = %d", len(got))
	}
	if got := TruncateSheetName("Items"); got != "Items" {
		t.Errorf("short name changed: %q", got)
	}
}
