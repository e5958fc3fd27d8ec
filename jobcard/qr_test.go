package jobcard

import "testing"

func TestBuildQRText(t *testing.T) {
	got := BuildQRText("JC-20240101", "2024-01-01", "Mumbai", "V001")
	want := "JobNo:JC-20240101|Date:2024-01-01|Dispatch:Mumbai|VendorID:V001"
	if got != want {
		t.Errorf("BuildQRText = %q, expected %q", got, want)
	}
}

func TestQRPayloadRecomputedOnEdit(t *testing.T) {
	rec := &Record{JobNo: "JC-1", JobDate: "2024-01-01", DispatchLocation: "Pune"}
	rec.Vendor.ID = "V001"

	first := rec.QRPayload()
	rec.DispatchLocation = "Nashik"
	second := rec.QRPayload()

	if first == second {
		t.Error("payload must change when a source field changes")
	}
	if second != "JobNo:JC-1|Date:2024-01-01|Dispatch:Nashik|VendorID:V001" {
		t.Errorf("payload after edit = %q", second)
	}
}

func TestBarcodeValue(t *testing.T) {
	rec := &Record{JobNo: "JC-20240101-120000"}
	rec.Vendor.ID = "V007"
	if got := rec.BarcodeValue(); got != "JC-20240101-120000-V007" {
		t.Errorf("BarcodeValue = %q", got)
	}
}
