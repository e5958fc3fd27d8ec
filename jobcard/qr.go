package jobcard

import "fmt"

// BuildQRText formats the scannable identity payload. The field order is
// frozen: printed cards are scanned long after the fact, so reordering or
// renaming fields breaks every historical code.
func BuildQRText(jobNo, jobDate, dispatchLocation, vendorID string) string {
	return fmt.Sprintf("JobNo:%s|Date:%s|Dispatch:%s|VendorID:%s",
		jobNo, jobDate, dispatchLocation, vendorID)
}
