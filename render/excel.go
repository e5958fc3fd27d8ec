package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"p9e.in/jobcard/jobcard"
)

// maxSheetName is the xlsx sheet-name limit. Longer names are cut without
// disambiguation.
const maxSheetName = 31

// Workbook renders the spreadsheet export: one worksheet per card section.
// The scalar sections (header, vendor, job, codes, quality) collapse into the
// "Job Details" sheet; the machine sheet exists only when the card has a
// machine block.
func Workbook(rec *jobcard.Record) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D9D9D9"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("workbook style: %w", err)
	}

	details := [][]string{
		{"Company", rec.Company.Name},
		{"Company Address", rec.Company.Address},
		{"Job Card No", rec.JobNo},
		{"Date", rec.JobDate},
		{"Dispatch Location", rec.DispatchLocation},
		{"Expected Delivery", rec.Delivery.ExpectedDate},
		{"Vendor ID", rec.Vendor.ID},
		{"Vendor", rec.Vendor.CompanyName},
		{"Contact Person", rec.Vendor.ContactPerson},
		{"Mobile", rec.Vendor.Mobile},
		{"GST Number", rec.Vendor.GstNumber},
		{"Vendor Address", rec.Vendor.Address},
		{"QR Payload", rec.QRPayload()},
		{"Barcode", rec.BarcodeValue()},
		{"Tolerance", rec.Quality.Tolerance},
		{"Surface Finish", rec.Quality.SurfaceFinish},
		{"Hardness", rec.Quality.Hardness},
	}
	if rec.Quality.ThreadGoNogoRequired {
		details = append(details, []string{"Thread Gauge", "Thread GO / NO-GO gauge check required."})
	}

	for _, section := range Plan(rec) {
		switch section {
		case SectionJob:
			if err := writePairSheet(f, "Job Details", headerStyle, details); err != nil {
				return nil, err
			}
		case SectionItems:
			if err := writeTableSheet(f, "Items", headerStyle, jobcard.ItemColumns, rec.ItemsTable(), EmptyNotice(section)); err != nil {
				return nil, err
			}
		case SectionMaterials:
			if err := writeTableSheet(f, "Materials", headerStyle, jobcard.MaterialColumns, rec.MaterialsTable(), EmptyNotice(section)); err != nil {
				return nil, err
			}
		case SectionOperations:
			rows := [][]string{{"Operations Selected", rec.OperationsLine()}}
			for _, op := range rec.OperationsSelected {
				rows = append(rows, []string{"", op})
			}
			if err := writePairSheet(f, "Operations", headerStyle, rows); err != nil {
				return nil, err
			}
		case SectionMachine:
			var rows [][]string
			for _, p := range machineRows(rec.Machine) {
				rows = append(rows, []string{p[0], p[1]})
			}
			if err := writePairSheet(f, "Machine Details", headerStyle, rows); err != nil {
				return nil, err
			}
		case SectionGrn:
			if err := writeTableSheet(f, "GRN", headerStyle, jobcard.GrnColumns, rec.GrnTable(), EmptyNotice(section)); err != nil {
				return nil, err
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

// TruncateSheetName applies the 31-char xlsx limit.
func TruncateSheetName(name string) string {
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}

func writePairSheet(f *excelize.File, name string, headerStyle int, rows [][]string) error {
	sheet := TruncateSheetName(name)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{row[0], row[1]}); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "B", 28)
}

func writeTableSheet(f *excelize.File, name string, headerStyle int, columns []string, rows [][]string, emptyNotice string) error {
	sheet := TruncateSheetName(name)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	firstCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheet, firstCell, lastCell, headerStyle); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return err
	}

	if len(rows) == 0 {
		return f.SetCellValue(sheet, "A2", emptyNotice)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
