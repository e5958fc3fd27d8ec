package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// WorkbookStore persists sections as worksheets of the factory master
// workbook (Factory_ERP.xlsx by default). The file is created from the
// standard ERP template on first use. Access is serialized; the workbook is
// a single shared file, not a concurrent store.
type WorkbookStore struct {
	mu   sync.Mutex
	path string
}

func NewWorkbookStore(path string) *WorkbookStore {
	if path == "" {
		path = "Factory_ERP.xlsx"
	}
	return &WorkbookStore{path: path}
}

// masterSheets is the ERP template: sheet title -> fixed header row.
var masterSheets = []struct {
	title   string
	headers []string
}{
	{"Customer Master", []string{"Customer ID", "Customer Name", "Contact", "Email", "Address", "GST", "Payment Terms"}},
	{"Vendor Master", []string{"Vendor ID", "Vendor Name", "Contact Person", "Mobile", "GST", "Address"}},
	{"Item Master", []string{"Item Code", "Item Name", "Category", "Unit", "Standard Cost", "Min Stock"}},
	{"BOM", []string{"Product Code", "Raw Material Code", "Quantity Required", "Unit"}},
	{"Purchase Orders", []string{"PO Number", "Date", "Vendor", "Item", "Quantity", "Rate", "Expected Delivery", "Status"}},
	{"GRN", []string{"GRN Number", "Date", "PO Number", "Item", "Received Qty", "Accepted Qty", "Rejected Qty"}},
	{"Production Plan", []string{"Plan Number", "Date", "Product", "Planned Qty", "Start Date", "End Date", "Status"}},
	{"Job Cards", JobCardColumns},
	{"Job Cards Detail", []string{"Job Card No", "Section", "Cells"}},
	{"Production Entry", []string{"Date", "Job Card No", "Product", "Produced Qty", "Rejected Qty", "Shift"}},
	{"Raw Material Inventory", []string{"Item Code", "Opening Stock", "Received", "Issued", "Balance"}},
	{"Finished Goods Inventory", []string{"Product", "Opening Stock", "Produced", "Dispatched", "Balance"}},
	{"Sales Orders", []string{"SO Number", "Customer", "Product", "Quantity", "Delivery Date", "Status"}},
	{"Dispatch", []string{"Dispatch No", "SO Number", "Product", "Quantity", "Dispatch Date", "Transport", "Invoice No"}},
	{"Invoices", []string{"Invoice No", "Customer", "Amount", "Paid", "Pending", "Due Date"}},
}

// ensureFile creates the master workbook from the template when missing.
func (w *WorkbookStore) ensureFile() error {
	if _, err := os.Stat(w.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	// Dashboard sheet first
	if _, err := f.NewSheet("Dashboard"); err != nil {
		return err
	}
	if err := f.SetCellValue("Dashboard", "A1", "FACTORY ERP SYSTEM"); err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle("Dashboard", "A1", "A1", titleStyle); err != nil {
		return err
	}

	for _, sheet := range masterSheets {
		if err := writeSheet(f, sheet.title, headerStyle, sheet.headers, nil); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(w.path)
}

// Load returns the section's table: header row as columns, everything below
// as rows. A section sheet that does not exist yet loads as an empty table.
func (w *WorkbookStore) Load(section string) (Table, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureFile(); err != nil {
		return Table{}, fmt.Errorf("workbook %s: %w", w.path, err)
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	sheet := sheetName(section)
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return Table{}, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}
	return Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// Save replaces the section sheet with the given table.
func (w *WorkbookStore) Save(section string, t Table) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureFile(); err != nil {
		return fmt.Errorf("workbook %s: %w", w.path, err)
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	sheet := sheetName(section)
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		if err := f.DeleteSheet(sheet); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := writeSheet(f, sheet, headerStyle, t.Columns, t.Rows); err != nil {
		return err
	}
	return f.Save()
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if len(headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
		lastCol, _ := excelize.ColumnNumberToName(len(headers))
		if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
			return err
		}
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

// sheetName truncates a section name to the xlsx 31-char limit. Collisions
// after truncation are not disambiguated.
func sheetName(section string) string {
	if len(section) > 31 {
		return section[:31]
	}
	return section
}
