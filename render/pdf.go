package render

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"p9e.in/jobcard/jobcard"
)

const (
	logoSlotW = 30.0 // mm; reserved beside the header text whether or not a logo exists
	logoSlotH = 18.0
)

// PDF renders the printable job card. Page numbering is the two-pass
// "Page X of Y" form via gofpdf's page-count alias. The QR code and the
// Code128 barcode appear exactly once, in the codes block after the job
// details.
func PDF(rec *jobcard.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Job Card "+rec.JobNo, false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, section := range Plan(rec) {
		switch section {
		case SectionHeader:
			pdfHeader(pdf, tr, rec)
		case SectionVendor:
			pdfHeading(pdf, tr, section)
			pdfPairs(pdf, tr, [][2]string{
				{"Vendor ID", rec.Vendor.ID},
				{"Company", rec.Vendor.CompanyName},
				{"Contact Person", rec.Vendor.ContactPerson},
				{"Mobile", rec.Vendor.Mobile},
				{"GST Number", rec.Vendor.GstNumber},
				{"Address", rec.Vendor.Address},
			})
		case SectionJob:
			pdfHeading(pdf, tr, section)
			pdfPairs(pdf, tr, [][2]string{
				{"Job Card No", rec.JobNo},
				{"Date", rec.JobDate},
				{"Dispatch Location", rec.DispatchLocation},
				{"Expected Delivery", rec.Delivery.ExpectedDate},
			})
		case SectionCodes:
			if err := pdfCodes(pdf, rec); err != nil {
				return nil, err
			}
		case SectionItems:
			pdfHeading(pdf, tr, section)
			pdfTable(pdf, tr, jobcard.ItemColumns, rec.ItemsTable(), EmptyNotice(section))
		case SectionMaterials:
			pdfHeading(pdf, tr, section)
			pdfTable(pdf, tr, jobcard.MaterialColumns, rec.MaterialsTable(), EmptyNotice(section))
		case SectionOperations:
			pdfHeading(pdf, tr, section)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(rec.OperationsLine()), "", "L", false)
		case SectionMachine:
			pdfHeading(pdf, tr, section)
			pdfPairs(pdf, tr, machineRows(rec.Machine))
		case SectionQuality:
			pdfHeading(pdf, tr, section)
			pdfPairs(pdf, tr, [][2]string{
				{"Tolerance", rec.Quality.Tolerance},
				{"Surface Finish", rec.Quality.SurfaceFinish},
				{"Hardness", rec.Quality.Hardness},
			})
			if rec.Quality.ThreadGoNogoRequired {
				pdf.SetFont("Arial", "", 10)
				pdf.MultiCell(0, 5, "Thread GO / NO-GO gauge check required.", "", "L", false)
			}
		case SectionGrn:
			pdfHeading(pdf, tr, section)
			pdfTable(pdf, tr, jobcard.GrnColumns, rec.GrnTable(), EmptyNotice(section))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfHeader prints the company block with a fixed-size logo slot on the
// right. A missing logo leaves the slot blank; the text block never moves.
func pdfHeader(pdf *gofpdf.Fpdf, tr func(string) string, rec *jobcard.Record) {
	pageW, _ := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	textW := pageW - left - right - logoSlotW

	startY := pdf.GetY()
	if imgType := logoImageType(rec.Company.Logo); imgType != "" {
		opts := gofpdf.ImageOptions{ImageType: imgType}
		pdf.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(rec.Company.Logo))
		pdf.ImageOptions("company-logo", pageW-right-logoSlotW, top, logoSlotW, logoSlotH, false, opts, 0, "")
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(textW, 8, tr(rec.Company.Name), "", "L", false)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(textW, 5, tr(rec.Company.Address), "", "L", false)
	if y := startY + logoSlotH; pdf.GetY() < y {
		pdf.SetY(y)
	}
	pdf.Ln(2)
}

func pdfCodes(pdf *gofpdf.Fpdf, rec *jobcard.Record) error {
	qrPNG, err := qrcode.Encode(rec.QRPayload(), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	barPNG, err := encodeBarcodePNG(rec.BarcodeValue())
	if err != nil {
		return fmt.Errorf("encode barcode: %w", err)
	}

	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY() + 2
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("jobcard-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("jobcard-qr", left, y, 24, 24, false, opts, 0, "")
	pdf.RegisterImageOptionsReader("jobcard-barcode", opts, bytes.NewReader(barPNG))
	pdf.ImageOptions("jobcard-barcode", left+30, y+6, 60, 12, false, opts, 0, "")
	pdf.SetY(y + 26)
	return nil
}

func encodeBarcodePNG(value string) ([]byte, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(bc, 360, 72)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *gofpdf.Fpdf, tr func(string) string, s Section) {
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(s.Title()), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func pdfPairs(pdf *gofpdf.Fpdf, tr func(string) string, pairs [][2]string) {
	for _, p := range pairs {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 5.5, tr(p[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5.5, tr(p[1]), "", "L", false)
	}
}

func pdfTable(pdf *gofpdf.Fpdf, tr func(string) string, columns []string, rows [][]string, emptyNotice string) {
	if len(rows) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5.5, emptyNotice, "", "L", false)
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(columns))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range columns {
		pdf.CellFormat(colW, 6, tr(c), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colW, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// logoImageType maps sniffed logo bytes onto a gofpdf image type; an
// unrecognized format drops the logo rather than failing the export.
func logoImageType(logo []byte) string {
	if len(logo) == 0 {
		return ""
	}
	switch http.DetectContentType(logo) {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	}
	return ""
}
