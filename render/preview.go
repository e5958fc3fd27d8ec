package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"p9e.in/jobcard/jobcard"
)

// Preview renders the read-only HTML confirmation view. Empty string fields
// come out as empty cells, never a placeholder; only the operations line has
// a literal "None" state.
func Preview(rec *jobcard.Record) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Job Card `)
	sb.WriteString(html.EscapeString(rec.JobNo))
	sb.WriteString(`</title><style>
body{font-family:Arial,Helvetica,sans-serif;margin:24px;color:#222}
h1{font-size:20px;margin:0}
h2{font-size:14px;border-bottom:1px solid #999;padding-bottom:2px;margin:18px 0 6px}
table{border-collapse:collapse;width:100%;font-size:12px}
th,td{border:1px solid #aaa;padding:4px 6px;text-align:left}
th{background:#eee}
.addr{color:#555;font-size:12px}
.logo{float:right;max-height:60px}
.codes img{margin-right:16px;vertical-align:middle}
</style></head><body>
`)

	for _, section := range Plan(rec) {
		switch section {
		case SectionHeader:
			if len(rec.Company.Logo) > 0 {
				sb.WriteString(`<img class="logo" src="data:image;base64,`)
				sb.WriteString(base64.StdEncoding.EncodeToString(rec.Company.Logo))
				sb.WriteString(`" alt="logo">`)
			}
			fmt.Fprintf(&sb, "<h1>%s</h1><div class=\"addr\">%s</div>\n",
				html.EscapeString(rec.Company.Name), html.EscapeString(rec.Company.Address))
		case SectionVendor:
			writeHeading(&sb, section)
			writePairs(&sb, [][2]string{
				{"Vendor ID", rec.Vendor.ID},
				{"Company", rec.Vendor.CompanyName},
				{"Contact Person", rec.Vendor.ContactPerson},
				{"Mobile", rec.Vendor.Mobile},
				{"GST Number", rec.Vendor.GstNumber},
				{"Address", rec.Vendor.Address},
			})
		case SectionJob:
			writeHeading(&sb, section)
			writePairs(&sb, [][2]string{
				{"Job Card No", rec.JobNo},
				{"Date", rec.JobDate},
				{"Dispatch Location", rec.DispatchLocation},
				{"Expected Delivery", rec.Delivery.ExpectedDate},
			})
		case SectionCodes:
			if png, err := qrcode.Encode(rec.QRPayload(), qrcode.Medium, 140); err == nil {
				sb.WriteString(`<div class="codes"><img src="data:image/png;base64,`)
				sb.WriteString(base64.StdEncoding.EncodeToString(png))
				sb.WriteString(`" alt="qr"></div>`)
				sb.WriteString("\n")
			}
		case SectionItems:
			writeHeading(&sb, section)
			writeTable(&sb, jobcard.ItemColumns, rec.ItemsTable())
		case SectionMaterials:
			writeHeading(&sb, section)
			writeTable(&sb, jobcard.MaterialColumns, rec.MaterialsTable())
		case SectionOperations:
			writeHeading(&sb, section)
			fmt.Fprintf(&sb, "<p>%s</p>\n", html.EscapeString(rec.OperationsLine()))
		case SectionMachine:
			writeHeading(&sb, section)
			writePairs(&sb, machineRows(rec.Machine))
		case SectionQuality:
			writeHeading(&sb, section)
			writePairs(&sb, [][2]string{
				{"Tolerance", rec.Quality.Tolerance},
				{"Surface Finish", rec.Quality.SurfaceFinish},
				{"Hardness", rec.Quality.Hardness},
			})
			if rec.Quality.ThreadGoNogoRequired {
				sb.WriteString("<p>Thread GO / NO-GO gauge check required.</p>\n")
			}
		case SectionGrn:
			writeHeading(&sb, section)
			writeTable(&sb, jobcard.GrnColumns, rec.GrnTable())
		}
	}

	sb.WriteString("</body></html>\n")
	return sb.String()
}

func writeHeading(sb *strings.Builder, s Section) {
	fmt.Fprintf(sb, "<h2>%s</h2>\n", html.EscapeString(s.Title()))
}

func writePairs(sb *strings.Builder, pairs [][2]string) {
	sb.WriteString("<table>")
	for _, p := range pairs {
		fmt.Fprintf(sb, "<tr><th>%s</th><td>%s</td></tr>",
			html.EscapeString(p[0]), html.EscapeString(p[1]))
	}
	sb.WriteString("</table>\n")
}

func writeTable(sb *strings.Builder, columns []string, rows [][]string) {
	sb.WriteString("<table><tr>")
	for _, c := range columns {
		fmt.Fprintf(sb, "<th>%s</th>", html.EscapeString(c))
	}
	sb.WriteString("</tr>")
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(sb, "<td>%s</td>", html.EscapeString(cell))
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>\n")
}
