package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"p9e.in/jobcard/jobcard"
	"p9e.in/jobcard/models"
)

// DBStore is the relational backend. Saves are plain row inserts with no
// explicit transaction boundary; a replacement that fails halfway leaves the
// section partially written, which callers already accept per the section
// commit contract.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Load(section string) (Table, error) {
	switch section {
	case SectionVendorMaster:
		return s.loadVendors()
	case SectionJobCards:
		return s.loadJobCards()
	case SectionItems:
		return s.loadItems()
	case SectionMaterials:
		return s.loadMaterials()
	case SectionGrn:
		return s.loadGrn()
	}
	return Table{}, fmt.Errorf("unknown section %q", section)
}

func (s *DBStore) Save(section string, t Table) error {
	switch section {
	case SectionVendorMaster:
		return s.saveVendors(t)
	case SectionJobCards:
		return s.saveJobCards(t)
	case SectionItems:
		return s.saveItems(t)
	case SectionMaterials:
		return s.saveMaterials(t)
	case SectionGrn:
		return s.saveGrn(t)
	}
	return fmt.Errorf("unknown section %q", section)
}

func (s *DBStore) loadVendors() (Table, error) {
	var vendors []models.Vendor
	if err := s.db.Order("created_at ASC").Find(&vendors).Error; err != nil {
		return Table{}, err
	}
	t := Table{Columns: []string{"Vendor ID", "Vendor Name", "Contact Person", "Mobile", "GST", "Address"}}
	for _, v := range vendors {
		t.Rows = append(t.Rows, []string{v.VendorID, v.CompanyName, v.ContactPerson, v.Mobile, v.GstNumber, v.Address})
	}
	return t, nil
}

func (s *DBStore) saveVendors(t Table) error {
	if err := s.db.Exec("DELETE FROM vendors").Error; err != nil {
		return err
	}
	for _, row := range jobcard.NormalizeTable(anyRows(t.Rows), t.Columns) {
		v := models.Vendor{
			VendorID: row[0], CompanyName: row[1], ContactPerson: row[2],
			Mobile: row[3], GstNumber: row[4], Address: row[5],
		}
		if err := s.db.Create(&v).Error; err != nil {
			return err
		}
	}
	return nil
}

type vendorSnapshot struct {
	Name    string `json:"name"`
	Person  string `json:"person"`
	Mobile  string `json:"mobile"`
	Gst     string `json:"gst"`
	Address string `json:"address"`
}

type companySnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (s *DBStore) loadJobCards() (Table, error) {
	var cards []models.JobCard
	if err := s.db.Order("created_at ASC").Find(&cards).Error; err != nil {
		return Table{}, err
	}

	t := Table{Columns: JobCardColumns}
	for _, c := range cards {
		var vs vendorSnapshot
		var cs companySnapshot
		if len(c.VendorSnapshot) > 0 {
			json.Unmarshal(c.VendorSnapshot, &vs)
		}
		if len(c.CompanySnapshot) > 0 {
			json.Unmarshal(c.CompanySnapshot, &cs)
		}
		var m jobcard.MachineBlock
		if len(c.MachineBlock) > 0 {
			json.Unmarshal(c.MachineBlock, &m)
		}
		thread := "No"
		if c.ThreadBool {
			thread = "Yes"
		}
		t.Rows = append(t.Rows, []string{
			c.JobNo, c.Date.DateString(), c.Dispatch,
			c.VendorID, vs.Name, vs.Person, vs.Mobile, vs.Gst, vs.Address,
			cs.Name, cs.Address,
			strings.Join(c.Operations, ", "), string(m.MachineType), m.CycleTime, m.RPM, m.Feed, m.GearSetup, m.ProgramNo,
			c.Tolerance, c.Finish, c.Hardness, thread, c.DeliveryDate,
		})
	}
	return t, nil
}

func (s *DBStore) saveJobCards(t Table) error {
	if err := s.db.Exec("DELETE FROM job_cards").Error; err != nil {
		return err
	}
	for _, row := range jobcard.NormalizeTable(anyRows(t.Rows), JobCardColumns) {
		card := models.JobCard{
			JobNo:        row[0],
			Dispatch:     row[2],
			VendorID:     row[3],
			Tolerance:    row[18],
			Finish:       row[19],
			Hardness:     row[20],
			ThreadBool:   row[21] == "Yes",
			DeliveryDate: row[22],
			Status:       "open",
		}
		if d, err := time.Parse("2006-01-02", row[1]); err == nil {
			card.Date = models.JSONTime(d)
		}
		if row[11] != "" {
			card.Operations = strings.Split(row[11], ", ")
		}
		if row[12] != "" {
			m := jobcard.MachineBlock{
				MachineType: jobcard.MachineType(row[12]),
				CycleTime:   row[13], RPM: row[14], Feed: row[15],
				GearSetup: row[16], ProgramNo: row[17],
			}
			if b, err := json.Marshal(m); err == nil {
				card.MachineBlock = b
			}
		}
		if b, err := json.Marshal(vendorSnapshot{
			Name: row[4], Person: row[5], Mobile: row[6], Gst: row[7], Address: row[8],
		}); err == nil {
			card.VendorSnapshot = b
		}
		if b, err := json.Marshal(companySnapshot{Name: row[9], Address: row[10]}); err == nil {
			card.CompanySnapshot = b
		}
		if err := s.db.Create(&card).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *DBStore) loadItems() (Table, error) {
	var items []models.JobCardItem
	if err := s.db.Order("job_no ASC, position ASC").Find(&items).Error; err != nil {
		return Table{}, err
	}
	t := Table{Columns: tagged(jobcard.ItemColumns)}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.JobNo, it.Description, it.DrawingNo, it.DrawingLink,
			it.Grade, formatQty(it.Qty), it.Uom,
		})
	}
	return t, nil
}

func (s *DBStore) saveItems(t Table) error {
	if err := s.db.Exec("DELETE FROM job_card_items").Error; err != nil {
		return err
	}
	for i, row := range jobcard.NormalizeTable(anyRows(t.Rows), tagged(jobcard.ItemColumns)) {
		it := models.JobCardItem{
			JobNo: row[0], Position: i,
			Description: row[1], DrawingNo: row[2], DrawingLink: row[3],
			Grade: row[4], Qty: parseQty(row[5]), Uom: row[6],
		}
		if err := s.db.Create(&it).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *DBStore) loadMaterials() (Table, error) {
	var rows []models.JobCardMaterial
	if err := s.db.Order("job_no ASC, position ASC").Find(&rows).Error; err != nil {
		return Table{}, err
	}
	t := Table{Columns: tagged(jobcard.MaterialColumns)}
	for _, m := range rows {
		t.Rows = append(t.Rows, []string{
			m.JobNo, m.RawMaterial, m.HeatNo, m.DiaSize,
			formatQty(m.Weight), formatQty(m.Qty), m.Remark,
		})
	}
	return t, nil
}

func (s *DBStore) saveMaterials(t Table) error {
	if err := s.db.Exec("DELETE FROM job_card_materials").Error; err != nil {
		return err
	}
	for i, row := range jobcard.NormalizeTable(anyRows(t.Rows), tagged(jobcard.MaterialColumns)) {
		m := models.JobCardMaterial{
			JobNo: row[0], Position: i,
			RawMaterial: row[1], HeatNo: row[2], DiaSize: row[3],
			Weight: parseQty(row[4]), Qty: parseQty(row[5]), Remark: row[6],
		}
		if err := s.db.Create(&m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *DBStore) loadGrn() (Table, error) {
	var rows []models.JobCardGrn
	if err := s.db.Order("job_no ASC, position ASC").Find(&rows).Error; err != nil {
		return Table{}, err
	}
	t := Table{Columns: tagged(jobcard.GrnColumns)}
	for _, g := range rows {
		t.Rows = append(t.Rows, []string{
			g.JobNo, g.Date, formatQty(g.QtyReceived), formatQty(g.OkQty),
			formatQty(g.RejectedQty), g.Remarks, g.QcApprovedBy,
		})
	}
	return t, nil
}

func (s *DBStore) saveGrn(t Table) error {
	if err := s.db.Exec("DELETE FROM job_card_grns").Error; err != nil {
		return err
	}
	for i, row := range jobcard.NormalizeTable(anyRows(t.Rows), tagged(jobcard.GrnColumns)) {
		g := models.JobCardGrn{
			JobNo: row[0], Position: i,
			Date: row[1], QtyReceived: parseQty(row[2]), OkQty: parseQty(row[3]),
			RejectedQty: parseQty(row[4]), Remarks: row[5], QcApprovedBy: row[6],
		}
		if err := s.db.Create(&g).Error; err != nil {
			return err
		}
	}
	return nil
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
