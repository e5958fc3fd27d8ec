package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// JobCard is the persisted scalar part of a job card. Line rows live in the
// three job_card_* tables below, tagged by JobNo. Saves are plain inserts;
// there is no update or delete path against persisted cards.
type JobCard struct {
	JobNo           string         `gorm:"column:job_no;primaryKey" json:"jobNo"`
	VendorID        string         `gorm:"column:vendor_id;index" json:"vendorId"`
	Date            JSONTime       `gorm:"column:date;not null" json:"date"`
	Dispatch        string         `gorm:"column:dispatch" json:"dispatch"`
	Operations      pq.StringArray `gorm:"column:operations;type:text[]" json:"operations"`
	MachineBlock    datatypes.JSON `gorm:"column:machine_block;type:jsonb" json:"machineBlock,omitempty"`
	Tolerance       string         `gorm:"column:tolerance" json:"tolerance"`
	Finish          string         `gorm:"column:finish" json:"finish"`
	Hardness        string         `gorm:"column:hardness" json:"hardness"`
	ThreadBool      bool           `gorm:"column:thread_bool" json:"threadBool"`
	DeliveryDate    string         `gorm:"column:delivery_date" json:"deliveryDate,omitempty"`
	Status          string         `gorm:"column:status;default:open" json:"status"`
	VendorSnapshot  datatypes.JSON `gorm:"column:vendor_snapshot;type:jsonb" json:"vendorSnapshot,omitempty"`
	CompanySnapshot datatypes.JSON `gorm:"column:company_snapshot;type:jsonb" json:"companySnapshot,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// JobCardItem is one ordered item line of a persisted job card.
type JobCardItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	JobNo       string  `gorm:"column:job_no;not null" json:"jobNo"`
	Position    int     `gorm:"column:position;not null" json:"position"`
	Description string  `gorm:"column:description" json:"description"`
	DrawingNo   string  `gorm:"column:drawing_no" json:"drawingNo"`
	DrawingLink string  `gorm:"column:drawing_link" json:"drawingLink"`
	Grade       string  `gorm:"column:grade" json:"grade"`
	Qty         float64 `gorm:"column:qty" json:"qty"`
	Uom         string  `gorm:"column:uom;default:Nos" json:"uom"`
}

// JobCardMaterial is one ordered material-issued line.
type JobCardMaterial struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	JobNo       string  `gorm:"column:job_no;not null" json:"jobNo"`
	Position    int     `gorm:"column:position;not null" json:"position"`
	RawMaterial string  `gorm:"column:raw_material" json:"rawMaterial"`
	HeatNo      string  `gorm:"column:heat_no" json:"heatNo"`
	DiaSize     string  `gorm:"column:dia_size" json:"diaSize"`
	Weight      float64 `gorm:"column:weight" json:"weight"`
	Qty         float64 `gorm:"column:qty" json:"qty"`
	Remark      string  `gorm:"column:remark" json:"remark"`
}

// JobCardGrn is one goods-received line against a persisted job card.
type JobCardGrn struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	JobNo        string  `gorm:"column:job_no;not null" json:"jobNo"`
	Position     int     `gorm:"column:position;not null" json:"position"`
	Date         string  `gorm:"column:date" json:"date"`
	QtyReceived  float64 `gorm:"column:qty_received" json:"qtyReceived"`
	OkQty        float64 `gorm:"column:ok_qty" json:"okQty"`
	RejectedQty  float64 `gorm:"column:rejected_qty" json:"rejectedQty"`
	Remarks      string  `gorm:"column:remarks" json:"remarks"`
	QcApprovedBy string  `gorm:"column:qc_approved_by" json:"qcApprovedBy"`
}
