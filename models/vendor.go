package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor is a master record reused across job cards. VendorID is the
// human-facing code (e.g. "V001") that also goes into the QR payload.
type Vendor struct {
	VendorID      string `gorm:"column:vendor_id;primaryKey" json:"vendorId"`
	CompanyName   string `gorm:"column:company_name;not null" json:"companyName"`
	ContactPerson string `gorm:"column:person;not null" json:"contactPerson"`
	Mobile        string `gorm:"column:mobile;not null" json:"mobile"`
	GstNumber     string `gorm:"column:gst" json:"gstNumber"`
	Address       string `gorm:"column:address" json:"address"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
