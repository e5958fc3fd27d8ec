package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfile holds the issuing company's header block. A single row is
// expected; the logo is stored as raw image bytes and served back into the
// renderers as-is.
type CompanyProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyName string    `gorm:"column:company_name;not null" json:"companyName"`
	Address     string    `gorm:"column:address;not null" json:"address"`
	Logo        []byte    `gorm:"column:logo;type:bytea" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CompanyProfile) TableName() string { return "company_profile" }
