package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/jobcard/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_master_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.CompanyProfile{}, &models.Vendor{})
			},
		},
		{
			ID: "20250812_create_job_card_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.JobCard{}, &models.JobCardItem{},
					&models.JobCardMaterial{}, &models.JobCardGrn{})
			},
		},
		{
			ID: "20250819_index_line_tables_by_job_no",
			Migrate: func(tx *gorm.DB) error {
				tables := []string{"job_card_items", "job_card_materials", "job_card_grns"}
				for _, table := range tables {
					if err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_" + table + "_job_no ON " + table + " (job_no, position)").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})

	return m.Migrate()
}
