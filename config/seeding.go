package config

import (
	"log"
	"os"

	"gorm.io/gorm"
	"p9e.in/jobcard/models"
)

// SeedCompanyProfile ensures one company_profile row exists so the job card
// header renders something before the user edits it. Name and address come
// from the environment when set.
func SeedCompanyProfile() {
	if DB == nil {
		return
	}

	var count int64
	if err := DB.Model(&models.CompanyProfile{}).Count(&count).Error; err != nil {
		log.Printf("Warning: could not check company profile: %v", err)
		return
	}
	if count > 0 {
		return
	}

	name := os.Getenv("COMPANY_NAME")
	if name == "" {
		name = "Shree Precision Works"
	}
	address := os.Getenv("COMPANY_ADDRESS")
	if address == "" {
		address = "Plot 14, MIDC Industrial Area, Pune"
	}

	profile := models.CompanyProfile{CompanyName: name, Address: address}
	if err := DB.Create(&profile).Error; err != nil {
		log.Printf("Warning: could not seed company profile: %v", err)
		return
	}
	log.Println("Seeded default company profile:", name)
}

// DefaultCompanyProfile returns the seeded profile, or nil when the
// relational store is not configured.
func DefaultCompanyProfile() *models.CompanyProfile {
	if DB == nil {
		return nil
	}
	var profile models.CompanyProfile
	if err := DB.Order("created_at ASC").First(&profile).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Warning: could not load company profile: %v", err)
		}
		return nil
	}
	return &profile
}
