package models

import (
	"gorm.io/gorm"
)

type seedDoctor struct {
	Email           string
	Password        string
	Specialty       string
	LicenseNumber   string
	Qualifications  []string
	ExperienceYears string
	ClinicAddress   string
	Phone           string
}

var seedDoctors = []seedDoctor{
	{
		Email:           "dr.smith@hospital.com",
		Password:        "SecurePass123!",
		Specialty:       "Cardiology",
		LicenseNumber:   "LIC001",
		Qualifications:  []string{"MD from Harvard Medical School", "Board Certified Cardiologist"},
		ExperienceYears: "15",
		ClinicAddress:   "123 Medical Plaza, Suite 100, New York, NY 10001",
		Phone:           "+1-555-0101",
	},
	{
		Email:           "dr.johnson@hospital.com",
		Password:        "SecurePass123!",
		Specialty:       "Pediatrics",
		LicenseNumber:   "LIC002",
		Qualifications:  []string{"MD from Johns Hopkins", "Board Certified Pediatrician"},
		ExperienceYears: "12",
		ClinicAddress:   "456 Healthcare Blvd, Suite 200, Boston, MA 02101",
		Phone:           "+1-555-0102",
	},
	{
		Email:           "dr.williams@hospital.com",
		Password:        "SecurePass123!",
		Specialty:       "Neurology",
		LicenseNumber:   "LIC003",
		Qualifications:  []string{"MD from Stanford", "Neurology Specialist"},
		ExperienceYears: "18",
		ClinicAddress:   "789 Wellness Center, Suite 300, San Francisco, CA 94102",
		Phone:           "+1-555-0103",
	},
	{
		Email:           "dr.brown@hospital.com",
		Password:        "SecurePass123!",
		Specialty:       "Orthopedics",
		LicenseNumber:   "LIC004",
		Qualifications:  []string{"MD from Mayo Clinic", "Orthopedic Surgeon"},
		ExperienceYears: "20",
		ClinicAddress:   "321 Medical Center, Suite 400, Los Angeles, CA 90001",
		Phone:           "+1-555-0104",
	},
	{
		Email:           "dr.garcia@hospital.com",
		Password:        "SecurePass123!",
		Specialty:       "Dermatology",
		LicenseNumber:   "LIC005",
		Qualifications:  []string{"MD from UCLA", "Board Certified Dermatologist"},
		ExperienceYears: "10",
		ClinicAddress:   "654 Health Plaza, Suite 500, Chicago, IL 60601",
		Phone:           "+1-555-0105",
	},
}

var seedAvailableHours = map[string]interface{}{
	"Monday":    "09:00-17:00",
	"Tuesday":   "09:00-17:00",
	"Wednesday": "09:00-17:00",
	"Thursday":  "09:00-17:00",
	"Friday":    "09:00-17:00",
	"Saturday":  "10:00-14:00",
}

// SeedProviders inserts the initial provider accounts and profiles. Existing
// emails are skipped, so repeated startups are safe. The password hasher is
// passed in to keep this package free of crypto dependencies.
func SeedProviders(db *gorm.DB, hash func(string) (string, error)) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, doc := range seedDoctors {
			var count int64
			if err := tx.Model(&User{}).Where("email = ?", doc.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			hashed, err := hash(doc.Password)
			if err != nil {
				return err
			}

			user := User{
				Email:        doc.Email,
				PasswordHash: hashed,
				Role:         RoleProvider,
				ConsentGiven: true,
				IsActive:     true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := ProviderProfile{
				UserID:          user.ID,
				Specialty:       doc.Specialty,
				LicenseNumber:   doc.LicenseNumber,
				Qualifications:  doc.Qualifications,
				ExperienceYears: doc.ExperienceYears,
				ClinicAddress:   doc.ClinicAddress,
				Phone:           doc.Phone,
				AvailableHours:  seedAvailableHours,
				Patients:        []string{},
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
