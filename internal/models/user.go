package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name         string     `gorm:"size:50;not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null;index;default:'jobseeker'" json:"role"`
	Profile      Profile    `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	IsVerified   bool       `gorm:"default:false" json:"isVerified"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Profile is the user's profile sub-record. Jobseeker fields (resume,
// skills, experience) and employer fields (company, companySize, industry)
// live side by side, as in the source schema.
type Profile struct {
	Phone          string          `json:"phone,omitempty"`
	Location       string          `json:"location,omitempty"`
	Bio            string          `gorm:"size:500" json:"bio,omitempty"`
	Skills         datatypes.JSON  `gorm:"type:jsonb" json:"skills,omitempty"`
	Experience     ExperienceLevel `gorm:"type:varchar(20);default:'entry'" json:"experience,omitempty"`
	Education      string          `json:"education,omitempty"`
	Resume         string          `json:"resume,omitempty"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	Website        string          `json:"website,omitempty"`
	Company        string          `json:"company,omitempty"`
	CompanySize    string          `gorm:"type:varchar(10)" json:"companySize,omitempty"`
	Industry       string          `json:"industry,omitempty"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}

// PublicProfile is the owner subset embedded in job detail responses:
// name, email, company and website only.
type PublicProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Website string `json:"website,omitempty"`
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Company: u.Profile.Company,
		Website: u.Profile.Website,
	}
}
