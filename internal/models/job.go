package models

import (
	"time"

	"gorm.io/datatypes"
)

type Salary struct {
	Min      float64      `json:"min"`
	Max      float64      `json:"max"`
	Currency Currency     `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	Period   SalaryPeriod `gorm:"type:varchar(10);default:'yearly'" json:"period"`
}

type Job struct {
	BaseModel
	Title        string          `gorm:"size:100;not null" json:"title"`
	Company      string          `gorm:"size:100;not null" json:"company"`
	Description  string          `gorm:"size:2000;not null" json:"description"`
	Requirements string          `gorm:"size:1000;not null" json:"requirements"`
	Location     string          `gorm:"not null;index" json:"location"`
	Category     JobCategory     `gorm:"type:varchar(20);not null;index" json:"category"`
	Salary       Salary          `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	Experience   ExperienceLevel `gorm:"type:varchar(20);not null;index" json:"experience"`
	Skills       datatypes.JSON  `gorm:"type:jsonb" json:"skills,omitempty"`
	Benefits     datatypes.JSON  `gorm:"type:jsonb" json:"benefits,omitempty"`
	PostedByID   string          `gorm:"type:uuid;not null;index" json:"postedBy"`
	PostedBy     *User           `gorm:"foreignKey:PostedByID" json:"-"`
	Status       JobStatus       `gorm:"type:varchar(10);not null;index;default:'active'" json:"status"`

	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Remote              bool       `gorm:"default:false" json:"remote"`

	// ApplicationCount is maintained incrementally by the application
	// lifecycle service, never recomputed on read. Views only ever grows.
	ApplicationCount int `gorm:"default:0" json:"applicationCount"`
	Views            int `gorm:"default:0" json:"views"`

	Featured bool           `gorm:"default:false" json:"featured"`
	Tags     datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
}

// JobSummary is the job subset joined onto application views.
type JobSummary struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Company    string          `json:"company"`
	Location   string          `json:"location"`
	Category   JobCategory     `json:"category"`
	Salary     Salary          `json:"salary"`
	Experience ExperienceLevel `json:"experience"`
}

func (j *Job) Summary() JobSummary {
	return JobSummary{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		Category:   j.Category,
		Salary:     j.Salary,
		Experience: j.Experience,
	}
}
