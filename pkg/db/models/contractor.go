package models

import "time"

// Contractor owns zero or more jobs. Deleting a contractor deletes its jobs.
type Contractor struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:200;not null"`
	Jobs      []Job     `gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
