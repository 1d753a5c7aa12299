package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plumbbid/backend/pkg/enums"
)

// Job is a priced work order for one contractor, composed of fixture-quantity
// lines and ad-hoc option lines. The job exclusively owns both line
// collections.
type Job struct {
	ID           int              `gorm:"column:id;primaryKey;autoIncrement"`
	JobName      string           `gorm:"column:job_name;size:200;not null"`
	Status       enums.JobStatus  `gorm:"column:status;type:text;not null;default:'open'"`
	ContractorID int              `gorm:"column:contractor_id;not null"`
	Contractor   *Contractor      `gorm:"foreignKey:ContractorID"`
	FixtureItems []JobFixtureItem `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Options      []JobOption      `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TotalCost derives the job total from whatever lines are attached in memory:
// Σ(fixture line price × quantity) + Σ(option price × quantity). Zero-quantity
// lines contribute nothing but are not filtered here; dropping them is a
// write-path concern.
func (j *Job) TotalCost() decimal.Decimal {
	total := decimal.Zero
	if j == nil {
		return total
	}
	for _, line := range j.FixtureItems {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	for _, option := range j.Options {
		total = total.Add(option.Price.Mul(decimal.NewFromInt(int64(option.Quantity))))
	}
	return total
}
