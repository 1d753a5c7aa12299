package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobOption is an ad-hoc named line on a job. The price comes straight from the
// caller; there is no catalog source to snapshot. Option rows are rebuilt
// wholesale on every job update.
type JobOption struct {
	ID        int             `gorm:"column:id;primaryKey;autoIncrement"`
	JobID     int             `gorm:"column:job_id;not null"`
	Name      string          `gorm:"column:name;size:200;not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(18,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
