package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobFixtureItem is a fixture-quantity line on a job. Price is a snapshot of
// the fixture's price taken when the line was created; it is never recomputed,
// even if the fixture's composition changes later.
type JobFixtureItem struct {
	ID            int             `gorm:"column:id;primaryKey;autoIncrement"`
	JobID         int             `gorm:"column:job_id;not null"`
	FixtureItemID int             `gorm:"column:fixture_item_id;not null"`
	FixtureItem   *FixtureItem    `gorm:"foreignKey:FixtureItemID"`
	Quantity      int             `gorm:"column:quantity;not null"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(18,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
