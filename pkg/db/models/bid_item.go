package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plumbbid/backend/pkg/enums"
)

// BidItem is a single priced catalog line (material or labor) tagged with a
// construction phase.
type BidItem struct {
	ID        int               `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string            `gorm:"column:name;size:200;not null"`
	Price     decimal.Decimal   `gorm:"column:price;type:numeric(18,2);not null"`
	Phase     enums.Phase       `gorm:"column:phase;type:text;not null"`
	ItemType  enums.BidItemType `gorm:"column:item_type;type:text;not null"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
