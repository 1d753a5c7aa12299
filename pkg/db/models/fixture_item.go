package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixtureItem is a named bundle of bid items. The membership is shared: a bid
// item can belong to any number of fixtures and outlives all of them.
type FixtureItem struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:200;not null"`
	BidItems  []BidItem `gorm:"many2many:fixture_item_bid_items"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Price is the live sum of the member bid item prices. It is recomputed on
// every call and is never stored.
func (f *FixtureItem) Price() decimal.Decimal {
	total := decimal.Zero
	if f == nil {
		return total
	}
	for _, item := range f.BidItems {
		total = total.Add(item.Price)
	}
	return total
}
