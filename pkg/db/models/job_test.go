package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestJobTotalCost(t *testing.T) {
	job := &Job{
		JobName: "Bath Remodel",
		FixtureItems: []JobFixtureItem{
			{Price: decimal.RequireFromString("75.00"), Quantity: 3},
			{Price: decimal.RequireFromString("120.50"), Quantity: 1},
		},
		Options: []JobOption{
			{Name: "Permit run", Price: decimal.RequireFromString("40.00"), Quantity: 2},
		},
	}

	// 75*3 + 120.50 + 40*2
	want := decimal.RequireFromString("425.50")
	if got := job.TotalCost(); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestJobTotalCostEmpty(t *testing.T) {
	job := &Job{JobName: "No lines"}
	if got := job.TotalCost(); !got.IsZero() {
		t.Fatalf("expected zero total for empty job, got %s", got)
	}

	var nilJob *Job
	if got := nilJob.TotalCost(); !got.IsZero() {
		t.Fatalf("expected zero total for nil job, got %s", got)
	}
}

func TestJobTotalCostZeroQuantityLinesContributeNothing(t *testing.T) {
	job := &Job{
		FixtureItems: []JobFixtureItem{
			{Price: decimal.RequireFromString("99.99"), Quantity: 0},
			{Price: decimal.RequireFromString("10.00"), Quantity: 2},
		},
		Options: []JobOption{
			{Price: decimal.RequireFromString("5.00"), Quantity: 0},
		},
	}

	if got := job.TotalCost(); !got.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected 20.00, got %s", got)
	}
}

func TestJobTotalCostIgnoresCurrentFixturePrice(t *testing.T) {
	fixture := &FixtureItem{
		BidItems: []BidItem{{Price: decimal.RequireFromString("200.00")}},
	}
	job := &Job{
		FixtureItems: []JobFixtureItem{
			// Snapshot taken when the fixture was cheaper.
			{FixtureItem: fixture, Price: decimal.RequireFromString("50.00"), Quantity: 2},
		},
	}

	if got := job.TotalCost(); !got.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("total must use the snapshot price, got %s", got)
	}
}
