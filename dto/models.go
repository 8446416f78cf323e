package dto

import "time"

// RateSet holds the per-CCF rates captured for one bill line.
// Empty means the line was not found on the bill.
type RateSet []float64

// First returns the first captured rate.
func (r RateSet) First() (float64, bool) {
	if len(r) == 0 {
		return 0, false
	}
	return r[0], true
}

// FirstPtr is First as an optional value.
func (r RateSet) FirstPtr() *float64 {
	v, ok := r.First()
	if !ok {
		return nil
	}
	return &v
}

// Bounds returns the smallest and largest rate in the set.
func (r RateSet) Bounds() (lo, hi float64, ok bool) {
	if len(r) == 0 {
		return 0, 0, false
	}
	lo, hi = r[0], r[0]
	for _, v := range r[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}

// BillRecord is the set of billing facts parsed from one gas bill.
// Nil pointers and empty rate sets mean "not found", never zero.
type BillRecord struct {
	Label             string
	PeriodFrom        *time.Time
	PeriodTo          *time.Time
	BillingDays       *int
	UsageCCF          *float64
	CustomerCharge    *float64
	ConsumptionPerCCF RateSet
	RiderGCRPerCCF    RateSet
	RiderWNAPerCCF    RateSet
	TaxAndFeesTotal   *float64
	TotalBill         *float64
}

// CostRange is a closed [Low, High] interval of per-CCF costs.
type CostRange struct {
	Low  float64
	High float64
}

// Midpoint returns the center of the range.
func (r CostRange) Midpoint() float64 {
	return (r.Low + r.High) / 2
}
