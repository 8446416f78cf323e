package utils

import (
	"fmt"
	"math"

	"github.com/Aashish23092/gas-bill-compare/dto"
)

const (
	NotAvailable = "N/A"
	NoChange     = "No change"

	// AmountDecimals is used for bill-level amounts, RateDecimals for per-CCF
	// rates so that sub-cent rates do not round to zero.
	AmountDecimals = 2
	RateDecimals   = 5

	integerTolerance = 1e-8
	equalTolerance   = 1e-9
	zeroTolerance    = 1e-12
)

// FormatCurrency renders a dollar amount. Negative amounts are always "-$";
// signed mode prefixes non-negative amounts with "+".
func FormatCurrency(v *float64, decimals int, signed bool) string {
	if v == nil {
		return NotAvailable
	}
	return currency(*v, decimals, signed)
}

func currency(v float64, decimals int, signed bool) string {
	if v < 0 {
		return fmt.Sprintf("-$%.*f", decimals, math.Abs(v))
	}
	sign := ""
	if signed {
		sign = "+"
	}
	return fmt.Sprintf("%s$%.*f", sign, decimals, math.Abs(v))
}

// FormatCount renders e.g. "33 days".
func FormatCount(v *int, unit string) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d %s", *v, unit)
}

// FormatCCF renders a usage quantity, dropping decimals for whole numbers.
func FormatCCF(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return quantity(*v)
}

func quantity(v float64) string {
	r := math.RoundToEven(v)
	if math.Abs(v-r) < integerTolerance {
		return fmt.Sprintf("%d", int64(r))
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatRateSet renders a single rate, or "<low> to <high>" when the captured
// rates disagree.
func FormatRateSet(values dto.RateSet, decimals int, signed bool) string {
	lo, hi, ok := values.Bounds()
	if !ok {
		return NotAvailable
	}
	if math.Abs(lo-hi) < equalTolerance {
		return currency(lo, decimals, signed)
	}
	return currency(lo, decimals, signed) + " to " + currency(hi, decimals, signed)
}

// FormatRange renders a cost range with two decimals.
func FormatRange(r *dto.CostRange) string {
	if r == nil {
		return NotAvailable
	}
	if math.Abs(r.Low-r.High) < equalTolerance {
		return fmt.Sprintf("$%.2f", r.Low)
	}
	return fmt.Sprintf("$%.2f to $%.2f", r.Low, r.High)
}

// FormatChange describes the move from prev to curr, e.g. "+$10.00 (up 10.0%)"
// or "-3 days (down 9.1%)". A zero baseline has no meaningful percentage and
// renders as "N/A".
func FormatChange(prev, curr *float64, unit string, money bool) string {
	if prev == nil || curr == nil || math.Abs(*prev) < zeroTolerance {
		return NotAvailable
	}

	delta := *curr - *prev
	if math.Abs(delta) < equalTolerance {
		return NoChange
	}

	direction := "down"
	if delta > 0 {
		direction = "up"
	}
	pct := math.Abs(delta / *prev * 100)

	var amount string
	if money {
		amount = currency(delta, AmountDecimals, true)
	} else {
		sign := ""
		if delta > 0 {
			sign = "+"
		}
		amount = sign + quantity(delta)
		if unit != "" {
			amount += " " + unit
		}
	}

	return fmt.Sprintf("%s (%s %.1f%%)", amount, direction, pct)
}

// IntPtrAsFloat widens an optional count for FormatChange.
func IntPtrAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
