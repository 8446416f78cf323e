package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Aashish23092/gas-bill-compare/dto"
)

// Amounts on the bill may carry thousands separators ("1,204.50").
const (
	numberPattern = `([0-9][0-9,]*(?:\.[0-9]+)?)`
	centsPattern  = `([0-9][0-9,]*\.[0-9]{2})`
	datePattern   = `([0-9]{1,2}/[0-9]{1,2}/[0-9]{2})`
	dateLayout    = "1/2/06"
)

// fieldRule extracts one numeric field. Patterns are tried in order and the
// first one whose capture parses as a number wins.
type fieldRule struct {
	field    string
	patterns []*regexp.Regexp
}

func newFieldRule(field string, patterns ...string) fieldRule {
	rule := fieldRule{field: field}
	for _, p := range patterns {
		rule.patterns = append(rule.patterns, regexp.MustCompile(`(?i)`+p))
	}
	return rule
}

// rateRule matches "<anchor> <quantity> @ <rate>" lines.
func newRateRule(field, anchor string) fieldRule {
	return newFieldRule(field, anchor+`\s+[0-9.,]+\s+@\s+`+numberPattern)
}

var (
	servicePeriodPattern = regexp.MustCompile(
		`(?i)Meter Serial # From To Previous Present\s*\n[0-9]+\s+` + datePattern + `\s+` + datePattern,
	)

	usageRule          = newFieldRule("usage_ccf", `Actual Usage in CCF:\s*`+numberPattern)
	customerChargeRule = newFieldRule("customer_charge", `Customer Charge\s+`+numberPattern)
	consumptionRule    = newRateRule("consumption_per_ccf", `Consump Chrg`)
	riderGCRRule       = newRateRule("rider_gcr_per_ccf", `Rider GCR`)
	taxAndFeesRule     = newFieldRule("tax_and_fees_total", `TAX/FEE CHARGE TOTAL\s+`+numberPattern)

	// Priority order matters: the first template variant that matches wins.
	totalBillRule = newFieldRule("total_bill",
		`CURRENT CHARGES\s+`+centsPattern,
		`TOTAL AMOUNT DUE\s*\$`+centsPattern,
		`Current Charges\s+`+centsPattern,
	)

	// A trailing "-" marks a WNA credit. The rate may be printed without a
	// leading zero (".02-").
	riderWNAPattern = regexp.MustCompile(`(?i)Rider WNA\s+[0-9.,]+\s+@\s+([0-9.][0-9.,]*)(-?)`)
)

// ParseGasBill extracts billing facts from normalized bill text. Every field is
// best-effort: anything not found is left empty instead of failing the parse.
func ParseGasBill(text, labelOverride, fallbackLabel string) dto.BillRecord {
	from, to := extractServicePeriod(text)

	record := dto.BillRecord{
		Label:             billLabel(labelOverride, fallbackLabel, from, to),
		PeriodFrom:        from,
		PeriodTo:          to,
		BillingDays:       billingDays(from, to),
		UsageCCF:          usageRule.firstNumber(text),
		CustomerCharge:    customerChargeRule.firstNumber(text),
		ConsumptionPerCCF: consumptionRule.rateSet(text),
		RiderGCRPerCCF:    riderGCRRule.rateSet(text),
		RiderWNAPerCCF:    extractWNARates(text),
		TaxAndFeesTotal:   taxAndFeesRule.firstNumber(text),
		TotalBill:         totalBillRule.firstNumber(text),
	}

	return record
}

func (r fieldRule) firstNumber(text string) *float64 {
	for _, re := range r.patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if v, ok := parseAmount(m[1]); ok {
			return &v
		}
	}
	return nil
}

// rateSet wraps the first match of a single-rate line.
func (r fieldRule) rateSet(text string) dto.RateSet {
	v := r.firstNumber(text)
	if v == nil {
		return dto.RateSet{}
	}
	return dto.RateSet{*v}
}

func extractWNARates(text string) dto.RateSet {
	rates := dto.RateSet{}
	for _, m := range riderWNAPattern.FindAllStringSubmatch(text, -1) {
		rate, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if m[2] == "-" {
			rate = -rate
		}
		rates = append(rates, rate)
	}
	return rates
}

// extractServicePeriod reads the from/to meter-read dates. Both are nil
// unless both parse.
func extractServicePeriod(text string) (*time.Time, *time.Time) {
	m := servicePeriodPattern.FindStringSubmatch(text)
	if len(m) < 3 {
		return nil, nil
	}

	from, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return nil, nil
	}
	to, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return nil, nil
	}
	return &from, &to
}

// billingDays counts both endpoints of the service period.
func billingDays(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	days := int(to.Sub(*from).Hours()/24) + 1
	if days <= 0 {
		return nil
	}
	return &days
}

// billLabel renders e.g. "January (12/12-1/13)" when the period is known.
func billLabel(override, fallback string, from, to *time.Time) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if from == nil || to == nil {
		return fallback
	}
	return fmt.Sprintf("%s (%d/%d-%d/%d)",
		to.Month().String(), int(from.Month()), from.Day(), int(to.Month()), to.Day())
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MissingFields lists the fields of b that were not found on the bill, in
// table order.
func MissingFields(b dto.BillRecord) []string {
	checks := []struct {
		field   string
		missing bool
	}{
		{"billing_days", b.BillingDays == nil},
		{usageRule.field, b.UsageCCF == nil},
		{customerChargeRule.field, b.CustomerCharge == nil},
		{consumptionRule.field, len(b.ConsumptionPerCCF) == 0},
		{riderGCRRule.field, len(b.RiderGCRPerCCF) == 0},
		{"rider_wna_per_ccf", len(b.RiderWNAPerCCF) == 0},
		{taxAndFeesRule.field, b.TaxAndFeesTotal == nil},
		{totalBillRule.field, b.TotalBill == nil},
	}

	var missing []string
	for _, c := range checks {
		if c.missing {
			missing = append(missing, c.field)
		}
	}
	return missing
}
