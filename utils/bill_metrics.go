package utils

import "github.com/Aashish23092/gas-bill-compare/dto"

// ApproxVariableCostRange sums every combination of consumption, GCR and WNA
// rates and returns the spread of those sums. Nil unless all three are known.
func ApproxVariableCostRange(b dto.BillRecord) *dto.CostRange {
	if len(b.ConsumptionPerCCF) == 0 || len(b.RiderGCRPerCCF) == 0 || len(b.RiderWNAPerCCF) == 0 {
		return nil
	}

	sums := make(dto.RateSet, 0, len(b.ConsumptionPerCCF)*len(b.RiderGCRPerCCF)*len(b.RiderWNAPerCCF))
	for _, c := range b.ConsumptionPerCCF {
		for _, g := range b.RiderGCRPerCCF {
			for _, w := range b.RiderWNAPerCCF {
				sums = append(sums, c+g+w)
			}
		}
	}

	lo, hi, _ := sums.Bounds()
	return &dto.CostRange{Low: lo, High: hi}
}

// EffectiveCostPerCCF is the all-in cost of one CCF: total bill over usage.
func EffectiveCostPerCCF(b dto.BillRecord) *float64 {
	if b.TotalBill == nil || b.UsageCCF == nil || *b.UsageCCF == 0 {
		return nil
	}
	v := *b.TotalBill / *b.UsageCCF
	return &v
}
