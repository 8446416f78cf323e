package utils

import (
	"testing"

	"github.com/Aashish23092/gas-bill-compare/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxVariableCostRange(t *testing.T) {
	bill := dto.BillRecord{
		ConsumptionPerCCF: dto.RateSet{0.35},
		RiderGCRPerCCF:    dto.RateSet{0.12},
		RiderWNAPerCCF:    dto.RateSet{-0.02},
	}

	r := ApproxVariableCostRange(bill)

	require.NotNil(t, r)
	assert.InDelta(t, 0.45, r.Low, 1e-12)
	assert.InDelta(t, 0.45, r.High, 1e-12)
	assert.Equal(t, "$0.45", FormatRange(r))
}

func TestApproxVariableCostRangeCombinesEveryRate(t *testing.T) {
	bill := dto.BillRecord{
		ConsumptionPerCCF: dto.RateSet{0.35, 0.40},
		RiderGCRPerCCF:    dto.RateSet{0.12},
		RiderWNAPerCCF:    dto.RateSet{-0.02, 0.03},
	}

	r := ApproxVariableCostRange(bill)

	require.NotNil(t, r)
	assert.InDelta(t, 0.45, r.Low, 1e-12)
	assert.InDelta(t, 0.55, r.High, 1e-12)
	assert.InDelta(t, 0.50, r.Midpoint(), 1e-12)
}

func TestApproxVariableCostRangeNeedsAllRates(t *testing.T) {
	full := dto.BillRecord{
		ConsumptionPerCCF: dto.RateSet{0.35},
		RiderGCRPerCCF:    dto.RateSet{0.12},
		RiderWNAPerCCF:    dto.RateSet{0.01},
	}

	noConsumption := full
	noConsumption.ConsumptionPerCCF = dto.RateSet{}
	noGCR := full
	noGCR.RiderGCRPerCCF = nil
	noWNA := full
	noWNA.RiderWNAPerCCF = dto.RateSet{}

	assert.NotNil(t, ApproxVariableCostRange(full))
	assert.Nil(t, ApproxVariableCostRange(noConsumption))
	assert.Nil(t, ApproxVariableCostRange(noGCR))
	assert.Nil(t, ApproxVariableCostRange(noWNA))
}

func TestEffectiveCostPerCCF(t *testing.T) {
	v := EffectiveCostPerCCF(dto.BillRecord{TotalBill: floatPtr(95.20), UsageCCF: floatPtr(50)})
	require.NotNil(t, v)
	assert.InDelta(t, 1.904, *v, 1e-12)

	assert.Nil(t, EffectiveCostPerCCF(dto.BillRecord{TotalBill: floatPtr(95.20), UsageCCF: floatPtr(0)}))
	assert.Nil(t, EffectiveCostPerCCF(dto.BillRecord{TotalBill: floatPtr(95.20)}))
	assert.Nil(t, EffectiveCostPerCCF(dto.BillRecord{UsageCCF: floatPtr(50)}))
}
