package service

import (
	"fmt"

	"github.com/Aashish23092/gas-bill-compare/dto"
	"github.com/Aashish23092/gas-bill-compare/utils"
	"github.com/Aashish23092/gas-bill-compare/utils/xlsxsheet"
)

const (
	OldBillFallbackLabel = "Old Bill"
	NewBillFallbackLabel = "New Bill"

	SheetName = "Gas Bill Comparison"
)

// Row labels of the comparison table, in display order.
const (
	RowBillingDays       = "Billing Days"
	RowUsage             = "Usage (CCF)"
	RowCustomerCharge    = "Customer Charge"
	RowConsumption       = "Consumption Charge / CCF"
	RowRiderGCR          = "Rider GCR / CCF"
	RowRiderWNA          = "Rider WNA / CCF"
	RowApproxVariable    = "Approx Variable Cost / CCF (before tax)"
	RowTaxAndFees        = "Tax & Fees Total"
	RowEffectiveCost     = "Effective Total Cost / CCF (all-in)"
	RowTotalBill         = "Total Bill"
	ComparisonHeaderItem = "Item"
	ComparisonHeaderDiff = "Change"
)

// FieldObserver is told about every field a parsed bill is missing.
type FieldObserver func(field string)

type CompareService struct {
	pdfProcessor   PDFProcessor
	onMissingField FieldObserver
}

func NewCompareService(pdfProcessor PDFProcessor, onMissingField FieldObserver) *CompareService {
	return &CompareService{
		pdfProcessor:   pdfProcessor,
		onMissingField: onMissingField,
	}
}

// BuildComparisonTable parses both bills and lays them out side by side.
// Empty labels fall back to the service period, then to "Old Bill"/"New Bill".
func (s *CompareService) BuildComparisonTable(oldPDF, newPDF []byte, oldLabel, newLabel string) (*dto.ComparisonTable, error) {
	oldBill, err := s.ParseBill("old_bill", oldPDF, oldLabel, OldBillFallbackLabel)
	if err != nil {
		return nil, err
	}
	newBill, err := s.ParseBill("new_bill", newPDF, newLabel, NewBillFallbackLabel)
	if err != nil {
		return nil, err
	}

	return &dto.ComparisonTable{
		Header: [4]string{ComparisonHeaderItem, oldBill.Label, newBill.Label, ComparisonHeaderDiff},
		Rows:   BuildRows(oldBill, newBill),
	}, nil
}

// BuildComparisonXLSX is BuildComparisonTable rendered as a workbook.
func (s *CompareService) BuildComparisonXLSX(oldPDF, newPDF []byte, oldLabel, newLabel string) ([]byte, error) {
	table, err := s.BuildComparisonTable(oldPDF, newPDF, oldLabel, newLabel)
	if err != nil {
		return nil, err
	}

	data, err := xlsxsheet.Bytes(SheetName, table.Grid())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dto.ErrSerialization, err)
	}
	return data, nil
}

// ParseBill extracts the text of one uploaded PDF and parses it. document
// names the upload in errors.
func (s *CompareService) ParseBill(document string, pdfData []byte, labelOverride, fallbackLabel string) (dto.BillRecord, error) {
	text, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		return dto.BillRecord{}, &dto.DocumentReadError{Document: document, Err: err}
	}

	bill := utils.ParseGasBill(text, labelOverride, fallbackLabel)
	if s.onMissingField != nil {
		for _, field := range utils.MissingFields(bill) {
			s.onMissingField(field)
		}
	}
	return bill, nil
}

// BuildRows returns the ten comparison rows. The shape never depends on which
// fields were found; missing values render as "N/A".
func BuildRows(oldBill, newBill dto.BillRecord) []dto.ComparisonRow {
	oldVar := utils.ApproxVariableCostRange(oldBill)
	newVar := utils.ApproxVariableCostRange(newBill)
	oldEff := utils.EffectiveCostPerCCF(oldBill)
	newEff := utils.EffectiveCostPerCCF(newBill)

	return []dto.ComparisonRow{
		{
			Label:  RowBillingDays,
			Old:    utils.FormatCount(oldBill.BillingDays, "days"),
			New:    utils.FormatCount(newBill.BillingDays, "days"),
			Change: utils.FormatChange(utils.IntPtrAsFloat(oldBill.BillingDays), utils.IntPtrAsFloat(newBill.BillingDays), "days", false),
		},
		{
			Label:  RowUsage,
			Old:    utils.FormatCCF(oldBill.UsageCCF),
			New:    utils.FormatCCF(newBill.UsageCCF),
			Change: utils.FormatChange(oldBill.UsageCCF, newBill.UsageCCF, "CCF", false),
		},
		moneyRow(RowCustomerCharge, oldBill.CustomerCharge, newBill.CustomerCharge),
		rateRow(RowConsumption, oldBill.ConsumptionPerCCF, newBill.ConsumptionPerCCF, false),
		rateRow(RowRiderGCR, oldBill.RiderGCRPerCCF, newBill.RiderGCRPerCCF, false),
		rateRow(RowRiderWNA, oldBill.RiderWNAPerCCF, newBill.RiderWNAPerCCF, true),
		{
			Label:  RowApproxVariable,
			Old:    utils.FormatRange(oldVar),
			New:    utils.FormatRange(newVar),
			Change: utils.FormatChange(midpoint(oldVar), midpoint(newVar), "", true),
		},
		moneyRow(RowTaxAndFees, oldBill.TaxAndFeesTotal, newBill.TaxAndFeesTotal),
		moneyRow(RowEffectiveCost, oldEff, newEff),
		moneyRow(RowTotalBill, oldBill.TotalBill, newBill.TotalBill),
	}
}

func moneyRow(label string, oldValue, newValue *float64) dto.ComparisonRow {
	return dto.ComparisonRow{
		Label:  label,
		Old:    utils.FormatCurrency(oldValue, utils.AmountDecimals, false),
		New:    utils.FormatCurrency(newValue, utils.AmountDecimals, false),
		Change: utils.FormatChange(oldValue, newValue, "", true),
	}
}

// rateRow compares the first captured rate of each bill.
func rateRow(label string, oldRates, newRates dto.RateSet, signed bool) dto.ComparisonRow {
	return dto.ComparisonRow{
		Label:  label,
		Old:    utils.FormatRateSet(oldRates, utils.RateDecimals, signed),
		New:    utils.FormatRateSet(newRates, utils.RateDecimals, signed),
		Change: utils.FormatChange(oldRates.FirstPtr(), newRates.FirstPtr(), "", true),
	}
}

func midpoint(r *dto.CostRange) *float64 {
	if r == nil {
		return nil
	}
	m := r.Midpoint()
	return &m
}
