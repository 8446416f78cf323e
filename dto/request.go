package dto

import "mime/multipart"

// ComparisonRequest represents the incoming upload of two bills
type ComparisonRequest struct {
	OldBill  *multipart.FileHeader `form:"old_bill"`
	NewBill  *multipart.FileHeader `form:"new_bill"`
	OldLabel string                `form:"old_label"`
	NewLabel string                `form:"new_label"`
}

// Validate performs basic validation on the request
func (r *ComparisonRequest) Validate() error {
	if r.OldBill == nil || r.NewBill == nil {
		return ErrMissingBills
	}
	return nil
}
