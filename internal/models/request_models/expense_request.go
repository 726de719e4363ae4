package request_models

type AddExpenseRequest struct {
	Category    string  `json:"category" binding:"required,oneof=accommodation food activities transportation miscellaneous"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// UpdateExpenseRequest carries a partial update; nil fields are left untouched.
type UpdateExpenseRequest struct {
	Category    *string  `json:"category" binding:"omitempty,oneof=accommodation food activities transportation miscellaneous"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}
