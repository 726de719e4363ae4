package request_models

type InitPackingListRequest struct {
	Items []string `json:"items" binding:"required,min=1"`
}

type AddPackingItemRequest struct {
	Item string `json:"item" binding:"required"`
}
