package transport

// ProductStats summarizes the product catalog.
type ProductStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
}

// EnquiryStats summarizes enquiry volume.
type EnquiryStats struct {
	Total    int64 `json:"total"`
	ThisWeek int64 `json:"thisWeek"`
}

// OrderStats summarizes order volume.
type OrderStats struct {
	Total    int64 `json:"total"`
	ThisWeek int64 `json:"thisWeek"`
}

// InventoryStats carries the latest stock snapshot levels.
type InventoryStats struct {
	TotalBricks       int64 `json:"totalBricks"`
	AvailableTrolleys int64 `json:"availableTrolleys"`
}

// StatsResponse is the admin dashboard overview payload.
type StatsResponse struct {
	Products  ProductStats   `json:"products"`
	Enquiries EnquiryStats   `json:"enquiries"`
	Orders    OrderStats     `json:"orders"`
	Inventory InventoryStats `json:"inventory"`
}
