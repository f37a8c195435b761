package response

import "cargo-consolidation/internal/usecase/queries"

type BoxTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LengthCM    int    `json:"length_cm"`
	WidthCM     int    `json:"width_cm"`
	HeightCM    int    `json:"height_cm"`
	Volume      string `json:"volume"`
	PricePerKg  string `json:"price_per_kg"`
	PricePerBox string `json:"price_per_box"`
}

func FromBoxTypeView(v *queries.BoxTypeView) (*BoxTypeResponse, error) {
	return mapInto[BoxTypeResponse](v)
}

func FromBoxTypeList(items []*queries.BoxTypeView) ([]*BoxTypeResponse, error) {
	return mapList[BoxTypeResponse](items)
}

type QuoteResponse struct {
	TotalVolume     string `json:"total_volume"`
	TotalBoxes      int    `json:"total_boxes"`
	Subtotal        string `json:"subtotal"`
	Tier            string `json:"tier"`
	DiscountPercent string `json:"discount_percent"`
	Discount        string `json:"discount"`
	TotalCost       string `json:"total_cost"`
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	return mapInto[QuoteResponse](v)
}
