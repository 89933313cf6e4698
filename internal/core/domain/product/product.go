package product

// Product mirrors the upstream catalog record. Field names follow the
// upstream JSON, which uses camelCase.
type Product struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	DiscountPercentage  float64  `json:"discountPercentage"`
	Category            string   `json:"category"`
	Rating              float64  `json:"rating"`
	Stock               int      `json:"stock"`
	Brand               string   `json:"brand,omitempty"`
	SKU                 string   `json:"sku,omitempty"`
	Weight              float64  `json:"weight,omitempty"`
	WarrantyInformation string   `json:"warrantyInformation,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	Thumbnail           string   `json:"thumbnail"`
	Images              []string `json:"images,omitempty"`
}

// CategoryAll is the pseudo-category the UI sends to drop an active filter.
const CategoryAll = "all"
