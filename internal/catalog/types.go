package catalog

// Product is one normalized catalog record.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"` // lowercased, used for matching
	Label    string  `json:"label"`    // category as written in the catalog file
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// rawProduct mirrors the column names used by the catalog data file.
type rawProduct struct {
	ID       int     `json:"ID"`
	Name     string  `json:"Name"`
	Category string  `json:"Category"`
	Price    float64 `json:"Price (USD)"`
	Rating   float64 `json:"Rating (1-5)"`
}

// CategoryCount is a distinct category with the number of products in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
