package model

// Restaurant is a catalog entry customers browse and order from.
type Restaurant struct {
	ID           string
	Name         string
	Description  string
	Image        string
	CoverImage   string
	Cuisine      []string
	Rating       float64
	ReviewCount  int
	DeliveryTime string
	DeliveryFee  float64
	MinimumOrder float64
	IsOpen       bool
	Address      Address
}

// RestaurantFilters narrows and orders a restaurant listing.
type RestaurantFilters struct {
	Search  string
	Cuisine string
	SortBy  string
	Page    int
	Limit   int
}
