package dto

// RestaurantResponse is the catalog view of a restaurant.
type RestaurantResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Image        string         `json:"image,omitempty"`
	CoverImage   string         `json:"coverImage,omitempty"`
	Cuisine      []string       `json:"cuisine"`
	Rating       float64        `json:"rating"`
	ReviewCount  int            `json:"reviewCount"`
	DeliveryTime string         `json:"deliveryTime"`
	DeliveryFee  float64        `json:"deliveryFee"`
	MinimumOrder float64        `json:"minimumOrder"`
	IsOpen       bool           `json:"isOpen"`
	Address      AddressPayload `json:"address"`
}

// RestaurantListResponse is a paginated restaurant listing.
type RestaurantListResponse struct {
	Data []RestaurantResponse `json:"data"`
	Meta Meta                 `json:"meta"`
}

// MenuItemResponse is one orderable dish.
type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	IsPopular   bool    `json:"isPopular,omitempty"`
}

// MenuCategoryResponse groups menu items for display.
type MenuCategoryResponse struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Items []MenuItemResponse `json:"items"`
}
