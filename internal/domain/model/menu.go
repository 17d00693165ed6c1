package model

// MenuItem is one orderable dish on a restaurant's menu.
type MenuItem struct {
	ID           string
	RestaurantID string
	CategoryID   string
	Name         string
	Description  string
	Price        float64
	Image        string
	IsAvailable  bool
	IsPopular    bool
}

// MenuCategory groups menu items for display.
type MenuCategory struct {
	ID    string
	Name  string
	Items []MenuItem
}
