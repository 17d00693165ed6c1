package repository

// Factory describes access to the relational domain repositories. Cart
// snapshots live in a separate key/value store and are not part of it.
type Factory interface {
	Users() UserRepository
	Restaurants() RestaurantRepository
	Menus() MenuRepository
	Orders() OrderRepository
}
