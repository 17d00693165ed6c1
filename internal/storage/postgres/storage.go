package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/bitenow/bitenow/internal/domain/errors"
	"github.com/bitenow/bitenow/internal/domain/model"
	"github.com/bitenow/bitenow/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses. Tests substitute a
// pgxmock pool through it.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type userRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// newPgxPool is a construction seam so tests can substitute a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Menus() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'customer',
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            image TEXT NOT NULL DEFAULT '',
            cover_image TEXT NOT NULL DEFAULT '',
            cuisine TEXT[] NOT NULL DEFAULT '{}',
            rating DOUBLE PRECISION NOT NULL DEFAULT 0,
            review_count INTEGER NOT NULL DEFAULT 0,
            delivery_time TEXT NOT NULL DEFAULT '',
            delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
            minimum_order DOUBLE PRECISION NOT NULL DEFAULT 0,
            is_open BOOLEAN NOT NULL DEFAULT TRUE,
            street TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            state TEXT NOT NULL DEFAULT '',
            zip_code TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS menu_categories (
            id TEXT PRIMARY KEY,
            restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
            name TEXT NOT NULL,
            position INTEGER NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id TEXT PRIMARY KEY,
            restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
            category_id TEXT NOT NULL REFERENCES menu_categories(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            is_available BOOLEAN NOT NULL DEFAULT TRUE,
            is_popular BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            restaurant_id TEXT NOT NULL,
            restaurant_name TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            tax DOUBLE PRECISION NOT NULL,
            delivery_fee DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            street TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            state TEXT NOT NULL DEFAULT '',
            zip_code TEXT NOT NULL DEFAULT '',
            delivery_instructions TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            estimated_delivery TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            menu_item_id TEXT NOT NULL,
            name TEXT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            quantity INTEGER NOT NULL,
            special_instructions TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS order_status_history (
            id BIGSERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            status TEXT NOT NULL,
            changed_at TIMESTAMPTZ NOT NULL,
            note TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_order_history ON order_status_history(order_id, changed_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (email, name, phone, role, password_hash)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	stored := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Email, user.Name, user.Phone, user.Role, user.PasswordHash).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, phone, role, password_hash, created_at FROM users WHERE email=$1`
	return scanUserRow(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, phone, role, password_hash, created_at FROM users WHERE id=$1`
	return scanUserRow(r.storage.pool.QueryRow(ctx, query, id))
}

func scanUserRow(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- RestaurantRepository implementation ---

const restaurantColumns = `id, name, description, image, cover_image, cuisine, rating, review_count,
                   delivery_time, delivery_fee, minimum_order, is_open, street, city, state, zip_code`

func (r *restaurantRepository) List(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, int, error) {
	query := `SELECT ` + restaurantColumns + `, COUNT(*) OVER() AS total FROM restaurants`
	var args []any

	where := ""
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where = fmt.Sprintf(" WHERE (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filters.Cuisine != "" {
		args = append(args, filters.Cuisine)
		clause := fmt.Sprintf("$%d = ANY(cuisine)", len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where

	switch filters.SortBy {
	case "rating":
		query += " ORDER BY rating DESC, name"
	case "deliveryFee":
		query += " ORDER BY delivery_fee, name"
	default:
		query += " ORDER BY name"
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Restaurant
	total := 0
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Image, &rest.CoverImage,
			&rest.Cuisine, &rest.Rating, &rest.ReviewCount, &rest.DeliveryTime, &rest.DeliveryFee,
			&rest.MinimumOrder, &rest.IsOpen, &rest.Address.Street, &rest.Address.City,
			&rest.Address.State, &rest.Address.ZipCode, &total); err != nil {
			return nil, 0, err
		}
		result = append(result, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id=$1`
	var rest model.Restaurant
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&rest.ID, &rest.Name, &rest.Description,
		&rest.Image, &rest.CoverImage, &rest.Cuisine, &rest.Rating, &rest.ReviewCount,
		&rest.DeliveryTime, &rest.DeliveryFee, &rest.MinimumOrder, &rest.IsOpen,
		&rest.Address.Street, &rest.Address.City, &rest.Address.State, &rest.Address.ZipCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

// --- MenuRepository implementation ---

func (r *menuRepository) Categories(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	const categoriesQuery = `SELECT id, name FROM menu_categories WHERE restaurant_id=$1 ORDER BY position, name`
	rows, err := r.storage.pool.Query(ctx, categoriesQuery, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.MenuCategory
	index := make(map[string]int)
	for rows.Next() {
		var c model.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	const itemsQuery = `SELECT id, restaurant_id, category_id, name, description, price, image, is_available, is_popular
                        FROM menu_items WHERE restaurant_id=$1 ORDER BY name`
	itemRows, err := r.storage.pool.Query(ctx, itemsQuery, restaurantID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item model.MenuItem
		if err := itemRows.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name,
			&item.Description, &item.Price, &item.Image, &item.IsAvailable, &item.IsPopular); err != nil {
			return nil, err
		}
		if pos, ok := index[item.CategoryID]; ok {
			categories[pos].Items = append(categories[pos].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetItem(ctx context.Context, itemID string) (*model.MenuItem, error) {
	const query = `SELECT id, restaurant_id, category_id, name, description, price, image, is_available, is_popular
                   FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, itemID).Scan(&item.ID, &item.RestaurantID, &item.CategoryID,
		&item.Name, &item.Description, &item.Price, &item.Image, &item.IsAvailable, &item.IsPopular)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, restaurant_id, restaurant_name, status, subtotal, tax, delivery_fee, total,
                   street, city, state, zip_code, delivery_instructions, payment_method,
                   created_at, updated_at, estimated_delivery`

func scanOrder(rows pgx.Rows) (model.Order, error) {
	var o model.Order
	err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.RestaurantName, &o.Status,
		&o.Subtotal, &o.Tax, &o.DeliveryFee, &o.Total,
		&o.DeliveryAddress.Street, &o.DeliveryAddress.City, &o.DeliveryAddress.State,
		&o.DeliveryAddress.ZipCode, &o.DeliveryAddress.Instructions, &o.PaymentMethod,
		&o.CreatedAt, &o.UpdatedAt, &o.EstimatedDelivery)
	return o, err
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, user_id, restaurant_id, restaurant_name, status,
                             subtotal, tax, delivery_fee, total, street, city, state, zip_code,
                             delivery_instructions, payment_method, created_at, updated_at, estimated_delivery)
                             VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`
		if _, err := tx.Exec(ctx, insertOrder, order.ID, order.UserID, order.RestaurantID,
			order.RestaurantName, order.Status, order.Subtotal, order.Tax, order.DeliveryFee,
			order.Total, order.DeliveryAddress.Street, order.DeliveryAddress.City,
			order.DeliveryAddress.State, order.DeliveryAddress.ZipCode,
			order.DeliveryAddress.Instructions, order.PaymentMethod,
			order.CreatedAt, order.UpdatedAt, order.EstimatedDelivery); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (id, order_id, menu_item_id, name, unit_price, quantity, special_instructions)
                            VALUES ($1,$2,$3,$4,$5,$6,$7)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, item.ID, order.ID, item.MenuItemID, item.Name,
				item.UnitPrice, item.Quantity, item.SpecialInstructions); err != nil {
				return err
			}
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, changed_at, note)
                               VALUES ($1,$2,$3,$4)`
		for _, entry := range order.StatusHistory {
			if _, err := tx.Exec(ctx, insertHistory, order.ID, entry.Status, entry.Timestamp, entry.Note); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	rows, err := r.storage.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domainErrors.ErrNotFound
	}
	order, err := scanOrder(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.attachDetails(ctx, []*model.Order{&order}); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, status model.OrderStatus, page, limit int) ([]model.Order, int, error) {
	query := `SELECT ` + orderColumns + `, COUNT(*) OVER() AS total FROM orders`
	var args []any

	where := ""
	if userID != 0 {
		args = append(args, userID)
		where = fmt.Sprintf(" WHERE user_id=$%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		clause := fmt.Sprintf("status=$%d", len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where + " ORDER BY created_at DESC"

	args = append(args, limit, (page-1)*limit)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	total := 0
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.RestaurantName, &o.Status,
			&o.Subtotal, &o.Tax, &o.DeliveryFee, &o.Total,
			&o.DeliveryAddress.Street, &o.DeliveryAddress.City, &o.DeliveryAddress.State,
			&o.DeliveryAddress.ZipCode, &o.DeliveryAddress.Instructions, &o.PaymentMethod,
			&o.CreatedAt, &o.UpdatedAt, &o.EstimatedDelivery, &total); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	refs := make([]*model.Order, len(result))
	for i := range result {
		refs[i] = &result[i]
	}
	if err := r.attachDetails(ctx, refs); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// attachDetails loads items and status history for the given orders in two
// batched queries.
func (r *orderRepository) attachDetails(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	index := make(map[string]*model.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = o
	}

	const itemsQuery = `SELECT id, order_id, menu_item_id, name, unit_price, quantity, special_instructions
                        FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var item model.OrderItem
		var orderID string
		if err := rows.Scan(&item.ID, &orderID, &item.MenuItemID, &item.Name, &item.UnitPrice,
			&item.Quantity, &item.SpecialInstructions); err != nil {
			return err
		}
		if o, ok := index[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	const historyQuery = `SELECT order_id, status, changed_at, note
                          FROM order_status_history WHERE order_id = ANY($1) ORDER BY changed_at, id`
	historyRows, err := r.storage.pool.Query(ctx, historyQuery, ids)
	if err != nil {
		return err
	}
	defer historyRows.Close()
	for historyRows.Next() {
		var entry model.StatusHistoryEntry
		var orderID string
		if err := historyRows.Scan(&orderID, &entry.Status, &entry.Timestamp, &entry.Note); err != nil {
			return err
		}
		if o, ok := index[orderID]; ok {
			o.StatusHistory = append(o.StatusHistory, entry)
		}
	}
	return historyRows.Err()
}

func (r *orderRepository) CountActive(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status NOT IN ('delivered', 'cancelled')`
	var args []any
	if userID != 0 {
		args = append(args, userID)
		query += fmt.Sprintf(" AND user_id=$%d", len(args))
	}
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ApplyTransition moves the order between statuses with a compare-and-set
// guard: the update only lands while the order still holds the expected
// status, and the history row is written in the same transaction. A stale
// expectation reports applied=false without error.
func (r *orderRepository) ApplyTransition(ctx context.Context, orderID string, from, to model.OrderStatus, at time.Time, note string) (bool, error) {
	applied := false
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`
		tag, err := tx.Exec(ctx, update, to, at, orderID, from)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, changed_at, note)
                               VALUES ($1,$2,$3,$4)`
		if _, err := tx.Exec(ctx, insertHistory, orderID, to, at, note); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (r *orderRepository) SelectPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE status='pending' AND created_at <= $1
              ORDER BY created_at LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes the underlying connection pool.
func (s *Storage) Pool() Pool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
