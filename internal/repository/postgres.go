package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/caterquest/caterquest/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (r *PostgresStorage) CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.AuthUser, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	u := &models.AuthUser{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO auth_users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at
	`, req.Username, req.Email, passwordHash, req.Role).Scan(&u.UserID, &u.CreatedAt)
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("insert auth user: %w", err)
	}

	switch req.Role {
	case models.RoleCustomer:
		_, err = tx.Exec(ctx, `
			INSERT INTO customers (user_id, customer_name, phone, location)
			VALUES ($1, $2, $3, $4)
		`, u.UserID, req.AdditionalData.CustomerName, req.AdditionalData.Phone, req.AdditionalData.Location)
	case models.RoleVendor:
		_, err = tx.Exec(ctx, `
			INSERT INTO vendors (user_id, vendor_name, phone, email, address, location)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, u.UserID, req.AdditionalData.VendorName, req.AdditionalData.Phone, req.Email,
			req.AdditionalData.Address, req.AdditionalData.Location)
	}
	if err != nil {
		return nil, fmt.Errorf("insert %s profile: %w", req.Role, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return u, nil
}

func (r *PostgresStorage) FindUserByLogin(ctx context.Context, usernameOrEmail string, role models.Role) (*models.AuthUser, error) {
	u := &models.AuthUser{}
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, username, email, password_hash, role, created_at
		FROM auth_users
		WHERE (username = $1 OR email = $1) AND role = $2
	`, usernameOrEmail, role).Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *PostgresStorage) CustomerByUserID(ctx context.Context, userID int64) (*models.Customer, error) {
	c := &models.Customer{}
	err := r.pool.QueryRow(ctx, `
		SELECT customer_id, user_id, customer_name, phone, COALESCE(location, '')
		FROM customers WHERE user_id = $1
	`, userID).Scan(&c.CustomerID, &c.UserID, &c.CustomerName, &c.Phone, &c.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *PostgresStorage) VendorByUserID(ctx context.Context, userID int64) (*models.Vendor, error) {
	v := &models.Vendor{}
	err := r.pool.QueryRow(ctx, `
		SELECT vendor_id, user_id, vendor_name, phone, email, COALESCE(address, ''), COALESCE(location, '')
		FROM vendors WHERE user_id = $1
	`, userID).Scan(&v.VendorID, &v.UserID, &v.VendorName, &v.Phone, &v.Email, &v.Address, &v.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// FindVendors строит запрос по конъюнкции фильтров: подстрока локации и
// имени без учета регистра, минимальный средний рейтинг через JOIN+GROUP BY.
func (r *PostgresStorage) FindVendors(ctx context.Context, f models.VendorFilter) ([]models.Vendor, error) {
	cols := []string{"v.vendor_id", "v.user_id", "v.vendor_name", "v.phone", "v.email",
		"COALESCE(v.address, '')", "COALESCE(v.location, '')"}

	qb := sq.Select(cols...).
		From("vendors v").
		PlaceholderFormat(sq.Dollar)

	if f.Location != "" {
		qb = qb.Where(sq.ILike{"v.location": "%" + f.Location + "%"})
	}
	if f.VendorName != "" {
		qb = qb.Where(sq.ILike{"v.vendor_name": "%" + f.VendorName + "%"})
	}
	if f.MinRating != nil {
		qb = qb.Join("ratings r ON r.vendor_id = v.vendor_id").
			GroupBy(cols...).
			Having("AVG(r.stars) >= ?", *f.MinRating)
	}
	qb = qb.OrderBy("v.vendor_id")

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vendors query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.VendorID, &v.UserID, &v.VendorName, &v.Phone, &v.Email, &v.Address, &v.Location); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan vendor rows: %w", err)
	}
	return vendors, nil
}

func (r *PostgresStorage) AverageRating(ctx context.Context, vendorID int64) (*float64, error) {
	var avg *float64
	err := r.pool.QueryRow(ctx, `
		SELECT AVG(stars)::float8 FROM ratings WHERE vendor_id = $1
	`, vendorID).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("avg rating: %w", err)
	}
	return avg, nil
}

func (r *PostgresStorage) VendorReviews(ctx context.Context, vendorID int64) ([]models.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.customer_name, r.stars, COALESCE(r.description, '')
		FROM ratings r
		JOIN customers c ON c.customer_id = r.customer_id
		WHERE r.vendor_id = $1
		ORDER BY r.rating_id
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.CustomerName, &rv.Stars, &rv.Description); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan review rows: %w", err)
	}
	return reviews, nil
}

func (r *PostgresStorage) VendorMenu(ctx context.Context, vendorID int64) ([]models.Menu, error) {
	return r.MenuByVendor(ctx, vendorID)
}

func (r *PostgresStorage) VendorExists(ctx context.Context, vendorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM vendors WHERE vendor_id = $1)
	`, vendorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("vendor exists: %w", err)
	}
	return exists, nil
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
