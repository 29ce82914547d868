package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrUserExists = errors.New("user already exists")
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	FarmSize     string    `json:"farmSize,omitempty"`
	CropTypes    []string  `json:"cropTypes"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProfileUpdate carries a partial profile change; nil fields are left as is.
type ProfileUpdate struct {
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Location  *string   `json:"location"`
	FarmSize  *string   `json:"farmSize"`
	CropTypes *[]string `json:"cropTypes"`
}

func (p ProfileUpdate) apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.FarmSize != nil {
		u.FarmSize = *p.FarmSize
	}
	if p.CropTypes != nil {
		u.CropTypes = append([]string{}, (*p.CropTypes)...)
	}
}

type UserStore interface {
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, id string, p ProfileUpdate) (User, error)
}

// NormalizeEmail is the lookup key used by every store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const uniqueViolation = "23505"

const Schema = `CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	phone      TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	farm_size  TEXT NOT NULL DEFAULT '',
	crop_types TEXT[] NOT NULL DEFAULT '{}',
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = NormalizeEmail(u.Email)
	if u.CropTypes == nil {
		u.CropTypes = []string{}
	}
	query := `INSERT INTO users (id, name, email, phone, location, farm_size, crop_types, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		u.ID, u.Name, u.Email, u.Phone, u.Location, u.FarmSize, pq.Array(u.CropTypes), u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

const selectUser = `SELECT id, name, email, phone, location, farm_size, crop_types, password, created_at FROM users`

func (r *PostgresUserRepository) scanOne(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Location, &u.FarmSize,
		pq.Array(&u.CropTypes), &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUser+" WHERE email=$1", NormalizeEmail(email)))
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUser+" WHERE id=$1", id))
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) (User, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	p.apply(&u)
	query := `UPDATE users SET name=$2, phone=$3, location=$4, farm_size=$5, crop_types=$6 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, id, u.Name, u.Phone, u.Location, u.FarmSize, pq.Array(u.CropTypes))
	if err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return User{}, ErrNotFound
	}
	return u, nil
}
