package model

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int32) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored user profile with its credential material.
// PasswordHash and Token are suppressed from JSON so that list and
// create responses never leak them.
type User struct {
	ID           int32           `json:"id"`
	RUT          *string         `json:"rut,omitempty"`
	Name         string          `json:"nombre"`
	FamilyName   *string         `json:"apellido,omitempty"`
	Email        string          `json:"correo"`
	BirthDate    *time.Time      `json:"fNacimiento,omitempty"`
	PasswordHash string          `json:"-"`
	Token        *string         `json:"-"`
	Photo        []byte          `json:"fotoPerfil,omitempty"`
	TripCount    int32           `json:"rutasRecorridas"`
	DistanceKM   decimal.Decimal `json:"kmRecorridos"`
	RoleID       *int32          `json:"idRol,omitempty"`
	RegionID     *int32          `json:"idRegion,omitempty"`
	StatusID     *int32          `json:"idEstado,omitempty"`
}

// UserDTO is the public projection of a user exposed at the service
// boundary. It carries no credential material at all.
type UserDTO struct {
	ID         int32           `json:"id"`
	RUT        *string         `json:"rut,omitempty"`
	Name       string          `json:"nombre"`
	FamilyName *string         `json:"apellido,omitempty"`
	Email      string          `json:"correo"`
	BirthDate  *time.Time      `json:"fNacimiento,omitempty"`
	Photo      []byte          `json:"fotoPerfil,omitempty"`
	TripCount  int32           `json:"rutasRecorridas"`
	DistanceKM decimal.Decimal `json:"kmRecorridos"`
	RoleID     *int32          `json:"idRol,omitempty"`
	RegionID   *int32          `json:"idRegion,omitempty"`
	StatusID   *int32          `json:"idEstado,omitempty"`
}

// LoginInput is a single authentication attempt. It is never persisted.
type LoginInput struct {
	Email    string
	Password string
}
