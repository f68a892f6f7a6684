package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/condor-cl/users-api/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id_usuario, rut, nombre, apellido, correo, f_nacimiento, contrasena, token,
			  foto_perfil, rutas_recorridas, km_recorridos, id_rol, id_region, id_estado`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.RUT, &user.Name, &user.FamilyName, &user.Email, &user.BirthDate,
		&user.PasswordHash, &user.Token, &user.Photo, &user.TripCount, &user.DistanceKM,
		&user.RoleID, &user.RegionID, &user.StatusID,
	)
	return user, err
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO usuario (rut, nombre, apellido, correo, f_nacimiento, contrasena, token,
				foto_perfil, rutas_recorridas, km_recorridos, id_rol, id_region, id_estado)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.RUT, user.Name, user.FamilyName, user.Email, user.BirthDate, user.PasswordHash,
		user.Token, user.Photo, user.TripCount, user.DistanceKM,
		user.RoleID, user.RegionID, user.StatusID,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int32) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuario WHERE id_usuario = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuario WHERE correo = $1 ORDER BY id_usuario LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuario ORDER BY id_usuario`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

// Update rewrites the whole user row in a single statement.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE usuario
			  SET rut = $2, nombre = $3, apellido = $4, correo = $5, f_nacimiento = $6,
				  contrasena = $7, token = $8, foto_perfil = $9, rutas_recorridas = $10,
				  km_recorridos = $11, id_rol = $12, id_region = $13, id_estado = $14
			  WHERE id_usuario = $1
			  RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.RUT, user.Name, user.FamilyName, user.Email, user.BirthDate,
		user.PasswordHash, user.Token, user.Photo, user.TripCount, user.DistanceKM,
		user.RoleID, user.RegionID, user.StatusID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}
