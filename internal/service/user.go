package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
)

// User is the user lifecycle and authentication service. It validates
// cross-entity references on creation, hashes credentials, performs
// partial field updates, decodes profile photos and authenticates
// login attempts.
type User struct {
	users    model.UserStore
	roles    model.ReferenceStore
	regions  model.ReferenceStore
	statuses model.ReferenceStore
	hasher   model.PasswordHasher
	logger   *logger.Logger
}

// NewUser creates a new User service.
func NewUser(
	users model.UserStore,
	roles model.ReferenceStore,
	regions model.ReferenceStore,
	statuses model.ReferenceStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *User {
	return &User{
		users:    users,
		roles:    roles,
		regions:  regions,
		statuses: statuses,
		hasher:   hasher,
		logger:   logger,
	}
}

// Create validates the user's region, role and status references,
// replaces the plaintext password with its hash and persists the record.
// Nothing is written when any validation fails.
func (s *User) Create(ctx context.Context, user model.User) (model.User, error) {
	s.logger.Debug("User service: creating user", "email", user.Email)

	if err := s.checkReference(ctx, s.regions, model.KindRegion, user.RegionID); err != nil {
		return model.User{}, err
	}
	if err := s.checkReference(ctx, s.roles, model.KindRole, user.RoleID); err != nil {
		return model.User{}, err
	}
	if err := s.checkReference(ctx, s.statuses, model.KindStatus, user.StatusID); err != nil {
		return model.User{}, err
	}

	hashed, err := s.hasher.Hash(user.PasswordHash)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"email", user.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed

	saved, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", user.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created", "id", saved.ID, "email", saved.Email)

	return saved, nil
}

func (s *User) checkReference(ctx context.Context, store model.ReferenceStore, kind model.ReferenceKind, id *int32) error {
	if id == nil {
		return model.NewMissingReference(kind)
	}

	exists, err := store.Exists(ctx, *id)
	if err != nil {
		return fmt.Errorf("failed to check %s reference: %w", kind, err)
	}
	if !exists {
		return model.NewMissingReference(kind)
	}

	return nil
}

// GetByID returns the user with the given id.
func (s *User) GetByID(ctx context.Context, id int32) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByEmail returns the user with the given email.
func (s *User) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// List returns all users. An empty slice is a valid result, not an error.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UpdateName replaces the user's given name and rewrites the record.
func (s *User) UpdateName(ctx context.Context, id int32, name string) (model.User, error) {
	return s.update(ctx, id, "name", func(u *model.User) {
		u.Name = name
	})
}

// UpdateFamilyName replaces the user's family name and rewrites the record.
func (s *User) UpdateFamilyName(ctx context.Context, id int32, familyName string) (model.User, error) {
	return s.update(ctx, id, "family_name", func(u *model.User) {
		u.FamilyName = &familyName
	})
}

// UpdateEmail replaces the user's email and rewrites the record.
func (s *User) UpdateEmail(ctx context.Context, id int32, email string) (model.User, error) {
	return s.update(ctx, id, "email", func(u *model.User) {
		u.Email = email
	})
}

// UpdateRegion replaces the user's region. Unlike the other partial
// updates, the new region must resolve in the reference store.
func (s *User) UpdateRegion(ctx context.Context, id int32, regionID int32) (model.User, error) {
	if err := s.checkReference(ctx, s.regions, model.KindRegion, &regionID); err != nil {
		return model.User{}, err
	}

	return s.update(ctx, id, "region", func(u *model.User) {
		u.RegionID = &regionID
	})
}

// update implements the shared partial-update contract: load the full
// record, mutate exactly one field group, rewrite the whole record.
func (s *User) update(ctx context.Context, id int32, field string, mutate func(*model.User)) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	mutate(&user)

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to update user",
			"id", id,
			"field", field,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user %s: %w", field, err)
	}

	s.logger.Info("User service: user updated", "id", id, "field", field)

	return updated, nil
}

// UpdatePhoto decodes the encoded image payload and stores it as the
// user's profile photo.
func (s *User) UpdatePhoto(ctx context.Context, id int32, encoded string) (model.User, error) {
	photo, err := decodePhoto(encoded)
	if err != nil {
		return model.User{}, err
	}

	return s.update(ctx, id, "photo", func(u *model.User) {
		u.Photo = photo
	})
}

// Login authenticates a plaintext password against the stored hash.
// An unknown email and a wrong password produce the same error so the
// caller cannot tell whether the email is registered.
func (s *User) Login(ctx context.Context, input model.LoginInput) error {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.logger.Info("User service: login rejected", "id", user.ID)
		return model.ErrInvalidCredentials
	}

	s.logger.Info("User service: login accepted", "id", user.ID)

	return nil
}

// ToDTO projects a user into its public view, dropping the password
// hash and token.
func (s *User) ToDTO(user model.User) model.UserDTO {
	return model.UserDTO{
		ID:         user.ID,
		RUT:        user.RUT,
		Name:       user.Name,
		FamilyName: user.FamilyName,
		Email:      user.Email,
		BirthDate:  user.BirthDate,
		Photo:      user.Photo,
		TripCount:  user.TripCount,
		DistanceKM: user.DistanceKM,
		RoleID:     user.RoleID,
		RegionID:   user.RegionID,
		StatusID:   user.StatusID,
	}
}
