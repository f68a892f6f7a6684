package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/service"
)

// Config controls a seeding run. The randomness source is injected so
// dev and test harnesses get reproducible data.
type Config struct {
	Users int
	Rand  *rand.Rand
}

// Services holds the services seeding writes through. Users go through
// the user service so hashing and reference validation apply.
type Services struct {
	Users    *service.User
	Roles    *service.Reference
	Regions  *service.Reference
	Statuses *service.Reference
}

var firstNames = []string{
	"Camila", "Sofia", "Valentina", "Isidora", "Antonia",
	"Mateo", "Benjamin", "Vicente", "Martin", "Joaquin",
}

var lastNames = []string{
	"Gonzalez", "Munoz", "Rojas", "Diaz", "Perez",
	"Soto", "Contreras", "Silva", "Martinez", "Sepulveda",
}

// Run seeds one row into each empty reference table and creates
// cfg.Users users. It never runs implicitly; the caller opts in.
func Run(ctx context.Context, svcs Services, cfg Config, log *logger.Logger) error {
	role, err := ensureReference(ctx, svcs.Roles, "USUARIO")
	if err != nil {
		return fmt.Errorf("failed to seed role: %w", err)
	}
	region, err := ensureReference(ctx, svcs.Regions, "Metropolitana")
	if err != nil {
		return fmt.Errorf("failed to seed region: %w", err)
	}
	status, err := ensureReference(ctx, svcs.Statuses, "Activo")
	if err != nil {
		return fmt.Errorf("failed to seed status: %w", err)
	}

	for i := 0; i < cfg.Users; i++ {
		name := firstNames[cfg.Rand.Intn(len(firstNames))]
		familyName := lastNames[cfg.Rand.Intn(len(lastNames))]
		email := strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", name, familyName, i))
		birthDate := randomDateBetween(
			time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2006, 12, 31, 0, 0, 0, 0, time.UTC),
			cfg.Rand,
		)

		user := model.User{
			Name:         name,
			FamilyName:   &familyName,
			Email:        email,
			BirthDate:    &birthDate,
			PasswordHash: "Secret123!",
			TripCount:    int32(cfg.Rand.Intn(100)),
			DistanceKM:   decimal.New(int64(cfg.Rand.Intn(100_000)), -2),
			RoleID:       &role.ID,
			RegionID:     &region.ID,
			StatusID:     &status.ID,
		}

		if _, err := svcs.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}
	}

	log.Info("seeding completed", "users", cfg.Users)

	return nil
}

// ensureReference returns the first row of the table, creating a
// default one when the table is empty.
func ensureReference(ctx context.Context, svc *service.Reference, defaultName string) (model.Reference, error) {
	refs, err := svc.List(ctx)
	if err != nil {
		return model.Reference{}, err
	}
	if len(refs) > 0 {
		return refs[0], nil
	}

	return svc.Create(ctx, model.Reference{Name: defaultName})
}

func randomDateBetween(start, end time.Time, r *rand.Rand) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, r.Intn(days+1))
}
