package serviceImp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/listing"
	"agri/pkg/metrics"
	repo "agri/pkg/user/repository"
	"agri/pkg/user/service"
)

const (
	RoleAdmin  = "admin"
	RoleFarmer = "farmer"
	RoleUser   = "user"
)

type userSvc struct {
	r   repo.UserRepository
	log *zap.Logger
	m   *metrics.Metrics
}

func NewUserService(r repo.UserRepository, log *zap.Logger, m *metrics.Metrics) service.UserService {
	return &userSvc{r: r, log: log.Named("user"), m: m}
}

// normalize lower-cases email and role; an empty role becomes "user".
func normalize(u *entities.User) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Role = strings.ToLower(strings.TrimSpace(u.Role))
	u.PhotoURL = strings.TrimSpace(u.PhotoURL)
	if err := apperrors.Required("name", u.Name); err != nil {
		return err
	}
	if err := apperrors.Required("email", u.Email); err != nil {
		return err
	}
	if at := strings.IndexByte(u.Email, '@'); at <= 0 || at == len(u.Email)-1 {
		return apperrors.Invalid("email", "%q is not an email address", u.Email)
	}
	switch u.Role {
	case "":
		u.Role = RoleUser
	case RoleAdmin, RoleFarmer, RoleUser:
	default:
		return apperrors.Invalid("role", "must be admin, farmer or user, got %q", u.Role)
	}
	return nil
}

// emailFree reports a Conflict when another user already owns email.
func (s *userSvc) emailFree(ctx context.Context, email string, self uint) error {
	other, err := s.r.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != self:
		return apperrors.Conflict("email %s is already registered", email)
	}
	return nil
}

func (s *userSvc) Create(ctx context.Context, u *entities.User) (*entities.User, error) {
	if err := normalize(u); err != nil {
		return nil, err
	}
	if err := s.emailFree(ctx, u.Email, 0); err != nil {
		return nil, err
	}
	u.ID = 0
	if err := s.r.Create(ctx, u); err != nil {
		return nil, err
	}
	s.m.Write("user", "create")
	return u, nil
}

func (s *userSvc) Get(ctx context.Context, id uint) (*entities.User, error) {
	return s.r.FindByID(ctx, id)
}

func (s *userSvc) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.r.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *userSvc) List(ctx context.Context, p listing.Params) ([]entities.User, int64, error) {
	return s.r.List(ctx, p)
}

func (s *userSvc) Update(ctx context.Context, id uint, u *entities.User) (*entities.User, error) {
	if err := normalize(u); err != nil {
		return nil, err
	}
	if err := s.emailFree(ctx, u.Email, id); err != nil {
		return nil, err
	}
	u.ID = id
	if err := s.r.Update(ctx, u); err != nil {
		return nil, err
	}
	s.m.Write("user", "update")
	return s.r.FindByID(ctx, id)
}

// Delete leaves the user's calculations in place; history is append-only.
func (s *userSvc) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.m.Write("user", "delete")
	return nil
}
