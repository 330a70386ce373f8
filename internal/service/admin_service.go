package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/config"
	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/events"
	"github.com/spec-kit/hospital-portal/internal/repository"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// AdminService provisions hospitals and guards tenant-scoped updates.
type AdminService struct {
	hospitals  repository.HospitalRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAdminService builds the service.
func NewAdminService(cfg config.Config, hospitals repository.HospitalRepository, users repository.UserRepository, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{
		hospitals:  hospitals,
		users:      users,
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// CreateHospitalInput carries the fields for a new hospital and its admin.
type CreateHospitalInput struct {
	Name          string
	Address       string
	Phone         string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// CreateHospital creates a hospital together with its first admin user.
func (s *AdminService) CreateHospital(ctx context.Context, input CreateHospitalInput) (*domain.Hospital, *domain.User, error) {
	hash, err := auth.HashPassword(input.AdminPassword, s.bcryptCost)
	if err != nil {
		return nil, nil, apperrors.NewInternalError(err)
	}

	hospital := domain.NewHospital(input.Name, input.Address, input.Phone)
	admin := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.AdminName,
		Email:        input.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		HospitalID:   hospital.ID,
	}

	if err := s.hospitals.Create(ctx, hospital); err != nil {
		return nil, nil, apperrors.NewDatabaseError(err)
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, nil, apperrors.NewDatabaseError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventHospitalCreated,
		SubjectID: hospital.ID,
		Actor:     events.Actor{UserID: &admin.ID, Role: &admin.Role},
		Timestamp: time.Now(),
		Payload: events.HospitalCreatedPayload{
			Name:       hospital.Name,
			AdminEmail: admin.Email,
		},
	})
	return hospital, admin, nil
}

// GetHospital returns a hospital by id.
func (s *AdminService) GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	if _, err := uuid.Parse(hospitalID); err != nil {
		return nil, apperrors.NewParsingError(err.Error())
	}
	hospital, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("hospital", map[string]any{"hospital_id": hospitalID})
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return hospital, nil
}

// UpdateHospital applies a partial update. Only an admin of that hospital may
// update it; the guard runs before any persistence side effect.
func (s *AdminService) UpdateHospital(ctx context.Context, claims *auth.Claims, hospitalID string, update repository.HospitalUpdate) (*domain.Hospital, error) {
	if _, err := uuid.Parse(hospitalID); err != nil {
		return nil, apperrors.NewParsingError(err.Error())
	}
	if err := auth.Authorize(claims, domain.RoleAdmin, hospitalID); err != nil {
		return nil, err
	}

	hospital, err := s.hospitals.Update(ctx, hospitalID, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("hospital", map[string]any{"hospital_id": hospitalID})
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return hospital, nil
}

func (s *AdminService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
