package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/internal/schedule"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

const availabilityCacheTTL = time.Minute

// DoctorService is the practitioner directory: doctor CRUD plus weekday
// availability resolution. Availability reads go through a Redis cache keyed
// by day name; the cache is best-effort and failures fall back to Postgres.
type DoctorService struct {
	doctors repository.DoctorRepository
	cache   *redis.Client
	logger  *zap.Logger
}

// NewDoctorService builds the service. cache may be nil.
func NewDoctorService(doctors repository.DoctorRepository, cache *redis.Client, logger *zap.Logger) *DoctorService {
	return &DoctorService{doctors: doctors, cache: cache, logger: logger}
}

// CreateDoctorInput carries the fields for a new doctor.
type CreateDoctorInput struct {
	Name           string
	Specialization string
	VisitingHours  string
	AvailableDays  []string
}

// CreateDoctor registers a doctor and invalidates cached availability for the
// days the doctor accepts.
func (s *DoctorService) CreateDoctor(ctx context.Context, input CreateDoctorInput) (*domain.Doctor, error) {
	for _, day := range input.AvailableDays {
		if !schedule.IsValidDay(day) {
			return nil, apperrors.NewParsingError("Invalid day format")
		}
	}

	doctor := domain.NewDoctor(input.Name, input.Specialization, input.VisitingHours, input.AvailableDays)
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	s.invalidateAvailability(ctx, doctor.AvailableDays)
	return doctor, nil
}

// ListDoctors returns all doctors.
func (s *DoctorService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return doctors, nil
}

// GetDoctor returns a doctor by id.
func (s *DoctorService) GetDoctor(ctx context.Context, doctorID string) (*domain.Doctor, error) {
	if _, err := uuid.Parse(doctorID); err != nil {
		return nil, apperrors.NewParsingError(err.Error())
	}
	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("doctor", map[string]any{"doctor_id": doctorID})
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return doctor, nil
}

// AvailableOn returns the doctors whose availability includes the given day.
// The day name is validated before any directory read; an empty result is not
// an error.
func (s *DoctorService) AvailableOn(ctx context.Context, day string) ([]domain.Doctor, error) {
	if !schedule.IsValidDay(day) {
		return nil, apperrors.NewParsingError("Invalid day format")
	}

	if cached, ok := s.cachedAvailability(ctx, day); ok {
		return cached, nil
	}

	doctors, err := s.doctors.ListAvailableOn(ctx, day)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	s.storeAvailability(ctx, day, doctors)
	return doctors, nil
}

// IsAvailable reports whether a specific doctor accepts bookings on a day.
func (s *DoctorService) IsAvailable(ctx context.Context, doctorID, day string) (bool, error) {
	if !schedule.IsValidDay(day) {
		return false, apperrors.NewParsingError("Invalid day format")
	}
	doctor, err := s.GetDoctor(ctx, doctorID)
	if err != nil {
		return false, err
	}
	return doctor.AvailableOn(day), nil
}

func availabilityKey(day string) string {
	return "doctors:available:" + day
}

func (s *DoctorService) cachedAvailability(ctx context.Context, day string) ([]domain.Doctor, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, availabilityKey(day)).Bytes()
	if err != nil {
		return nil, false
	}
	var doctors []domain.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

func (s *DoctorService) storeAvailability(ctx context.Context, day string, doctors []domain.Doctor) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, availabilityKey(day), raw, availabilityCacheTTL).Err(); err != nil {
		s.logger.Debug("availability cache store failed", zap.String("day", day), zap.Error(err))
	}
}

func (s *DoctorService) invalidateAvailability(ctx context.Context, days []string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, len(days))
	for _, day := range days {
		keys = append(keys, availabilityKey(day))
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Debug("availability cache invalidation failed", zap.Error(err))
	}
}
