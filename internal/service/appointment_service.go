package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/config"
	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/events"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/internal/schedule"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// AppointmentService runs the booking pipeline: resolve the requested day and
// time to a UTC instant, collect the doctors available that day, assign one
// uniformly at random, persist a Scheduled appointment.
//
// No conflict check runs between the availability read and the write: two
// concurrent bookings may select the same doctor for overlapping times.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	directory    *DoctorService
	resolver     *schedule.TimeResolver
	assigner     *schedule.Assigner
	dispatcher   events.Dispatcher
	defaultPrice float64
}

// AppointmentDependencies bundles collaborators.
type AppointmentDependencies struct {
	AppointmentRepo repository.AppointmentRepository
	PatientRepo     repository.PatientRepository
	Directory       *DoctorService
	Resolver        *schedule.TimeResolver
	Assigner        *schedule.Assigner
	Dispatcher      events.Dispatcher
}

// NewAppointmentService creates the service.
func NewAppointmentService(cfg config.Config, deps AppointmentDependencies) *AppointmentService {
	return &AppointmentService{
		appointments: deps.AppointmentRepo,
		patients:     deps.PatientRepo,
		directory:    deps.Directory,
		resolver:     deps.Resolver,
		assigner:     deps.Assigner,
		dispatcher:   deps.Dispatcher,
		defaultPrice: cfg.Billing.DefaultPrice,
	}
}

// CreateAppointmentInput carries a booking request.
type CreateAppointmentInput struct {
	PatientID string
	Day       string
	Time      string
	Purpose   string
}

// CreateAppointment books an appointment for the next occurrence of the
// requested weekday.
func (s *AppointmentService) CreateAppointment(ctx context.Context, claims *auth.Claims, input CreateAppointmentInput) (*domain.Appointment, error) {
	if _, err := uuid.Parse(input.PatientID); err != nil {
		return nil, apperrors.NewParsingError(err.Error())
	}
	patient, err := s.patients.GetByID(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("patient", map[string]any{"patient_id": input.PatientID})
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if patient.HospitalID != nil {
		if err := auth.Authorize(claims, domain.RolePatient, *patient.HospitalID); err != nil {
			return nil, err
		}
	}

	at, err := s.resolver.Resolve(input.Day, input.Time)
	if err != nil {
		return nil, err
	}

	candidates, err := s.directory.AvailableOn(ctx, input.Day)
	if err != nil {
		return nil, err
	}
	doctor, err := s.assigner.Assign(candidates)
	if err != nil {
		return nil, err
	}

	appointment := domain.NewAppointment(patient.ID, doctor.ID, input.Purpose, at, s.defaultPrice)
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	s.publish(ctx, claims, events.EventAppointmentCreated, appointment.ID, events.AppointmentCreatedPayload{
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Time:      appointment.Time,
		Purpose:   appointment.Purpose,
	})
	return appointment, nil
}

// GetAppointment returns an appointment by id.
func (s *AppointmentService) GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(appointmentID); err != nil {
		return nil, apperrors.NewParsingError(err.Error())
	}
	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"appointment_id": appointmentID})
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return appointment, nil
}

// ListAppointments returns appointments, optionally filtered by patient
// and/or doctor id.
func (s *AppointmentService) ListAppointments(ctx context.Context, patientID, doctorID *string) ([]domain.Appointment, error) {
	filter := repository.AppointmentFilter{}
	if patientID != nil {
		if _, err := uuid.Parse(*patientID); err != nil {
			return nil, apperrors.NewParsingError(err.Error())
		}
		filter.PatientID = patientID
	}
	if doctorID != nil {
		if _, err := uuid.Parse(*doctorID); err != nil {
			return nil, apperrors.NewParsingError(err.Error())
		}
		filter.DoctorID = doctorID
	}

	appointments, err := s.appointments.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return appointments, nil
}

// UpdateAppointmentStatus moves an appointment through its state machine.
// Scheduled may go to Done or Cancelled; Done and Cancelled are terminal.
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, claims *auth.Claims, appointmentID, statusValue string) (*domain.Appointment, error) {
	status, err := domain.ParseAppointmentStatus(statusValue)
	if err != nil {
		return nil, apperrors.NewParsingError(err.Error())
	}

	appointment, err := s.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.Status.CanTransitionTo(status) {
		return nil, apperrors.NewConflict(
			fmt.Sprintf("cannot transition appointment from %s to %s", appointment.Status, status),
			map[string]any{"appointment_id": appointmentID})
	}

	if err := s.appointments.UpdateStatus(ctx, appointmentID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"appointment_id": appointmentID})
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	oldStatus := appointment.Status
	appointment.Status = status
	s.publish(ctx, claims, events.EventAppointmentStatusChanged, appointment.ID, events.AppointmentStatusChangedPayload{
		OldStatus: oldStatus,
		NewStatus: status,
	})
	return appointment, nil
}

func (s *AppointmentService) publish(ctx context.Context, claims *auth.Claims, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	actor := events.Actor{}
	if claims != nil {
		userID := claims.UserID()
		role := claims.Role
		actor = events.Actor{UserID: &userID, Role: &role}
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	_ = s.dispatcher.Publish(ctx, event)
}
