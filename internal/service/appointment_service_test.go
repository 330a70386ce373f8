package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/config"
	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/internal/schedule"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

const (
	testPatientID  = "11111111-1111-4111-8111-111111111111"
	testHospitalID = "22222222-2222-4222-8222-222222222222"
)

type fakePatientRepo struct {
	patients map[string]*domain.Patient
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *domain.Patient) error {
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	patient, ok := f.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return patient, nil
}

func (f *fakePatientRepo) List(ctx context.Context) ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, nil
}

type fakeDoctorRepo struct {
	doctors []domain.Doctor
	calls   int
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *domain.Doctor) error {
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			return &f.doctors[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeDoctorRepo) List(ctx context.Context) ([]domain.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorRepo) ListAvailableOn(ctx context.Context, day string) ([]domain.Doctor, error) {
	f.calls++
	var out []domain.Doctor
	for _, d := range f.doctors {
		if d.AvailableOn(day) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]*domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[string]*domain.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *domain.Appointment) error {
	stored := *appointment
	f.appointments[appointment.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, ok := f.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, filter repository.AppointmentFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appointments {
		if filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	appointment, ok := f.appointments[id]
	if !ok {
		return pgx.ErrNoRows
	}
	appointment.Status = status
	return nil
}

func patientClaims(hospitalID string) *auth.Claims {
	return &auth.Claims{
		HospitalID:       hospitalID,
		Role:             domain.RolePatient,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "33333333-3333-4333-8333-333333333333"},
	}
}

// sundayClock pins the resolver to 2026-08-23T12:00:00Z, a Sunday.
func sundayClock() func() time.Time {
	at := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newBookingService(doctors *fakeDoctorRepo, patients *fakePatientRepo, appointments *fakeAppointmentRepo) *AppointmentService {
	cfg := config.Config{Billing: config.BillingConfig{DefaultPrice: 10000.00}}
	directory := NewDoctorService(doctors, nil, zap.NewNop())
	return NewAppointmentService(cfg, AppointmentDependencies{
		AppointmentRepo: appointments,
		PatientRepo:     patients,
		Directory:       directory,
		Resolver:        schedule.NewTimeResolverAt(sundayClock()),
		Assigner:        schedule.NewAssigner(rand.NewSource(7)),
	})
}

func TestCreateAppointmentBooksNextOccurrence(t *testing.T) {
	hospital := testHospitalID
	patients := &fakePatientRepo{patients: map[string]*domain.Patient{
		testPatientID: {ID: testPatientID, Name: "Kofi", HospitalID: &hospital},
	}}
	doctors := &fakeDoctorRepo{doctors: []domain.Doctor{
		{ID: "doc-a", Name: "Dr. A", AvailableDays: []string{"Wednesday"}},
		{ID: "doc-b", Name: "Dr. B", AvailableDays: []string{"Monday", "Wednesday"}},
		{ID: "doc-c", Name: "Dr. C", AvailableDays: []string{"Friday"}},
	}}
	appointments := newFakeAppointmentRepo()
	svc := newBookingService(doctors, patients, appointments)

	appointment, err := svc.CreateAppointment(context.Background(), patientClaims(hospital), CreateAppointmentInput{
		PatientID: testPatientID,
		Day:       "Wednesday",
		Time:      "10:00 WAT",
		Purpose:   "checkup",
	})
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}

	// Next Wednesday after Sunday 2026-08-23 is 2026-08-26; 10:00 WAT is
	// 09:00 UTC.
	want := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	if !appointment.Time.Equal(want) {
		t.Errorf("time = %v, want %v", appointment.Time, want)
	}
	if appointment.DoctorID != "doc-a" && appointment.DoctorID != "doc-b" {
		t.Errorf("assigned doctor %s is not available on Wednesday", appointment.DoctorID)
	}
	if appointment.Status != domain.AppointmentStatusScheduled {
		t.Errorf("status = %s, want Scheduled", appointment.Status)
	}
	if appointment.Price != 10000.00 {
		t.Errorf("price = %v, want 10000.00", appointment.Price)
	}
	if _, ok := appointments.appointments[appointment.ID]; !ok {
		t.Error("appointment not persisted")
	}
}

func TestCreateAppointmentNoDoctorsAvailable(t *testing.T) {
	hospital := testHospitalID
	patients := &fakePatientRepo{patients: map[string]*domain.Patient{
		testPatientID: {ID: testPatientID, HospitalID: &hospital},
	}}
	doctors := &fakeDoctorRepo{doctors: []domain.Doctor{
		{ID: "doc-c", AvailableDays: []string{"Friday"}},
	}}
	svc := newBookingService(doctors, patients, newFakeAppointmentRepo())

	_, err := svc.CreateAppointment(context.Background(), patientClaims(hospital), CreateAppointmentInput{
		PatientID: testPatientID,
		Day:       "Wednesday",
		Time:      "10:00 WAT",
	})
	if err == nil {
		t.Fatal("CreateAppointment succeeded with no available doctors")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "NOT_FOUND" {
		t.Fatalf("code = %s, want NOT_FOUND", domainErr.Code)
	}
	if domainErr.Message != "No doctors available on the requested day" {
		t.Errorf("message = %q", domainErr.Message)
	}
}

func TestCreateAppointmentInvalidDay(t *testing.T) {
	hospital := testHospitalID
	patients := &fakePatientRepo{patients: map[string]*domain.Patient{
		testPatientID: {ID: testPatientID, HospitalID: &hospital},
	}}
	svc := newBookingService(&fakeDoctorRepo{}, patients, newFakeAppointmentRepo())

	_, err := svc.CreateAppointment(context.Background(), patientClaims(hospital), CreateAppointmentInput{
		PatientID: testPatientID,
		Day:       "Funday",
		Time:      "10:00 WAT",
	})
	if err == nil {
		t.Fatal("CreateAppointment succeeded for unknown day")
	}
	if !apperrors.IsCode(err, "UNPROCESSABLE_ENTITY") {
		t.Fatalf("code = %s, want UNPROCESSABLE_ENTITY", apperrors.ToDomainError(err).Code)
	}
}

func TestCreateAppointmentCrossTenantDenied(t *testing.T) {
	hospital := testHospitalID
	patients := &fakePatientRepo{patients: map[string]*domain.Patient{
		testPatientID: {ID: testPatientID, HospitalID: &hospital},
	}}
	svc := newBookingService(&fakeDoctorRepo{}, patients, newFakeAppointmentRepo())

	_, err := svc.CreateAppointment(context.Background(), patientClaims("44444444-4444-4444-8444-444444444444"), CreateAppointmentInput{
		PatientID: testPatientID,
		Day:       "Wednesday",
		Time:      "10:00 WAT",
	})
	if err == nil {
		t.Fatal("CreateAppointment allowed a cross-tenant booking")
	}
	if !apperrors.IsCode(err, "UNAUTHORIZED") {
		t.Fatalf("code = %s, want UNAUTHORIZED", apperrors.ToDomainError(err).Code)
	}
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	svc := newBookingService(&fakeDoctorRepo{}, &fakePatientRepo{patients: map[string]*domain.Patient{}}, newFakeAppointmentRepo())

	_, err := svc.CreateAppointment(context.Background(), patientClaims(testHospitalID), CreateAppointmentInput{
		PatientID: testPatientID,
		Day:       "Wednesday",
		Time:      "10:00 WAT",
	})
	if err == nil {
		t.Fatal("CreateAppointment succeeded for unknown patient")
	}
	if !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("code = %s, want NOT_FOUND", apperrors.ToDomainError(err).Code)
	}
}

func TestUpdateAppointmentStatusTransitions(t *testing.T) {
	appointments := newFakeAppointmentRepo()
	scheduled := domain.NewAppointment(testPatientID, "doc-a", "checkup", time.Now(), 10000.00)
	if err := appointments.Create(context.Background(), scheduled); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	svc := newBookingService(&fakeDoctorRepo{}, &fakePatientRepo{patients: map[string]*domain.Patient{}}, appointments)

	updated, err := svc.UpdateAppointmentStatus(context.Background(), nil, scheduled.ID, "Done")
	if err != nil {
		t.Fatalf("UpdateAppointmentStatus returned error: %v", err)
	}
	if updated.Status != domain.AppointmentStatusDone {
		t.Fatalf("status = %s, want Done", updated.Status)
	}

	// Done is terminal; any further move conflicts.
	_, err = svc.UpdateAppointmentStatus(context.Background(), nil, scheduled.ID, "Cancelled")
	if err == nil {
		t.Fatal("transition out of terminal state succeeded")
	}
	if !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("code = %s, want CONFLICT", apperrors.ToDomainError(err).Code)
	}
}

func TestUpdateAppointmentStatusRejectsUnknownStatus(t *testing.T) {
	svc := newBookingService(&fakeDoctorRepo{}, &fakePatientRepo{patients: map[string]*domain.Patient{}}, newFakeAppointmentRepo())

	_, err := svc.UpdateAppointmentStatus(context.Background(), nil, testPatientID, "Rescheduled")
	if err == nil {
		t.Fatal("UpdateAppointmentStatus accepted an unknown status")
	}
	if !apperrors.IsCode(err, "PARSING_ERROR") {
		t.Fatalf("code = %s, want PARSING_ERROR", apperrors.ToDomainError(err).Code)
	}
}

func TestListAppointmentsFilters(t *testing.T) {
	appointments := newFakeAppointmentRepo()
	a1 := domain.NewAppointment(testPatientID, "doc-a", "", time.Now(), 0)
	a2 := domain.NewAppointment(testPatientID, "doc-b", "", time.Now(), 0)
	for _, a := range []*domain.Appointment{a1, a2} {
		if err := appointments.Create(context.Background(), a); err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}
	svc := newBookingService(&fakeDoctorRepo{}, &fakePatientRepo{patients: map[string]*domain.Patient{}}, appointments)

	doctorID := "doc-a"
	got, err := svc.ListAppointments(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ListAppointments returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("unfiltered list has %d entries, want 2", len(got))
	}

	// doctor_id is free text at the repo fake level but must be a uuid at the
	// service boundary.
	if _, err := svc.ListAppointments(context.Background(), nil, &doctorID); err == nil {
		t.Error("ListAppointments accepted a non-uuid doctor filter")
	}

	patientID := testPatientID
	got, err = svc.ListAppointments(context.Background(), &patientID, nil)
	if err != nil {
		t.Fatalf("ListAppointments returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("patient-filtered list has %d entries, want 2", len(got))
	}
}
