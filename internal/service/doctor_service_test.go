package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/hospital-portal/internal/domain"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

func TestAvailableOnFiltersByDay(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: []domain.Doctor{
		{ID: "doc-a", AvailableDays: []string{"Monday", "Wednesday"}},
		{ID: "doc-b", AvailableDays: []string{"Friday"}},
	}}
	svc := NewDoctorService(repo, nil, zap.NewNop())

	got, err := svc.AvailableOn(context.Background(), "Wednesday")
	if err != nil {
		t.Fatalf("AvailableOn returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "doc-a" {
		t.Fatalf("AvailableOn = %v, want only doc-a", got)
	}
}

func TestAvailableOnEmptyIsNotAnError(t *testing.T) {
	svc := NewDoctorService(&fakeDoctorRepo{}, nil, zap.NewNop())

	got, err := svc.AvailableOn(context.Background(), "Sunday")
	if err != nil {
		t.Fatalf("AvailableOn returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("AvailableOn = %v, want empty", got)
	}
}

func TestAvailableOnRejectsDayBeforeQuerying(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: []domain.Doctor{
		{ID: "doc-a", AvailableDays: []string{"Monday"}},
	}}
	svc := NewDoctorService(repo, nil, zap.NewNop())

	_, err := svc.AvailableOn(context.Background(), "Funday")
	if err == nil {
		t.Fatal("AvailableOn succeeded for unknown day")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "PARSING_ERROR" {
		t.Fatalf("code = %s, want PARSING_ERROR", domainErr.Code)
	}
	if domainErr.Message != "Invalid day format" {
		t.Errorf("message = %q, want %q", domainErr.Message, "Invalid day format")
	}
	if repo.calls != 0 {
		t.Errorf("directory queried %d times before validation, want 0", repo.calls)
	}
}

func TestCreateDoctorRejectsInvalidDay(t *testing.T) {
	repo := &fakeDoctorRepo{}
	svc := NewDoctorService(repo, nil, zap.NewNop())

	_, err := svc.CreateDoctor(context.Background(), CreateDoctorInput{
		Name:          "Dr. A",
		AvailableDays: []string{"Monday", "funday"},
	})
	if err == nil {
		t.Fatal("CreateDoctor accepted an invalid day")
	}
	if !apperrors.IsCode(err, "PARSING_ERROR") {
		t.Fatalf("code = %s, want PARSING_ERROR", apperrors.ToDomainError(err).Code)
	}
	if len(repo.doctors) != 0 {
		t.Error("doctor persisted despite invalid day")
	}
}

func TestCreateDoctorAssignsID(t *testing.T) {
	repo := &fakeDoctorRepo{}
	svc := NewDoctorService(repo, nil, zap.NewNop())

	doctor, err := svc.CreateDoctor(context.Background(), CreateDoctorInput{
		Name:           "Dr. A",
		Specialization: "Cardiology",
		VisitingHours:  "09:00-17:00",
		AvailableDays:  []string{"Monday", "Thursday"},
	})
	if err != nil {
		t.Fatalf("CreateDoctor returned error: %v", err)
	}
	if doctor.ID == "" {
		t.Error("id not assigned")
	}
	if len(repo.doctors) != 1 {
		t.Fatalf("%d doctors persisted, want 1", len(repo.doctors))
	}
}

func TestIsAvailable(t *testing.T) {
	repo := &fakeDoctorRepo{doctors: []domain.Doctor{
		{ID: "55555555-5555-4555-8555-555555555555", AvailableDays: []string{"Tuesday"}},
	}}
	svc := NewDoctorService(repo, nil, zap.NewNop())

	available, err := svc.IsAvailable(context.Background(), "55555555-5555-4555-8555-555555555555", "Tuesday")
	if err != nil {
		t.Fatalf("IsAvailable returned error: %v", err)
	}
	if !available {
		t.Error("IsAvailable = false for listed day")
	}

	available, err = svc.IsAvailable(context.Background(), "55555555-5555-4555-8555-555555555555", "Wednesday")
	if err != nil {
		t.Fatalf("IsAvailable returned error: %v", err)
	}
	if available {
		t.Error("IsAvailable = true for unlisted day")
	}
}
