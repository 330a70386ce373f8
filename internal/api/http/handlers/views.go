package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

func hospitalView(hospital *domain.Hospital) fiber.Map {
	return fiber.Map{
		"id":         hospital.ID,
		"name":       hospital.Name,
		"address":    hospital.Address,
		"phone":      hospital.Phone,
		"created_at": hospital.CreatedAt,
	}
}

func patientView(patient *domain.Patient) fiber.Map {
	return fiber.Map{
		"id":          patient.ID,
		"name":        patient.Name,
		"age":         patient.Age,
		"card_id":     patient.CardID,
		"gender":      patient.Gender,
		"hospital_id": patient.HospitalID,
		"user_id":     patient.UserID,
	}
}

func doctorView(doctor *domain.Doctor) fiber.Map {
	return fiber.Map{
		"id":             doctor.ID,
		"name":           doctor.Name,
		"specialization": doctor.Specialization,
		"visiting_hours": doctor.VisitingHours,
		"available_days": doctor.AvailableDays,
	}
}

func appointmentView(appointment *domain.Appointment) fiber.Map {
	return fiber.Map{
		"id":         appointment.ID,
		"patient_id": appointment.PatientID,
		"doctor_id":  appointment.DoctorID,
		"purpose":    appointment.Purpose,
		"time":       appointment.Time,
		"status":     appointment.Status,
		"price":      appointment.Price,
	}
}

func billView(bill *domain.Bill) fiber.Map {
	return fiber.Map{
		"id":             bill.ID,
		"reference":      bill.Reference,
		"appointment_id": bill.AppointmentID,
		"amount":         bill.Amount,
		"currency":       bill.Currency,
		"status":         bill.Status,
	}
}
