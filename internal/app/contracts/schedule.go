package contracts

import (
	"context"
	"time"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	GetSchedule(ctx context.Context, doctorID string) (*responses.Schedule, error)
	UpsertWorkingHours(ctx context.Context, session *models.Session, request *requests.UpsertWorkingHours) (*responses.Schedule, error)
	AddBreak(ctx context.Context, session *models.Session, request *requests.AddBreak) (*responses.Schedule, error)
	RemoveBreak(ctx context.Context, session *models.Session, day, start string) (*responses.Schedule, error)
	AddHoliday(ctx context.Context, session *models.Session, request *requests.AddHoliday) (*responses.Schedule, error)
	RemoveHoliday(ctx context.Context, session *models.Session, date string) (*responses.Schedule, error)
	RequestVacation(ctx context.Context, session *models.Session, request *requests.RequestVacation) (*responses.Vacation, error)
	ResolveVacation(ctx context.Context, session *models.Session, doctorID, vacationID string, request *requests.ResolveVacation) (*responses.Vacation, error)
	DayAvailability(ctx context.Context, doctorID string, date time.Time) (*responses.DayAvailability, error)
	IsSlotAvailable(ctx context.Context, doctorID string, date time.Time, startTime, endTime string) (bool, error)
}

type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (string, error)
	FindScheduleByDoctorID(ctx context.Context, doctorID string) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
}

// AppointmentLookup is the capability the schedule service uses to see booked
// slots without depending on the appointments package. It returns every
// appointment for the doctor whose date falls in [from, to].
type AppointmentLookup func(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error)
