package schedules

import (
	"context"
	"testing"
	"time"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScheduleRepo struct {
	schedule *models.Schedule
	updated  int
}

func (f *fakeScheduleRepo) CreateSchedule(_ context.Context, s *models.Schedule) (string, error) {
	s.ID = "sch-1"
	f.schedule = s
	return s.ID, nil
}

func (f *fakeScheduleRepo) FindScheduleByDoctorID(_ context.Context, doctorID string) (*models.Schedule, error) {
	if f.schedule == nil || f.schedule.DoctorID != doctorID {
		return nil, nil
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) UpdateSchedule(_ context.Context, s *models.Schedule) error {
	f.schedule = s
	f.updated++
	return nil
}

type fakeDoctorRepo struct {
	doctor *models.Doctor
}

func (f *fakeDoctorRepo) CreateDoctor(_ context.Context, d *models.Doctor) (string, error) {
	return d.ID, nil
}

func (f *fakeDoctorRepo) FindDoctorByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	if f.doctor == nil || f.doctor.ID != doctorID {
		return nil, nil
	}
	return f.doctor, nil
}

func (f *fakeDoctorRepo) FindDoctorByUserID(_ context.Context, userID string) (*models.Doctor, error) {
	if f.doctor == nil || f.doctor.UserID != userID {
		return nil, nil
	}
	return f.doctor, nil
}

func (f *fakeDoctorRepo) FindDoctorByLicenseNumber(_ context.Context, _ string) (*models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) UpdateDoctor(_ context.Context, d *models.Doctor) error {
	f.doctor = d
	return nil
}

func (f *fakeDoctorRepo) SearchDoctors(_ context.Context, _ *requests.SearchDoctors, _ *requests.Pagination) ([]models.Doctor, int64, error) {
	return nil, 0, nil
}

type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *models.User) (string, error) {
	return u.ID, nil
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	if f.user == nil || f.user.ID != userID {
		return nil, nil
	}
	return f.user, nil
}

func (f *fakeUserRepo) FindUserByPhone(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u *models.User) error {
	f.user = u
	return nil
}

type fakeLocker struct {
	available bool
	unlocks   int
}

func (f *fakeLocker) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	return f.available, "lock-value", nil
}

func (f *fakeLocker) Unlock(_ context.Context, _, _ string) error {
	f.unlocks++
	return nil
}

type fakeNotifier struct {
	smsSent   []string
	emailSent []string
	emailTo   []string
}

func (f *fakeNotifier) SendSMS(_ context.Context, eventType, _, _ string) error {
	f.smsSent = append(f.smsSent, eventType)
	return nil
}

func (f *fakeNotifier) SendEmail(_ context.Context, eventType, to, _, _ string) error {
	f.emailSent = append(f.emailSent, eventType)
	f.emailTo = append(f.emailTo, to)
	return nil
}

type fixture struct {
	usecase      contracts.ScheduleUsecase
	scheduleRepo *fakeScheduleRepo
	doctorRepo   *fakeDoctorRepo
	userRepo     *fakeUserRepo
	locker       *fakeLocker
	notifier     *fakeNotifier
	appointments []models.Appointment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		scheduleRepo: &fakeScheduleRepo{schedule: testSchedule()},
		doctorRepo: &fakeDoctorRepo{doctor: &models.Doctor{
			ID:                 "doc-1",
			UserID:             "user-1",
			RegistrationStatus: constvars.RegistrationStatusApproved,
		}},
		userRepo: &fakeUserRepo{user: &models.User{ID: "user-1", Phone: "+243811111111"}},
		locker:   &fakeLocker{available: true},
		notifier: &fakeNotifier{},
	}
	lookup := func(_ context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
		var out []models.Appointment
		for _, a := range f.appointments {
			if a.DoctorID == doctorID && !a.Date.Before(from) && !a.Date.After(to.AddDate(0, 0, 1)) {
				out = append(out, a)
			}
		}
		return out, nil
	}
	internalConfig := &config.InternalConfig{}
	internalConfig.App.DefaultSlotDurationInMinutes = 30
	internalConfig.App.ScheduleLockTTLInSeconds = 15
	internalConfig.App.EnforceBreakWithinWorkingHours = true
	internalConfig.App.AdminEmail = "admins@example.test"

	f.usecase = NewScheduleUsecase(
		f.scheduleRepo,
		f.doctorRepo,
		f.userRepo,
		lookup,
		f.locker,
		f.notifier,
		internalConfig,
		zap.NewNop(),
	)
	return f
}

func testSchedule() *models.Schedule {
	return &models.Schedule{
		ID:       "sch-1",
		DoctorID: "doc-1",
		WorkingHours: map[string]*models.TimeSlot{
			constvars.WeekdayMonday: {Start: "09:00", End: "17:00"},
		},
		SlotDurationMin: 30,
		IsActive:        true,
	}
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleDoctor}
}

func adminSession() *models.Session {
	return &models.Session{SessionID: "sess-2", UserID: "admin-1", Role: constvars.RoleAdmin}
}

func TestRequestVacation(t *testing.T) {
	ctx := context.Background()
	start := time.Now().AddDate(0, 0, 7)
	end := time.Now().AddDate(0, 0, 10)
	request := &requests.RequestVacation{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Reason:    "family visit",
	}

	t.Run("valid request is stored pending and notifies admins", func(t *testing.T) {
		f := newFixture(t)
		vacation, err := f.usecase.RequestVacation(ctx, doctorSession(), request)
		require.NoError(t, err)
		assert.Equal(t, constvars.VacationStatusPending, vacation.Status)
		assert.NotEmpty(t, vacation.VacationID)
		require.Len(t, f.scheduleRepo.schedule.Vacations, 1)
		assert.Contains(t, f.notifier.emailSent, constvars.NotificationVacationRequest)
		assert.Contains(t, f.notifier.emailTo, "admins@example.test", "request must reach the admin inbox")
		assert.Equal(t, 1, f.locker.unlocks, "lock must be released")
	})

	t.Run("lock contention is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.locker.available = false
		_, err := f.usecase.RequestVacation(ctx, doctorSession(), request)
		assert.Error(t, err)
		assert.Empty(t, f.scheduleRepo.schedule.Vacations)
	})

	t.Run("blocking appointment inside the range is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.appointments = []models.Appointment{{
			DoctorID:  "doc-1",
			Date:      start.AddDate(0, 0, 1),
			StartTime: "09:00",
			EndTime:   "09:30",
			Status:    constvars.AppointmentStatusConfirmed,
		}}
		_, err := f.usecase.RequestVacation(ctx, doctorSession(), request)
		assert.Error(t, err)
	})

	t.Run("cancelled appointment inside the range does not block", func(t *testing.T) {
		f := newFixture(t)
		f.appointments = []models.Appointment{{
			DoctorID:  "doc-1",
			Date:      start.AddDate(0, 0, 1),
			StartTime: "09:00",
			EndTime:   "09:30",
			Status:    constvars.AppointmentStatusCancelled,
		}}
		_, err := f.usecase.RequestVacation(ctx, doctorSession(), request)
		assert.NoError(t, err)
	})

	t.Run("patient session is rejected", func(t *testing.T) {
		f := newFixture(t)
		session := doctorSession()
		session.Role = constvars.RolePatient
		_, err := f.usecase.RequestVacation(ctx, session, request)
		assert.Error(t, err)
	})

	t.Run("unapproved doctor is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.doctorRepo.doctor.RegistrationStatus = constvars.RegistrationStatusPending
		_, err := f.usecase.RequestVacation(ctx, doctorSession(), request)
		assert.Error(t, err)
	})
}

func TestResolveVacationUsecase(t *testing.T) {
	ctx := context.Background()

	pendingVacation := func(f *fixture) string {
		vacation := models.Vacation{
			ID:        "vac-1",
			StartDate: time.Now().AddDate(0, 0, 7),
			EndDate:   time.Now().AddDate(0, 0, 10),
			Status:    constvars.VacationStatusPending,
		}
		f.scheduleRepo.schedule.Vacations = append(f.scheduleRepo.schedule.Vacations, vacation)
		return vacation.ID
	}

	t.Run("admin approves pending vacation and doctor is notified", func(t *testing.T) {
		f := newFixture(t)
		vacationID := pendingVacation(f)
		resolved, err := f.usecase.ResolveVacation(ctx, adminSession(), "doc-1", vacationID, &requests.ResolveVacation{Approve: true})
		require.NoError(t, err)
		assert.Equal(t, constvars.VacationStatusApproved, resolved.Status)
		assert.Contains(t, f.notifier.smsSent, constvars.NotificationVacationResponse)
	})

	t.Run("admin rejects pending vacation", func(t *testing.T) {
		f := newFixture(t)
		vacationID := pendingVacation(f)
		resolved, err := f.usecase.ResolveVacation(ctx, adminSession(), "doc-1", vacationID, &requests.ResolveVacation{Approve: false})
		require.NoError(t, err)
		assert.Equal(t, constvars.VacationStatusRejected, resolved.Status)
	})

	t.Run("second resolution is rejected", func(t *testing.T) {
		f := newFixture(t)
		vacationID := pendingVacation(f)
		_, err := f.usecase.ResolveVacation(ctx, adminSession(), "doc-1", vacationID, &requests.ResolveVacation{Approve: true})
		require.NoError(t, err)
		_, err = f.usecase.ResolveVacation(ctx, adminSession(), "doc-1", vacationID, &requests.ResolveVacation{Approve: false})
		assert.Error(t, err)
		assert.Equal(t, constvars.VacationStatusApproved, f.scheduleRepo.schedule.Vacations[0].Status)
	})

	t.Run("non admin session is rejected", func(t *testing.T) {
		f := newFixture(t)
		vacationID := pendingVacation(f)
		_, err := f.usecase.ResolveVacation(ctx, doctorSession(), "doc-1", vacationID, &requests.ResolveVacation{Approve: true})
		assert.Error(t, err)
	})

	t.Run("unknown vacation id is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.ResolveVacation(ctx, adminSession(), "doc-1", "missing", &requests.ResolveVacation{Approve: true})
		assert.Error(t, err)
	})
}

func TestUpsertWorkingHours(t *testing.T) {
	ctx := context.Background()

	t.Run("creates schedule on first upsert", func(t *testing.T) {
		f := newFixture(t)
		f.scheduleRepo.schedule = nil
		response, err := f.usecase.UpsertWorkingHours(ctx, doctorSession(), &requests.UpsertWorkingHours{
			WorkingHours: map[string]requests.WorkingHoursSlot{
				constvars.WeekdayMonday: {Start: "08:00", End: "12:00"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 30, response.SlotDurationMinutes, "default slot duration applies")
		require.NotNil(t, f.scheduleRepo.schedule)
		assert.Equal(t, "08:00", f.scheduleRepo.schedule.WorkingHours[constvars.WeekdayMonday].Start)
	})

	t.Run("invalid weekday key is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.UpsertWorkingHours(ctx, doctorSession(), &requests.UpsertWorkingHours{
			WorkingHours: map[string]requests.WorkingHoursSlot{
				"noday": {Start: "08:00", End: "12:00"},
			},
		})
		assert.Error(t, err)
	})
}

func TestAddBreakUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("break inside working hours is added", func(t *testing.T) {
		f := newFixture(t)
		response, err := f.usecase.AddBreak(ctx, doctorSession(), &requests.AddBreak{
			Day: constvars.WeekdayMonday, Start: "12:00", End: "13:00", Type: constvars.BreakKindLunch,
		})
		require.NoError(t, err)
		assert.Len(t, response.Breaks, 1)
	})

	t.Run("break outside working hours is rejected when enforced", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.AddBreak(ctx, doctorSession(), &requests.AddBreak{
			Day: constvars.WeekdayMonday, Start: "18:00", End: "19:00", Type: constvars.BreakKindOther,
		})
		assert.Error(t, err)
	})
}

func TestDayAvailabilityUsecase(t *testing.T) {
	ctx := context.Background()
	// Next Monday relative to a fixed anchor keeps the weekday stable.
	nextMonday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	t.Run("open day lists slots and excludes booked ones", func(t *testing.T) {
		f := newFixture(t)
		f.appointments = []models.Appointment{{
			DoctorID:  "doc-1",
			Date:      nextMonday,
			StartTime: "09:00",
			EndTime:   "09:30",
			Status:    constvars.AppointmentStatusPending,
		}}
		result, err := f.usecase.DayAvailability(ctx, "doc-1", nextMonday)
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Len(t, result.Slots, 15)
		assert.Equal(t, "09:30", result.Slots[0].Start)
	})

	t.Run("day off reports closed with reason", func(t *testing.T) {
		f := newFixture(t)
		sunday := nextMonday.AddDate(0, 0, -1)
		result, err := f.usecase.DayAvailability(ctx, "doc-1", sunday)
		require.NoError(t, err)
		assert.False(t, result.Available)
		assert.Equal(t, ClosedReasonDayOff, result.Reason)
		assert.Empty(t, result.Slots)
	})

	t.Run("unknown doctor schedule errors", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.DayAvailability(ctx, "doc-missing", nextMonday)
		assert.Error(t, err)
	})
}
