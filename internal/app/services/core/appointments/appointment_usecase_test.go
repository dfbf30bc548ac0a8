package appointments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentRepo struct {
	appointments []models.Appointment
	nextID       int
}

func (f *fakeAppointmentRepo) CreateAppointment(_ context.Context, a *models.Appointment) (string, error) {
	f.nextID++
	a.ID = fmt.Sprintf("appt-%d", f.nextID)
	f.appointments = append(f.appointments, *a)
	return a.ID, nil
}

func (f *fakeAppointmentRepo) FindAppointmentByID(_ context.Context, id string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			a := f.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByDoctorAndDate(_ context.Context, doctorID string, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && utils.SameDay(a.Date, date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByDoctorBetween(_ context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && !a.Date.Before(utils.DateOnly(from)) && a.Date.Before(utils.DateOnly(to).AddDate(0, 0, 1)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByPatientID(_ context.Context, patientID, status string, _ *requests.Pagination) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByDoctorID(_ context.Context, doctorID, status string, _ *requests.Pagination) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && (status == "" || a.Status == status) {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppointmentRepo) UpdateAppointment(_ context.Context, a *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == a.ID {
			f.appointments[i] = *a
			return nil
		}
	}
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

type fakeScheduleUsecase struct {
	contracts.ScheduleUsecase
	available bool
}

func (f *fakeScheduleUsecase) IsSlotAvailable(_ context.Context, _ string, _ time.Time, _, _ string) (bool, error) {
	return f.available, nil
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
	smsSent []string
}

func (f *fakeNotifier) SendSMS(_ context.Context, eventType, _, _ string) error {
	f.smsSent = append(f.smsSent, eventType)
	return nil
}

func (f *fakeNotifier) SendEmail(_ context.Context, eventType, _, _, _ string) error {
	return nil
}

type fixture struct {
	usecase         contracts.AppointmentUsecase
	appointmentRepo *fakeAppointmentRepo
	doctorRepo      *fakeDoctorRepo
	scheduleUsecase *fakeScheduleUsecase
	locker          *fakeLocker
	notifier        *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		appointmentRepo: &fakeAppointmentRepo{},
		doctorRepo: &fakeDoctorRepo{doctor: &models.Doctor{
			ID:                 "doc-1",
			UserID:             "user-1",
			RegistrationStatus: constvars.RegistrationStatusApproved,
			ConsultationFee:    25,
		}},
		scheduleUsecase: &fakeScheduleUsecase{available: true},
		locker:          &fakeLocker{available: true},
		notifier:        &fakeNotifier{},
	}

	internalConfig := &config.InternalConfig{}
	internalConfig.App.ScheduleLockTTLInSeconds = 15
	internalConfig.App.CancellationCutoffInHours = 24

	f.usecase = NewAppointmentUsecase(
		f.appointmentRepo,
		f.doctorRepo,
		&fakeUserRepo{user: &models.User{ID: "user-1", Phone: "+243811111111"}},
		f.scheduleUsecase,
		f.locker,
		f.notifier,
		internalConfig,
		zap.NewNop(),
	)
	return f
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "user-2", Role: constvars.RolePatient, ProfileID: "pat-1"}
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "sess-2", UserID: "user-1", Role: constvars.RoleDoctor, ProfileID: "doc-1"}
}

func bookingRequest(daysAhead int) *requests.BookAppointment {
	return &requests.BookAppointment{
		DoctorID:  "doc-1",
		Date:      time.Now().AddDate(0, 0, daysAhead).Format(utils.DateLayout),
		StartTime: "10:00",
		EndTime:   "10:30",
		Type:      constvars.AppointmentTypeConsultation,
	}
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("available slot is booked pending with the doctor fee", func(t *testing.T) {
		f := newFixture(t)
		appointment, err := f.usecase.BookAppointment(ctx, patientSession(), bookingRequest(7))
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, constvars.PaymentStatusPending, appointment.PaymentStatus)
		assert.Equal(t, 25.0, appointment.PaymentAmount)
		assert.Equal(t, 1, f.locker.unlocks, "lock must be released")
		assert.Contains(t, f.notifier.smsSent, constvars.NotificationAppointmentCreated)
	})

	t.Run("doctor session cannot book", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.BookAppointment(ctx, doctorSession(), bookingRequest(7))
		assert.Error(t, err)
	})

	t.Run("unapproved doctor is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.doctorRepo.doctor.RegistrationStatus = constvars.RegistrationStatusPending
		_, err := f.usecase.BookAppointment(ctx, patientSession(), bookingRequest(7))
		assert.Error(t, err)
	})

	t.Run("past slot is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.BookAppointment(ctx, patientSession(), bookingRequest(-1))
		assert.Error(t, err)
	})

	t.Run("lock contention is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.locker.available = false
		_, err := f.usecase.BookAppointment(ctx, patientSession(), bookingRequest(7))
		assert.Error(t, err)
		assert.Empty(t, f.appointmentRepo.appointments)
	})

	t.Run("overlapping blocking appointment is a conflict", func(t *testing.T) {
		f := newFixture(t)
		request := bookingRequest(7)
		date, _ := utils.ParseDate(request.Date)
		f.appointmentRepo.appointments = []models.Appointment{{
			ID:        "appt-existing",
			DoctorID:  "doc-1",
			PatientID: "pat-2",
			Date:      utils.DateOnly(date),
			StartTime: "10:15",
			EndTime:   "10:45",
			Status:    constvars.AppointmentStatusConfirmed,
		}}
		_, err := f.usecase.BookAppointment(ctx, patientSession(), request)
		assert.Error(t, err)
	})

	t.Run("cancelled appointment does not block the slot", func(t *testing.T) {
		f := newFixture(t)
		request := bookingRequest(7)
		date, _ := utils.ParseDate(request.Date)
		f.appointmentRepo.appointments = []models.Appointment{{
			ID:        "appt-existing",
			DoctorID:  "doc-1",
			PatientID: "pat-2",
			Date:      utils.DateOnly(date),
			StartTime: "10:00",
			EndTime:   "10:30",
			Status:    constvars.AppointmentStatusCancelled,
		}}
		_, err := f.usecase.BookAppointment(ctx, patientSession(), request)
		assert.NoError(t, err)
	})

	t.Run("slot outside bookable hours is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.scheduleUsecase.available = false
		_, err := f.usecase.BookAppointment(ctx, patientSession(), bookingRequest(7))
		assert.Error(t, err)
	})

	t.Run("inverted time range is rejected", func(t *testing.T) {
		f := newFixture(t)
		request := bookingRequest(7)
		request.StartTime = "11:00"
		request.EndTime = "10:00"
		_, err := f.usecase.BookAppointment(ctx, patientSession(), request)
		assert.Error(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(f *fixture, status string) string {
		f.appointmentRepo.appointments = []models.Appointment{{
			ID:        "appt-1",
			DoctorID:  "doc-1",
			PatientID: "pat-1",
			Date:      utils.DateOnly(time.Now().AddDate(0, 0, 3)),
			StartTime: "10:00",
			EndTime:   "10:30",
			Status:    status,
		}}
		return "appt-1"
	}

	t.Run("doctor confirms a pending appointment", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, constvars.AppointmentStatusPending)
		appointment, err := f.usecase.UpdateStatus(ctx, doctorSession(), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusConfirmed})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, appointment.Status)
		assert.Contains(t, f.notifier.smsSent, constvars.NotificationAppointmentConfirmed)
	})

	t.Run("doctor completes a confirmed appointment", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, constvars.AppointmentStatusConfirmed)
		appointment, err := f.usecase.UpdateStatus(ctx, doctorSession(), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted, Notes: "all good"})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, appointment.Status)
		assert.Equal(t, "all good", appointment.Notes)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, constvars.AppointmentStatusPending)
		_, err := f.usecase.UpdateStatus(ctx, doctorSession(), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})
		assert.Error(t, err)
	})

	t.Run("patient cannot change status", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, constvars.AppointmentStatusPending)
		_, err := f.usecase.UpdateStatus(ctx, patientSession(), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusConfirmed})
		assert.Error(t, err)
	})

	t.Run("another doctor's appointment is not visible", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, constvars.AppointmentStatusPending)
		other := doctorSession()
		other.ProfileID = "doc-2"
		_, err := f.usecase.UpdateStatus(ctx, other, id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusConfirmed})
		assert.Error(t, err)
	})
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	seed := func(f *fixture, daysAhead int, status string) string {
		f.appointmentRepo.appointments = []models.Appointment{{
			ID:        "appt-1",
			DoctorID:  "doc-1",
			PatientID: "pat-1",
			Date:      utils.DateOnly(time.Now().AddDate(0, 0, daysAhead)),
			StartTime: "10:00",
			EndTime:   "10:30",
			Status:    status,
		}}
		return "appt-1"
	}

	t.Run("patient cancels outside the cutoff", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, 3, constvars.AppointmentStatusConfirmed)
		appointment, err := f.usecase.CancelAppointment(ctx, patientSession(), id, &requests.CancelAppointment{Reason: "conflict"})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, appointment.Status)
		stored, _ := f.appointmentRepo.FindAppointmentByID(ctx, id)
		require.NotNil(t, stored.Cancellation)
		assert.Equal(t, constvars.RolePatient, stored.Cancellation.CancelledBy)
	})

	t.Run("patient inside the cutoff is rejected", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, 0, constvars.AppointmentStatusConfirmed)
		_, err := f.usecase.CancelAppointment(ctx, patientSession(), id, &requests.CancelAppointment{})
		assert.Error(t, err)
	})

	t.Run("doctor may cancel inside the cutoff", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, 0, constvars.AppointmentStatusConfirmed)
		appointment, err := f.usecase.CancelAppointment(ctx, doctorSession(), id, &requests.CancelAppointment{Reason: "emergency"})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, appointment.Status)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		id := seed(f, 3, constvars.AppointmentStatusCompleted)
		_, err := f.usecase.CancelAppointment(ctx, patientSession(), id, &requests.CancelAppointment{})
		assert.Error(t, err)
	})

	t.Run("unknown appointment is not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.CancelAppointment(ctx, patientSession(), "missing", &requests.CancelAppointment{})
		assert.Error(t, err)
	})
}

func TestListMyAppointments(t *testing.T) {
	ctx := context.Background()

	t.Run("patient sees only their own appointments", func(t *testing.T) {
		f := newFixture(t)
		f.appointmentRepo.appointments = []models.Appointment{
			{ID: "a1", PatientID: "pat-1", DoctorID: "doc-1", Status: constvars.AppointmentStatusPending},
			{ID: "a2", PatientID: "pat-2", DoctorID: "doc-1", Status: constvars.AppointmentStatusPending},
		}
		list, total, err := f.usecase.ListMyAppointments(ctx, patientSession(), "", &requests.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "a1", list[0].AppointmentID)
	})

	t.Run("status filter applies", func(t *testing.T) {
		f := newFixture(t)
		f.appointmentRepo.appointments = []models.Appointment{
			{ID: "a1", PatientID: "pat-1", DoctorID: "doc-1", Status: constvars.AppointmentStatusPending},
			{ID: "a2", PatientID: "pat-1", DoctorID: "doc-1", Status: constvars.AppointmentStatusCancelled},
		}
		list, _, err := f.usecase.ListMyAppointments(ctx, patientSession(), constvars.AppointmentStatusCancelled, &requests.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "a2", list[0].AppointmentID)
	})
}
