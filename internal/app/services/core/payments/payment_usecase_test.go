package payments

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

type fakePaymentRepo struct {
	payments []models.Payment
}

func (f *fakePaymentRepo) CreatePayment(_ context.Context, payment *models.Payment) (string, error) {
	if payment.ID == "" {
		payment.ID = "pay-1"
	}
	f.payments = append(f.payments, *payment)
	return payment.ID, nil
}

func (f *fakePaymentRepo) FindPaymentByID(_ context.Context, paymentID string) (*models.Payment, error) {
	for i := range f.payments {
		if f.payments[i].ID == paymentID {
			return &f.payments[i], nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindPaymentByAppointmentID(_ context.Context, appointmentID string) (*models.Payment, error) {
	for i := range f.payments {
		if f.payments[i].AppointmentID == appointmentID {
			return &f.payments[i], nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindPaymentsByPatientID(_ context.Context, patientID string, _ *requests.Pagination) ([]models.Payment, int64, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePaymentRepo) UpdatePayment(_ context.Context, payment *models.Payment) error {
	for i := range f.payments {
		if f.payments[i].ID == payment.ID {
			f.payments[i] = *payment
			return nil
		}
	}
	return nil
}

type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	f.appointments = append(f.appointments, *appointment)
	return appointment.ID, nil
}

func (f *fakeAppointmentRepo) FindAppointmentByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID {
			return &f.appointments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByDoctorAndDate(_ context.Context, _ string, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByDoctorBetween(_ context.Context, _ string, _, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByPatientID(_ context.Context, _, _ string, _ *requests.Pagination) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentRepo) FindAppointmentsByDoctorID(_ context.Context, _, _ string, _ *requests.Pagination) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (f *fakeAppointmentRepo) UpdateAppointment(_ context.Context, appointment *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == appointment.ID {
			f.appointments[i] = *appointment
			return nil
		}
	}
	return nil
}

type fakePatientRepo struct {
	patient *models.Patient
}

func (f *fakePatientRepo) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	return patient.ID, nil
}

func (f *fakePatientRepo) FindPatientByID(_ context.Context, patientID string) (*models.Patient, error) {
	if f.patient != nil && f.patient.ID == patientID {
		return f.patient, nil
	}
	return nil, nil
}

func (f *fakePatientRepo) FindPatientByUserID(_ context.Context, userID string) (*models.Patient, error) {
	if f.patient != nil && f.patient.UserID == userID {
		return f.patient, nil
	}
	return nil, nil
}

func (f *fakePatientRepo) UpdatePatient(_ context.Context, _ *models.Patient) error {
	return nil
}

type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (string, error) {
	return user.ID, nil
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	if f.user != nil && f.user.ID == userID {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindUserByPhone(_ context.Context, phone string) (*models.User, error) {
	if f.user != nil && f.user.Phone == phone {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, _ *models.User) error {
	return nil
}

type fakeNotifier struct {
	smsTo []string
}

func (f *fakeNotifier) SendSMS(_ context.Context, _, phone, _ string) error {
	f.smsTo = append(f.smsTo, phone)
	return nil
}

func (f *fakeNotifier) SendEmail(_ context.Context, _, _, _, _ string) error {
	return nil
}

type fixture struct {
	usecase         contracts.PaymentUsecase
	paymentRepo     *fakePaymentRepo
	appointmentRepo *fakeAppointmentRepo
	notifier        *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		paymentRepo:     &fakePaymentRepo{},
		appointmentRepo: &fakeAppointmentRepo{},
		notifier:        &fakeNotifier{},
	}
	patientRepo := &fakePatientRepo{patient: &models.Patient{ID: "pat-1", UserID: "user-1"}}
	userRepo := &fakeUserRepo{user: &models.User{ID: "user-1", Phone: "+243811111111"}}
	f.usecase = NewPaymentUsecase(
		f.paymentRepo,
		f.appointmentRepo,
		patientRepo,
		userRepo,
		f.notifier,
		&config.InternalConfig{},
		zap.NewNop(),
	)
	return f
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RolePatient, Phone: "+243811111111", ProfileID: "pat-1"}
}

func adminSession() *models.Session {
	return &models.Session{SessionID: "sess-2", UserID: "admin-1", Role: constvars.RoleAdmin, Phone: "+243899999999"}
}

func settledPayment(paidAgo time.Duration) models.Payment {
	paidAt := time.Now().Add(-paidAgo)
	return models.Payment{
		ID:            "pay-1",
		AppointmentID: "appt-1",
		PatientID:     "pat-1",
		DoctorID:      "doc-1",
		Amount:        25,
		Currency:      constvars.CurrencyUSD,
		Status:        constvars.PaymentStatusCompleted,
		TransactionID: "TX-1",
		PaymentDate:   &paidAt,
	}
}

func cancelledAppointment() models.Appointment {
	return models.Appointment{
		ID:        "appt-1",
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Status:    constvars.AppointmentStatusCancelled,
	}
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("patient pays own appointment and is notified", func(t *testing.T) {
		f := newFixture(t)
		f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, models.Appointment{
			ID:            "appt-1",
			PatientID:     "pat-1",
			DoctorID:      "doc-1",
			Status:        constvars.AppointmentStatusConfirmed,
			PaymentAmount: 25,
		})

		payment, err := f.usecase.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			AppointmentID: "appt-1",
			Method:        constvars.PaymentMethodMobileMoney,
			Currency:      constvars.CurrencyUSD,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, 25.0, payment.Amount)
		assert.Contains(t, f.notifier.smsTo, "+243811111111")
	})

	t.Run("someone else's appointment is invisible", func(t *testing.T) {
		f := newFixture(t)
		f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, models.Appointment{
			ID:        "appt-1",
			PatientID: "pat-other",
		})

		_, err := f.usecase.CreatePayment(ctx, patientSession(), &requests.CreatePayment{
			AppointmentID: "appt-1",
			Method:        constvars.PaymentMethodCash,
			Currency:      constvars.CurrencyUSD,
		})
		assert.Error(t, err)
	})
}

func TestRefundPayment(t *testing.T) {
	ctx := context.Background()
	request := &requests.RefundPayment{Reason: "appointment cancelled"}

	t.Run("admin refunds a recent payment on a cancelled appointment", func(t *testing.T) {
		f := newFixture(t)
		f.paymentRepo.payments = append(f.paymentRepo.payments, settledPayment(time.Hour))
		f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, cancelledAppointment())

		refunded, err := f.usecase.RefundPayment(ctx, adminSession(), "pay-1", request)
		require.NoError(t, err)
		assert.Equal(t, constvars.PaymentStatusRefunded, refunded.Status)
		assert.NotNil(t, refunded.RefundDate)
		assert.Equal(t, constvars.PaymentStatusRefunded, f.appointmentRepo.appointments[0].PaymentStatus)
		assert.Contains(t, f.notifier.smsTo, "+243811111111", "the patient is told, not the admin")
	})

	t.Run("patients cannot refund their own payments", func(t *testing.T) {
		f := newFixture(t)
		f.paymentRepo.payments = append(f.paymentRepo.payments, settledPayment(time.Hour))
		f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, cancelledAppointment())

		_, err := f.usecase.RefundPayment(ctx, patientSession(), "pay-1", request)
		assert.Error(t, err)
		assert.Equal(t, constvars.PaymentStatusCompleted, f.paymentRepo.payments[0].Status)
	})

	t.Run("payment outside the refund window is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.paymentRepo.payments = append(f.paymentRepo.payments, settledPayment(31*24*time.Hour))
		f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, cancelledAppointment())

		_, err := f.usecase.RefundPayment(ctx, adminSession(), "pay-1", request)
		assert.Error(t, err)
		assert.Equal(t, constvars.PaymentStatusCompleted, f.paymentRepo.payments[0].Status)
	})

	t.Run("refund requires the appointment to be cancelled", func(t *testing.T) {
		f := newFixture(t)
		f.paymentRepo.payments = append(f.paymentRepo.payments, settledPayment(time.Hour))
		appointment := cancelledAppointment()
		appointment.Status = constvars.AppointmentStatusCompleted
		f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, appointment)

		_, err := f.usecase.RefundPayment(ctx, adminSession(), "pay-1", request)
		assert.Error(t, err)
	})

	t.Run("unknown payment is not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.RefundPayment(ctx, adminSession(), "pay-404", request)
		assert.Error(t, err)
	})
}
