package doctors

import (
	"context"
	"fmt"
	"testing"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepo struct {
	doctors        []models.Doctor
	lastPagination *requests.Pagination
}

func (f *fakeDoctorRepo) CreateDoctor(_ context.Context, doctor *models.Doctor) (string, error) {
	f.doctors = append(f.doctors, *doctor)
	return doctor.ID, nil
}

func (f *fakeDoctorRepo) FindDoctorByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].ID == doctorID {
			return &f.doctors[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindDoctorByUserID(_ context.Context, userID string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].UserID == userID {
			return &f.doctors[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindDoctorByLicenseNumber(_ context.Context, licenseNumber string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].LicenseNumber == licenseNumber {
			return &f.doctors[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) UpdateDoctor(_ context.Context, doctor *models.Doctor) error {
	for i := range f.doctors {
		if f.doctors[i].ID == doctor.ID {
			f.doctors[i] = *doctor
			return nil
		}
	}
	return nil
}

// SearchDoctors mirrors the Mongo repository contract: approved doctors
// only, whole result set when pagination is nil.
func (f *fakeDoctorRepo) SearchDoctors(_ context.Context, filter *requests.SearchDoctors, pagination *requests.Pagination) ([]models.Doctor, int64, error) {
	f.lastPagination = pagination

	matched := make([]models.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		if d.RegistrationStatus != constvars.RegistrationStatusApproved {
			continue
		}
		if filter.Specialization != "" && d.Specialization != filter.Specialization {
			continue
		}
		matched = append(matched, d)
	}
	total := int64(len(matched))

	if pagination != nil {
		start := (pagination.Page - 1) * pagination.PageSize
		if start > len(matched) {
			start = len(matched)
		}
		end := start + pagination.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (string, error) {
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) FindUserByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func searchFixture(lastNames []string, locations []*models.DoctorLocation) (contracts.DoctorUsecase, *fakeDoctorRepo) {
	doctorRepo := &fakeDoctorRepo{}
	userRepo := &fakeUserRepo{users: map[string]*models.User{}}
	for i, lastName := range lastNames {
		userID := fmt.Sprintf("user-%d", i+1)
		userRepo.users[userID] = &models.User{ID: userID, FirstName: "Doc", LastName: lastName}
		doctor := models.Doctor{
			ID:                 fmt.Sprintf("doc-%d", i+1),
			UserID:             userID,
			Specialization:     "cardiology",
			RegistrationStatus: constvars.RegistrationStatusApproved,
		}
		if locations != nil {
			doctor.Location = locations[i]
		}
		doctorRepo.doctors = append(doctorRepo.doctors, doctor)
	}

	usecase := NewDoctorUsecase(
		doctorRepo,
		userRepo,
		nil,
		nil,
		nil,
		nil,
		&config.InternalConfig{},
		&config.DriverConfig{},
		zap.NewNop(),
	)
	return usecase, doctorRepo
}

func TestSearchDoctors(t *testing.T) {
	ctx := context.Background()

	t.Run("name filter counts matches beyond the requested page", func(t *testing.T) {
		usecase, doctorRepo := searchFixture(
			[]string{"Mwamba", "Kabila", "Ilunga", "Kabila", "Kabila"}, nil)
		request := &requests.SearchDoctors{Name: "kabila"}

		firstPage, total, err := usecase.SearchDoctors(ctx, request, &requests.Pagination{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Nil(t, doctorRepo.lastPagination, "in-memory filters need the whole result set")
		assert.Equal(t, int64(3), total)
		require.Len(t, firstPage, 2)

		secondPage, total, err := usecase.SearchDoctors(ctx, request, &requests.Pagination{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, secondPage, 1)
	})

	t.Run("distance filter drops far and unlocated doctors from the total", func(t *testing.T) {
		near := &models.DoctorLocation{Latitude: 0.0, Longitude: 0.01}
		far := &models.DoctorLocation{Latitude: 1.0, Longitude: 1.0}
		usecase, _ := searchFixture(
			[]string{"Mwamba", "Kabila", "Ilunga", "Tshibola"},
			[]*models.DoctorLocation{near, far, near, nil})
		request := &requests.SearchDoctors{MaxDistanceKM: 5}

		summaries, total, err := usecase.SearchDoctors(ctx, request, &requests.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, summaries, 2)
		for _, s := range summaries {
			require.NotNil(t, s.DistanceKM)
			assert.Less(t, *s.DistanceKM, 5.0)
		}
	})

	t.Run("plain search paginates in the repository", func(t *testing.T) {
		usecase, doctorRepo := searchFixture(
			[]string{"Mwamba", "Kabila", "Ilunga", "Kabila", "Kabila"}, nil)
		pagination := &requests.Pagination{Page: 1, PageSize: 2}

		summaries, total, err := usecase.SearchDoctors(ctx, &requests.SearchDoctors{}, pagination)
		require.NoError(t, err)
		assert.Equal(t, pagination, doctorRepo.lastPagination)
		assert.Equal(t, int64(5), total)
		require.Len(t, summaries, 2)
	})
}
