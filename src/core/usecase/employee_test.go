package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employeedir/src/core/domain"
	"employeedir/src/core/ports/mocks"
	"employeedir/src/core/validation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEmployeeService(repo *mocks.DirectoryRepository) *EmployeeService {
	v := validation.NewEmployeeValidator(validation.WithClock(func() time.Time {
		return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	}))
	return NewEmployeeService(repo, v, discardLogger())
}

func sampleEmployee() domain.Employee {
	return domain.Employee{
		FirstName:    "John",
		LastName:     "Doe",
		HireDate:     time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		Phone:        "+123456789",
		Address:      "1 Main St",
		DepartmentID: 1,
	}
}

func TestEmployeeServiceCreateRejectsInvalidWithoutPersisting(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	e := sampleEmployee()
	e.FirstName = ""

	created, err := svc.Create(context.Background(), e)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.True(t, domain.IsValidationError(err))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldErrors{"firstName": {"First Name is required"}}, verr.Fields)
	repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestEmployeeServiceCreateDelegatesValidEmployee(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	e := sampleEmployee()
	stored := e.WithDepartment(domain.Department{ID: 1, Name: "IT"})
	stored.ID = 7
	repo.On("CreateEmployee", mock.Anything, e).Return(&stored, nil).Once()

	created, err := svc.Create(context.Background(), e)

	require.NoError(t, err)
	assert.Same(t, &stored, created)
	repo.AssertExpectations(t)
}

func TestEmployeeServiceCreatePropagatesStorageErrors(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	e := sampleEmployee()
	e.DepartmentID = 99
	repo.On("CreateEmployee", mock.Anything, e).
		Return(nil, domain.NewReferentialIntegrityError("department 99 does not exist")).Once()

	_, err := svc.Create(context.Background(), e)

	assert.True(t, domain.IsReferentialIntegrity(err))
	repo.AssertExpectations(t)
}

func TestEmployeeServiceUpdateValidates(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	e := sampleEmployee()
	e.ID = 2
	e.DepartmentID = 0

	_, err := svc.Update(context.Background(), e)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Department must be selected"}, verr.Fields["departmentId"])
	repo.AssertNotCalled(t, "UpdateEmployee", mock.Anything, mock.Anything)
}

func TestEmployeeServiceUpdateDelegates(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	e := sampleEmployee()
	e.ID = 2
	e.DepartmentID = 3
	updated := e.WithDepartment(domain.Department{ID: 3, Name: "Finance"})
	repo.On("UpdateEmployee", mock.Anything, e).Return(&updated, nil).Once()

	got, err := svc.Update(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Department.Name)
	repo.AssertExpectations(t)
}

func TestEmployeeServiceUpdateMissingIsNotFound(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	e := sampleEmployee()
	e.ID = 404
	repo.On("UpdateEmployee", mock.Anything, e).Return(nil, domain.NewNotFoundError("employee")).Once()

	_, err := svc.Update(context.Background(), e)

	assert.True(t, domain.IsNotFound(err))
}

func TestEmployeeServiceGetAndDeletePassThrough(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)
	ctx := context.Background()

	repo.On("DeleteEmployee", ctx, int64(5)).Return(nil).Once()
	repo.On("GetEmployee", ctx, int64(5)).Return(nil, domain.NewNotFoundError("employee")).Once()

	require.NoError(t, svc.Delete(ctx, 5))
	_, err := svc.Get(ctx, 5)

	assert.True(t, domain.IsNotFound(err))
	repo.AssertExpectations(t)
}

func TestEmployeeServiceDeletePropagatesError(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := newEmployeeService(repo)

	boom := errors.New("connection reset")
	repo.On("DeleteEmployee", mock.Anything, int64(1)).Return(boom).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), boom)
}

func TestDepartmentServiceListEmpty(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	svc := NewDepartmentService(repo, discardLogger())
	repo.On("ListDepartments", mock.Anything).Return([]domain.Department{}, nil).Once()

	departments, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, departments)
}

func TestHealthServiceReportsDegradedDatabase(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	repo.On("Health", mock.Anything).Return(errors.New("dial tcp: refused")).Once()

	status := NewHealthService(repo, discardLogger()).Check(context.Background())

	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unhealthy", status.Components["database"].Status)
}

func TestHealthServiceReportsOK(t *testing.T) {
	repo := &mocks.DirectoryRepository{}
	repo.On("Health", mock.Anything).Return(nil).Once()

	status := NewHealthService(repo, discardLogger()).Check(context.Background())

	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Components["database"].Status)
}
