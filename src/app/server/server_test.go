package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employeedir/src/app/http/response"
	"employeedir/src/app/middleware"
	"employeedir/src/core/domain"
	"employeedir/src/core/ports/mocks"
	"employeedir/src/infra/config"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) (*Server, *mocks.DirectoryRepository) {
	t.Helper()
	repo := &mocks.DirectoryRepository{}
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second},
		Log:    config.LogConfig{Level: "error"},
		Auth:   config.AuthConfig{APIKey: testAPIKey},
		CORS:   config.CORSConfig{AllowedOrigin: "*"},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, log, repo), repo
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func seededEmployee() *domain.Employee {
	e := domain.Employee{
		ID:           1,
		FirstName:    "John",
		LastName:     "Doe",
		HireDate:     time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		Phone:        "123456789",
		Address:      "123 Street",
		DepartmentID: 1,
	}.WithDepartment(domain.Department{ID: 1, Name: "IT"})
	return &e
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var body response.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	s, repo := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/employee", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "API Key was not provided", decodeError(t, w).Message)
	repo.AssertNotCalled(t, "ListEmployees", mock.Anything)
}

func TestListDepartments(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("ListDepartments", mock.Anything).Return([]domain.Department{{ID: 1, Name: "IT"}, {ID: 2, Name: "HR"}}, nil)

		w := do(s, http.MethodGet, "/api/department", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"IT"},{"id":2,"name":"HR"}]`, w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("ListDepartments", mock.Anything).Return([]domain.Department{}, nil)

		w := do(s, http.MethodGet, "/api/department", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestListEmployees(t *testing.T) {
	s, repo := newTestServer(t)
	repo.On("ListEmployees", mock.Anything).Return([]domain.Employee{*seededEmployee()}, nil)

	w := do(s, http.MethodGet, "/api/employee", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id": 1, "firstName": "John", "lastName": "Doe", "hireDate": "2020-01-01",
		"phone": "123456789", "address": "123 Street", "departmentId": 1,
		"department": {"id": 1, "name": "IT"}
	}]`, w.Body.String())
}

func TestGetEmployee(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("GetEmployee", mock.Anything, int64(1)).Return(seededEmployee(), nil)

		w := do(s, http.MethodGet, "/api/employee/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"firstName":"John"`)
	})

	t.Run("missing", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("GetEmployee", mock.Anything, int64(9)).Return(nil, domain.NewNotFoundError("employee"))

		w := do(s, http.MethodGet, "/api/employee/9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		s, _ := newTestServer(t)

		w := do(s, http.MethodGet, "/api/employee/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateEmployee(t *testing.T) {
	const body = `{
		"id": 55,
		"firstName": "Ada", "lastName": "Lovelace", "hireDate": "2022-03-15",
		"phone": "+447700900123", "address": "12 Analytical Row", "departmentId": 2,
		"department": {"id": 2, "name": "ignored"}
	}`

	t.Run("valid", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(e domain.Employee) bool {
			return e.ID == 0 && e.Department == nil && e.DepartmentID == 2 && e.FirstName == "Ada"
		})).Return(func() *domain.Employee {
			e := domain.Employee{
				ID: 4, FirstName: "Ada", LastName: "Lovelace",
				HireDate: time.Date(2022, time.March, 15, 0, 0, 0, 0, time.UTC),
				Phone:    "+447700900123", Address: "12 Analytical Row", DepartmentID: 2,
			}.WithDepartment(domain.Department{ID: 2, Name: "HR"})
			return &e
		}(), nil)

		w := do(s, http.MethodPost, "/api/employee", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/employee/4", w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), `"department":{"id":2,"name":"HR"}`)
		repo.AssertExpectations(t)
	})

	t.Run("invalid fields", func(t *testing.T) {
		s, repo := newTestServer(t)

		w := do(s, http.MethodPost, "/api/employee", `{
			"firstName": "", "lastName": "Doe", "hireDate": "2020-01-01",
			"phone": "12345", "address": "1 Main St", "departmentId": 1
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", detail.Code)
		assert.Equal(t, []string{"First Name is required"}, detail.Fields["firstName"])
		assert.NotContains(t, detail.Fields, "phone")
		repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("unparseable hire date", func(t *testing.T) {
		s, repo := newTestServer(t)

		w := do(s, http.MethodPost, "/api/employee", `{
			"firstName": "Ada", "lastName": "Lovelace", "hireDate": "soon",
			"phone": "+447700900123", "address": "12 Analytical Row", "departmentId": 2
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"Invalid Hire Date."}, decodeError(t, w).Fields["hireDate"])
		repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		s, _ := newTestServer(t)

		w := do(s, http.MethodPost, "/api/employee", `{"firstName":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, w).Code)
	})

	t.Run("unknown department", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("CreateEmployee", mock.Anything, mock.Anything).
			Return(nil, domain.NewReferentialIntegrityError("department 2 does not exist"))

		w := do(s, http.MethodPost, "/api/employee", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUpdateEmployee(t *testing.T) {
	const body = `{
		"id": 5,
		"firstName": "Jane", "lastName": "Smith", "hireDate": "2018-04-27",
		"phone": "987654321", "address": "456 Avenue", "departmentId": 2
	}`

	t.Run("id mismatch", func(t *testing.T) {
		s, repo := newTestServer(t)

		w := do(s, http.MethodPut, "/api/employee/2", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "UpdateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("updated", func(t *testing.T) {
		s, repo := newTestServer(t)
		updated := domain.Employee{
			ID: 5, FirstName: "Jane", LastName: "Smith",
			HireDate: time.Date(2018, time.April, 27, 0, 0, 0, 0, time.UTC),
			Phone:    "987654321", Address: "456 Avenue", DepartmentID: 2,
		}.WithDepartment(domain.Department{ID: 2, Name: "HR"})
		repo.On("UpdateEmployee", mock.Anything, mock.MatchedBy(func(e domain.Employee) bool {
			return e.ID == 5
		})).Return(&updated, nil)

		w := do(s, http.MethodPut, "/api/employee/5", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":5`)
	})

	t.Run("missing", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("UpdateEmployee", mock.Anything, mock.Anything).Return(nil, domain.NewNotFoundError("employee"))

		w := do(s, http.MethodPut, "/api/employee/5", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteEmployee(t *testing.T) {
	s, repo := newTestServer(t)
	repo.On("DeleteEmployee", mock.Anything, int64(3)).Return(nil)

	w := do(s, http.MethodDelete, "/api/employee/3", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}

func TestDetailedHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("Health", mock.Anything).Return(nil)

		w := do(s, http.MethodGet, "/health/detailed", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":{"status":"healthy"}`)
	})

	t.Run("degraded", func(t *testing.T) {
		s, repo := newTestServer(t)
		repo.On("Health", mock.Anything).Return(errors.New("connection refused"))

		w := do(s, http.MethodGet, "/health/detailed", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	})
}

func TestNoRoute(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(s, http.MethodGet, "/api/nowhere", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
}

func TestRun_StopsWhenContextCancelled(t *testing.T) {
	s, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
