package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	medicationDomain "github.com/allisson/mediport/internal/medication/domain"
	"github.com/allisson/mediport/internal/medication/http/dto"
	medicationMocks "github.com/allisson/mediport/internal/medication/usecase/mocks"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	sessionHTTP "github.com/allisson/mediport/internal/session/http"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func setupRouter(authenticated bool) (*gin.Engine, *medicationMocks.MockMedicationUseCase) {
	uc := &medicationMocks.MockMedicationUseCase{}
	handler := NewMedicationHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if authenticated {
			session := &sessionDomain.Session{
				ID:        uuid.Must(uuid.NewV7()),
				Username:  "pharma",
				Role:      rbacDomain.RolePharmacist,
				Token:     "remote-token",
				ExpiresAt: time.Now().Add(time.Hour),
			}
			c.Request = c.Request.WithContext(sessionHTTP.WithSession(c.Request.Context(), session))
		}
		c.Next()
	})
	router.GET("/v1/medications", handler.ListHandler)
	router.POST("/v1/medications", handler.CreateHandler)
	router.GET("/v1/medications/:id", handler.GetHandler)
	router.PUT("/v1/medications/:id", handler.UpdateHandler)
	router.DELETE("/v1/medications/:id", handler.DeleteHandler)
	return router, uc
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func paracetamol() *medicationDomain.Medication {
	return &medicationDomain.Medication{
		ID:                4,
		IDMedicament:      "PARA500",
		Denumire:          "Paracetamol",
		Concentratie:      "500mg",
		FormaFarmaceutica: "comprimate",
		Pret:              12.5,
		Stoc:              30,
		Disponibilitate:   true,
	}
}

const validBody = `{"id_medicament":"PARA500","denumire":"Paracetamol","concentratie":"500mg",` +
	`"forma_farmaceutica":"comprimate","pret":12.5,"stoc":30,"disponibilitate":true}`

func TestMedicationHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, uc := setupRouter(true)
		uc.On("List", mock.Anything, mock.MatchedBy(func(p *sessionDomain.Principal) bool {
			return p.Role == rbacDomain.RolePharmacist
		}), "para").Return([]*medicationDomain.Medication{paracetamol()}, nil)

		w := doRequest(router, http.MethodGet, "/v1/medications?search=para", "")

		require.Equal(t, http.StatusOK, w.Code)
		var response dto.ListMedicationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "PARA500", response.Data[0].IDMedicament)
		assert.True(t, response.Data[0].InStock)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, uc := setupRouter(false)

		w := doRequest(router, http.MethodGet, "/v1/medications", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMedicationHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router, uc := setupRouter(true)
		uc.On("Get", mock.Anything, mock.Anything, int64(9)).Return(nil, medicationDomain.ErrMedicationNotFound)

		w := doRequest(router, http.MethodGet, "/v1/medications/9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := setupRouter(true)

		w := doRequest(router, http.MethodGet, "/v1/medications/-1", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestMedicationHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, uc := setupRouter(true)
		uc.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(m *medicationDomain.Medication) bool {
			return m.IDMedicament == "PARA500" && m.Stoc == 30 && m.ID == 0
		})).Return(paracetamol(), nil)

		w := doRequest(router, http.MethodPost, "/v1/medications", validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("negative stock", func(t *testing.T) {
		router, uc := setupRouter(true)

		w := doRequest(router, http.MethodPost, "/v1/medications",
			`{"id_medicament":"X","denumire":"X","concentratie":"1","forma_farmaceutica":"sirop","stoc":-1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("permission denied", func(t *testing.T) {
		router, uc := setupRouter(true)
		uc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, rbacDomain.ErrPermissionDenied)

		w := doRequest(router, http.MethodPost, "/v1/medications", validBody)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMedicationHandler_Update(t *testing.T) {
	router, uc := setupRouter(true)
	uc.On("Update", mock.Anything, mock.Anything, int64(4), mock.Anything).Return(paracetamol(), nil)

	w := doRequest(router, http.MethodPut, "/v1/medications/4", validBody)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMedicationHandler_Delete(t *testing.T) {
	router, uc := setupRouter(true)
	uc.On("Delete", mock.Anything, mock.Anything, int64(4)).Return(nil)

	w := doRequest(router, http.MethodDelete, "/v1/medications/4", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	uc.AssertExpectations(t)
}
