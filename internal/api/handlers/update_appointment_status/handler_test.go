package update_appointment_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) UpdateStatus(ctx context.Context, id string, status string) (*models.StatusUpdateResult, error) {
	args := m.Called(ctx, id, status)
	result, _ := args.Get(0).(*models.StatusUpdateResult)
	return result, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(svc AppointmentService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/appointments/{id}/status", NewHandler(svc, nopLogger{}).Handle).
		Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/appointments/"+id+"/status", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, "a1", "confirmed").Return(&models.StatusUpdateResult{
		Appointment:  &domain.Appointment{ID: "a1", Status: domain.StatusConfirmed},
		WhatsAppLink: "https://wa.me/5511987654321?text=ok",
	}, nil)

	rec := patch(svc, "a1", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body UpdateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.StatusConfirmed, body.Appointment.Status)
	assert.Equal(t, "https://wa.me/5511987654321?text=ok", body.WhatsAppLink)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"malformed body", `status=confirmed`, nil, http.StatusBadRequest},
		{"invalid status", `{"status":"done"}`, appointments.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", `{"status":"confirmed"}`, appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"storage down", `{"status":"confirmed"}`, appointments.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"other", `{"status":"confirmed"}`, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.wantCode, patch(svc, "a1", tt.body).Code)
		})
	}
}
