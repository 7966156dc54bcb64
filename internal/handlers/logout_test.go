package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes/internal/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), userID).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()

		NewLogoutHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Logout successful", rr.Body.String())
	})

	t.Run("no caller", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		rr := httptest.NewRecorder()

		NewLogoutHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rr.Body.String())
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	NewHealthHandler()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Message":"Service running"}`, rr.Body.String())
}
