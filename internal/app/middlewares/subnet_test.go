package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TonySyv/yshstob/internal/app/config"
)

func TestCheckSubnet(t *testing.T) {
	previousSubnet := config.Settings.TrustedSubnet
	defer func() {
		config.Settings.TrustedSubnet = previousSubnet
		IPNet = nil
	}()

	tests := []struct {
		name       string
		subnet     string
		realIP     string
		wantStatus int
	}{
		{
			name:       "no subnet configured lets everything through",
			subnet:     "",
			realIP:     "8.8.8.8",
			wantStatus: http.StatusOK,
		},
		{
			name:       "address inside the subnet",
			subnet:     "10.0.0.0/8",
			realIP:     "10.1.2.3",
			wantStatus: http.StatusOK,
		},
		{
			name:       "address outside the subnet",
			subnet:     "10.0.0.0/8",
			realIP:     "192.168.1.1",
			wantStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.Settings.TrustedSubnet = tt.subnet
			IPNet = nil

			request := httptest.NewRequest(http.MethodPost, "/analytics/redirect", nil)
			request.Header.Set("X-Real-IP", tt.realIP)
			recorder := httptest.NewRecorder()
			CheckSubnet(okHandler()).ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
