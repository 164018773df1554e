package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-budget-stats/internal/identity"
	"github.com/sbilibin2017/gw-budget-stats/internal/models"
	"github.com/sbilibin2017/gw-budget-stats/internal/validators"
	"github.com/stretchr/testify/assert"
)

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(identity.WithIdentity(r.Context(), identity.Identity{UserID: userID, TokenID: "token-1"}))
}

func TestGetBalanceStatsHandler(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		userID         string
		target         string
		setupMocks     func(m *MockBalanceStatsGetter)
		expectedStatus int
		expectedBody   string
		expectedLoc    string
	}{
		{
			name:   "successful stats fetch",
			userID: "U1",
			target: "/api/stats/balance?from=2024-01-01&to=2024-01-02",
			setupMocks: func(m *MockBalanceStatsGetter) {
				m.EXPECT().GetBalanceStats(gomock.Any(), "U1", day1, day2).
					Return(models.BalanceStats{Income: 100, Expense: 40}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expense":40,"income":100}`,
		},
		{
			name:   "no transactions in range",
			userID: "U2",
			target: "/api/stats/balance?from=2024-01-01&to=2024-01-02",
			setupMocks: func(m *MockBalanceStatsGetter) {
				m.EXPECT().GetBalanceStats(gomock.Any(), "U2", day1, day2).
					Return(models.BalanceStats{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expense":0,"income":0}`,
		},
		{
			name:           "unauthenticated redirects to sign-in",
			target:         "/api/stats/balance?from=2024-01-01&to=2024-01-02",
			setupMocks:     func(m *MockBalanceStatsGetter) {},
			expectedStatus: http.StatusTemporaryRedirect,
			expectedLoc:    "/sign-in",
		},
		{
			name:           "missing from",
			userID:         "U1",
			target:         "/api/stats/balance?to=2024-01-02",
			setupMocks:     func(m *MockBalanceStatsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date range"}`,
		},
		{
			name:           "missing to",
			userID:         "U1",
			target:         "/api/stats/balance?from=2024-01-01",
			setupMocks:     func(m *MockBalanceStatsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date range"}`,
		},
		{
			name:           "unparseable date",
			userID:         "U1",
			target:         "/api/stats/balance?from=not-a-date&to=2024-01-02",
			setupMocks:     func(m *MockBalanceStatsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date range"}`,
		},
		{
			name:           "inverted range",
			userID:         "U1",
			target:         "/api/stats/balance?from=2024-01-02&to=2024-01-01",
			setupMocks:     func(m *MockBalanceStatsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date range"}`,
		},
		{
			name:           "range wider than 90 days",
			userID:         "U1",
			target:         "/api/stats/balance?from=2024-01-01&to=2024-04-01",
			setupMocks:     func(m *MockBalanceStatsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid date range"}`,
		},
		{
			name:   "store failure",
			userID: "U1",
			target: "/api/stats/balance?from=2024-01-01&to=2024-01-02",
			setupMocks: func(m *MockBalanceStatsGetter) {
				m.EXPECT().GetBalanceStats(gomock.Any(), "U1", day1, day2).
					Return(models.BalanceStats{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStats := NewMockBalanceStatsGetter(ctrl)
			tt.setupMocks(mockStats)

			handler := NewGetBalanceStatsHandler(mockStats, validators.NewDateRangeValidator(90), "/sign-in")

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.userID != "" {
				req = withUser(req, tt.userID)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
			if tt.expectedLoc != "" {
				assert.Equal(t, tt.expectedLoc, rr.Header().Get("Location"))
			}
		})
	}
}

func TestGetBalanceStatsHandler_ValidatorMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 20, 0, 0, 0, time.UTC)

	mockValidator := NewMockDateRangeValidator(ctrl)
	mockStats := NewMockBalanceStatsGetter(ctrl)

	mockValidator.EXPECT().Validate("a", "b").Return(models.DateRange{From: from, To: to}, nil)
	mockStats.EXPECT().GetBalanceStats(gomock.Any(), "U1", from, to).
		Return(models.BalanceStats{Income: 1.5, Expense: 2.25}, nil)

	handler := NewGetBalanceStatsHandler(mockStats, mockValidator, "/sign-in")
	req := withUser(httptest.NewRequest(http.MethodGet, "/api/stats/balance?from=a&to=b", nil), "U1")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"expense":2.25,"income":1.5}`, rr.Body.String())
}
