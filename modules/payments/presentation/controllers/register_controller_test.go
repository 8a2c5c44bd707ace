package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deskflow/deskflow/modules/payments/services"
	"github.com/deskflow/deskflow/pkg/composables"
)

type stubPaymentRepository struct {
	rows []services.PaymentRow
}

func (s stubPaymentRepository) Rows(ctx context.Context) ([]services.PaymentRow, error) {
	return s.rows, nil
}

func newTestRouter(rows []services.PaymentRow) *mux.Router {
	svc := services.NewRegisterService(stubPaymentRepository{rows: rows})
	router := mux.NewRouter()
	NewRegisterController(svc).Register(router)
	return router
}

func authed(req *http.Request) *http.Request {
	return req.WithContext(composables.WithUserID(req.Context(), uuid.New()))
}

func TestRegisterController_Get(t *testing.T) {
	router := newTestRouter([]services.PaymentRow{
		{
			Contract:     "C-001",
			Counterparty: "Acme",
			Planned:      decimal.RequireFromString("100"),
			Actual:       decimal.RequireFromString("75.50"),
		},
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/register", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("register returned as JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/payments/register", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Groups, 1)
		assert.Equal(t, "Acme", resp.Groups[0].Counterparty)
		assert.Equal(t, "75.5", resp.ActualTotal)
	})
}

func TestRegisterController_Export(t *testing.T) {
	router := newTestRouter([]services.PaymentRow{
		{
			Contract:     "C-001",
			Counterparty: "Acme",
			Planned:      decimal.RequireFromString("100"),
			Actual:       decimal.RequireFromString("75.50"),
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/payments/register/export", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payment-register.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, []string{"Counterparty", "Contract", "Planned", "Actual"}, rows[0])
	assert.Equal(t, "Acme", rows[1][0])
	assert.Equal(t, "Grand total", rows[3][0])
}
