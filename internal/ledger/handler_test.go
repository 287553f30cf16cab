package ledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shr1ramN/expense-calculator/internal/ledger"
)

func setupRouter(t *testing.T) chi.Router {
	t.Helper()
	svc := setupService(t)
	h := ledger.NewHandler(svc)

	r := chi.NewRouter()
	r.Mount("/balances", h.BalanceRoutes())
	r.Mount("/report", h.ReportRoutes())
	return r
}

func TestHandlerUserBalance(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/balances/alice", nil).WithContext(context.Background())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			UserID     string `json:"user_id"`
			NetBalance string `json:"net_balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "alice", body.Data.UserID)
	assert.Equal(t, "160", body.Data.NetBalance)
}

func TestHandlerUserBalanceNotFound(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/balances/mallory", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerReportCSV(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/report/csv", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	want := "User,Owes To,Amount\n" +
		"bob,alice,130.00\n" +
		"carol,alice,30.00\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestHandlerReportJSON(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			User   string `json:"user"`
			OwesTo string `json:"owes_to"`
			Amount string `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "bob", body.Data[0].User)
	assert.Equal(t, "alice", body.Data[0].OwesTo)
	assert.Equal(t, "130", body.Data[0].Amount)
}
