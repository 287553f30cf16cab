package ledger

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Shr1ramN/expense-calculator/internal/user"
	"github.com/Shr1ramN/expense-calculator/pkg/response"
)

// Handler handles HTTP requests for balance and report queries
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// BalanceRoutes returns the router for balance endpoints
func (h *Handler) BalanceRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.AllBalances)
	r.Get("/{userId}", h.UserBalance)

	return r
}

// ReportRoutes returns the router for report endpoints
func (h *Handler) ReportRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ReportJSON)
	r.Get("/csv", h.ReportCSV)

	return r
}

// NetBalanceResponse is the balance of a single user
type NetBalanceResponse struct {
	UserID     string          `json:"user_id"`
	NetBalance decimal.Decimal `json:"net_balance"`
}

// AllBalances handles GET /balances
// @Summary      Get all pairwise balances
// @Description  Full ledger: for user A and counterparty B, a positive amount means B owes A net
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Router       /balances [get]
func (h *Handler) AllBalances(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.AllBalances(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, l)
}

// UserBalance handles GET /balances/{userId}
// @Summary      Get a user's net balance
// @Description  Positive means the user is owed net, negative means the user owes net
// @Tags         balances
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.APIResponse{data=NetBalanceResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /balances/{userId} [get]
func (h *Handler) UserBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	net, err := h.service.UserBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute balance")
		return
	}

	response.JSON(w, http.StatusOK, &NetBalanceResponse{
		UserID:     userID,
		NetBalance: net,
	})
}

// ReportJSON handles GET /report
// @Summary      Get the settlement report
// @Description  One row per debtor/creditor pair, sorted by user then counterparty
// @Tags         report
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Row}
// @Router       /report [get]
func (h *Handler) ReportJSON(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ReportRows(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to build report")
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// ReportCSV handles GET /report/csv
// @Summary      Download the settlement report as CSV
// @Tags         report
// @Produce      text/csv
// @Success      200 {string} string "CSV with header User,Owes To,Amount"
// @Router       /report/csv [get]
func (h *Handler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ReportRows(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to build report")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="balance-sheet.csv"`)
	if err := WriteCSV(w, rows); err != nil {
		response.InternalError(w, "Failed to write report")
	}
}
