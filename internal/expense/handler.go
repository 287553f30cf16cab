package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shr1ramN/expense-calculator/internal/user"
	"github.com/Shr1ramN/expense-calculator/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListAll)
	r.Get("/{id}", h.GetByID)
	r.Get("/user/{userId}", h.ListByParticipant)

	return r
}

// Create handles POST /expenses
// @Summary      Create a new expense
// @Description  Record an expense with an equal, exact or percentage split. The split is validated before anything is stored.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	e, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			response.Conflict(w, err.Error())
			return
		}
		// Everything else the service rejects is a caller input error
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, e.ToResponse())
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, e.ToResponse())
}

// ListAll handles GET /expenses
// @Summary      List all expenses
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses [get]
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(expenses))
}

// ListByParticipant handles GET /expenses/user/{userId}
// @Summary      List expenses for a user
// @Description  List the expenses the user took part in, as payer or participant
// @Tags         expenses
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/user/{userId} [get]
func (h *Handler) ListByParticipant(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListByParticipant(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		if errors.Is(err, ErrUnknownUser) || errors.Is(err, user.ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list expenses")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(expenses))
}

func toResponses(expenses []Expense) []*ExpenseResponse {
	resp := make([]*ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = expenses[i].ToResponse()
	}
	return resp
}
