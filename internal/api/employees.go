package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/TalentMatch/internal/store"
)

type EmployeesHandler struct {
	store store.Store
}

func NewEmployeesHandler(s store.Store) *EmployeesHandler {
	return &EmployeesHandler{store: s}
}

// List serves the directory listing, sorted by fullname. Query params mirror
// the benchmark discovery filters: role, grade, min_rating, limit, offset.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.EmployeeFilter{
		Role:  r.URL.Query().Get("role"),
		Grade: r.URL.Query().Get("grade"),
	}
	if v := r.URL.Query().Get("min_rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid min_rating"})
			return
		}
		filter.MinRating = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	employees, err := h.store.ListEmployees(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if employees == nil {
		employees = []*store.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employee, err := h.store.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "employee not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
