package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rappen-dev/rappen/internal/common"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/rappen-dev/rappen/internal/summary"
)

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, model.Categories)
}

func (s *Server) handleListRules(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, s.categorizer.Rules())
}

func (s *Server) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "year") + "-" + pad2(chi.URLParam(r, "month"))

	transactions, err := s.store.ListTransactions(r.Context(), service.TransactionFilter{
		MonthKey: monthKey,
		Type:     model.TypeDebit,
	})
	if err != nil {
		handleError(w, err, "Failed to fetch category summary")
		return
	}

	categories, totalExpenses := summary.ByCategory(transactions)

	writeSuccess(w, http.StatusOK, struct {
		MonthKey      string                  `json:"monthKey"`
		TotalExpenses float64                 `json:"totalExpenses"`
		Categories    []model.CategorySummary `json:"categories"`
	}{MonthKey: monthKey, TotalExpenses: totalExpenses, Categories: categories})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, ok := model.ParseCategory(body.Category)
	if !ok {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid category %q: %v", body.Category, common.ErrUnknownCategory))
		return
	}

	// A manual assignment protects the record from future automatic
	// recategorization.
	if err := s.store.UpdateTransactionCategory(r.Context(), id, category, true); err != nil {
		handleError(w, err, "Failed to update category")
		return
	}

	updated, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		handleError(w, err, "Failed to update category")
		return
	}
	writeSuccess(w, http.StatusOK, updated)
}

func (s *Server) handleRecategorize(w http.ResponseWriter, r *http.Request) {
	userFullName, err := s.store.GetUserFullName(r.Context())
	if err != nil {
		handleError(w, err, "Failed to recategorize transactions")
		return
	}

	// Manual overrides are excluded at the query level.
	transactions, err := s.store.ListTransactions(r.Context(), service.TransactionFilter{AutoOnly: true})
	if err != nil {
		handleError(w, err, "Failed to recategorize transactions")
		return
	}

	updated := 0
	for _, tx := range transactions {
		category := s.categorizer.Categorize(tx.BookingText, tx.PaymentPurpose, tx.Type, userFullName)
		if category == tx.Category {
			continue
		}
		if err := s.store.UpdateTransactionCategory(r.Context(), tx.ID, category, false); err != nil {
			handleError(w, err, "Failed to recategorize transactions")
			return
		}
		updated++
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Message: fmt.Sprintf("Recategorized %d transactions", updated),
		Data: map[string]int{
			"updated": updated,
			"total":   len(transactions),
		},
	})
}
