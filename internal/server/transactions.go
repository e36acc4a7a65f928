package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/rappen-dev/rappen/internal/summary"
	"github.com/rappen-dev/rappen/internal/zkb"
)

const maxUploadBytes = 16 << 20

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		handleError(w, err, "Failed to read uploaded file")
		return
	}

	result, err := s.importer.Import(r.Context(), data)
	if err != nil {
		handleError(w, err, "Failed to process CSV file")
		return
	}

	writeJSON(w, http.StatusCreated, successEnvelope{
		Success: true,
		Message: fmt.Sprintf("Successfully imported %d transactions", result.Imported),
		Data:    result,
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := queryInt(q.Get("page"), 1)
	limit := queryInt(q.Get("limit"), 50)
	if limit > 1000 {
		limit = 1000
	}

	filter := service.TransactionFilter{
		MonthKey: q.Get("monthKey"),
		Search:   q.Get("search"),
		SortBy:   q.Get("sortBy"),
		SortDesc: q.Get("order") != "asc",
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	if t := q.Get("type"); t == string(model.TypeDebit) || t == string(model.TypeCredit) {
		filter.Type = model.TransactionType(t)
	}
	if start, err := time.Parse("2006-01-02", q.Get("startDate")); err == nil {
		filter.StartDate = &start
	}
	if end, err := time.Parse("2006-01-02", q.Get("endDate")); err == nil {
		filter.EndDate = &end
	}

	total, err := s.store.CountTransactions(r.Context(), filter)
	if err != nil {
		handleError(w, err, "Failed to fetch transactions")
		return
	}

	transactions, err := s.store.ListTransactions(r.Context(), filter)
	if err != nil {
		handleError(w, err, "Failed to fetch transactions")
		return
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Data:    transactions,
		Pagination: &pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: (total + limit - 1) / limit,
		},
	})
}

func (s *Server) handleYearlySummary(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.store.ListTransactions(r.Context(), service.TransactionFilter{})
	if err != nil {
		handleError(w, err, "Failed to fetch yearly summary")
		return
	}
	writeSuccess(w, http.StatusOK, summary.ByMonth(transactions))
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	monthKey := chi.URLParam(r, "year") + "-" + pad2(chi.URLParam(r, "month"))

	transactions, err := s.store.ListTransactions(r.Context(), service.TransactionFilter{MonthKey: monthKey})
	if err != nil {
		handleError(w, err, "Failed to fetch monthly summary")
		return
	}
	writeSuccess(w, http.StatusOK, summary.ByDay(transactions))
}

func (s *Server) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	dayKey := chi.URLParam(r, "year") + "-" + pad2(chi.URLParam(r, "month")) + "-" + pad2(chi.URLParam(r, "day"))

	// Storage order doubles as the intra-day tiebreak for the end balance.
	transactions, err := s.store.ListTransactions(r.Context(), service.TransactionFilter{DayKey: dayKey})
	if err != nil {
		handleError(w, err, "Failed to fetch daily summary")
		return
	}

	day := summary.Fold(dayKey, "", transactions, true)

	writeSuccess(w, http.StatusOK, struct {
		model.BucketSummary
		Transactions []model.Transaction `json:"transactions"`
	}{BucketSummary: day, Transactions: transactions})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")

	transactions, err := s.store.ListTransactions(r.Context(), service.TransactionFilter{YearKey: year})
	if err != nil {
		handleError(w, err, "Failed to export transactions")
		return
	}
	if len(transactions) == 0 {
		writeError(w, http.StatusNotFound, "No transactions to export")
		return
	}

	suffix := ""
	if year != "" {
		suffix = "_" + year
	}
	filename := fmt.Sprintf("transactions_export%s_%s.csv", suffix, time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := zkb.Export(w, transactions); err != nil {
		// Headers are already written; nothing left but to log.
		handleError(w, err, "Failed to export transactions")
	}
}

func (s *Server) handleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.store.DeleteBatch(r.Context(), chi.URLParam(r, "batchID"))
	if err != nil {
		handleError(w, err, "Failed to delete batch")
		return
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Message: fmt.Sprintf("Deleted %d transactions", deleted),
		Data:    map[string]int64{"deleted": deleted},
	})
}

func (s *Server) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")

	deleted, err := s.store.DeleteTransactions(r.Context(), year)
	if err != nil {
		handleError(w, err, "Failed to delete transactions")
		return
	}

	msg := fmt.Sprintf("Deleted %d transactions", deleted)
	if year != "" {
		msg += " for year " + year
	}
	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Message: msg,
		Data:    map[string]int64{"deleted": deleted},
	})
}

func queryInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
