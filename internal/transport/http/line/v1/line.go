package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AdrianoSaraivaa/sgp/internal/converter"
	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/logger"
)

type ScanService interface {
	Scan(ctx context.Context, req model.ScanRequest) (*model.ScanResult, error)
	Undo(ctx context.Context, req model.UndoRequest) (*model.UndoResult, error)
	ApplyResult(ctx context.Context, res model.ExternalResult) (*model.ResultOutcome, error)
	Order(ctx context.Context, serial string) (*model.WorkOrder, error)
	Visits(ctx context.Context, serial string) ([]model.StationVisit, error)
	Search(ctx context.Context, f model.OrderFilter) (*model.OrderPage, error)
	Summary(ctx context.Context, serial string) (*model.TraceSummary, error)
}

type ProductionService interface {
	Launch(ctx context.Context, p model.LaunchParams) (*model.LaunchResult, error)
	Cancel(ctx context.Context, serial, user string) (*model.WorkOrder, error)
	Capacity(ctx context.Context, modelCode string) (*model.Capacity, error)
	Capacities(ctx context.Context) (*model.CapacityPlan, error)
	ValidatePlan(ctx context.Context, lines []model.PlanLine) ([]model.PlanIssue, error)
}

type BoardService interface {
	Board(ctx context.Context) ([]model.BoardColumn, error)
}

type NeedsService interface {
	ListNeeds(ctx context.Context) ([]model.Need, error)
}

type RouteService interface {
	Invalidate(ctx context.Context, modelCode string) error
}

type SerialService interface {
	Audit(ctx context.Context, year int) ([]string, error)
}

type handler struct {
	scan       ScanService
	production ProductionService
	board      BoardService
	needs      NeedsService
	routes     RouteService
	serials    SerialService
}

func NewLineHandler(
	scan ScanService,
	production ProductionService,
	board BoardService,
	needs NeedsService,
	routes RouteService,
	serials SerialService,
) *handler {
	return &handler{
		scan:       scan,
		production: production,
		board:      board,
		needs:      needs,
		routes:     routes,
		serials:    serials,
	}
}

// Routes mounts the line API on r.
func (h *handler) Routes(r chi.Router) {
	r.Post("/scan", h.Scan)
	r.Post("/scan/undo", h.Undo)
	r.Post("/results", h.ApplyResult)
	r.Post("/orders", h.Launch)
	r.Get("/orders", h.SearchOrders)
	r.Post("/orders/{serial}/cancel", h.Cancel)
	r.Get("/orders/{serial}", h.GetOrder)
	r.Get("/orders/{serial}/visits", h.GetVisits)
	r.Get("/orders/{serial}/summary", h.GetSummary)
	r.Get("/needs", h.ListNeeds)
	r.Get("/board", h.GetBoard)
	r.Get("/capacity", h.ListCapacities)
	r.Get("/capacity/{model}", h.GetCapacity)
	r.Post("/plans/validate", h.ValidatePlan)
	r.Post("/routes/{model}/invalidate", h.InvalidateRoute)
	r.Get("/serials/audit/{year}", h.GetSerialAudit)
}

func (h *handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req converter.ScanRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.scan.Scan(r.Context(), converter.ScanRequestToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ScanResultToResponse(res))
}

func (h *handler) Undo(w http.ResponseWriter, r *http.Request) {
	var req converter.UndoRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.scan.Undo(r.Context(), model.UndoRequest{Serial: req.Serial, Operator: req.Operator})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.UndoResultToResponse(res))
}

func (h *handler) ApplyResult(w http.ResponseWriter, r *http.Request) {
	var req converter.TestResultRecord
	if !decode(w, r, &req) {
		return
	}

	out, err := h.scan.ApplyResult(r.Context(), converter.ResultRequestToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ResultOutcomeToResponse(out))
}

func (h *handler) Launch(w http.ResponseWriter, r *http.Request) {
	var req converter.LaunchRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.production.Launch(r.Context(), converter.LaunchRequestToParams(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.LaunchResultToResponse(res))
}

func (h *handler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req converter.CancelRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}

	ord, err := h.production.Cancel(r.Context(), chi.URLParam(r, "serial"), req.User)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.OrderToResponse(ord))
}

func (h *handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := h.scan.Order(r.Context(), chi.URLParam(r, "serial"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.OrderToResponse(ord))
}

func (h *handler) GetVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.scan.Visits(r.Context(), chi.URLParam(r, "serial"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.VisitsToResponse(visits))
}

func (h *handler) ListNeeds(w http.ResponseWriter, r *http.Request) {
	needs, err := h.needs.ListNeeds(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, needs)
}

func (h *handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	cols, err := h.board.Board(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BoardToResponse(cols))
}

func (h *handler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	f, err := orderFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.scan.Search(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.OrderPageToResponse(page))
}

func (h *handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.scan.Summary(r.Context(), chi.URLParam(r, "serial"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.TraceSummaryToResponse(sum))
}

func (h *handler) ListCapacities(w http.ResponseWriter, r *http.Request) {
	plan, err := h.production.Capacities(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, plan)
}

func (h *handler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	c, err := h.production.Capacity(r.Context(), chi.URLParam(r, "model"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, c)
}

func (h *handler) ValidatePlan(w http.ResponseWriter, r *http.Request) {
	var req converter.PlanRequest
	if !decode(w, r, &req) {
		return
	}

	issues, err := h.production.ValidatePlan(r.Context(), req.Lines)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PlanIssuesToResponse(issues))
}

func (h *handler) InvalidateRoute(w http.ResponseWriter, r *http.Request) {
	if err := h.routes.Invalidate(r.Context(), chi.URLParam(r, "model")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) GetSerialAudit(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: year must be a number", model.ErrValidation))
		return
	}

	lines, err := h.serials.Audit(r.Context(), year)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.AuditResponse{Year: year, Lines: lines})
}

const dateLayout = "2006-01-02"

// orderFilter reads the search query. Bad paging values fall back to the
// defaults; bad dates are rejected. The upper date bound covers its whole day.
func orderFilter(r *http.Request) (model.OrderFilter, error) {
	q := r.URL.Query()
	f := model.OrderFilter{
		Serial:    q.Get("serial"),
		ModelCode: q.Get("model"),
		Status:    model.OrderStatus(q.Get("status")),
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.PageSize, _ = strconv.Atoi(q.Get("page_size"))

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, fmt.Errorf("%w: from must be YYYY-MM-DD", model.ErrValidation)
		}
		f.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, fmt.Errorf("%w: to must be YYYY-MM-DD", model.ErrValidation)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		f.To = &to
	}

	return f, nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, r, http.StatusBadRequest, converter.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}
	writeJSON(w, r, status, body)
}

func mapError(err error) (int, converter.ErrorResponse) {
	body := converter.ErrorResponse{Error: err.Error()}

	var shortage *model.ShortageError
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, body // 400
	case errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrModelNotFound),
		errors.Is(err, model.ErrPartNotFound):
		return http.StatusNotFound, body // 404
	case errors.Is(err, model.ErrOrderClosed):
		return http.StatusConflict, body // 409
	case errors.As(err, &shortage):
		body.Shortages = converter.ShortagesToResponse(shortage.Shortages)
		return http.StatusConflict, body // 409
	case errors.Is(err, model.ErrInsufficientStock):
		return http.StatusConflict, body // 409
	case errors.Is(err, model.ErrBOMUnavailable):
		return http.StatusUnprocessableEntity, body // 422
	default:
		return http.StatusInternalServerError, converter.ErrorResponse{Error: "internal error"} // 500
	}
}
