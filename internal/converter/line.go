package converter

import (
	"time"

	"github.com/samber/lo"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

type ScanRequest struct {
	Raw         string `json:"raw,omitempty"`
	Serial      string `json:"serial,omitempty"`
	Station     string `json:"station,omitempty"`
	Operator    string `json:"operator,omitempty"`
	Action      string `json:"action,omitempty"`
	Result      string `json:"result,omitempty"`
	Rework      bool   `json:"rework,omitempty"`
	Workstation string `json:"workstation,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Force       bool   `json:"force,omitempty"`
}

type ScanResponse struct {
	Serial            string `json:"serial"`
	Station           string `json:"station"`
	Action            string `json:"action"`
	Outcome           string `json:"outcome"`
	Realigned         bool   `json:"realigned"`
	Locked            bool   `json:"locked"`
	LockedMinutesLeft int    `json:"locked_minutes_left,omitempty"`
	Order             *Order `json:"order,omitempty"`
	Visit             *Visit `json:"visit,omitempty"`
	FinishedGood      *Stock `json:"finished_good,omitempty"`
}

type UndoRequest struct {
	Serial   string `json:"serial"`
	Operator string `json:"operator,omitempty"`
}

type UndoResponse struct {
	Outcome              string `json:"outcome"`
	FinishedGoodReversed bool   `json:"finished_good_reversed"`
	Order                *Order `json:"order,omitempty"`
	Visit                *Visit `json:"visit,omitempty"`
}

type ResultResponse struct {
	Station      string `json:"station"`
	VisitClosed  bool   `json:"visit_closed"`
	Advanced     bool   `json:"advanced"`
	Held         bool   `json:"held"`
	Order        *Order `json:"order,omitempty"`
	Visit        *Visit `json:"visit,omitempty"`
	FinishedGood *Stock `json:"finished_good,omitempty"`
}

type LaunchRequest struct {
	Model    string `json:"model"`
	Quantity int    `json:"quantity"`
	User     string `json:"user,omitempty"`
}

type LaunchResponse struct {
	Model    string   `json:"model"`
	Serials  []string `json:"serials"`
	Consumed []Stock  `json:"consumed"`
}

type CancelRequest struct {
	User string `json:"user,omitempty"`
}

type Order struct {
	Serial             string     `json:"serial"`
	Model              string     `json:"model"`
	Status             string     `json:"status"`
	CurrentStation     string     `json:"current_station"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	FinishedAt         *time.Time `json:"finished_at,omitempty"`
	ExternalTestFlag   bool       `json:"external_test_flag"`
	ExternalTestStatus string     `json:"external_test_status,omitempty"`
	ExternalTestLastAt *time.Time `json:"external_test_last_at,omitempty"`
}

type Visit struct {
	Station     string     `json:"station"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
	Operator    string     `json:"operator,omitempty"`
	Result      string     `json:"result,omitempty"`
	Rework      bool       `json:"rework"`
	Workstation string     `json:"workstation,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type Stock struct {
	Code         string `json:"code"`
	Description  string `json:"description,omitempty"`
	CurrentStock int64  `json:"current_stock"`
	ReorderPoint int64  `json:"reorder_point"`
	MaximumStock int64  `json:"maximum_stock"`
}

type ErrorResponse struct {
	Error     string           `json:"error"`
	Shortages []ShortageDetail `json:"shortages,omitempty"`
}

type ShortageDetail struct {
	Code      string `json:"code"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
	Missing   int64  `json:"missing"`
}

func ScanRequestToModel(req ScanRequest) model.ScanRequest {
	return model.ScanRequest{
		Raw:         req.Raw,
		Serial:      req.Serial,
		Station:     req.Station,
		Operator:    req.Operator,
		Action:      model.ScanAction(req.Action),
		Result:      model.VisitResult(req.Result),
		Rework:      req.Rework,
		Workstation: req.Workstation,
		Notes:       req.Notes,
		Force:       req.Force,
	}
}

func ScanResultToResponse(res *model.ScanResult) ScanResponse {
	return ScanResponse{
		Serial:            res.Serial,
		Station:           res.Station,
		Action:            string(res.Action),
		Outcome:           string(res.Outcome),
		Realigned:         res.Realigned,
		Locked:            res.Locked(),
		LockedMinutesLeft: res.LockedMinutesLeft,
		Order:             OrderToResponse(res.Order),
		Visit:             VisitToResponse(res.Visit),
		FinishedGood:      PartToStock(res.FinishedGood),
	}
}

func UndoResultToResponse(res *model.UndoResult) UndoResponse {
	return UndoResponse{
		Outcome:              string(res.Outcome),
		FinishedGoodReversed: res.FinishedGoodReversed,
		Order:                OrderToResponse(res.Order),
		Visit:                VisitToResponse(res.Visit),
	}
}

func ResultRequestToModel(rec TestResultRecord) model.ExternalResult {
	return model.ExternalResult{
		Serial:     rec.Serial,
		Source:     model.ResultSource(rec.Source),
		Status:     model.ExternalStatus(rec.Status),
		Operator:   rec.Operator,
		Notes:      rec.Notes,
		ReportedAt: rec.ReportedAt,
	}
}

func ResultOutcomeToResponse(out *model.ResultOutcome) ResultResponse {
	return ResultResponse{
		Station:      out.Station,
		VisitClosed:  out.VisitClosed,
		Advanced:     out.Advanced,
		Held:         out.Held,
		Order:        OrderToResponse(out.Order),
		Visit:        VisitToResponse(out.Visit),
		FinishedGood: PartToStock(out.FinishedGood),
	}
}

func LaunchRequestToParams(req LaunchRequest) model.LaunchParams {
	return model.LaunchParams{
		ModelCode: req.Model,
		Quantity:  req.Quantity,
		User:      req.User,
	}
}

func LaunchResultToResponse(res *model.LaunchResult) LaunchResponse {
	return LaunchResponse{
		Model:   res.ModelCode,
		Serials: res.Serials,
		Consumed: lo.Map(res.Consumed, func(p model.Part, _ int) Stock {
			return *PartToStock(&p)
		}),
	}
}

func OrderToResponse(o *model.WorkOrder) *Order {
	if o == nil {
		return nil
	}
	return &Order{
		Serial:             o.Serial,
		Model:              o.ModelCode,
		Status:             string(o.Status),
		CurrentStation:     o.CurrentStation,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		FinishedAt:         o.FinishedAt,
		ExternalTestFlag:   o.ExternalTestFlag,
		ExternalTestStatus: o.ExternalTestStatus,
		ExternalTestLastAt: o.ExternalTestLastAt,
	}
}

func VisitToResponse(v *model.StationVisit) *Visit {
	if v == nil {
		return nil
	}
	return &Visit{
		Station:     v.StationID,
		StartedAt:   v.StartedAt,
		FinishedAt:  v.FinishedAt,
		Operator:    v.Operator,
		Result:      string(v.Result),
		Rework:      v.ReworkFlag,
		Workstation: v.Workstation,
		Notes:       v.Notes,
	}
}

func VisitsToResponse(visits []model.StationVisit) []Visit {
	return lo.Map(visits, func(v model.StationVisit, _ int) Visit {
		return *VisitToResponse(&v)
	})
}

func PartToStock(p *model.Part) *Stock {
	if p == nil {
		return nil
	}
	return &Stock{
		Code:         p.Code,
		Description:  p.Description,
		CurrentStock: p.CurrentStock,
		ReorderPoint: p.ReorderPoint,
		MaximumStock: p.MaximumStock,
	}
}

func ShortagesToResponse(list []model.Shortage) []ShortageDetail {
	return lo.Map(list, func(s model.Shortage, _ int) ShortageDetail {
		return ShortageDetail{
			Code:      s.Code,
			Required:  s.Required,
			Available: s.Available,
			Missing:   s.Missing(),
		}
	})
}

type BoardColumn struct {
	Station string      `json:"station"`
	Title   string      `json:"title"`
	Items   []BoardItem `json:"items"`
}

type BoardItem struct {
	Serial           string     `json:"serial"`
	Model            string     `json:"model"`
	Status           string     `json:"status"`
	Since            *time.Time `json:"since,omitempty"`
	ExpectedSeconds  int64      `json:"expected_seconds"`
	ExternalTestFlag bool       `json:"external_test_flag"`
	Rework           bool       `json:"rework"`
	Returned         bool       `json:"returned"`
}

func BoardToResponse(cols []model.BoardColumn) []BoardColumn {
	return lo.Map(cols, func(c model.BoardColumn, _ int) BoardColumn {
		return BoardColumn{
			Station: c.Station,
			Title:   c.Title,
			Items: lo.Map(c.Items, func(it model.BoardItem, _ int) BoardItem {
				return BoardItem{
					Serial:           it.Serial,
					Model:            it.ModelCode,
					Status:           string(it.Status),
					Since:            it.Since,
					ExpectedSeconds:  int64(it.Expected / time.Second),
					ExternalTestFlag: it.ExternalTestFlag,
					Rework:           it.Rework,
					Returned:         it.Returned,
				}
			}),
		}
	})
}

type OrderPage struct {
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Total    int64   `json:"total"`
	Items    []Order `json:"items"`
}

type TraceSummary struct {
	Serial         string `json:"serial"`
	Model          string `json:"model"`
	Status         string `json:"status"`
	CurrentStation string `json:"current_station"`
	Visits         int    `json:"visits"`
	ClosedVisits   int    `json:"closed_visits"`
	ReworkVisits   int    `json:"rework_visits"`
	LastActivity   *Visit `json:"last_activity,omitempty"`
}

type PlanRequest struct {
	Lines []model.PlanLine `json:"lines"`
}

type PlanResponse struct {
	OK     bool              `json:"ok"`
	Issues []model.PlanIssue `json:"issues"`
}

type AuditResponse struct {
	Year  int      `json:"year"`
	Lines []string `json:"lines"`
}

func OrderPageToResponse(p *model.OrderPage) OrderPage {
	return OrderPage{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		Items: lo.Map(p.Items, func(o model.WorkOrder, _ int) Order {
			return *OrderToResponse(&o)
		}),
	}
}

func TraceSummaryToResponse(s *model.TraceSummary) TraceSummary {
	return TraceSummary{
		Serial:         s.Order.Serial,
		Model:          s.Order.ModelCode,
		Status:         string(s.Order.Status),
		CurrentStation: s.Order.CurrentStation,
		Visits:         s.Visits,
		ClosedVisits:   s.ClosedVisits,
		ReworkVisits:   s.ReworkVisits,
		LastActivity:   VisitToResponse(s.LastActivity),
	}
}

func PlanIssuesToResponse(issues []model.PlanIssue) PlanResponse {
	if issues == nil {
		issues = []model.PlanIssue{}
	}
	return PlanResponse{OK: len(issues) == 0, Issues: issues}
}
