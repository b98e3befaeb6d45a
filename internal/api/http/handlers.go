package httpapi

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/sellerdesk/shop-manager/internal/analytics"
	"github.com/sellerdesk/shop-manager/internal/entity"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.rep.Ping(r.Context()); err != nil {
		render.Render(w, r, ErrServiceUnavailable(err))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req analytics.Request
	var err error

	if r.Method == http.MethodPost {
		var p reportPayload
		if err = render.DecodeJSON(r.Body, &p); err == nil {
			req = p.request()
		}
	} else {
		req, err = reportRequestFromQuery(r)
	}
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	reportID := uuid.New().String()
	started := time.Now()

	report, err := s.engine.Report(r.Context(), req)
	if err != nil {
		if _, ok := err.(*analytics.ErrInvalidRequest); ok {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		slog.Default().ErrorContext(r.Context(), "report failed",
			slog.String("reportId", reportID),
			slog.Int64("shopId", req.ShopID),
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	slog.Default().InfoContext(r.Context(), "report served",
		slog.String("reportId", reportID),
		slog.Int64("shopId", req.ShopID),
		slog.String("tab", string(report.Tab)),
		slog.Duration("took", time.Since(started)),
	)
	render.Render(w, r, NewReportResponse(report))
}

// reportPayload accepts both snake_case and camelCase body keys for the
// report request. Snake aliases only apply where the canonical key is
// absent.
type reportPayload struct {
	analytics.Request
	ShopIDAlias   int64 `json:"shop_id"`
	StartTSAlias  int64 `json:"start_ts"`
	EndTSAlias    int64 `json:"end_ts"`
	PageSizeAlias int   `json:"page_size"`
	TZAlias       *int  `json:"timezone_offset"`
}

func (p reportPayload) request() analytics.Request {
	req := p.Request
	if req.ShopID == 0 {
		req.ShopID = p.ShopIDAlias
	}
	if req.StartTS == 0 {
		req.StartTS = p.StartTSAlias
	}
	if req.EndTS == 0 {
		req.EndTS = p.EndTSAlias
	}
	if req.PageSize == 0 {
		req.PageSize = p.PageSizeAlias
	}
	if req.TimezoneOffset == nil {
		req.TimezoneOffset = p.TZAlias
	}
	return req
}

// queryValue returns the first non-empty value among key aliases. The
// report endpoint accepts both snake_case and camelCase parameter names.
func queryValue(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func reportRequestFromQuery(r *http.Request) (analytics.Request, error) {
	q := r.URL.Query()
	req := analytics.Request{
		Tab:    entity.Tab(q.Get("tab")),
		Search: q.Get("search"),
	}

	var err error
	if v := queryValue(q, "shop_id", "shopId"); v != "" {
		if req.ShopID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, err
		}
	}
	if v := queryValue(q, "start_ts", "startTs"); v != "" {
		if req.StartTS, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, err
		}
	}
	if v := queryValue(q, "end_ts", "endTs"); v != "" {
		if req.EndTS, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, err
		}
	}
	if v := q.Get("page"); v != "" {
		if req.Page, err = strconv.Atoi(v); err != nil {
			return req, err
		}
	}
	if v := queryValue(q, "page_size", "pageSize"); v != "" {
		if req.PageSize, err = strconv.Atoi(v); err != nil {
			return req, err
		}
	}
	if v := queryValue(q, "timezone_offset", "timezoneOffset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return req, err
		}
		req.TimezoneOffset = &offset
	}
	return req, nil
}
