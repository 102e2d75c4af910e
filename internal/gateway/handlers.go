package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/core/errors"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/service"
	"github.com/msto63/mRW/internal/tools"
	"github.com/msto63/mRW/pkg/core/health"
)

// maxBodySize bounds request bodies
const maxBodySize = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToolsResponse lists catalog entries
type ToolsResponse struct {
	Tools []*tools.Tool `json:"tools"`
	Count int           `json:"count"`
}

// CategoriesResponse lists the catalog categories
type CategoriesResponse struct {
	Categories []tools.Category `json:"categories"`
}

// CalculateRequest is the body of POST /tools/{id}/calculate. Values may
// be strings, numbers, bools or arrays of those.
type CalculateRequest struct {
	Params map[string]interface{} `json:"params"`
}

// ResultResponse is a calculation result with JSON-ready values
type ResultResponse struct {
	Tool    string                 `json:"tool"`
	Summary string                 `json:"summary"`
	Fields  []tools.Field          `json:"fields"`
	Values  map[string]interface{} `json:"values"`
}

// HistoryResponse lists history entries, newest first
type HistoryResponse struct {
	Entries []*history.Entry `json:"entries"`
	Count   int              `json:"count"`
}

func newResultResponse(res *tools.Result) ResultResponse {
	fields := make([]tools.Field, len(res.Fields))
	for i, f := range res.Fields {
		fields[i] = tools.Field{Key: f.Key, Label: f.Label, Value: tools.Normalize(f.Value)}
	}
	return ResultResponse{Tool: res.Tool, Summary: res.Summary, Fields: fields, Values: res.Map()}
}

func (g *Gateway) handleTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list := g.service.Tools(q.Get("category"), q.Get("q"))
	if list == nil {
		list = []*tools.Tool{}
	}
	writeJSON(w, http.StatusOK, ToolsResponse{Tools: list, Count: len(list)})
}

func (g *Gateway) handleTool(w http.ResponseWriter, r *http.Request) {
	t, err := g.service.Tool(mux.Vars(r)["id"])
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (g *Gateway) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: g.service.Categories()})
}

func (g *Gateway) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var body CalculateRequest
	if err := readJSON(r, &body); err != nil {
		g.writeError(w, r, err)
		return
	}
	params, err := paramsFromJSON(body.Params)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	res, err := g.service.Run(r.Context(), service.Request{
		Tool:      mux.Vars(r)["id"],
		Params:    params,
		RequestID: requestIDFrom(r.Context()),
	})
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newResultResponse(res))
}

func (g *Gateway) handleHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := history.Filter{Type: q.Get("type"), Tool: q.Get("tool")}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			g.writeError(w, r, errors.ParseFailure(errors.ModuleGateway, "limit", s, "non-negative integer"))
			return
		}
		f.Limit = n
	}

	entries, err := g.service.History(r.Context(), f)
	if err != nil {
		g.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*history.Entry{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Entries: entries, Count: len(entries)})
}

func (g *Gateway) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := g.service.ClearHistory(r.Context()); err != nil {
		g.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := g.health.Check(r.Context())
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

func (g *Gateway) handleNotFound(w http.ResponseWriter, r *http.Request) {
	g.writeError(w, r, errors.NotFound(errors.ModuleGateway, "route", r.URL.Path))
}

func (g *Gateway) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Code:    string(mrwerror.CodeInvalidInput),
		Message: fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path),
	})
}

// paramsFromJSON flattens decoded JSON values into tool parameter text.
// Arrays become comma separated lists.
func paramsFromJSON(in map[string]interface{}) (tools.Params, error) {
	out := make(tools.Params, len(in))
	for k, v := range in {
		s, ok := jsonText(v)
		if !ok {
			return nil, errors.InvalidArgument(errors.ModuleGateway, "params", k, "string, number, bool or array")
		}
		out[k] = s
	}
	return out, nil
}

func jsonText(v interface{}) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case []interface{}:
		parts := make([]string, len(x))
		for i, e := range x {
			s, ok := jsonText(e)
			if !ok {
				return "", false
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), true
	default:
		return "", false
	}
}

func readJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return errors.OperationFailed(errors.ModuleGateway, "read_body", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.ParseFailure(errors.ModuleGateway, "body", truncate(string(body), 64), "JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err to its HTTP status and writes an ErrorResponse.
// Validation errors are logged at debug, everything else at warn.
func (g *Gateway) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{Code: string(mrwerror.CodeInternal), Message: err.Error()}
	status := http.StatusInternalServerError

	if e, ok := mrwerror.As(err); ok {
		resp.Code = string(e.Code())
		resp.Message = e.Error()
		resp.Details = e.Details()
		status = e.Code().HTTPStatus()
	}

	logger := g.logger.WithRequestID(requestIDFrom(r.Context()))
	if status >= http.StatusInternalServerError {
		logger.WarnWithErr("request failed", err, mrwlog.Fields{"path": r.URL.Path, "status": status})
	} else {
		logger.Debug("request rejected", mrwlog.Fields{"path": r.URL.Path, "code": resp.Code})
	}
	writeJSON(w, status, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
