package bib

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"bibapi/internal/httpx"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	recordsTemplate = template.Must(template.ParseFS(templateFS, "templates/records.html"))
	errorTemplate   = template.Must(template.ParseFS(templateFS, "templates/error.html"))
)

var sortLabels = map[SortMethod]string{
	AscendingAlphabetical:  "Title (A-Z)",
	DescendingAlphabetical: "Title (Z-A)",
	AscendingPublishDate:   "Publication date (oldest first)",
	DescendingPublishDate:  "Publication date (newest first)",
}

type sortOption struct {
	Value    SortMethod
	Label    string
	Selected bool
}

type recordsPage struct {
	Records     []Record
	SortOptions []sortOption
}

type errorPage struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
}

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Page handles GET /
// Renders the sorted records as an HTML table.
func (h *HTTPHandler) Page(w http.ResponseWriter, r *http.Request) {
	method := ParseSortMethod(r.URL.Query().Get("sort_method"))

	records, err := h.svc.List(r.Context(), method)
	if err != nil {
		writePageError(w, r, err)
		return
	}

	page := recordsPage{Records: records}
	for _, m := range SortMethods {
		page.SortOptions = append(page.SortOptions, sortOption{Value: m, Label: sortLabels[m], Selected: m == method})
	}

	var buf bytes.Buffer
	if err := recordsTemplate.Execute(&buf, page); err != nil {
		log.Printf("render records: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		renderErrorPage(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// List handles GET /v1/records
// @Summary List catalog records
// @Param sort_method query string false "ascending_alphabetical, descending_alphabetical, ascending_publish_date or descending_publish_date"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 422 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/records [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	method := ParseSortMethod(r.URL.Query().Get("sort_method"))

	records, err := h.svc.List(r.Context(), method)
	if err != nil {
		writeListError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, records, map[string]any{
		"count":       len(records),
		"sort_method": method,
	})
}

// listError maps a pipeline error to its HTTP status, error code and message.
func listError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, ErrTransport):
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Catalog service unavailable"
	case errors.Is(err, ErrPayload):
		return http.StatusBadGateway, "UPSTREAM_INVALID_PAYLOAD", "Catalog service returned an unexpected payload"
	case errors.Is(err, ErrFormat):
		return http.StatusUnprocessableEntity, "UNSORTABLE_RECORDS", "Records cannot be sorted by publication date"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}

func writeListError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("list records: request_id=%s error=%v", httpx.RequestIDFrom(r), err)

	status, code, message := listError(err)
	var details []httpx.ErrorDetail
	if errors.Is(err, ErrFormat) {
		details = []httpx.ErrorDetail{{Field: "sort_method", Message: err.Error()}}
	}
	httpx.JSONError(w, r, status, code, message, details)
}

func writePageError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("records page: request_id=%s error=%v", httpx.RequestIDFrom(r), err)

	status, _, message := listError(err)
	renderErrorPage(w, r, status, message)
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	var buf bytes.Buffer
	page := errorPage{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
		RequestID:  httpx.RequestIDFrom(r),
	}
	if err := errorTemplate.Execute(&buf, page); err != nil {
		log.Printf("render error page: request_id=%s error=%v", page.RequestID, err)
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
