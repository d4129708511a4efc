package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/mersal-sms/internal/contacts"
	"github.com/ignite/mersal-sms/internal/pkg/httputil"
	"github.com/ignite/mersal-sms/internal/pkg/logger"
	"github.com/ignite/mersal-sms/internal/session"
	"github.com/ignite/mersal-sms/internal/spreadsheet"
)

// sessionView is the session state returned to the client. Raw rows
// stay server-side; the client sees the derived contact list and counts.
type sessionView struct {
	SessionID     string                 `json:"session_id"`
	Filename      string                 `json:"filename"`
	Headers       []string               `json:"headers"`
	Mapping       contacts.ColumnMapping `json:"mapping"`
	AutoDetected  bool                   `json:"auto_detected"`
	Contacts      []contacts.Contact     `json:"contacts"`
	ContactCount  int                    `json:"contact_count"`
	RejectedCount int                    `json:"rejected_count"`
	Warning       string                 `json:"warning,omitempty"`
}

func newSessionView(s *session.Session) sessionView {
	v := sessionView{
		SessionID:     s.ID,
		Filename:      s.Filename,
		Headers:       s.Headers,
		Mapping:       s.Mapping,
		AutoDetected:  s.AutoDetected,
		Contacts:      s.Contacts,
		ContactCount:  len(s.Contacts),
		RejectedCount: s.RejectedRows,
	}
	if v.Contacts == nil {
		v.Contacts = []contacts.Contact{}
	}
	if s.RejectedRows > 0 {
		v.Warning = fmt.Sprintf("%d rows skipped due to invalid phone numbers", s.RejectedRows)
	}
	return v
}

// Upload accepts a spreadsheet, parses it, auto-detects the column
// mapping, and creates a pipeline session.
//
//	POST /api/uploads  (multipart field "file")
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	account := AccountFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		httputil.Error(w, http.StatusRequestEntityTooLarge, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.BadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	sheet, err := spreadsheet.Parse(file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, spreadsheet.ErrEmptyFile), errors.Is(err, spreadsheet.ErrNoHeaders):
			httputil.BadRequest(w, "the file contains no data rows")
		case errors.Is(err, spreadsheet.ErrUnreadable):
			httputil.BadRequest(w, "could not read the file; upload an xlsx, xls or csv file")
		default:
			httputil.InternalError(w, err)
		}
		return
	}

	s := session.New(account, header.Filename, sheet.Headers, sheet.Rows)
	if err := h.sessions.Save(r.Context(), s); err != nil {
		httputil.InternalError(w, err)
		return
	}

	logger.Info("upload parsed", "account", account, "session", s.ID,
		"rows", len(s.Rows), "contacts", len(s.Contacts), "rejected", s.RejectedRows,
		"auto_detected", s.AutoDetected)
	httputil.Created(w, newSessionView(s))
}

// GetSession returns the current session state.
//
//	GET /api/uploads/{sessionID}
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	httputil.OK(w, newSessionView(s))
}

// DeleteSession discards the session and its stored rows.
//
//	DELETE /api/uploads/{sessionID}
func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := h.sessions.Delete(r.Context(), id); err != nil {
		httputil.InternalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type mappingRequest struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// UpdateMapping installs a manual column mapping and re-derives the
// contact list from the stored rows.
//
//	PUT /api/uploads/{sessionID}/mapping
func (h *Handlers) UpdateMapping(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req mappingRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	m := contacts.ColumnMapping{Phone: req.Phone, Name: req.Name, Message: req.Message}
	for _, col := range []string{m.Phone, m.Name, m.Message} {
		if col != "" && !hasHeader(s.Headers, col) {
			httputil.BadRequest(w, fmt.Sprintf("column %q does not exist in the uploaded file", col))
			return
		}
	}

	s.ApplyMapping(m)
	if err := h.sessions.Save(r.Context(), s); err != nil {
		httputil.InternalError(w, err)
		return
	}

	logger.Info("mapping updated", "session", s.ID,
		"contacts", len(s.Contacts), "rejected", s.RejectedRows)
	httputil.OK(w, newSessionView(s))
}

// contactPage is one window into the derived contact list. The preview
// is bounded because large uploads should not round-trip wholesale on
// every mapping tweak.
type contactPage struct {
	Contacts []contacts.Contact `json:"contacts"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
	Total    int                `json:"total"`
	HasMore  bool               `json:"has_more"`
}

// ListContacts returns a page of the derived contact list.
//
//	GET /api/uploads/{sessionID}/contacts?page=&limit=
func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	total := len(s.Contacts)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	window := s.Contacts[start:end]
	if window == nil {
		window = []contacts.Contact{}
	}
	httputil.OK(w, contactPage{
		Contacts: window,
		Page:     page,
		Limit:    limit,
		Total:    total,
		HasMore:  end < total,
	})
}

func (h *Handlers) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, err := h.sessions.Get(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		httputil.NotFound(w, "session not found or expired")
		return nil, false
	}
	if err != nil {
		httputil.InternalError(w, err)
		return nil, false
	}
	return s, true
}

func hasHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
