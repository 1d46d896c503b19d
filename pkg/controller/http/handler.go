package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/casegauge/pkg/domain/model"
	"github.com/secmon-lab/casegauge/pkg/domain/types"
	"github.com/secmon-lab/casegauge/pkg/usecase"
	"github.com/secmon-lab/casegauge/pkg/utils/apperr"
)

// DraftCookieName holds the draft ID of a browser session
const DraftCookieName = "casegauge_draft"

// maxJSONBody bounds API request bodies
const maxJSONBody = 1 << 20

// ReportHandler serves the data-entry form, the dashboard and PDF export
type ReportHandler struct {
	reportUC  usecase.ReportUseCase
	draftUC   usecase.DraftUseCase
	defaults  model.FormDefaults
	templates *template.Template
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUC usecase.ReportUseCase, draftUC usecase.DraftUseCase, team *model.TeamConfig, templates *template.Template) *ReportHandler {
	return &ReportHandler{
		reportUC:  reportUC,
		draftUC:   draftUC,
		defaults:  team.Defaults(),
		templates: templates,
	}
}

// HandleForm renders the data-entry form
func (h *ReportHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "form.html", formViewFromQuery(r, h.defaults))
}

// HandleReport validates a submitted form, keeps it as the session draft and
// renders the dashboard
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, err := decodeForm(r)
	if err == nil {
		err = input.Validate()
	}
	if err != nil {
		ctxlog.From(ctx).Debug("Rejected form submission", "error", err)
		h.render(w, r, http.StatusBadRequest, "form.html", formViewFromSubmission(r, h.defaults, err))
		return
	}

	dashboard, err := h.reportUC.Dashboard(ctx, input)
	if err != nil {
		apperr.Handle(ctx, err)
		http.Error(w, "Failed to build report", statusOf(err))
		return
	}

	draft, err := h.draftUC.SaveDraft(ctx, input)
	if err != nil {
		apperr.Handle(ctx, err)
		http.Error(w, "Failed to save report data", statusOf(err))
		return
	}

	// A new submission replaces the previous draft of this browser
	if prev, err := r.Cookie(DraftCookieName); err == nil && prev.Value != "" {
		if err := h.draftUC.DiscardDraft(ctx, types.DraftID(prev.Value)); err != nil {
			apperr.Handle(ctx, err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     DraftCookieName,
		Value:    draft.ID.String(),
		Path:     "/",
		Expires:  draft.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.render(w, r, http.StatusOK, "dashboard.html", newDashboardView(dashboard))
}

// HandleExport exports the session draft as a PDF attachment. Without a live
// draft the user is sent back to the form.
func (h *ReportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(DraftCookieName)
	if err != nil || cookie.Value == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	draft, err := h.draftUC.GetDraft(ctx, types.DraftID(cookie.Value))
	if err != nil {
		if errors.Is(err, model.ErrDraftNotFound) {
			ctxlog.From(ctx).Info("Draft is gone, redirecting to form", "draftID", cookie.Value)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		apperr.Handle(ctx, err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}

	report, err := h.reportUC.Export(ctx, draft.Input)
	if err != nil {
		apperr.Handle(ctx, err)
		http.Error(w, "Export failed", statusOf(err))
		return
	}

	writeDocument(w, r, report)
}

// HandleMetricsAPI derives metrics from a JSON ReportInput
func (h *ReportHandler) HandleMetricsAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, err := decodeJSON(w, r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	metrics, err := h.reportUC.Metrics(ctx, input)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, statusOf(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(metrics); err != nil {
		ctxlog.From(ctx).Error("Failed to encode metrics response", "error", err)
	}
}

// HandleExportAPI exports a JSON ReportInput as PDF
func (h *ReportHandler) HandleExportAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input, err := decodeJSON(w, r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	report, err := h.reportUC.Export(ctx, input)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, err, statusOf(err))
		return
	}

	writeDocument(w, r, report)
}

func (h *ReportHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to render page", goerr.V("template", name)))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write page", "error", err)
	}
}

func writeDocument(w http.ResponseWriter, r *http.Request, report *model.ExportedReport) {
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Data); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write document", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request) (*model.ReportInput, error) {
	var input model.ReportInput
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return nil, goerr.Wrap(err, "invalid JSON body", goerr.T(model.ErrTagInvalidInput))
	}
	return &input, nil
}

// statusOf maps error tags to an HTTP status
func statusOf(err error) int {
	if goerr.HasTag(err, model.ErrTagInvalidInput) || goerr.HasTag(err, model.ErrTagDivisionByZero) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
