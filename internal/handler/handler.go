// Package handler exposes the wizard as a JSON intent API for the web
// front end, plus an admin surface over recorded submissions.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssoksound/surveywizard/internal/forward"
	appI18n "github.com/ssoksound/surveywizard/internal/i18n"
	"github.com/ssoksound/surveywizard/internal/model"
	"github.com/ssoksound/surveywizard/internal/store"
	"github.com/ssoksound/surveywizard/internal/wizard"
)

const wizardCookieName = "wizard_session"

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store     *store.Store
	registry  *wizard.Registry
	forwarder forward.Client
	config    model.Config
}

// New creates a new Handler.
func New(s *store.Store, reg *wizard.Registry, fwd forward.Client, cfg model.Config) *Handler {
	return &Handler{store: s, registry: reg, forwarder: fwd, config: cfg}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/session", func(r chi.Router) {
		r.Post("/", h.handleSessionStart)
		r.Get("/", h.handleSessionState)
		r.Get("/draft", h.handleDraftProbe)
		r.Post("/draft/resume", h.handleDraftResume)
		r.Post("/draft/discard", h.handleDraftDiscard)
		r.Post("/next", h.handleNext)
		r.Post("/back", h.handleBack)
		r.Post("/profile", h.handleProfile)
		r.Post("/service", h.handleService)
		r.Post("/service/confirm", h.handleServiceConfirm)
		r.Post("/advance", h.handleAdvance)
		r.Post("/retreat", h.handleRetreat)
		r.Post("/rank", h.handleRank)
		r.Post("/submit", h.handleSubmit)
		r.Post("/restart", h.handleRestart)
	})
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.handleAdminLogin)
		r.Post("/logout", h.handleAdminLogout)
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/submissions", h.handleListSubmissions)
			r.Get("/submissions/{id}", h.handleGetSubmission)
		})
	})
}

// stateView is the session snapshot returned after every intent.
type stateView struct {
	Screen        model.Screen                `json:"screen"`
	Service       model.Service               `json:"service,omitempty"`
	Profile       model.Profile               `json:"profile"`
	StepIndex     int                         `json:"step_index"`
	TotalSteps    int                         `json:"total_steps"`
	Progress      float64                     `json:"progress"`
	Question      *model.Question             `json:"question,omitempty"`
	Answer        *model.Answer               `json:"answer,omitempty"`
	Ranking       []string                    `json:"ranking,omitempty"`
	DraftPending  bool                        `json:"draft_pending"`
	DraftSavedAt  *time.Time                  `json:"draft_saved_at,omitempty"`
	ServiceChange *wizard.ServiceChangePrompt `json:"service_change,omitempty"`
}

func viewOf(w *wizard.Wizard) stateView {
	st := w.State()
	v := stateView{
		Screen:        st.Screen,
		Service:       st.Service,
		Profile:       st.Profile,
		StepIndex:     st.StepIndex,
		TotalSteps:    st.TotalSteps,
		Progress:      w.ProgressFraction(),
		Question:      w.CurrentQuestion(),
		Answer:        w.CurrentAnswer(),
		Ranking:       w.Ranking(),
		ServiceChange: w.PendingServiceChange(),
	}
	if d := w.PendingDraft(); d != nil {
		v.DraftPending = true
		saved := d.SavedAt
		v.DraftSavedAt = &saved
	}
	return v
}

// sessionKey returns the wizard session token, minting a cookie on
// first contact.
func (h *Handler) sessionKey(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(wizardCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	token, err := store.NewSessionToken()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     wizardCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.config.SecureCookies,
	})
	return token, nil
}

// withWizard runs fn against the caller's wizard and, on success,
// responds with the resulting state view.
func (h *Handler) withWizard(w http.ResponseWriter, r *http.Request, fn func(wz *wizard.Wizard) error) {
	key, err := h.sessionKey(w, r)
	if err != nil {
		slog.Error("minting session token", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	var view stateView
	err = h.registry.With(key, func(wz *wizard.Wizard) error {
		if err := fn(wz); err != nil {
			return err
		}
		view = viewOf(wz)
		return nil
	})
	if err != nil {
		h.writeWizardError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// writeWizardError maps wizard errors onto HTTP responses. Validation
// failures are localized here, at the edge.
func (h *Handler) writeWizardError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		msg := appI18n.Td(r.Context(), verr.MsgID, verr.Data)
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	var ferr *wizard.FlowError
	if errors.As(err, &ferr) {
		respondError(w, http.StatusConflict, ferr.Message)
		return
	}
	slog.Error("wizard operation", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}

func (h *Handler) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return nil })
}

func (h *Handler) handleSessionState(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return nil })
}

// handleDraftProbe answers the resume-prompt decision without loading
// the state blob or instantiating a wizard. A probe failure reads as no
// draft; recovery is best effort.
func (h *Handler) handleDraftProbe(w http.ResponseWriter, r *http.Request) {
	hasDraft := false
	if c, err := r.Cookie(wizardCookieName); err == nil && c.Value != "" {
		ok, err := h.store.HasValidDraft(c.Value)
		if err != nil {
			slog.Warn("probing draft", "error", err)
		} else {
			hasDraft = ok
		}
	}
	respondJSON(w, http.StatusOK, map[string]bool{"draft_pending": hasDraft})
}

func (h *Handler) handleDraftResume(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.ResumeDraft() })
}

func (h *Handler) handleDraftDiscard(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.DiscardDraft() })
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.Next() })
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.Back() })
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	var p model.Profile
	if !decodeJSON(w, r, &p) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.SetProfile(p) })
}

func (h *Handler) handleService(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Service model.Service `json:"service"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	key, err := h.sessionKey(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	var view stateView
	var prompt *wizard.ServiceChangePrompt
	err = h.registry.With(key, func(wz *wizard.Wizard) error {
		p, err := wz.SelectService(req.Service)
		if err != nil {
			return err
		}
		prompt = p
		view = viewOf(wz)
		return nil
	})
	if err != nil {
		h.writeWizardError(w, r, err)
		return
	}
	if prompt != nil {
		respondJSON(w, http.StatusConflict, prompt)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) handleServiceConfirm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Discard bool `json:"discard"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.ConfirmServiceChange(req.Discard) })
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var in wizard.RawInput
	if !decodeJSON(w, r, &in) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		_, err := wz.Advance(in)
		return err
	})
}

func (h *Handler) handleRetreat(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.Retreat() })
}

func (h *Handler) handleRank(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Option string `json:"option"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		_, err := wz.ToggleRank(req.Option)
		return err
	})
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(wz *wizard.Wizard) error { return wz.Restart() })
}

// handleSubmit records the completed survey locally, forwards it, and
// releases the draft. A forward failure is reported as retryable; the
// local record and the wizard state are both retained.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	key, err := h.sessionKey(w, r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	var sub model.Submission
	err = h.registry.With(key, func(wz *wizard.Wizard) error {
		if !wz.Completed() {
			return wizard.ErrNotInSurvey
		}
		st := wz.State()
		sub = model.Submission{
			SessionKey: key,
			Service:    st.Service,
			Profile:    st.Profile,
			Payload:    wz.Payload(),
		}
		return nil
	})
	if err != nil {
		h.writeWizardError(w, r, err)
		return
	}

	id, err := h.store.InsertSubmission(sub)
	if err != nil {
		slog.Error("recording submission", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.forwarder.Submit(r.Context(), sub.Payload); err != nil {
		slog.Warn("forwarding submission", "id", id, "error", err)
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: "submission not delivered", Retryable: true})
		return
	}
	if err := h.store.MarkSubmissionForwarded(id); err != nil {
		slog.Error("marking submission forwarded", "id", id, "error", err)
	}
	if err := h.store.DeleteDraft(key); err != nil {
		slog.Warn("deleting draft after submit", "error", err)
	}
	respondJSON(w, http.StatusOK, map[string]any{"id": id, "forwarded": true})
}
