package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionHandler exposes wizard sessions over REST.
type SessionHandler struct {
	reg *session.Registry
}

// NewSessionHandler creates a SessionHandler backed by reg.
func NewSessionHandler(reg *session.Registry) *SessionHandler {
	return &SessionHandler{reg: reg}
}

type openRequest struct {
	Variant eligibility.Variant `json:"variant"`
}

type answerRequest struct {
	OptionIDs []string `json:"option_ids"`
}

type sessionResponse struct {
	Session session.Info     `json:"session"`
	View    eligibility.View `json:"view"`
}

// POST /api/sessions
func (h *SessionHandler) Open(c *gin.Context) {
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Variant != "" {
		if err := eligibility.ValidateVariant(req.Variant); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_variant", err)
			return
		}
	}

	id, err := h.reg.Open(req.Variant)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "open_session_failed", err)
		return
	}
	resp, err := h.snapshot(id, nil)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GET /api/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, nil)
}

// PUT /api/sessions/:id/answers/:questionId
func (h *SessionHandler) Answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	q, ok := h.reg.Catalog().Question(c.Param("questionId"))
	if !ok {
		RespondError(c, http.StatusNotFound, "question_not_found", errors.New("question not found"))
		return
	}
	a, err := eligibility.AnswerFor(q, req.OptionIDs)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_option", err)
		return
	}

	h.respond(c, func(w *eligibility.Wizard) error {
		w.SelectAnswer(q.ID, a)
		return nil
	})
}

// POST /api/sessions/:id/next
func (h *SessionHandler) Next(c *gin.Context) {
	h.respond(c, func(w *eligibility.Wizard) error { return w.Advance() })
}

// POST /api/sessions/:id/back
func (h *SessionHandler) Back(c *gin.Context) {
	h.respond(c, func(w *eligibility.Wizard) error {
		w.Retreat()
		return nil
	})
}

// POST /api/sessions/:id/reset
func (h *SessionHandler) Reset(c *gin.Context) {
	h.respond(c, func(w *eligibility.Wizard) error {
		w.Reset()
		return nil
	})
}

// POST /api/sessions/:id/open
func (h *SessionHandler) OpenRecommendation(c *gin.Context) {
	var link string
	err := h.reg.Do(c.Param("id"), func(w *eligibility.Wizard) error {
		var err error
		link, err = w.OpenRecommendation()
		return err
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	RespondOK(c, gin.H{"link": link})
}

// DELETE /api/sessions/:id
func (h *SessionHandler) Close(c *gin.Context) {
	if err := h.reg.Close(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respond applies fn to the session named in the path and writes its view.
func (h *SessionHandler) respond(c *gin.Context, fn func(w *eligibility.Wizard) error) {
	resp, err := h.snapshot(c.Param("id"), fn)
	if err != nil {
		h.fail(c, err)
		return
	}
	RespondOK(c, resp)
}

func (h *SessionHandler) snapshot(id string, fn func(w *eligibility.Wizard) error) (sessionResponse, error) {
	var view eligibility.View
	err := h.reg.Do(id, func(w *eligibility.Wizard) error {
		if fn != nil {
			if err := fn(w); err != nil {
				return err
			}
		}
		view = w.View()
		return nil
	})
	if err != nil {
		return sessionResponse{}, err
	}
	info, err := h.reg.Info(id)
	if err != nil {
		return sessionResponse{}, err
	}
	return sessionResponse{Session: info, View: view}, nil
}

func (h *SessionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		RespondError(c, http.StatusNotFound, "session_not_found", err)
	case errors.Is(err, eligibility.ErrSelectionRequired):
		RespondError(c, http.StatusUnprocessableEntity, "selection_required", err)
	case errors.Is(err, eligibility.ErrNoRecommendation):
		RespondError(c, http.StatusConflict, "no_recommendation", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
