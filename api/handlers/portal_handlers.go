package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"request-portal/config"
	"request-portal/core/identity"
	"request-portal/core/portal"
	"request-portal/core/utils"
)

const sessionCookie = "portal_session"

type PortalHandler struct {
	cfg      *config.AppConfig
	factory  *portal.Factory
	registry *portal.Registry
	logger   *utils.Logger
}

func NewPortalHandler(cfg *config.AppConfig, factory *portal.Factory, registry *portal.Registry, logger *utils.Logger) *PortalHandler {
	return &PortalHandler{cfg: cfg, factory: factory, registry: registry, logger: logger}
}

func sessionFromRequest(r *http.Request) *portal.Session {
	sess, _ := r.Context().Value(portal.SessionContextKey).(*portal.Session)
	return sess
}

// CreateSession accepts the already-authenticated principal from the
// upstream identity collaborator and opens a portal session for it. The
// session loader starts immediately; its fetches outlive this request on
// purpose, so they run on a background context.
func (h *PortalHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DisplayName     string `json:"display_name"`
		LoginIdentifier string `json:"login_identifier"`
		AccessToken     string `json:"access_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	p := identity.Principal{
		DisplayName:     strings.TrimSpace(body.DisplayName),
		LoginIdentifier: strings.TrimSpace(body.LoginIdentifier),
		AccessToken:     body.AccessToken,
	}
	if !p.Valid() {
		http.Error(w, "login identifier required", http.StatusBadRequest)
		return
	}
	sess := h.factory.NewSession(context.Background(), p)
	id := h.registry.Put(sess)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

// DeleteSession tears down the server side of a logout. The identity
// provider redirect happens upstream.
func (h *PortalHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		h.registry.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PortalHandler) State(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *PortalHandler) SubjectInput(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	sess.Autocomplete.Input(body.Value)
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *PortalHandler) SubjectKey(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	switch strings.ToLower(strings.TrimSpace(body.Key)) {
	case "down":
		sess.Autocomplete.ArrowDown()
	case "up":
		sess.Autocomplete.ArrowUp()
	case "enter":
		sess.Autocomplete.Enter()
	case "escape":
		sess.Autocomplete.Escape()
	default:
		http.Error(w, "unknown key", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *PortalHandler) SubjectSelect(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	sess.Autocomplete.Select(body.Index)
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *PortalHandler) SubjectFocus(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	sess.Autocomplete.Focus()
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *PortalHandler) SubjectBlur(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	sess.Autocomplete.Defocus()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PortalHandler) Description(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	sess.SetDescription(body.Value)
	writeJSON(w, http.StatusOK, sess.State())
}

// SubmitIncident runs one submission attempt. A rejected attempt (no
// record id yet, or one already in flight) is a 409; the gate is normally
// enforced client-side, so this is the defensive re-check.
func (h *PortalHandler) SubmitIncident(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if _, ran := sess.SubmitIncident(r.Context()); !ran {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "rejected"})
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *PortalHandler) AckNotification(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromRequest(r)
	if sess == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	sess.Presenter.Acknowledge()
	writeJSON(w, http.StatusOK, sess.State())
}
