// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"

	"github.com/danielhkuo/ajax-example/auth"
	"github.com/danielhkuo/ajax-example/cliparse"
	"github.com/danielhkuo/ajax-example/middleware"
	"github.com/danielhkuo/ajax-example/models"
	"github.com/danielhkuo/ajax-example/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// DefaultWidgetTitle is offered in the settings form until a title is saved
const DefaultWidgetTitle = "New title"

// StaticFiles holds the client script, rooted so that /static/... resolves
func StaticFiles() fs.FS {
	return staticFS
}

type pageData struct {
	PageTitle   string
	AjaxURL     string
	Nonce       string
	Value       string
	UpdatedAgo  string
	WidgetTitle string
}

type PageHandler struct {
	store      store.OptionStore
	cfg        cliparse.Config
	now        func() time.Time
	tagsPolicy *bluemonday.Policy
}

func NewPageHandler(st store.OptionStore, cfg cliparse.Config) *PageHandler {
	return &PageHandler{
		store:      st,
		cfg:        cfg,
		now:        time.Now,
		tagsPolicy: bluemonday.StrictPolicy(),
	}
}

// AdminPage handles GET /admin
// A valid ?key= is moved into a cookie and the page redirects to itself.
func (h *PageHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		if err := auth.ValidateAdminKey(key, h.cfg.AdminKeySalt); err != nil {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     auth.AdminCookie,
			Value:    key,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	userID := auth.UserID(r, h.cfg.AdminKeySalt)
	if userID != auth.AdminUser {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	opt, ok, err := h.store.Get(r.Context(), models.OptionName)
	if err != nil {
		slog.Error("failed to load option", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	settings, err := h.loadWidgetSettings(r.Context())
	if err != nil {
		slog.Error("failed to load widget settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if settings.Title == "" {
		settings.Title = DefaultWidgetTitle
	}

	data := h.basePage("Ajax Example Options", userID)
	data.WidgetTitle = settings.Title
	if ok {
		data.Value = opt.Value
		if !opt.UpdatedAt.IsZero() {
			data.UpdatedAgo = humanize.RelTime(opt.UpdatedAt, h.now(), "ago", "from now")
		}
	}

	h.render(w, "admin.html", data)
}

// WidgetPage handles GET /widget
// Anonymous visitors get a nonce they can only use for the widget action.
func (h *PageHandler) WidgetPage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.loadWidgetSettings(r.Context())
	if err != nil {
		slog.Error("failed to load widget settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	data := h.basePage("Ajax Example Widget", auth.UserID(r, h.cfg.AdminKeySalt))
	data.WidgetTitle = settings.Title

	h.render(w, "widget.html", data)
}

// UpdateWidget handles POST /admin/widget
func (h *PageHandler) UpdateWidget(w http.ResponseWriter, r *http.Request) {
	if auth.UserID(r, h.cfg.AdminKeySalt) != auth.AdminUser {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	values, err := middleware.ParseFormBody(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	settings := models.WidgetSettings{Title: h.StripTags(values.Get("title"))}
	payload, err := json.Marshal(settings)
	if err != nil {
		slog.Error("failed to encode widget settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save widget")
		return
	}

	if _, err := h.store.Update(r.Context(), models.WidgetSettingsName, string(payload)); err != nil {
		slog.Error("failed to save widget settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save widget")
		return
	}

	slog.Info("widget settings saved", "title", settings.Title)

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// StripTags removes markup and returns plain text
func (h *PageHandler) StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(h.tagsPolicy.Sanitize(s)))
}

func (h *PageHandler) loadWidgetSettings(ctx context.Context) (models.WidgetSettings, error) {
	var settings models.WidgetSettings
	raw, err := store.GetValue(ctx, h.store, models.WidgetSettingsName)
	if err != nil || raw == "" {
		return settings, err
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		// A corrupt row behaves like no settings
		slog.Warn("ignoring invalid widget settings", "error", err)
		return models.WidgetSettings{}, nil
	}
	return settings, nil
}

func (h *PageHandler) basePage(title, userID string) pageData {
	return pageData{
		PageTitle: title,
		AjaxURL:   AjaxPath,
		Nonce:     auth.CreateNonce(models.NonceAction, userID, h.cfg.NonceSalt, h.now(), h.cfg.NonceLifetime),
	}
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
