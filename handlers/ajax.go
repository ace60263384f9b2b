// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ajax-example/auth"
	"github.com/danielhkuo/ajax-example/cliparse"
	"github.com/danielhkuo/ajax-example/middleware"
	"github.com/danielhkuo/ajax-example/models"
	"github.com/danielhkuo/ajax-example/store"
)

// AjaxPath is where every AJAX action is posted
const AjaxPath = "/admin-ajax"

// actionRoute describes who may run an action.
// Admins may run every registered action; anonymous visitors only nopriv ones.
type actionRoute struct {
	nopriv bool
}

type callerFunc func(ctx context.Context, form models.FormRequest, res *models.AjaxResponse)

type AjaxHandler struct {
	store   store.OptionStore
	cfg     cliparse.Config
	now     func() time.Time
	actions map[string]actionRoute
	callers map[models.Caller]callerFunc
}

func NewAjaxHandler(st store.OptionStore, cfg cliparse.Config) *AjaxHandler {
	h := &AjaxHandler{
		store: st,
		cfg:   cfg,
		now:   time.Now,
		actions: map[string]actionRoute{
			models.ActionAdminOptions:     {},
			models.ActionUpdateWidgetText: {},
			models.ActionWidget:           {nopriv: true},
		},
	}
	h.callers = map[models.Caller]callerFunc{
		models.CallerWidget:           h.saveWidgetData,
		models.CallerAdminOptions:     h.echoAdminOptions,
		models.CallerUpdateWidgetText: h.loadWidgetText,
	}
	return h
}

// Handle handles POST /admin-ajax
func (h *AjaxHandler) Handle(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.ParseFormBody(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	action := values.Get("action")
	userID := auth.UserID(r, h.cfg.AdminKeySalt)

	route, ok := h.actions[action]
	if !ok || (userID == auth.AnonymousUser && !route.nopriv) {
		slog.Warn("ajax action not available", "action", action, "admin", userID == auth.AdminUser)
		middleware.TextResponse(w, http.StatusBadRequest, "0")
		return
	}

	// The nonce is checked before the form is even parsed
	_, err = auth.VerifyNonce(values.Get("security"), models.NonceAction, userID,
		h.cfg.NonceSalt, h.now(), h.cfg.NonceLifetime)
	if err != nil {
		slog.Warn("ajax nonce rejected", "action", action, "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
			Message: models.AuthFailureMessage,
		})
		return
	}

	form, err := ParseFormData(values.Get("data"))
	if err != nil {
		slog.Warn("ajax form data rejected", "action", action, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.Dispatch(r.Context(), form))
}

// Dispatch runs the branch for the form's caller and builds the response.
// Unknown callers get the submitted values back with their defaults.
// Output is returned as stored or submitted; the page trusts it.
func (h *AjaxHandler) Dispatch(ctx context.Context, form models.FormRequest) models.AjaxResponse {
	res := models.AjaxResponse{
		Caller:      string(form.Caller),
		Status:      form.Status,
		PrintOutput: form.PrintOutput,
		PrintWhere:  form.PrintWhere,
		Output:      form.Output,
	}

	if !form.Caller.Known() {
		slog.Warn("unknown ajax caller", "caller", form.Caller, "action", form.Action)
		return res
	}

	h.callers[form.Caller](ctx, form, &res)
	return res
}

// saveWidgetData stores example-data from the widget form.
// The displayed message comes from the form, not from the write.
func (h *AjaxHandler) saveWidgetData(ctx context.Context, form models.FormRequest, res *models.AjaxResponse) {
	if !form.HasExampleData {
		return
	}

	ok, err := h.store.Update(ctx, models.OptionName, form.ExampleData)
	if err != nil {
		slog.Error("failed to save widget data", "error", err)
		return
	}
	if ok {
		res.Status = models.StatusPassed
	}
}

// echoAdminOptions sends the whole submitted form back for display
func (h *AjaxHandler) echoAdminOptions(_ context.Context, form models.FormRequest, res *models.AjaxResponse) {
	res.PrintOutput = models.PrintYes
	res.Status = models.StatusPassed

	// An alert shows text, so it gets the dump without markup
	render := RenderFormDump
	if res.PrintWhere == models.PrintWhereAlert {
		render = RenderFormText
	}

	dump, err := render(form)
	if err != nil {
		slog.Error("failed to render admin options", "error", err)
		res.Output = ""
		return
	}
	res.Output = dump
}

// loadWidgetText returns the last value saved from the widget
func (h *AjaxHandler) loadWidgetText(ctx context.Context, _ models.FormRequest, res *models.AjaxResponse) {
	value, err := store.GetValue(ctx, h.store, models.OptionName)
	if err != nil {
		slog.Error("failed to load widget text", "error", err)
		res.Status = models.StatusFailed
		res.Output = ""
		return
	}
	res.Status = models.StatusPassed
	res.Output = value
}
