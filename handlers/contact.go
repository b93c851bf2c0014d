// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/royalflight/flightsupport/auth"
	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/contact"
	"github.com/royalflight/flightsupport/inbox"
	"github.com/royalflight/flightsupport/mailer"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/models"
	"github.com/royalflight/flightsupport/web"
)

type ContactHandler struct {
	deps Deps
	cfg  cliparse.Config
}

func NewContactHandler(deps Deps, cfg cliparse.Config) *ContactHandler {
	return &ContactHandler{deps: deps, cfg: cfg}
}

// SendEmail handles POST /api/send-email
func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SendEmailRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.SendEmailResponse{
			Status:  models.StatusError,
			Message: "Invalid JSON",
		})
		return
	}

	sub := contact.Submission{Name: req.Name, Email: req.Email, Message: req.Message}
	if errs := contact.Validate(sub); errs != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.SendEmailResponse{
			Status:  models.StatusError,
			Message: "Invalid submission",
			Errors:  errs,
		})
		return
	}

	result, err := h.deliver(r.Context(), r, sub)
	if err != nil {
		slog.Error("failed to send email", "error", err, "request_id", middleware.RequestIDFrom(r.Context()))
		middleware.JSONResponse(w, http.StatusInternalServerError, models.SendEmailResponse{
			Status:  models.StatusError,
			Message: "Failed to send email",
		})
		return
	}

	resp := models.SendEmailResponse{Status: models.StatusSuccess}
	if result == mailer.ResultSimulated {
		resp.Message = "Email simulated"
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// MethodNotAllowed handles every other verb on /api/send-email
func (h *ContactHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	fmt.Fprintf(w, "Method %s Not Allowed", r.Method)
}

// SubmitForm handles POST /contact, the form post used without JavaScript.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		renderError(w, r, h.deps, http.StatusBadRequest)
		return
	}

	form := contact.NewForm()
	form.Fill(contact.Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	})

	status := http.StatusOK
	if err := form.Submit(r.Context(), h.formSender(r)); err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalid):
			status = http.StatusBadRequest
		default:
			slog.Error("contact form submission failed", "error", err, "request_id", middleware.RequestIDFrom(r.Context()))
			status = http.StatusInternalServerError
		}
	}

	loc := middleware.LocaleFrom(r.Context(), h.deps.Bundle)
	render(w, r, h.deps, status, web.PageContact, "contact", contactPage{
		Contact: newContactView(form, loc),
		Card:    operationsCard,
	})
}

// formSender posts to MAIL_ENDPOINT when configured and otherwise delivers
// in process.
func (h *ContactHandler) formSender(r *http.Request) contact.Sender {
	if h.cfg.MailEndpoint != "" {
		return contact.NewHTTPSender(h.cfg.MailEndpoint, h.deps.Client)
	}
	return contact.SenderFunc(func(ctx context.Context, sub contact.Submission) error {
		_, err := h.deliver(ctx, r, sub)
		return err
	})
}

// deliver sends sub and archives it with its outcome. Archive failures are
// logged only.
func (h *ContactHandler) deliver(ctx context.Context, r *http.Request, sub contact.Submission) (mailer.Result, error) {
	result, err := h.deps.Mailer.Send(ctx, mailer.Message{Name: sub.Name, Email: sub.Email, Text: sub.Message})

	outcome := inbox.OutcomeSent
	switch {
	case err != nil:
		outcome = inbox.OutcomeFailed
	case result == mailer.ResultSimulated:
		outcome = inbox.OutcomeSimulated
	}
	h.archive(ctx, r, sub, outcome)

	return result, err
}

func (h *ContactHandler) archive(ctx context.Context, r *http.Request, sub contact.Submission, outcome inbox.Outcome) {
	if !h.deps.Inbox.Enabled() {
		return
	}
	entry, err := h.deps.Inbox.Record(context.WithoutCancel(ctx), inbox.Entry{
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		Outcome:   outcome,
		IPHash:    auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		slog.Error("failed to archive submission", "error", err)
		return
	}
	slog.Info("submission archived", "id", entry.ID, "outcome", outcome)
}
