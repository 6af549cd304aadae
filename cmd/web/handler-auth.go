package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mkarvo/fitsoul/internal/auth"
	"github.com/mkarvo/fitsoul/internal/contexthelpers"
)

const minPasswordLength = 8

type authTemplateData struct {
	BaseTemplateData
	// DisplayName preserves the submitted name when the form is re-rendered.
	DisplayName string
	// Error is the validation or authentication failure shown above the form.
	Error string
}

func (app *application) registerGET(w http.ResponseWriter, r *http.Request) {
	if contexthelpers.IsAuthenticated(r.Context()) {
		redirect(w, r, "/")
		return
	}
	data := authTemplateData{BaseTemplateData: newBaseTemplateData(r)}
	app.render(w, r, http.StatusOK, "register", data)
}

func (app *application) registerPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	var (
		displayName     = strings.TrimSpace(r.PostForm.Get("display_name"))
		password        = r.PostForm.Get("password")
		confirmPassword = r.PostForm.Get("confirm_password")
	)

	data := authTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		DisplayName:      displayName,
	}
	switch {
	case displayName == "":
		data.Error = "Display name is required"
	case len(password) < minPasswordLength:
		data.Error = fmt.Sprintf("Password must be at least %d characters long", minPasswordLength)
	case password != confirmPassword:
		data.Error = "Passwords do not match"
	}
	if data.Error != "" {
		app.render(w, r, http.StatusUnprocessableEntity, "register", data)
		return
	}

	user, err := app.authService.Register(r.Context(), displayName, password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			data.Error = "That display name is already taken"
			app.render(w, r, http.StatusUnprocessableEntity, "register", data)
			return
		}
		app.serverError(w, r, fmt.Errorf("register user: %w", err))
		return
	}

	if err = app.loginSession(r, user.ID); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/")
}

func (app *application) loginGET(w http.ResponseWriter, r *http.Request) {
	if contexthelpers.IsAuthenticated(r.Context()) {
		redirect(w, r, "/")
		return
	}
	data := authTemplateData{BaseTemplateData: newBaseTemplateData(r)}
	app.render(w, r, http.StatusOK, "login", data)
}

func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	var (
		displayName = strings.TrimSpace(r.PostForm.Get("display_name"))
		password    = r.PostForm.Get("password")
	)

	user, err := app.authService.Authenticate(r.Context(), displayName, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			data := authTemplateData{
				BaseTemplateData: newBaseTemplateData(r),
				DisplayName:      displayName,
				Error:            "Invalid display name or password",
			}
			app.render(w, r, http.StatusUnprocessableEntity, "login", data)
			return
		}
		app.serverError(w, r, fmt.Errorf("authenticate user: %w", err))
		return
	}

	if err = app.loginSession(r, user.ID); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/")
}

// loginSession rotates the session token and binds it to the user. Token
// rotation on privilege change prevents session fixation.
func (app *application) loginSession(r *http.Request, userID int) error {
	ctx := r.Context()
	if err := app.sessionManager.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}
	app.sessionManager.Put(ctx, sessionKeyUserID, userID)
	return nil
}

func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, fmt.Errorf("renew session token: %w", err))
		return
	}
	app.sessionManager.Remove(ctx, sessionKeyUserID)
	redirect(w, r, "/")
}
