package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkarvo/fitsoul/internal/chat"
	"github.com/mkarvo/fitsoul/internal/profile"
)

type chatTemplateData struct {
	BaseTemplateData
	Persona chat.Persona
	Title   string
	// Message is the user's submitted question, empty on first load.
	Message string
	// Reply is the assistant's Markdown-formatted answer.
	Reply string
	// Error is shown when the submission was rejected before reaching the assistant.
	Error string
}

func personaTitle(persona chat.Persona) string {
	if persona == chat.PersonaNutritionist {
		return "Nutritionist"
	}
	return "Personal Trainer"
}

// parsePersonaParam parses the "persona" path parameter from the request URL.
// On failure, sends HTTP 404 response automatically.
func (app *application) parsePersonaParam(w http.ResponseWriter, r *http.Request) (chat.Persona, bool) {
	persona, err := chat.ParsePersona(r.PathValue("persona"))
	if err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return persona, true
}

func (app *application) chatGET(w http.ResponseWriter, r *http.Request) {
	persona, ok := app.parsePersonaParam(w, r)
	if !ok {
		return
	}

	data := chatTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Persona:          persona,
		Title:            personaTitle(persona),
	}

	app.render(w, r, http.StatusOK, "chat", data)
}

func (app *application) chatPOST(w http.ResponseWriter, r *http.Request) {
	persona, ok := app.parsePersonaParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	data := chatTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Persona:          persona,
		Title:            personaTitle(persona),
		Message:          strings.TrimSpace(r.PostForm.Get("message")),
	}
	if data.Message == "" {
		data.Error = "Message is required"
		app.render(w, r, http.StatusUnprocessableEntity, "chat", data)
		return
	}

	ctx := r.Context()
	var prof *profile.Profile
	if p, err := app.profileService.Get(ctx); err == nil {
		prof = &p
	} else if !errors.Is(err, profile.ErrNotFound) {
		app.serverError(w, r, fmt.Errorf("get profile: %w", err))
		return
	}

	reply, err := app.chatClient.Reply(ctx, persona, data.Message, prof)
	if err != nil {
		// Reply degrades to a canned message on failure, the page still renders.
		app.logger.LogAttrs(ctx, slog.LevelWarn, "chat completion failed", slog.Any("error", err))
	}
	data.Reply = reply

	app.render(w, r, http.StatusOK, "chat", data)
}
