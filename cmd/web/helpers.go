package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mkarvo/fitsoul/internal/plan"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	app.render(w, r, http.StatusInternalServerError, "error", nil)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// flash queues a one-shot notification for the next rendered page.
func (app *application) flash(r *http.Request, message string) {
	app.sessionManager.Put(r.Context(), sessionKeyFlash, message)
}

// popFlash returns the pending notification, if any, and clears it.
func (app *application) popFlash(r *http.Request) string {
	return app.sessionManager.PopString(r.Context(), sessionKeyFlash)
}

// parseDayParam parses the "day" path parameter from the request URL.
// Returns the parsed weekday and true if successful, or zero value and false if parsing fails.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDayParam(w http.ResponseWriter, r *http.Request) (plan.Weekday, bool) {
	day, err := plan.ParseWeekday(r.PathValue("day"))
	if err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return day, true
}

// parseIndexParam parses the "index" path parameter from the request URL.
// Returns the parsed index and true if successful, or zero and false if parsing fails.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return index, true
}
