package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		noAuth = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(shared(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
		// The chat completion outlives the default timeout, so its chain swaps
		// the timeout middleware for the relaxed one.
		mustSlowSession = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
					commonContext(app.slowTimeout(app.mustAuthenticate(next))))))))))
		}
	)

	mux.Handle("GET /register", session(http.HandlerFunc(app.registerGET)))
	mux.Handle("POST /register", session(http.HandlerFunc(app.registerPOST)))
	mux.Handle("GET /login", session(http.HandlerFunc(app.loginGET)))
	mux.Handle("POST /login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))

	mux.Handle("GET /profile", mustSession(http.HandlerFunc(app.profileGET)))
	mux.Handle("POST /profile", mustSession(http.HandlerFunc(app.profilePOST)))
	mux.Handle("GET /profile/export-data", mustSession(http.HandlerFunc(app.exportUserDataGET)))

	mux.Handle("GET /workouts", mustSession(http.HandlerFunc(app.workoutsGET)))
	mux.Handle("POST /workouts/{day}/exercises/{index}", mustSession(http.HandlerFunc(app.exerciseCompletePOST)))

	mux.Handle("GET /diet", mustSession(http.HandlerFunc(app.dietGET)))
	mux.Handle("POST /diet/{day}/meals/{index}", mustSession(http.HandlerFunc(app.mealCompletePOST)))

	mux.Handle("POST /plans/regenerate", mustSession(http.HandlerFunc(app.regeneratePOST)))

	mux.Handle("GET /chat/{persona}", mustSession(http.HandlerFunc(app.chatGET)))
	mux.Handle("POST /chat/{persona}", mustSlowSession(http.HandlerFunc(app.chatPOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/test/timeout", noAuth(http.HandlerFunc(app.testTimeout)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}
