package main

import (
	"strings"
	"testing"

	"github.com/mkarvo/fitsoul/internal/e2etest"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

func Test_application_register_validation(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	tests := []struct {
		name      string
		fields    map[string]string
		wantError string
	}{
		{
			name: "short password",
			fields: map[string]string{
				"Display name":     "shorty",
				"Password":         "short",
				"Confirm password": "short",
			},
			wantError: "at least 8 characters",
		},
		{
			name: "mismatched passwords",
			fields: map[string]string{
				"Display name":     "mismatched",
				"Password":         "correct horse battery",
				"Confirm password": "wrong horse battery",
			},
			wantError: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := client.GetDoc(ctx, "/register")
			if err != nil {
				t.Fatalf("Failed to get registration page: %v", err)
			}

			// The server re-renders the form with 422, so SubmitForm reports an error.
			_, err = client.SubmitForm(ctx, doc, "/register", tt.fields)
			if err == nil {
				t.Fatal("Expected form submission to be rejected")
			}
			if !strings.Contains(err.Error(), "422") {
				t.Errorf("Expected 422 status in error, got: %v", err)
			}
		})
	}
}

func Test_application_register_duplicateName(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = client.Register(ctx, "highlander", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if _, err = client.Logout(ctx); err != nil {
		t.Fatalf("Failed to logout: %v", err)
	}

	// A second account with the same display name must be rejected.
	if _, err = client.Register(ctx, "highlander", "correct horse battery"); err == nil {
		t.Error("Expected duplicate registration to be rejected")
	}
}

func Test_application_login_invalidCredentials(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = client.Register(ctx, "forgetful", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if _, err = client.Logout(ctx); err != nil {
		t.Fatalf("Failed to logout: %v", err)
	}

	if _, err = client.Login(ctx, "forgetful", "wrong password!"); err == nil {
		t.Error("Expected login with wrong password to fail")
	}
	if _, err = client.Login(ctx, "nobody", "correct horse battery"); err == nil {
		t.Error("Expected login with unknown user to fail")
	}
}
