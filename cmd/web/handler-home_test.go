package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkarvo/fitsoul/internal/e2etest"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FITSOUL_SQLITE_URL":
		return ":memory:", true
	case "FITSOUL_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func Test_application_home(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Initial state", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		checkLinkPresence(t, doc, "Sign in", 2)
		checkLinkPresence(t, doc, "Register", 2)
	})

	t.Run("After registration", func(t *testing.T) {
		doc, err = client.Register(ctx, "soultrain", "correct horse battery")
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		checkLinkPresence(t, doc, "Sign in", 0)
		if doc.Find("h1:contains('Welcome back')").Length() == 0 {
			t.Error("Expected welcome heading after registration")
		}
		if doc.Find("button:contains('Sign out')").Length() != 1 {
			t.Error("Expected a sign out button after registration")
		}
	})

	t.Run("Shows zeroed progress before any plans exist", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		progress := doc.Find(".workout-progress").Text()
		if !strings.Contains(progress, "0 of 0") {
			t.Errorf("Expected zeroed workout progress, got: %s", progress)
		}
	})

	t.Run("After logout", func(t *testing.T) {
		doc, err = client.Logout(ctx)
		if err != nil {
			t.Fatalf("Failed to logout: %v", err)
		}

		checkLinkPresence(t, doc, "Sign in", 2)
		checkLinkPresence(t, doc, "Register", 2)
	})

	t.Run("After login", func(t *testing.T) {
		doc, err = client.Login(ctx, "soultrain", "correct horse battery")
		if err != nil {
			t.Fatalf("Failed to login: %v", err)
		}

		checkLinkPresence(t, doc, "Sign in", 0)
		if doc.Find("button:contains('Sign out')").Length() != 1 {
			t.Error("Expected a sign out button after login")
		}
	})
}

func checkLinkPresence(t *testing.T, doc *goquery.Document, linkText string, expectedCount int) {
	t.Helper()
	count := doc.Find("a:contains('" + linkText + "')").Length()
	if count != expectedCount {
		t.Errorf("Expected %d '%s' link(s), but found %d", expectedCount, linkText, count)
	}
}

func Test_crossOriginProtection(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	// Create a malicious client that simulates cross-origin requests
	maliciousClient, err := e2etest.NewClientWithSecFetchSite(server.URL(), "cross-site")
	if err != nil {
		t.Fatalf("Failed to create malicious client: %v", err)
	}

	doc, err := maliciousClient.GetDoc(ctx, "/register")
	if err != nil {
		t.Fatalf("Failed to get registration page: %v", err)
	}

	// Form submissions with cross-origin headers must be rejected.
	_, err = maliciousClient.SubmitForm(ctx, doc, "/register", map[string]string{
		"Display name":     "mallory",
		"Password":         "correct horse battery",
		"Confirm password": "correct horse battery",
	})
	if err == nil {
		t.Error("Expected cross-origin form submission to be blocked, but it succeeded")
	}
}
