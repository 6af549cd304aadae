package main

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkarvo/fitsoul/internal/chat"
	"github.com/mkarvo/fitsoul/internal/e2etest"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

func Test_application_chat(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = client.Register(ctx, "chatty", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("Trainer page has a message form", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/chat/trainer")
		if err != nil {
			t.Fatalf("Failed to get trainer chat: %v", err)
		}

		if doc.Find("h1:contains('Personal Trainer')").Length() == 0 {
			t.Error("Expected trainer heading")
		}
		if doc.Find("form[action='/chat/trainer'] textarea#message").Length() != 1 {
			t.Error("Expected a message textarea")
		}
	})

	t.Run("Nutritionist page has its own heading", func(t *testing.T) {
		nutritionistDoc, err := client.GetDoc(ctx, "/chat/nutritionist")
		if err != nil {
			t.Fatalf("Failed to get nutritionist chat: %v", err)
		}

		if nutritionistDoc.Find("h1:contains('Nutritionist')").Length() == 0 {
			t.Error("Expected nutritionist heading")
		}
	})

	t.Run("Unknown persona returns 404", func(t *testing.T) {
		resp, err := client.Get(ctx, "/chat/physiotherapist")
		if err != nil {
			t.Fatalf("Failed to get unknown persona: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != 404 {
			t.Errorf("Expected 404 for unknown persona, got %d", resp.StatusCode)
		}
	})

	t.Run("Sending a message renders the fallback without an API key", func(t *testing.T) {
		formData := map[string]string{
			"Message": "How many rest days should I take?",
		}
		if doc, err = client.SubmitForm(ctx, doc, "/chat/trainer", formData); err != nil {
			t.Fatalf("Failed to submit chat form: %v", err)
		}

		if doc.Find(".user-message:contains('How many rest days')").Length() == 0 {
			t.Error("Expected the submitted message to be echoed")
		}
		reply := doc.Find(".assistant-message").Text()
		if reply == "" {
			t.Fatal("Expected an assistant reply section")
		}
		if doc.Find(".assistant-message:contains(\"" + chat.FallbackReply[:20] + "\")").Length() == 0 {
			t.Errorf("Expected the fallback reply, got: %s", reply)
		}
	})

	t.Run("Empty message is rejected", func(t *testing.T) {
		chatDoc, err := client.GetDoc(ctx, "/chat/trainer")
		if err != nil {
			t.Fatalf("Failed to get trainer chat: %v", err)
		}
		if _, err = client.SubmitForm(ctx, chatDoc, "/chat/trainer", map[string]string{"Message": "   "}); err == nil {
			t.Error("Expected empty message to be rejected")
		}
	})
}
