package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkarvo/fitsoul/internal/e2etest"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

func Test_application_diet(t *testing.T) {
	var (
		ctx   = t.Context()
		doc   *goquery.Document
		today = time.Now().Weekday().String()
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = client.Register(ctx, "foodie", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("First visit generates four meals per day", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/diet")
		if err != nil {
			t.Fatalf("Failed to get diet page: %v", err)
		}

		if got := doc.Find("section.day").Length(); got != 7 {
			t.Errorf("Expected 7 day sections, got %d", got)
		}
		if got := doc.Find("section.day.today li.meal").Length(); got != 4 {
			t.Errorf("Expected 4 meals for today, got %d", got)
		}
	})

	t.Run("Nothing eaten yet", func(t *testing.T) {
		totals := strings.TrimSpace(doc.Find(".today-nutrition").Text())
		if !strings.HasPrefix(totals, "0 kcal") {
			t.Errorf("Expected zero calories before any meal is eaten, got: %s", totals)
		}
	})

	t.Run("Eating today's breakfast shows up in the rollup", func(t *testing.T) {
		action := fmt.Sprintf("/diet/%s/meals/0", today)
		if doc, err = client.SubmitForm(ctx, doc, action, nil); err != nil {
			t.Fatalf("Failed to submit meal form: %v", err)
		}

		if doc.Find("section.day.today li.meal.completed").Length() != 1 {
			t.Error("Expected today's first meal to be marked completed")
		}
		// The default plan targets 2000 kcal and breakfast carries a quarter of it.
		totals := strings.TrimSpace(doc.Find(".today-nutrition").Text())
		if !strings.HasPrefix(totals, "500 kcal") {
			t.Errorf("Expected 500 kcal after eating breakfast, got: %s", totals)
		}
	})

	t.Run("Eating on another day is rejected with a notification", func(t *testing.T) {
		otherDay := time.Now().AddDate(0, 0, 1).Weekday().String()
		action := fmt.Sprintf("/diet/%s/meals/0", otherDay)
		if doc, err = client.SubmitForm(ctx, doc, action, nil); err != nil {
			t.Fatalf("Failed to submit meal form: %v", err)
		}

		if doc.Find(".flash:contains(\"Only today's meals\")").Length() == 0 {
			t.Error("Expected a policy notification for another day")
		}
		if doc.Find("li.meal.completed").Length() != 1 {
			t.Error("Expected only today's meal to stay completed")
		}
	})

	t.Run("Unknown day returns 404", func(t *testing.T) {
		resp, err := client.Get(ctx, "/diet/Funday/meals/0")
		if err != nil {
			t.Fatalf("Failed to get unknown day: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != 404 {
			t.Errorf("Expected 404 for unknown day, got %d", resp.StatusCode)
		}
	})
}
