package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkarvo/fitsoul/internal/e2etest"
	"github.com/mkarvo/fitsoul/internal/testhelpers"
)

func Test_application_profile(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = client.Register(ctx, "ada", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("Empty profile has no body stats", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/profile")
		if err != nil {
			t.Fatalf("Failed to get profile page: %v", err)
		}

		if doc.Find(".bmi").Length() != 0 {
			t.Error("Expected no BMI section before weight and height are set")
		}
	})

	t.Run("Saving the profile shows BMI and calorie estimate", func(t *testing.T) {
		formData := map[string]string{
			"Name":             "Ada",
			"Age":              "25",
			"Sex":              "male",
			"Weight (kg)":      "70",
			"Height (cm)":      "175",
			"Goal":             "improve_fitness",
			"Experience level": "intermediate",
		}
		if doc, err = client.SubmitForm(ctx, doc, "/profile", formData); err != nil {
			t.Fatalf("Failed to submit profile form: %v", err)
		}

		if doc.Find(".flash:contains('Profile saved')").Length() == 0 {
			t.Error("Expected a saved notification")
		}
		bmi := doc.Find(".bmi").Text()
		if !strings.Contains(bmi, "22.9") {
			t.Errorf("Expected BMI 22.9, got: %s", bmi)
		}
		if doc.Find(".calorie-needs").Length() == 0 {
			t.Error("Expected a calorie estimate once body stats are present")
		}
	})

	t.Run("Saved values survive a reload", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/profile")
		if err != nil {
			t.Fatalf("Failed to get profile page: %v", err)
		}

		name, _ := doc.Find("input#name").Attr("value")
		if name != "Ada" {
			t.Errorf("Expected name input to hold 'Ada', got: %s", name)
		}
		selected := doc.Find("select#goal option[selected]").AttrOr("value", "")
		if selected != "improve_fitness" {
			t.Errorf("Expected goal 'improve_fitness' to be selected, got: %s", selected)
		}
	})

	t.Run("Invalid values re-render the form with errors", func(t *testing.T) {
		formData := map[string]string{
			"Age": "-5",
		}
		if _, err = client.SubmitForm(ctx, doc, "/profile", formData); err == nil {
			t.Error("Expected negative age to be rejected")
		}
	})

	t.Run("Data export downloads a database", func(t *testing.T) {
		resp, err := client.Get(ctx, "/profile/export-data")
		if err != nil {
			t.Fatalf("Failed to download export: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			t.Fatalf("Expected 200 from export, got %d", resp.StatusCode)
		}
		if got := resp.Header.Get("Content-Type"); got != "application/x-sqlite3" {
			t.Errorf("Expected sqlite content type, got: %s", got)
		}
	})
}
