package e2etest

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// FindFieldForLabel finds the input, textarea or select element associated with a label in the given form.
func FindFieldForLabel(form *goquery.Selection, labelText string) (*goquery.Selection, error) {
	// Find the label with matching text
	label := form.Find(fmt.Sprintf("label:contains(%q)", labelText))
	if label.Length() == 0 {
		return nil, fmt.Errorf("label not found: %s", labelText)
	}

	// Get the associated field element
	var field *goquery.Selection
	if id, exists := label.Attr("for"); exists {
		// If label has 'for' attribute, find field by ID
		field = form.Find(fmt.Sprintf("input#%s,textarea#%s,select#%s", id, id, id))
	} else {
		// Otherwise, find field within label
		field = label.Find("input,textarea,select")
	}

	if field.Length() == 0 {
		return nil, fmt.Errorf("field not found for label: %s", labelText)
	}

	return field, nil
}

// FindForm finds a form in the doc identified with action formActionUrlPath and returns the form selection.
func FindForm(doc *goquery.Document, formActionURLPath string) (*goquery.Selection, error) {
	form := doc.Find(fmt.Sprintf("form[action='%s']", formActionURLPath))
	if form.Length() == 0 {
		return nil, fmt.Errorf("form not found: %s", formActionURLPath)
	}
	return form, nil
}
