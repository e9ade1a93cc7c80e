package views

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, data LandingData) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, LandingPage(data).Render(&b))
	return b.String()
}

func testData() LandingData {
	return LandingData{
		Business:      "Excelerate Analytics, LLC",
		Contact:       Contact{Email: "michael@excelerateanalytics.com", Phone: "(702) 445-2266", Location: "Las Vegas, NV"},
		RevenueRanges: []string{"", "Under $500K", "$10M+"},
		Year:          2025,
	}
}

func TestLandingPage(t *testing.T) {
	html := render(t, testData())

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Turn Your Data Into Your Biggest Competitive Advantage")
	assert.Contains(t, html, "Increase Revenue by 15-30%")
	assert.Contains(t, html, "Trusted by Growing Businesses")
	assert.Contains(t, html, `action="/consultation#book"`)
	assert.Contains(t, html, `name="first_name"`)
	assert.Contains(t, html, `name="challenge"`)
	assert.Contains(t, html, `<option value="">Select a range</option>`)
	assert.Contains(t, html, `<option value="$10M+">$10M+</option>`)
	assert.Contains(t, html, "© 2025 Excelerate Analytics, LLC. All rights reserved.")
	assert.Contains(t, html, "Las Vegas, NV")
	assert.NotContains(t, html, `role="alert"`)
}

func TestLandingPageErrors(t *testing.T) {
	data := testData()
	data.Notice = Notice{Errors: []string{"First name is required", "Please enter a valid email address"}}

	html := render(t, data)
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, `<div class="alert alert-error">First name is required</div>`)
	assert.Contains(t, html, "Please enter a valid email address")
}

func TestLandingPageSuccessEscapesInput(t *testing.T) {
	data := testData()
	data.Notice = Notice{Success: "Thank you <script>alert(1)</script>!"}

	html := render(t, data)
	assert.Contains(t, html, "alert-success")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestStaticStylesheet(t *testing.T) {
	css, err := fs.ReadFile(Static(), "styles.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".hero-section")
}
