package handlers

import (
	"html/template"
	"net/http"

	"github.com/remedia/remedia-api/logging"
	"github.com/remedia/remedia-api/voice"
)

// pageData is everything the consultation page template needs
type pageData struct {
	Voice voice.Descriptor
}

// HomePage renders the consultation page with the voice capability inlined,
// so the browser knows the message catalog without a second round trip
func HomePage(templatePath string, voiceInput voice.Descriptor) http.HandlerFunc {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		logging.Error("Failed to parse page template", "path", templatePath, "error", err)
		return func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Page unavailable", http.StatusInternalServerError)
		}
	}

	data := pageData{Voice: voiceInput}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			logging.Error("Failed to render page template", "error", err)
		}
	}
}
