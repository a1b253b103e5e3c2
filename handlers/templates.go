package handlers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Flash is a one-request user-visible message rendered into the form view.
type Flash struct {
	Category string // error|success
	Message  string
}

// FormView is the data passed to index.html.
type FormView struct {
	Flash *Flash
}

func errorFlash(msg string) FormView {
	return FormView{Flash: &Flash{Category: "error", Message: msg}}
}
