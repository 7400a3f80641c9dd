package handler

import (
	"net/http"

	"promana-go/internal/hypermedia"
)

func addControl(doc *hypermedia.Document, name, href, title string, s schema) {
	doc.AddControl(name, href,
		hypermedia.WithMethod(http.MethodPost),
		hypermedia.WithTitle(title),
		hypermedia.WithSchema(s))
}

func editControl(doc *hypermedia.Document, href, title string, s schema) {
	doc.AddControl("edit", href,
		hypermedia.WithMethod(http.MethodPut),
		hypermedia.WithTitle(title),
		hypermedia.WithSchema(s))
}

func deleteControl(doc *hypermedia.Document, name, href, title string) {
	doc.AddControl(name, href,
		hypermedia.WithMethod(http.MethodDelete),
		hypermedia.WithTitle(title))
}

// deleteMemberControl points at a member item through an href template.
func deleteMemberControl(doc *hypermedia.Document, collection, title string) {
	doc.AddControl("promana:delete-member", collection+"{member}/",
		hypermedia.WithMethod(http.MethodDelete),
		hypermedia.WithTitle(title),
		hypermedia.Templated())
}
