// Package hypermedia builds Mason response documents.
package hypermedia

import (
	"encoding/json"
	"net/http"
)

const (
	MediaType = "application/vnd.mason+json"

	Namespace         = "promana"
	LinkRelationsPath = "/api/link-relations/"
)

type Control struct {
	Href           string `json:"href"`
	Method         string `json:"method,omitempty"`
	Encoding       string `json:"encoding,omitempty"`
	Title          string `json:"title,omitempty"`
	Schema         any    `json:"schema,omitempty"`
	IsHrefTemplate bool   `json:"isHrefTemplate,omitempty"`
}

type ControlOption func(*Control)

func WithMethod(method string) ControlOption {
	return func(c *Control) {
		if method != http.MethodGet {
			c.Method = method
		}
	}
}

func WithTitle(title string) ControlOption {
	return func(c *Control) { c.Title = title }
}

// WithSchema declares the body the control expects. The encoding is always json.
func WithSchema(schema any) ControlOption {
	return func(c *Control) {
		c.Schema = schema
		c.Encoding = "json"
	}
}

func Templated() ControlOption {
	return func(c *Control) { c.IsHrefTemplate = true }
}

type namespace struct {
	Name string `json:"name"`
}

// Document is a request-scoped Mason document under construction.
type Document struct {
	fields     map[string]any
	namespaces map[string]namespace
	controls   map[string]Control
	items      []*Document
	collection bool
}

func New() *Document {
	return &Document{fields: map[string]any{}}
}

// NewCollection returns a document that always renders an items array.
func NewCollection() *Document {
	doc := New()
	doc.collection = true
	doc.items = []*Document{}
	return doc
}

func (d *Document) Set(key string, value any) *Document {
	d.fields[key] = value
	return d
}

func (d *Document) Field(key string) (any, bool) {
	value, ok := d.fields[key]
	return value, ok
}

func (d *Document) AddNamespace(prefix, uri string) *Document {
	if d.namespaces == nil {
		d.namespaces = map[string]namespace{}
	}
	d.namespaces[prefix] = namespace{Name: uri}
	return d
}

// AddControl sets the named control, replacing any previous one of that name.
func (d *Document) AddControl(name, href string, opts ...ControlOption) *Document {
	control := Control{Href: href}
	for _, opt := range opts {
		opt(&control)
	}
	if d.controls == nil {
		d.controls = map[string]Control{}
	}
	d.controls[name] = control
	return d
}

func (d *Document) Control(name string) (Control, bool) {
	control, ok := d.controls[name]
	return control, ok
}

func (d *Document) AddItem(item *Document) *Document {
	d.collection = true
	d.items = append(d.items, item)
	return d
}

func (d *Document) Items() []*Document {
	return d.items
}

func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.fields)+3)
	for key, value := range d.fields {
		out[key] = value
	}
	if len(d.namespaces) > 0 {
		out["@namespaces"] = d.namespaces
	}
	if len(d.controls) > 0 {
		out["@controls"] = d.controls
	}
	if d.collection {
		items := d.items
		if items == nil {
			items = []*Document{}
		}
		out["items"] = items
	}
	return json.Marshal(out)
}

// WithPromana declares the promana link relation namespace.
func (d *Document) WithPromana() *Document {
	return d.AddNamespace(Namespace, LinkRelationsPath+"#")
}
