// Package render turns a SalesSummary into text for stdout.
package render

import (
	"fmt"
	"strings"

	"github.com/gyeh/salesreport/internal/model"
)

// Renderer formats an aggregate. Implementations are pure.
type Renderer interface {
	Render(s model.SalesSummary) (string, error)
}

type registration struct {
	name string
	new  func() Renderer
}

// registry is ordered; the first entry is the default format.
var registry = []registration{
	{name: "text", new: func() Renderer { return Text{} }},
	{name: "json", new: func() Renderer { return JSON{} }},
}

// New returns the renderer registered under format.
func New(format string) (Renderer, error) {
	for _, r := range registry {
		if r.name == format {
			return r.new(), nil
		}
	}
	return nil, fmt.Errorf("unsupported format %q, available: %s", format, strings.Join(Formats(), ", "))
}

// Formats lists the registered formats, default first.
func Formats() []string {
	names := make([]string, len(registry))
	for i, r := range registry {
		names[i] = r.name
	}
	return names
}
