// Package layout renders the page shell shared by every page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageData holds data common to every page
type PageData struct {
	Title string
	// Error is shown above the page body when set
	Error string
}

// Base wraps body in the HTML document shell
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`+
			templ.EscapeString(data.Title)+` | Protocols</title></head><body><main>`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := io.WriteString(w, `<p class="error" role="alert">`+templ.EscapeString(data.Error)+`</p>`); err != nil {
				return err
			}
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
