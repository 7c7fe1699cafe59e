// renderer/renderer.go
package renderer

import (
	"github.com/unrolled/render"
)

// New returns the JSON renderer used by every API handler.
func New() *render.Render {
	return render.New(render.Options{
		UnEscapeHTML:  true,
		IsDevelopment: false,
	})
}
