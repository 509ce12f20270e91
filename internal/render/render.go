package render

import (
	"log"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
)

// Renderer wraps a pongo2 template set rooted at the template dir.
type Renderer struct {
	set *pongo2.TemplateSet
}

// New builds a renderer. With debug set, templates are re-read from
// disk on every render instead of cached.
func New(dir string, debug bool) *Renderer {
	set := pongo2.NewSet("pages", pongo2.MustNewLocalFileSystemLoader(dir))
	set.Debug = debug
	return &Renderer{set: set}
}

// Exists reports whether a template is present. The page catch-all and
// the support-variant routes use this as their not-found check.
func (r *Renderer) Exists(name string) bool {
	_, err := r.set.FromCache(name)
	return err == nil
}

// HTML renders a template to the response. A broken template is a
// programming error; it logs and answers 500 rather than panicking.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data pongo2.Context) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		log.Printf("render: load %s: %v", name, err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	out, err := tpl.ExecuteBytes(data)
	if err != nil {
		log.Printf("render: execute %s: %v", name, err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", out)
}
