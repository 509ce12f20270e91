package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/jonathanglassman/paas-product-page/internal/render"
)

// View names are restricted to alphanumeric, dash and underscore.
// Definitively safe against being used for directory traversal.
var viewNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type PageHandler struct {
	render   *render.Renderer
	assetDir string
}

func NewPageHandler(r *render.Renderer, assetDir string) *PageHandler {
	return &PageHandler{render: r, assetDir: assetDir}
}

func (h *PageHandler) Index(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "index.html", pongo2.Context{})
}

// Page is the GET fallback: a template named after the path, then a
// static asset, then the not-found page. A trailing .html redirects
// permanently to the extensionless path.
func (h *PageHandler) Page(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		NotFound(h.render)(c)
		return
	}
	name := strings.TrimPrefix(c.Request.URL.Path, "/")
	viewName := strings.TrimSuffix(name, ".html")

	if viewNamePattern.MatchString(viewName) && h.render.Exists(viewName+".html") {
		if strings.HasSuffix(name, ".html") {
			c.Redirect(http.StatusMovedPermanently, "/"+viewName)
			return
		}
		h.render.HTML(c, http.StatusOK, viewName+".html", pongo2.Context{})
		return
	}

	// Clean against the asset root so ".." segments cannot escape it.
	assetPath := filepath.Join(h.assetDir, filepath.Clean("/"+name))
	if info, err := os.Stat(assetPath); err == nil && info.Mode().IsRegular() {
		c.File(assetPath)
		return
	}

	NotFound(h.render)(c)
}

// NotFound renders the not-found page.
func NotFound(r *render.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.HTML(c, http.StatusNotFound, "not_found.html", pongo2.Context{})
	}
}
