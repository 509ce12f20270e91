package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathanglassman/paas-product-page/internal/handler"
	"github.com/jonathanglassman/paas-product-page/internal/middleware"
)

func New(pages *handler.PageHandler, forms *handler.FormHandler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CSP())

	r.GET("/health", gin.WrapF(handler.Health))
	r.GET("/ready", gin.WrapF(handler.Ready))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", pages.Index)
	r.GET("/contact-us", forms.ContactShow)
	r.POST("/contact-us", forms.ContactSubmit)
	r.GET("/signup", forms.SignupShow)
	r.POST("/signup", forms.SignupSubmit)
	r.GET("/support", forms.SupportShow)
	r.POST("/support", forms.SupportChoose)
	r.GET("/support/*name", forms.SupportFormShow)
	r.POST("/support/*name", forms.SupportFormSubmit)

	// Anything else is a static page, a static asset, or 404.
	r.NoRoute(pages.Page)

	return r
}
