package router

import (
	"html/template"
	"net/http"

	_ "github.com/epeers/fundsite/docs"
	"github.com/epeers/fundsite/internal/handlers"
	"github.com/epeers/fundsite/internal/middleware"
	"github.com/epeers/fundsite/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the gin engine with views, API routes and swagger docs
func New(fundHandler *handlers.FundHandler, tmpl *template.Template) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTML views
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/funds")
	})
	r.GET("/funds", fundHandler.Index)
	r.GET("/funds/:id", fundHandler.Details)
	r.GET("/error", fundHandler.Error)

	// JSON API
	api := r.Group("/api")
	api.GET("/funds", fundHandler.ListFunds)
	api.GET("/funds/:id", fundHandler.GetFund)
	api.GET("/export/funds.csv", fundHandler.ExportCSV)
	api.GET("/consistency", fundHandler.Consistency)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(fundHandler.NotFound)

	return r
}
