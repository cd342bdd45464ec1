package main

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed swagger.json
var swaggerJSON []byte

const swaggerDocPath = "/swagger.json"

// setupDocsRoutes serves the API description and the Swagger UI reading it
func (a *App) setupDocsRoutes() {
	a.Router.GET(swaggerDocPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", swaggerJSON)
	})
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(swaggerDocPath)))
}
