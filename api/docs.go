package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

const openAPIPath = "/docs/openapi.json"

//go:embed openapi.json
var openAPIDocument []byte

// RegisterDocs serves the OpenAPI document and a Swagger UI pointed at it.
func RegisterDocs(router gin.IRoutes) {
	router.GET(openAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPIDocument)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(openAPIPath))))
}
