package server

import (
	"inventario/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerSwaggerRoutes регистрирует Swagger UI и doc.json
func registerSwaggerRoutes(router *gin.Engine, version string) {
	docs.SwaggerInfo.Version = version

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}
