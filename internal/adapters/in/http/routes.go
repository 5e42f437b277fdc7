package http

import (
	"net/http"

	"boutique/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// Register mounts the API, its OpenAPI document, the swagger UI and the
// health probe on e.
func Register(e *echo.Echo, s *Server, doc *openapi3.T) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET(BaseURL+"/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, s, BaseURL)
}
