package http

import (
	"net/http"
	"os"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/stayhub-app/rating-service/internal/util"
)

// RegisterSwagger serves the hand-maintained OpenAPI document at
// /swagger/doc.json and mounts the UI against it. specPath is the YAML
// source on disk; it is converted to JSON per request so edits show up
// without a restart.
func RegisterSwagger(e *echo.Echo, specPath string) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		raw, err := os.ReadFile(specPath)
		if err != nil {
			c.Logger().Errorf("load openapi document: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load api documentation"))
		}
		doc, err := yaml.YAMLToJSON(raw)
		if err != nil {
			c.Logger().Errorf("convert openapi document: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to parse api documentation"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/swagger/doc.json")))
}
