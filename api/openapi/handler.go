// Package openapi serves the OpenAPI 3.1 document generated from the
// registered Huma operations, plus a Swagger UI page.
package openapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Listing Valuator API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/swagger/swagger.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// spec renders the document once, after every route has been registered.
type spec struct {
	api huma.API

	once     sync.Once
	jsonData []byte
	yamlData []byte
	err      error
}

func (s *spec) render() error {
	s.once.Do(func() {
		doc := s.api.OpenAPI()
		if s.jsonData, s.err = json.Marshal(doc); s.err != nil {
			return
		}
		s.yamlData, s.err = doc.YAML()
	})
	return s.err
}

// RegisterRoutes adds Swagger UI and spec endpoints to the Echo instance.
// The document is rendered on first request.
func RegisterRoutes(e *echo.Echo, api huma.API) {
	s := &spec{api: api}

	e.GET("/swagger/swagger.json", s.serve(func() []byte { return s.jsonData }, "application/json"))
	e.GET("/swagger/swagger.yaml", s.serve(func() []byte { return s.yamlData }, "text/yaml"))
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func (s *spec) serve(data func() []byte, contentType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.render(); err != nil {
			return c.String(http.StatusInternalServerError, "rendering spec: "+err.Error())
		}
		return c.Blob(http.StatusOK, contentType, data())
	}
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
