package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var templates embed.FS

// Engine returns the html/template engine over the embedded pages.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(templates), ".html")
}
