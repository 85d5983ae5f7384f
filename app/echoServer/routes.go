package echoServer

import (
	"path/filepath"

	"github.com/Prakharbansall/Book-Hunt/app/echoServer/controller/book"
	"github.com/Prakharbansall/Book-Hunt/app/echoServer/controller/form"

	"github.com/labstack/echo/v4"
)

type C struct {
	Book *book.Controller
	Form *form.Controller

	PublicDir string
}

func Register(e *echo.Echo, c C) {
	// JSON API
	e.GET("/api/books", c.Book.List)
	e.POST("/api/books", c.Book.Create)
	e.GET("/api/health", c.Book.Health)

	e.GET("/books/:id", c.Book.Detail)
	e.PUT("/books/:id", c.Book.Update)
	e.DELETE("/books/:id", c.Book.Delete)

	// Browser form flow
	e.POST("/newbook", c.Form.NewBook)

	// Static pages
	e.File("/", filepath.Join(c.PublicDir, "index.html"))
	e.File("/home", filepath.Join(c.PublicDir, "index.html"))
	e.File("/new", filepath.Join(c.PublicDir, "newbook.html"))
	e.File("/test", filepath.Join(c.PublicDir, "test.html"))
	e.Static("/", c.PublicDir)
}
