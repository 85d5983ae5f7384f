package form

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Prakharbansall/Book-Hunt/model"
	catalogsvc "github.com/Prakharbansall/Book-Hunt/service/catalog"

	"github.com/labstack/echo/v4"
)

// Controller is the form adapter: same catalog operations as the JSON
// controller, shaped as redirects and HTML error pages for the browser
// form flow.
type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// POST /newbook
func (h *Controller) NewBook(c echo.Context) error {
	title := c.FormValue("title")
	author := c.FormValue("author")
	status := c.FormValue("status")
	duedate := c.FormValue("duedate")

	// An uploaded cover file is accepted but discarded: the deployment
	// target has no durable image storage, so the placeholder URL is used.
	_, _ = c.FormFile("cover")

	var due *model.Date
	if duedate != "" {
		if t, err := time.Parse(time.DateOnly, duedate); err == nil {
			due = model.NewDate(t)
		}
	}

	_, err := h.Svc.Create(c.Request().Context(), catalogsvc.CreateInput{
		Title:   title,
		Author:  author,
		Status:  model.BookStatus(status),
		DueDate: due,
	})
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrInvalid {
			return c.HTML(http.StatusBadRequest, errorPage("Error: Title and author are required"))
		}
		h.Log.Error("book form create error", "err", err)
		return c.HTML(http.StatusInternalServerError, errorPage("Error adding book"))
	}
	return c.Redirect(http.StatusFound, "/home")
}

func errorPage(msg string) string {
	return fmt.Sprintf(`<html>
  <head><title>Error</title></head>
  <body>
    <h2>%s</h2>
    <a href="/new">Go back</a>
  </body>
</html>`, msg)
}
