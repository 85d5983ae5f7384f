package book

import (
	"log/slog"
	"net/http"
	"strconv"

	catalogsvc "github.com/Prakharbansall/Book-Hunt/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Controller is the JSON adapter over the catalog service.
type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

const notFoundText = "Book not found"

// GET /api/books
func (h *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.List(c.Request().Context()))
}

// POST /api/books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and author are required"})
	}
	book, err := h.Svc.Create(c.Request().Context(), catalogsvc.CreateInput{
		Title:   req.Title,
		Author:  req.Author,
		Cover:   req.Cover,
		Status:  req.Status,
		DueDate: req.DueDate,
	})
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and author are required"})
		}
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add book"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book added successfully", "book": book})
}

// GET /books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusNotFound, notFoundText)
	}
	book, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.String(http.StatusNotFound, notFoundText)
		}
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get book"})
	}
	return c.JSON(http.StatusOK, book)
}

// PUT /books/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusNotFound, notFoundText)
	}
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	in, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dueDate"})
	}
	book, err := h.Svc.Update(c.Request().Context(), id, in)
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.String(http.StatusNotFound, notFoundText)
		}
		if catalogsvc.Code(err) == catalogsvc.ErrInvalid {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and author are required"})
		}
		h.Log.Error("book update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update book"})
	}
	return c.JSON(http.StatusOK, book)
}

// DELETE /books/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.String(http.StatusNotFound, notFoundText)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrNotFound {
			return c.String(http.StatusNotFound, notFoundText)
		}
		h.Log.Error("book delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete book"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book deleted successfully"})
}

// GET /api/health
func (h *Controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "OK", "booksCount": h.Svc.Count()})
}
