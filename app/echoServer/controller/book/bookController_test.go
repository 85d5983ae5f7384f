package book_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Prakharbansall/Book-Hunt/app/echoServer"
	bookctrl "github.com/Prakharbansall/Book-Hunt/app/echoServer/controller/book"
	formctrl "github.com/Prakharbansall/Book-Hunt/app/echoServer/controller/form"
	"github.com/Prakharbansall/Book-Hunt/app/echoServer/validation"
	"github.com/Prakharbansall/Book-Hunt/model"
	catalogrepo "github.com/Prakharbansall/Book-Hunt/repository/catalog"
	catalogsvc "github.com/Prakharbansall/Book-Hunt/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newServer wires the full stack over a fresh (empty) store file.
func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cr := catalogrepo.New(path, log)
	cs := catalogsvc.New(cr)

	v := validator.New()
	e := echo.New()
	e.Validator = validation.New()
	echoServer.Register(e, echoServer.C{
		Book:      &bookctrl.Controller{Svc: cs, V: v, Log: log},
		Form:      &formctrl.Controller{Svc: cs, Log: log},
		PublicDir: dir,
	})
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func listBooks(t *testing.T, e *echo.Echo) []model.Book {
	t.Helper()
	rec := do(e, http.MethodGet, "/api/books", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var books []model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	return books
}

func TestCreateBook(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string     `json:"message"`
		Book    model.Book `json:"book"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Book added successfully", resp.Message)
	require.Equal(t, int64(1), resp.Book.ID)
	require.Equal(t, model.StatusAvailable, resp.Book.Status)
	require.Equal(t, model.PlaceholderCover, resp.Book.Cover)
	require.Nil(t, resp.Book.DueDate)
}

func TestCreateBook_MissingTitle(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/books", `{"author": "Solo"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Title and author are required", resp["error"])

	require.Empty(t, listBooks(t, e), "catalog must be unchanged")
}

func TestGetBook(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	rec := do(e, http.MethodGet, "/books/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var b model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.Equal(t, "Dune", b.Title)

	rec = do(e, http.MethodGet, "/books/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Book not found", rec.Body.String())
}

func TestUpdateBook_ShallowMerge(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	rec := do(e, http.MethodPut, "/books/1", `{"status": "unavailable"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var b model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.Equal(t, model.StatusUnavailable, b.Status)
	require.Equal(t, "Dune", b.Title)
	require.Equal(t, "Frank Herbert", b.Author)
	require.Nil(t, b.DueDate, "dueDate must not change unless supplied")
}

func TestUpdateBook_DueDate(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	// Reservation flow: RFC 3339 timestamp.
	rec := do(e, http.MethodPut, "/books/1", `{"status": "unavailable", "dueDate": "2026-09-15T12:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var b model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.NotNil(t, b.DueDate)

	// Edit form flow: explicit null clears the date.
	rec = do(e, http.MethodPut, "/books/1", `{"status": "available", "dueDate": null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.Nil(t, b.DueDate)
}

func TestUpdateBook_BlankTitle(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	rec := do(e, http.MethodPut, "/books/1", `{"title": "   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/books/1", "")
	var b model.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	require.Equal(t, "Dune", b.Title, "a rejected update must not change the book")
}

func TestUpdateBook_NotFound(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPut, "/books/999", `{"status": "unavailable"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Book not found", rec.Body.String())
}

func TestDeleteBook(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	rec := do(e, http.MethodDelete, "/books/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Book deleted successfully", resp["message"])
	require.Empty(t, listBooks(t, e))
}

func TestDeleteBook_NotFound(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	rec := do(e, http.MethodDelete, "/books/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, listBooks(t, e), 1, "catalog size must be unchanged")
}

func TestHealth(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/api/books", `{"title": "Dune", "author": "Frank Herbert"}`)

	rec := do(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status     string `json:"status"`
		BooksCount int    `json:"booksCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "OK", resp.Status)
	require.Equal(t, 1, resp.BooksCount)
}
