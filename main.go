// Package main Book-Hunt catalog API.
//
// A JSON-file-backed book catalog with HTTP CRUD and a static front-end.
// The store degrades to an in-memory catalog on read-only or ephemeral
// filesystems; see repository/catalog for the consistency contract.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Prakharbansall/Book-Hunt/app/echoServer"
	bookctrl "github.com/Prakharbansall/Book-Hunt/app/echoServer/controller/book"
	formctrl "github.com/Prakharbansall/Book-Hunt/app/echoServer/controller/form"
	"github.com/Prakharbansall/Book-Hunt/app/echoServer/validation"
	"github.com/Prakharbansall/Book-Hunt/config"
	catalogrepo "github.com/Prakharbansall/Book-Hunt/repository/catalog"
	catalogsvc "github.com/Prakharbansall/Book-Hunt/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := newLogger(cfg.Env)
	slog.SetDefault(log)

	// store: JSON file with in-memory fallback
	cr := catalogrepo.New(cfg.BooksFile, log)
	cr.Load(ctx) // warm the cache before the first request
	if err := cr.Watch(ctx); err != nil {
		log.Warn("catalog watcher disabled", "err", err)
	}

	// services
	cs := catalogsvc.New(cr)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: cs, V: v, Log: log}
	formC := &formctrl.Controller{Svc: cs, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	echoServer.Register(e, echoServer.C{
		Book: bookC,
		Form: formC,

		PublicDir: cfg.PublicDir,
	})

	slog.Info("starting server", "port", cfg.Port, "books_file", cfg.BooksFile)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

func newLogger(env string) *slog.Logger {
	if env == "dev" {
		return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			TimeFormat: "15:04:05.000",
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
