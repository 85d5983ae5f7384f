package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	_ = godotenv.Load()

	return App{
		Port:      getenv("PORT", "3000"),
		BooksFile: getenv("BOOKS_FILE", "books.json"),
		PublicDir: getenv("PUBLIC_DIR", "public"),
		Env:       getenv("APP_ENV", "dev"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
