package config

type App struct {
	Port      string `env:"PORT" default:"3000"`
	BooksFile string `env:"BOOKS_FILE" default:"books.json"`
	PublicDir string `env:"PUBLIC_DIR" default:"public"`
	Env       string `env:"APP_ENV" default:"dev"`
}
