package catalogsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/Prakharbansall/Book-Hunt/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrInvalid  ErrCode = "INVALID"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type CreateInput struct {
	Title   string
	Author  string
	Cover   string
	Status  model.BookStatus
	DueDate *model.Date
}

// UpdateInput is a shallow merge: nil fields keep the stored value. DueDate
// carries its own set flag because a present null must clear the date while
// an absent field must preserve it.
type UpdateInput struct {
	Title      *string
	Author     *string
	Cover      *string
	Status     *model.BookStatus
	DueDate    *model.Date
	DueDateSet bool
}

// Repo is the slice of the catalog repository the service consumes.
type Repo interface {
	Load(ctx context.Context) []model.Book
	Mutate(ctx context.Context, fn func(books []model.Book) ([]model.Book, error)) error
	Count() int
}

type Service interface {
	List(ctx context.Context) []model.Book
	Get(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, in CreateInput) (*model.Book, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	Count() int
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) []model.Book {
	return s.r.Load(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Book, error) {
	for _, b := range s.r.Load(ctx) {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, makeErr(ErrNotFound)
}

func (s *service) Create(ctx context.Context, in CreateInput) (*model.Book, error) {
	title := strings.TrimSpace(in.Title)
	author := strings.TrimSpace(in.Author)
	if title == "" || author == "" {
		return nil, makeErr(ErrInvalid)
	}

	book := model.Book{
		Title:   title,
		Author:  author,
		Cover:   in.Cover,
		Status:  in.Status,
		DueDate: in.DueDate,
	}
	if book.Cover == "" {
		book.Cover = model.PlaceholderCover
	}
	if book.Status == "" {
		book.Status = model.StatusAvailable
	}

	// ID assignment happens inside the same critical section as the save,
	// so two in-flight creates cannot compute the same next id.
	err := s.r.Mutate(ctx, func(books []model.Book) ([]model.Book, error) {
		book.ID = nextID(books)
		return append(books, book), nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *service) Update(ctx context.Context, id int64, in UpdateInput) (*model.Book, error) {
	var updated model.Book
	err := s.r.Mutate(ctx, func(books []model.Book) ([]model.Book, error) {
		i := indexOf(books, id)
		if i == -1 {
			return nil, makeErr(ErrNotFound)
		}
		b := books[i]
		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title == "" {
				return nil, makeErr(ErrInvalid)
			}
			b.Title = title
		}
		if in.Author != nil {
			author := strings.TrimSpace(*in.Author)
			if author == "" {
				return nil, makeErr(ErrInvalid)
			}
			b.Author = author
		}
		if in.Cover != nil {
			b.Cover = *in.Cover
		}
		if in.Status != nil {
			b.Status = *in.Status
		}
		if in.DueDateSet {
			b.DueDate = in.DueDate
		}
		books[i] = b
		updated = b
		return books, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.r.Mutate(ctx, func(books []model.Book) ([]model.Book, error) {
		i := indexOf(books, id)
		if i == -1 {
			return nil, makeErr(ErrNotFound)
		}
		return append(books[:i], books[i+1:]...), nil
	})
}

func (s *service) Count() int { return s.r.Count() }

func nextID(books []model.Book) int64 {
	var max int64
	for _, b := range books {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

func indexOf(books []model.Book, id int64) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
