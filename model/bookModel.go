// model/book.go
package model

import (
	"fmt"
	"time"
)

type BookStatus string

const (
	StatusAvailable   BookStatus = "available"
	StatusUnavailable BookStatus = "unavailable"
)

// PlaceholderCover is stored for books created without a cover URL.
// Uploaded cover files are discarded on ephemeral deployments.
const PlaceholderCover = "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300&h=400&fit=crop"

type Book struct {
	ID      int64      `json:"id"`
	Title   string     `json:"title"`
	Author  string     `json:"author"`
	Cover   string     `json:"cover"`
	Status  BookStatus `json:"status"`
	DueDate *Date      `json:"dueDate"`
}

// Date is a due date as it appears in the catalog file. Clients send either
// a full RFC 3339 timestamp (reservation flow) or a bare yyyy-mm-dd from the
// edit form, so unmarshalling accepts both.
type Date struct {
	time.Time
}

func NewDate(t time.Time) *Date { return &Date{Time: t} }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	s = s[1 : len(s)-1]
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

// DefaultCatalog seeds a fresh deployment whose store and cache are both
// empty.
func DefaultCatalog() []Book {
	return []Book{
		{
			ID:     1,
			Title:  "The Great Gatsby",
			Author: "F. Scott Fitzgerald",
			Cover:  PlaceholderCover,
			Status: StatusAvailable,
		},
		{
			ID:     2,
			Title:  "To Kill a Mockingbird",
			Author: "Harper Lee",
			Cover:  "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=300&h=400&fit=crop",
			Status: StatusAvailable,
		},
	}
}
