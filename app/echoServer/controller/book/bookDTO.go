package book

import (
	"encoding/json"

	"github.com/Prakharbansall/Book-Hunt/model"
	catalogsvc "github.com/Prakharbansall/Book-Hunt/service/catalog"
)

type CreateBookReq struct {
	Title   string           `json:"title" validate:"required"`
	Author  string           `json:"author" validate:"required"`
	Cover   string           `json:"cover"`
	Status  model.BookStatus `json:"status"`
	DueDate *model.Date      `json:"dueDate"`
}

// UpdateBookReq shallow-merges onto the stored book: absent fields keep
// their values. DueDate stays raw so that an explicit null (clear the date)
// can be told apart from the field being omitted.
type UpdateBookReq struct {
	Title   *string           `json:"title"`
	Author  *string           `json:"author"`
	Cover   *string           `json:"cover"`
	Status  *model.BookStatus `json:"status"`
	DueDate json.RawMessage   `json:"dueDate"`
}

func (r UpdateBookReq) toInput() (catalogsvc.UpdateInput, error) {
	in := catalogsvc.UpdateInput{
		Title:  r.Title,
		Author: r.Author,
		Cover:  r.Cover,
		Status: r.Status,
	}
	if len(r.DueDate) == 0 {
		return in, nil
	}
	in.DueDateSet = true
	if string(r.DueDate) == "null" {
		return in, nil
	}
	var d model.Date
	if err := json.Unmarshal(r.DueDate, &d); err != nil {
		return in, err
	}
	in.DueDate = &d
	return in, nil
}
