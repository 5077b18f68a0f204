package response

import (
	"errors"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

type Pagination struct {
	Total int `json:"total"`
}

type ListResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items:      items,
		Pagination: Pagination{Total: len(items)},
	}
}
