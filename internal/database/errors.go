package database

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyNote    = errors.New("note is empty")
	ErrNoteNotFound = errors.New("note not found")
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapNoteErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "note", ID: id, Err: err}
}

func wrapSettingErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Err: err}
}
