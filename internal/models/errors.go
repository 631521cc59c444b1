package models

import "errors"

var (
	// ErrValidation - во входных данных не хватает обязательных полей
	ErrValidation = errors.New("validation error")
	// ErrNotFound - запись с таким идентификатором не существует
	ErrNotFound = errors.New("not found")
)
