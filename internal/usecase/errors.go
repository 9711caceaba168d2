package usecase

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInternal                = errors.New("internal error")
)
