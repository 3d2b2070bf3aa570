package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrNotQuizOwner       = errors.New("not quiz owner")
	ErrQuizPrivate        = errors.New("quiz is private")
	ErrInvalidQuestionSet = errors.New("invalid question set")
	ErrDatabaseError      = errors.New("database error")
)
