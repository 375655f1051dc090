package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrQuestionNotFound       = errors.New("question not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryExists         = errors.New("category already exists")
	ErrCategoryNameRequired   = errors.New("category name is required")
	ErrQuestionFieldsRequired = errors.New("question text and all four options are required")
	ErrInvalidAnswerOption    = errors.New("answer must be A, B, C, or D")
	ErrInvalidHardness        = errors.New("hardness must be easy, medium, or hard")
)
