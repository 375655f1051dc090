// Package quizsession 提供答题会话的视图模型：当前过滤条件和在过滤结果中的位置。
// 纯内存状态，不持久化，独立于任何渲染层。
package quizsession

import (
	"quizbank_backend/internal/model"
)

// Source 提供按过滤条件查询题目的能力
type Source interface {
	Questions(categoryID *uint, hardness *model.Hardness) ([]model.Question, error)
}

type Session struct {
	src        Source
	categoryID *uint
	hardness   *model.Hardness
	questions  []model.Question
	position   int
}

func New(src Source) *Session {
	return &Session{src: src}
}

// ApplyFilter 重新查询题目列表并把位置重置为 0
func (s *Session) ApplyFilter(categoryID *uint, hardness *model.Hardness) error {
	questions, err := s.src.Questions(categoryID, hardness)
	if err != nil {
		return err
	}

	s.categoryID = categoryID
	s.hardness = hardness
	s.questions = questions
	s.position = 0
	return nil
}

// Advance 前移或后移位置，越界时收敛到边界，从不回绕
func (s *Session) Advance(delta int) int {
	s.position += delta
	if s.position < 0 {
		s.position = 0
	}
	if max := len(s.questions) - 1; s.position > max && max >= 0 {
		s.position = max
	}
	if len(s.questions) == 0 {
		s.position = 0
	}
	return s.position
}

// Current 返回当前题目；列表为空时 ok 为 false，调用方应展示空态
func (s *Session) Current() (model.Question, bool) {
	if len(s.questions) == 0 {
		return model.Question{}, false
	}
	return s.questions[s.position], true
}

func (s *Session) Position() int {
	return s.position
}

func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) CategoryID() *uint {
	return s.categoryID
}

func (s *Session) Hardness() *model.Hardness {
	return s.hardness
}
