package service

import (
	"math"
	"quizbank_backend/internal/repository"
)

// StatsSnapshot 用户答题统计快照。Percentage 保留一位小数，
// 没有任何作答时整个字段省略。
type StatsSnapshot struct {
	TotalAnswers     int64    `json:"total_answers"`
	CorrectAnswers   int64    `json:"correct_answers"`
	IncorrectAnswers int64    `json:"incorrect_answers"`
	Percentage       *float64 `json:"percentage,omitempty"`
}

// StatsService 统计是答题记录上的纯投影，不独立存储
type StatsService struct {
	AnswerRepo *repository.AnswerRepository
}

func NewStatsService(answerRepo *repository.AnswerRepository) *StatsService {
	return &StatsService{AnswerRepo: answerRepo}
}

func (s *StatsService) GetStats(userID uint) (*StatsSnapshot, error) {
	total, err := s.AnswerRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	correct, err := s.AnswerRepo.CountCorrectByUser(userID)
	if err != nil {
		return nil, err
	}

	snapshot := &StatsSnapshot{
		TotalAnswers:     total,
		CorrectAnswers:   correct,
		IncorrectAnswers: total - correct,
	}

	if total > 0 {
		percentage := math.Round(float64(correct)/float64(total)*1000) / 10
		snapshot.Percentage = &percentage
	}

	return snapshot, nil
}

// ResetStats 清空用户的全部答题历史，不可恢复，返回删除条数
func (s *StatsService) ResetStats(userID uint) (int64, error) {
	return s.AnswerRepo.DeleteByUser(userID)
}
