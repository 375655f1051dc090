package service

import (
	"errors"
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"quizbank_backend/internal/util"
	"quizbank_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// AnswerResult 判题结果，正确答案无论对错都回传给客户端做反馈
type AnswerResult struct {
	IsCorrect      bool   `json:"is_correct"`
	CorrectAnswer  string `json:"correct_answer"`
	SelectedAnswer string `json:"selected_answer"`
}

// QuizService 记录并判定用户的作答
type QuizService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	DB           *gorm.DB
}

func NewQuizService(questionRepo *repository.QuestionRepository, answerRepo *repository.AnswerRepository, db *gorm.DB) *QuizService {
	return &QuizService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		DB:           db,
	}
}

// SubmitAnswer 判题并落库。同一用户重复作答同一题目时覆盖旧记录（last write wins），
// 判定与写入在一个事务内，返回的结果一定对应已提交的记录。
func (s *QuizService) SubmitAnswer(userID, questionID uint, selected string) (*AnswerResult, error) {
	if !model.IsValidAnswerOption(selected) {
		return nil, util.ErrInvalidAnswerOption
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	// 按选项键精确比较，不比较选项文本
	isCorrect := selected == question.CorrectAnswer

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.UserAnswer
		err := tx.Where("user_id = ? AND question_id = ?", userID, questionID).First(&existing).Error
		switch {
		case err == nil:
			existing.SelectedAnswer = selected
			existing.IsCorrect = isCorrect
			return tx.Save(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&model.UserAnswer{
				UserID:         userID,
				QuestionID:     questionID,
				SelectedAnswer: selected,
				IsCorrect:      isCorrect,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	result := "incorrect"
	if isCorrect {
		result = "correct"
	}
	monitoring.AnswerCounter.WithLabelValues(result).Inc()

	return &AnswerResult{
		IsCorrect:      isCorrect,
		CorrectAnswer:  question.CorrectAnswer,
		SelectedAnswer: selected,
	}, nil
}
