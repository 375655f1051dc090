package repository

import (
	"quizbank_backend/internal/model"

	"gorm.io/gorm"
)

// AnswerRepository 处理用户答题记录的数据库操作
type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// FindByUserAndQuestion 查找用户对特定题目的作答记录
func (r *AnswerRepository) FindByUserAndQuestion(userID, questionID uint) (*model.UserAnswer, error) {
	var answer model.UserAnswer
	err := r.DB.Where("user_id = ? AND question_id = ?", userID, questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// CountByUser 用户的作答总数
func (r *AnswerRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserAnswer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountCorrectByUser 用户答对的数量
func (r *AnswerRepository) CountCorrectByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserAnswer{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}

// DeleteByUser 删除用户的全部作答记录，返回删除条数
func (r *AnswerRepository) DeleteByUser(userID uint) (int64, error) {
	result := r.DB.Where("user_id = ?", userID).Delete(&model.UserAnswer{})
	return result.RowsAffected, result.Error
}
