package repository

import (
	"quizbank_backend/internal/model"

	"gorm.io/gorm"
)

// QuestionFilter 题目列表的可选过滤条件，两个条件同时给出时取交集
type QuestionFilter struct {
	CategoryID *uint
	Hardness   *model.Hardness
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// Create 创建新的题目
func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// FindAll 按过滤条件查找题目，附带分类信息
func (r *QuestionRepository) FindAll(filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	query := r.DB.Preload("Category")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Hardness != nil {
		query = query.Where("hardness = ?", *filter.Hardness)
	}

	err := query.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Category").First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}
