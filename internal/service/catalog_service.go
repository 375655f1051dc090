package service

import (
	"context"
	"encoding/json"
	"errors"
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"quizbank_backend/internal/util"
	"quizbank_backend/pkg/logger"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const categoryCacheKey = "quizbank:categories"
const categoryCacheTTL = 30 * time.Minute

// QuestionInput 创建题目的输入
type QuestionInput struct {
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
	Hardness      *model.Hardness
	CategoryID    *uint
}

// CatalogService 维护题目与分类目录
type CatalogService struct {
	CategoryRepo *repository.CategoryRepository
	QuestionRepo *repository.QuestionRepository
	DB           *gorm.DB
	Redis        *redis.Client // 可为 nil，降级为直查数据库
}

func NewCatalogService(categoryRepo *repository.CategoryRepository, questionRepo *repository.QuestionRepository, db *gorm.DB, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		CategoryRepo: categoryRepo,
		QuestionRepo: questionRepo,
		DB:           db,
		Redis:        rdb,
	}
}

// ListCategories 按创建顺序返回分类，优先走缓存
func (s *CatalogService) ListCategories() ([]model.Category, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if data, err := s.Redis.Get(ctx, categoryCacheKey).Result(); err == nil {
			var categories []model.Category
			if json.Unmarshal([]byte(data), &categories) == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.CategoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			if err := s.Redis.Set(ctx, categoryCacheKey, data, categoryCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache categories", zap.Error(err))
			}
		}
	}

	return categories, nil
}

func (s *CatalogService) CreateCategory(name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrCategoryNameRequired
	}

	_, err := s.CategoryRepo.FindByName(name)
	if err == nil {
		return nil, util.ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{Name: name}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}

	s.invalidateCategoryCache()
	return category, nil
}

// DeleteCategory 删除分类。引用该分类的题目将被置空分类而不是删除，
// 整个级联在一个事务里完成。
func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.CategoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCategoryNotFound
		}
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Question{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, id).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCategoryCache()
	return nil
}

// ListQuestions 按过滤条件返回题目。未知的过滤值返回空集而不是错误。
// includeAnswer 为 false 时清空正确答案字段（普通用户不可见）。
func (s *CatalogService) ListQuestions(filter repository.QuestionFilter, includeAnswer bool) ([]model.Question, error) {
	questions, err := s.QuestionRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	if !includeAnswer {
		for i := range questions {
			questions[i].CorrectAnswer = ""
		}
	}

	return questions, nil
}

func (s *CatalogService) GetQuestion(id uint, includeAnswer bool) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if !includeAnswer {
		question.CorrectAnswer = ""
	}

	return question, nil
}

func (s *CatalogService) validateQuestionInput(input QuestionInput) error {
	if strings.TrimSpace(input.QuestionText) == "" ||
		strings.TrimSpace(input.OptionA) == "" ||
		strings.TrimSpace(input.OptionB) == "" ||
		strings.TrimSpace(input.OptionC) == "" ||
		strings.TrimSpace(input.OptionD) == "" {
		return util.ErrQuestionFieldsRequired
	}

	if !model.IsValidAnswerOption(input.CorrectAnswer) {
		return util.ErrInvalidAnswerOption
	}

	if input.Hardness != nil && !model.IsValidHardness(*input.Hardness) {
		return util.ErrInvalidHardness
	}

	if input.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrCategoryNotFound
			}
			return err
		}
	}

	return nil
}

func (s *CatalogService) CreateQuestion(input QuestionInput) (*model.Question, error) {
	if err := s.validateQuestionInput(input); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuestionText:  strings.TrimSpace(input.QuestionText),
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: input.CorrectAnswer,
		Hardness:      input.Hardness,
		CategoryID:    input.CategoryID,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	// 带出分类信息
	return s.QuestionRepo.FindByID(question.ID)
}

// BulkCreateQuestions 批量创建题目，全部校验通过后在一个事务里写入
func (s *CatalogService) BulkCreateQuestions(inputs []QuestionInput) ([]model.Question, error) {
	for _, input := range inputs {
		if err := s.validateQuestionInput(input); err != nil {
			return nil, err
		}
	}

	questions := make([]model.Question, 0, len(inputs))
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			question := model.Question{
				QuestionText:  strings.TrimSpace(input.QuestionText),
				OptionA:       input.OptionA,
				OptionB:       input.OptionB,
				OptionC:       input.OptionC,
				OptionD:       input.OptionD,
				CorrectAnswer: input.CorrectAnswer,
				Hardness:      input.Hardness,
				CategoryID:    input.CategoryID,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			questions = append(questions, question)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return questions, nil
}

// DeleteQuestion 删除题目并级联删除所有引用它的答题记录，同一事务内完成
func (s *CatalogService) DeleteQuestion(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

func (s *CatalogService) invalidateCategoryCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), categoryCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate category cache", zap.Error(err))
	}
}
