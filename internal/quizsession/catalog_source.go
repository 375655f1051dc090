package quizsession

import (
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"quizbank_backend/internal/service"
)

// CatalogSource 用目录服务实现 Source，查询结果不含正确答案
type CatalogSource struct {
	Catalog *service.CatalogService
}

func (c CatalogSource) Questions(categoryID *uint, hardness *model.Hardness) ([]model.Question, error) {
	return c.Catalog.ListQuestions(repository.QuestionFilter{
		CategoryID: categoryID,
		Hardness:   hardness,
	}, false)
}
