package service

import (
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库只允许一个连接，避免连接池拿到空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Question{},
		&model.UserAnswer{},
	))

	return db
}

func newTestCatalog(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	catalog := NewCatalogService(
		repository.NewCategoryRepository(db),
		repository.NewQuestionRepository(db),
		db,
		nil,
	)
	return catalog, db
}

func newTestQuiz(t *testing.T, db *gorm.DB) *QuizService {
	t.Helper()
	return NewQuizService(
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		db,
	)
}

func newTestStats(t *testing.T, db *gorm.DB) *StatsService {
	t.Helper()
	return NewStatsService(repository.NewAnswerRepository(db))
}

func hardnessPtr(h model.Hardness) *model.Hardness {
	return &h
}

func mustCreateQuestion(t *testing.T, catalog *CatalogService, input QuestionInput) *model.Question {
	t.Helper()
	question, err := catalog.CreateQuestion(input)
	require.NoError(t, err)
	return question
}

func validQuestionInput() QuestionInput {
	return QuestionInput{
		QuestionText:  "2+2?",
		OptionA:       "1",
		OptionB:       "2",
		OptionC:       "3",
		OptionD:       "4",
		CorrectAnswer: "D",
	}
}
