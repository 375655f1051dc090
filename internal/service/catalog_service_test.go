package service

import (
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"quizbank_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	category, err := catalog.CreateCategory("Math")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Math", category.Name)

	// 名称两端空白被裁剪
	trimmed, err := catalog.CreateCategory("  Science  ")
	require.NoError(t, err)
	assert.Equal(t, "Science", trimmed.Name)
}

func TestCreateCategoryValidation(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.CreateCategory("")
	assert.ErrorIs(t, err, util.ErrCategoryNameRequired)

	_, err = catalog.CreateCategory("   ")
	assert.ErrorIs(t, err, util.ErrCategoryNameRequired)

	_, err = catalog.CreateCategory("Math")
	require.NoError(t, err)
	_, err = catalog.CreateCategory("Math")
	assert.ErrorIs(t, err, util.ErrCategoryExists)
}

func TestListCategoriesOrder(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	for _, name := range []string{"Math", "History", "Art"} {
		_, err := catalog.CreateCategory(name)
		require.NoError(t, err)
	}

	categories, err := catalog.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	// 创建顺序
	assert.Equal(t, "Math", categories[0].Name)
	assert.Equal(t, "History", categories[1].Name)
	assert.Equal(t, "Art", categories[2].Name)
}

func TestDeleteCategoryNullsQuestionReferences(t *testing.T) {
	catalog, db := newTestCatalog(t)

	category, err := catalog.CreateCategory("Math")
	require.NoError(t, err)

	input := validQuestionInput()
	input.CategoryID = &category.ID
	question := mustCreateQuestion(t, catalog, input)
	require.NotNil(t, question.CategoryID)

	require.NoError(t, catalog.DeleteCategory(category.ID))

	// 题目保留，分类引用被置空
	var reloaded model.Question
	require.NoError(t, db.First(&reloaded, question.ID).Error)
	assert.Nil(t, reloaded.CategoryID)

	var count int64
	db.Model(&model.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteCategoryWithoutReferences(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	category, err := catalog.CreateCategory("Unused")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteCategory(category.ID))

	err = catalog.DeleteCategory(category.ID)
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestCreateQuestionValidation(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	input := validQuestionInput()
	input.OptionB = "   "
	_, err := catalog.CreateQuestion(input)
	assert.ErrorIs(t, err, util.ErrQuestionFieldsRequired)

	input = validQuestionInput()
	input.QuestionText = ""
	_, err = catalog.CreateQuestion(input)
	assert.ErrorIs(t, err, util.ErrQuestionFieldsRequired)

	input = validQuestionInput()
	input.CorrectAnswer = "E"
	_, err = catalog.CreateQuestion(input)
	assert.ErrorIs(t, err, util.ErrInvalidAnswerOption)

	input = validQuestionInput()
	input.CorrectAnswer = "a"
	_, err = catalog.CreateQuestion(input)
	assert.ErrorIs(t, err, util.ErrInvalidAnswerOption)

	input = validQuestionInput()
	input.Hardness = hardnessPtr("extreme")
	_, err = catalog.CreateQuestion(input)
	assert.ErrorIs(t, err, util.ErrInvalidHardness)

	missing := uint(999)
	input = validQuestionInput()
	input.CategoryID = &missing
	_, err = catalog.CreateQuestion(input)
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestCreateQuestionEmbedsCategory(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	category, err := catalog.CreateCategory("Math")
	require.NoError(t, err)

	input := validQuestionInput()
	input.CategoryID = &category.ID
	input.Hardness = hardnessPtr(model.HardnessMedium)
	question := mustCreateQuestion(t, catalog, input)

	require.NotNil(t, question.Category)
	assert.Equal(t, "Math", question.Category.Name)
	require.NotNil(t, question.Hardness)
	assert.Equal(t, model.HardnessMedium, *question.Hardness)
}

func TestListQuestionsFilters(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	math, err := catalog.CreateCategory("Math")
	require.NoError(t, err)
	history, err := catalog.CreateCategory("History")
	require.NoError(t, err)

	easyMath := validQuestionInput()
	easyMath.QuestionText = "1+1?"
	easyMath.CategoryID = &math.ID
	easyMath.Hardness = hardnessPtr(model.HardnessEasy)
	mustCreateQuestion(t, catalog, easyMath)

	hardMath := validQuestionInput()
	hardMath.QuestionText = "17*23?"
	hardMath.CategoryID = &math.ID
	hardMath.Hardness = hardnessPtr(model.HardnessHard)
	mustCreateQuestion(t, catalog, hardMath)

	easyHistory := validQuestionInput()
	easyHistory.QuestionText = "When was 1066?"
	easyHistory.CategoryID = &history.ID
	easyHistory.Hardness = hardnessPtr(model.HardnessEasy)
	mustCreateQuestion(t, catalog, easyHistory)

	// 无过滤 ⇒ 全部
	all, err := catalog.ListQuestions(repository.QuestionFilter{}, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// 按分类
	byCategory, err := catalog.ListQuestions(repository.QuestionFilter{CategoryID: &math.ID}, false)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	// 按难度
	byHardness, err := catalog.ListQuestions(repository.QuestionFilter{Hardness: hardnessPtr(model.HardnessEasy)}, false)
	require.NoError(t, err)
	assert.Len(t, byHardness, 2)

	// 两个条件是交集而不是并集
	both, err := catalog.ListQuestions(repository.QuestionFilter{
		CategoryID: &math.ID,
		Hardness:   hardnessPtr(model.HardnessEasy),
	}, false)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "1+1?", both[0].QuestionText)

	// 未知过滤值 ⇒ 空集而不是错误
	unknown := uint(999)
	empty, err := catalog.ListQuestions(repository.QuestionFilter{CategoryID: &unknown}, false)
	require.NoError(t, err)
	assert.Empty(t, empty)

	weird, err := catalog.ListQuestions(repository.QuestionFilter{Hardness: hardnessPtr("impossible")}, false)
	require.NoError(t, err)
	assert.Empty(t, weird)
}

func TestListQuestionsHidesCorrectAnswer(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	mustCreateQuestion(t, catalog, validQuestionInput())

	hidden, err := catalog.ListQuestions(repository.QuestionFilter{}, false)
	require.NoError(t, err)
	require.Len(t, hidden, 1)
	assert.Empty(t, hidden[0].CorrectAnswer)

	visible, err := catalog.ListQuestions(repository.QuestionFilter{}, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "D", visible[0].CorrectAnswer)
}

func TestGetQuestion(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	question := mustCreateQuestion(t, catalog, validQuestionInput())

	found, err := catalog.GetQuestion(question.ID, false)
	require.NoError(t, err)
	assert.Empty(t, found.CorrectAnswer)

	found, err = catalog.GetQuestion(question.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "D", found.CorrectAnswer)

	_, err = catalog.GetQuestion(999, true)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestBulkCreateQuestionsAllOrNothing(t *testing.T) {
	catalog, db := newTestCatalog(t)

	bad := validQuestionInput()
	bad.CorrectAnswer = "X"

	_, err := catalog.BulkCreateQuestions([]QuestionInput{validQuestionInput(), bad})
	assert.ErrorIs(t, err, util.ErrInvalidAnswerOption)

	var count int64
	db.Model(&model.Question{}).Count(&count)
	assert.Zero(t, count)

	questions, err := catalog.BulkCreateQuestions([]QuestionInput{validQuestionInput(), validQuestionInput()})
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestDeleteQuestionCascadesAnswers(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)

	question := mustCreateQuestion(t, catalog, validQuestionInput())
	other := mustCreateQuestion(t, catalog, validQuestionInput())

	_, err := quiz.SubmitAnswer(1, question.ID, "D")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(2, question.ID, "A")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(1, other.ID, "D")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteQuestion(question.ID))

	_, err = catalog.GetQuestion(question.ID, true)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	// 该题目的所有答题记录被级联删除，其他题目不受影响
	var count int64
	db.Model(&model.UserAnswer{}).Where("question_id = ?", question.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.UserAnswer{}).Where("question_id = ?", other.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	err = catalog.DeleteQuestion(question.ID)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}
