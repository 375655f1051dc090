package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsEmpty(t *testing.T) {
	_, db := newTestCatalog(t)
	stats := newTestStats(t, db)

	snapshot, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Zero(t, snapshot.TotalAnswers)
	assert.Zero(t, snapshot.CorrectAnswers)
	assert.Zero(t, snapshot.IncorrectAnswers)
	// 零作答时不给正确率，避免 0/0
	assert.Nil(t, snapshot.Percentage)
}

func TestGetStatsAfterSubmissions(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)
	stats := newTestStats(t, db)

	q1 := mustCreateQuestion(t, catalog, validQuestionInput())
	q2 := mustCreateQuestion(t, catalog, validQuestionInput())

	_, err := quiz.SubmitAnswer(1, q1.ID, "D")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(1, q2.ID, "A")
	require.NoError(t, err)

	snapshot, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, snapshot.TotalAnswers)
	assert.EqualValues(t, 1, snapshot.CorrectAnswers)
	assert.EqualValues(t, 1, snapshot.IncorrectAnswers)
	require.NotNil(t, snapshot.Percentage)
	assert.Equal(t, 50.0, *snapshot.Percentage)
}

func TestGetStatsAllCorrect(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)
	stats := newTestStats(t, db)

	q := mustCreateQuestion(t, catalog, validQuestionInput())
	_, err := quiz.SubmitAnswer(1, q.ID, "D")
	require.NoError(t, err)

	snapshot, err := stats.GetStats(1)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Percentage)
	assert.Equal(t, 100.0, *snapshot.Percentage)
}

func TestGetStatsPercentageRounding(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)
	stats := newTestStats(t, db)

	q1 := mustCreateQuestion(t, catalog, validQuestionInput())
	q2 := mustCreateQuestion(t, catalog, validQuestionInput())
	q3 := mustCreateQuestion(t, catalog, validQuestionInput())

	_, err := quiz.SubmitAnswer(1, q1.ID, "D")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(1, q2.ID, "A")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(1, q3.ID, "B")
	require.NoError(t, err)

	// 1/3 保留一位小数
	snapshot, err := stats.GetStats(1)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Percentage)
	assert.Equal(t, 33.3, *snapshot.Percentage)
}

func TestGetStatsIsolatedPerUser(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)
	stats := newTestStats(t, db)

	q := mustCreateQuestion(t, catalog, validQuestionInput())
	_, err := quiz.SubmitAnswer(1, q.ID, "D")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(2, q.ID, "A")
	require.NoError(t, err)

	first, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.CorrectAnswers)
	assert.EqualValues(t, 0, first.IncorrectAnswers)

	second, err := stats.GetStats(2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, second.CorrectAnswers)
	assert.EqualValues(t, 1, second.IncorrectAnswers)
}

func TestResetStats(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)
	stats := newTestStats(t, db)

	q1 := mustCreateQuestion(t, catalog, validQuestionInput())
	q2 := mustCreateQuestion(t, catalog, validQuestionInput())

	_, err := quiz.SubmitAnswer(1, q1.ID, "D")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(1, q2.ID, "A")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(2, q1.ID, "D")
	require.NoError(t, err)

	deleted, err := stats.ResetStats(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	snapshot, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Zero(t, snapshot.TotalAnswers)
	assert.Nil(t, snapshot.Percentage)

	// 其他用户不受影响
	other, err := stats.GetStats(2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, other.TotalAnswers)

	// 幂等：再次重置删除 0 条
	deleted, err = stats.ResetStats(1)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestStatsShrinkAfterQuestionDelete(t *testing.T) {
	catalog, db := newTestCatalog(t)
	quiz := newTestQuiz(t, db)
	stats := newTestStats(t, db)

	q1 := mustCreateQuestion(t, catalog, validQuestionInput())
	q2 := mustCreateQuestion(t, catalog, validQuestionInput())

	_, err := quiz.SubmitAnswer(1, q1.ID, "D")
	require.NoError(t, err)
	_, err = quiz.SubmitAnswer(1, q2.ID, "A")
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteQuestion(q1.ID))

	// 删除题目连带删除其答题记录，统计随之缩小
	snapshot, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, snapshot.TotalAnswers)
	assert.EqualValues(t, 0, snapshot.CorrectAnswers)
	assert.EqualValues(t, 1, snapshot.IncorrectAnswers)
}
