package controller

import (
	"errors"
	"quizbank_backend/internal/model"
	"quizbank_backend/internal/repository"
	"quizbank_backend/internal/service"
	"quizbank_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Catalog *service.CatalogService
	Quiz    *service.QuizService
}

func NewQuestionController(catalog *service.CatalogService, quiz *service.QuizService) *QuestionController {
	return &QuestionController{
		Catalog: catalog,
		Quiz:    quiz,
	}
}

// parseQuestionFilter 解析查询参数。无法解析的 category_id 当作未知值处理，
// 过滤结果为空集而不是报错。
func parseQuestionFilter(ctx *gin.Context) repository.QuestionFilter {
	var filter repository.QuestionFilter

	if raw := ctx.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			unknown := uint(0)
			filter.CategoryID = &unknown
		} else {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}

	if raw := ctx.Query("hardness"); raw != "" {
		hardness := model.Hardness(raw)
		filter.Hardness = &hardness
	}

	return filter
}

// ListQuestions godoc
// @Summary 获取题目列表
// @Description 按分类和难度过滤题目，普通用户不返回正确答案
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   category_id query int false "分类ID"
// @Param   hardness query string false "难度 easy|medium|hard"
// @Success 200 {object} util.Response{data=[]model.Question} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.Catalog.ListQuestions(parseQuestionFilter(ctx), claims.IsAdmin)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// ListCategories godoc
// @Summary 获取分类列表
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Category} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/questions/categories [get]
func (c *QuestionController) ListCategories(ctx *gin.Context) {
	categories, err := c.Catalog.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}

// GetQuestion godoc
// @Summary 获取单个题目
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Question} "成功"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	question, err := c.Catalog.GetQuestion(uint(id), claims.IsAdmin)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, question)
}

// swagger:model AnswerRequest
type AnswerRequest struct {
	SelectedAnswer string `json:"selected_answer" binding:"required"`
}

// SubmitAnswer godoc
// @Summary 提交答案
// @Description 判题并记录作答，重复作答同一题目覆盖旧记录
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Param   body body AnswerRequest true "所选答案"
// @Success 200 {object} util.Response{data=service.AnswerResult} "成功"
// @Failure 400 {object} util.Response "答案必须是 A/B/C/D"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/questions/{id}/answer [post]
func (c *QuestionController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Quiz.SubmitAnswer(claims.UserID, uint(id), req.SelectedAnswer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidAnswerOption):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
