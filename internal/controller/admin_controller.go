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

type AdminController struct {
	Catalog *service.CatalogService
}

func NewAdminController(catalog *service.CatalogService) *AdminController {
	return &AdminController{Catalog: catalog}
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	QuestionText  string          `json:"question_text" binding:"required"`
	OptionA       string          `json:"option_a" binding:"required"`
	OptionB       string          `json:"option_b" binding:"required"`
	OptionC       string          `json:"option_c" binding:"required"`
	OptionD       string          `json:"option_d" binding:"required"`
	CorrectAnswer string          `json:"correct_answer" binding:"required"`
	Hardness      *model.Hardness `json:"hardness"`
	CategoryID    *uint           `json:"category_id"`
}

func (r QuestionRequest) toInput() service.QuestionInput {
	return service.QuestionInput{
		QuestionText:  r.QuestionText,
		OptionA:       r.OptionA,
		OptionB:       r.OptionB,
		OptionC:       r.OptionC,
		OptionD:       r.OptionD,
		CorrectAnswer: r.CorrectAnswer,
		Hardness:      r.Hardness,
		CategoryID:    r.CategoryID,
	}
}

// writeCatalogError 把目录服务的错误映射为HTTP响应
func writeCatalogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionFieldsRequired),
		errors.Is(err, util.ErrInvalidAnswerOption),
		errors.Is(err, util.ErrInvalidHardness),
		errors.Is(err, util.ErrCategoryNameRequired):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrCategoryExists):
		util.Error(ctx, 409, err.Error())
	case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// ListQuestions godoc
// @Summary 获取全部题目（管理员）
// @Description 管理端题目列表，包含正确答案
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Question} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/admin/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	questions, err := c.Catalog.ListQuestions(repository.QuestionFilter{}, true)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// CreateQuestion godoc
// @Summary 创建题目
// @Tags 管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=model.Question} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Catalog.CreateQuestion(req.toInput())
	if err != nil {
		// 创建时引用不存在的分类属于参数错误而不是404
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.BadRequest(ctx, err.Error())
			return
		}
		writeCatalogError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// BulkCreateQuestions godoc
// @Summary 批量创建题目
// @Description 全部校验通过后一次性写入，任何一条不合法则整体失败
// @Tags 管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body []QuestionRequest true "题目列表"
// @Success 201 {object} util.Response{data=[]model.Question} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/admin/questions/bulk [post]
func (c *AdminController) BulkCreateQuestions(ctx *gin.Context) {
	var reqs []QuestionRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inputs := make([]service.QuestionInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.toInput())
	}

	questions, err := c.Catalog.BulkCreateQuestions(inputs)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.BadRequest(ctx, err.Error())
			return
		}
		writeCatalogError(ctx, err)
		return
	}

	util.Created(ctx, questions)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Description 同时级联删除该题目的所有答题记录
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/admin/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.Catalog.DeleteQuestion(uint(id)); err != nil {
		writeCatalogError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Question deleted successfully"})
}

// swagger:model CategoryRequest
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory godoc
// @Summary 创建分类
// @Tags 管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CategoryRequest true "分类名称"
// @Success 201 {object} util.Response{data=model.Category} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "分类已存在"
// @Router /api/admin/categories [post]
func (c *AdminController) CreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.Catalog.CreateCategory(req.Name)
	if err != nil {
		writeCatalogError(ctx, err)
		return
	}

	util.Created(ctx, category)
}

// DeleteCategory godoc
// @Summary 删除分类
// @Description 引用该分类的题目保留，分类引用被置空
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "分类ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "分类不存在"
// @Router /api/admin/categories/{id} [delete]
func (c *AdminController) DeleteCategory(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid category id")
		return
	}

	if err := c.Catalog.DeleteCategory(uint(id)); err != nil {
		writeCatalogError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Category deleted successfully"})
}
