package controllers

import (
	"strconv"
	"upkeep-http-service/internal/app/middleware"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/domain/services"
	"upkeep-http-service/internal/domain/services/container"
	"upkeep-http-service/internal/error/code"
	"upkeep-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceRequestController 定义工单控制器接口
type InterfaceRequestController interface {
	CreateRequest()
	GetResidentRequests()
	GetTechnicianRequests()
	UpdateStatus()
	GetAllRequests()
	AssignTechnician()
}

// RequestController 处理维修工单请求
type RequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRequestController 创建一个新的工单控制器
func NewRequestController(ctx *gin.Context, container *container.ServiceContainer) *RequestController {
	return &RequestController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateRequestForm 表示创建工单的表单，附件由上传中间件单独处理
type CreateRequestForm struct {
	Title       string `form:"title" binding:"required,min=5,max=255" example:"厨房水管漏水"`
	Description string `form:"description" binding:"required,min=10,max=2000" example:"水槽下方的水管接口处持续渗水"`
	Category    string `form:"category" binding:"required,oneof=plumbing electrical hvac appliance general emergency" example:"plumbing"`
	Priority    string `form:"priority" binding:"omitempty,oneof=low medium high urgent" example:"high"`
}

// UpdateStatusRequest 表示更新工单状态的请求
type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required,oneof=assigned in-progress completed cancelled" example:"in-progress"`
	WorkNotes string `json:"workNotes" binding:"omitempty,max=2000" example:"已更换水管接口，观察一天"`
}

// AssignTechnicianRequest 表示分配技术员的请求
type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technicianId" binding:"required" example:"3"`
}

// HandleRequestFunc 返回一个处理工单请求的Gin处理函数
func HandleRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRequestController(ctx, container)

		switch method {
		case "createRequest":
			controller.CreateRequest()
		case "getResidentRequests":
			controller.GetResidentRequests()
		case "getTechnicianRequests":
			controller.GetTechnicianRequests()
		case "updateStatus":
			controller.UpdateStatus()
		case "getAllRequests":
			controller.GetAllRequests()
		case "assignTechnician":
			controller.AssignTechnician()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// requestService 从容器中取出工单服务
func (c *RequestController) requestService() services.InterfaceRequestService {
	return c.Container.GetService("request").(services.InterfaceRequestService)
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		response.FailWithMessage(ctx, code.ErrBind, "无效的ID参数", nil)
		return 0, false
	}
	return uint(id), true
}

// CreateRequest 创建维修工单
// @Summary      创建维修工单
// @Description  居民创建新的维修工单，可附带不超过5个图片或视频附件
// @Tags         Requests
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "标题（5-255字符）"
// @Param        description  formData  string  true   "描述（10-2000字符）"
// @Param        category     formData  string  true   "类别"  Enums(plumbing, electrical, hvac, appliance, general, emergency)
// @Param        priority     formData  string  false  "优先级，默认medium"  Enums(low, medium, high, urgent)
// @Param        files        formData  file    false  "附件文件"
// @Success      201  {object}  map[string]interface{} "创建成功，返回完整工单"
// @Failure      400  {object}  ErrorResponse "请求参数错误"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /requests [post]
func (c *RequestController) CreateRequest() {
	var form CreateRequestForm
	if err := c.Ctx.ShouldBind(&form); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	request := &models.MaintenanceRequest{
		ResidentID:  middleware.CurrentUserID(c.Ctx),
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Priority:    form.Priority,
		MediaURLs:   middleware.MediaURLsFromContext(c.Ctx),
	}

	result, err := c.requestService().CreateRequest(request)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建工单失败", nil)
		return
	}

	response.Created(c.Ctx, result)
}

// GetResidentRequests 获取居民的工单列表
// @Summary      获取居民的工单
// @Description  获取指定居民的全部工单，按创建时间倒序；居民只能查询自己的工单，管理员不受限制
// @Tags         Requests
// @Produce      json
// @Security     BearerAuth
// @Param        residentId  path  int  true  "居民ID"
// @Success      200  {object}  map[string]interface{} "工单列表"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      403  {object}  ErrorResponse "无权查看他人的工单"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /requests/resident/{residentId} [get]
func (c *RequestController) GetResidentRequests() {
	residentID, ok := parseIDParam(c.Ctx, "residentId")
	if !ok {
		return
	}

	// 居民只能访问自己的工单
	if middleware.CurrentRole(c.Ctx) != models.RoleAdmin &&
		middleware.CurrentUserID(c.Ctx) != residentID {
		response.Fail(c.Ctx, code.ErrNotRequestOwner, nil)
		return
	}

	requests, err := c.requestService().GetRequestsByResident(residentID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询工单失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// GetTechnicianRequests 获取技术员的工单列表
// @Summary      获取技术员的工单
// @Description  获取分配给指定技术员的全部工单，紧急程度高的排在前面；技术员只能查询自己的工单
// @Tags         Requests
// @Produce      json
// @Security     BearerAuth
// @Param        technicianId  path  int  true  "技术员ID"
// @Success      200  {object}  map[string]interface{} "工单列表"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      403  {object}  ErrorResponse "无权查看他人的工单"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /requests/technician/{technicianId} [get]
func (c *RequestController) GetTechnicianRequests() {
	technicianID, ok := parseIDParam(c.Ctx, "technicianId")
	if !ok {
		return
	}

	if middleware.CurrentRole(c.Ctx) != models.RoleAdmin &&
		middleware.CurrentUserID(c.Ctx) != technicianID {
		response.Fail(c.Ctx, code.ErrNotRequestOwner, nil)
		return
	}

	requests, err := c.requestService().GetRequestsByTechnician(technicianID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询工单失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// UpdateStatus 更新工单状态
// @Summary      更新工单状态
// @Description  技术员更新分配给自己的工单状态并可附加工作备注，状态变为completed时记录完成时间
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                  true  "工单ID"
// @Param        request  body  UpdateStatusRequest  true  "状态更新参数"
// @Success      200  {object}  map[string]interface{} "更新后的工单"
// @Failure      400  {object}  ErrorResponse "请求参数错误"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      403  {object}  ErrorResponse "工单未分配给当前技术员"
// @Failure      404  {object}  ErrorResponse "工单不存在"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /requests/{id}/status [put]
func (c *RequestController) UpdateStatus() {
	requestID, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	result, err := c.requestService().UpdateStatus(
		requestID,
		middleware.CurrentUserID(c.Ctx),
		middleware.CurrentRole(c.Ctx),
		req.Status,
		req.WorkNotes,
	)
	if err != nil {
		switch err.Error() {
		case "维修工单不存在":
			response.Fail(c.Ctx, code.ErrRequestNotFound, nil)
		case "该工单未分配给当前技术员":
			response.Fail(c.Ctx, code.ErrRequestNotAssigned, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新工单失败", nil)
		}
		return
	}

	response.Success(c.Ctx, result)
}

// GetAllRequests 分页获取所有工单
// @Summary      获取所有工单
// @Description  管理员分页查看全部工单，可按状态和类别过滤，两个过滤条件同时给定时取交集
// @Tags         Requests
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "页码，默认1"
// @Param        limit     query  int     false  "每页数量，默认10"
// @Param        status    query  string  false  "状态过滤"  Enums(new, assigned, in-progress, completed, cancelled)
// @Param        category  query  string  false  "类别过滤"  Enums(plumbing, electrical, hvac, appliance, general, emergency)
// @Success      200  {object}  map[string]interface{} "工单列表及分页信息"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      403  {object}  ErrorResponse "权限不足"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /requests [get]
func (c *RequestController) GetAllRequests() {
	var pagination models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&pagination); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的分页参数", nil)
		return
	}
	pagination.Normalize()

	status := c.Ctx.Query("status")
	category := c.Ctx.Query("category")

	requests, total, err := c.requestService().GetAllRequests(
		pagination.Page, pagination.Limit, status, category)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询工单失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"requests":   requests,
		"pagination": models.NewPaginationResult(total, pagination.Page, pagination.Limit),
	})
}

// AssignTechnician 分配技术员
// @Summary      分配技术员
// @Description  管理员将工单分配给技术员，分配后工单状态强制变为assigned
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                      true  "工单ID"
// @Param        request  body  AssignTechnicianRequest  true  "分配参数"
// @Success      200  {object}  map[string]interface{} "更新后的工单"
// @Failure      400  {object}  ErrorResponse "无效的技术员ID"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      403  {object}  ErrorResponse "权限不足"
// @Failure      404  {object}  ErrorResponse "工单不存在"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /requests/{id}/assign [put]
func (c *RequestController) AssignTechnician() {
	requestID, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req AssignTechnicianRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	result, err := c.requestService().AssignTechnician(requestID, req.TechnicianID)
	if err != nil {
		switch err.Error() {
		case "维修工单不存在":
			response.Fail(c.Ctx, code.ErrRequestNotFound, nil)
		case "无效的技术员ID":
			response.Fail(c.Ctx, code.ErrInvalidTechnician, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "分配技术员失败", nil)
		}
		return
	}

	response.Success(c.Ctx, result)
}
