package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// UserController 定义用户控制器的结构体
type UserController struct {
	userService service.UserService // 服务层接口，通过依赖注入传入
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers 获取用户列表，支持按邮箱精确查询
// @Summary      获取用户列表
// @Description  获取全部用户。携带 email 查询参数时改为按邮箱精确查询单个用户。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        email query string false "按邮箱精确查询" format(email)
// @Success      200 {object} vo.UserListResponseWrapper "成功响应，包含用户列表"
// @Failure      404 {object} vo.BaseResponseWrapper "指定邮箱的用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	// 带 email 参数时退化为单用户查询
	if email := c.Query("email"); email != "" {
		userVO, err := ctrl.userService.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "指定邮箱的用户不存在")
				return
			}
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "查询用户失败: "+err.Error())
			return
		}
		response.RespondSuccess(c, userVO, "用户查询成功")
		return
	}

	userVOs, err := ctrl.userService.ListUsers(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取用户列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, userVOs, "用户列表获取成功")
}

// GetUserByID 根据 ID 获取单个用户
// @Summary      获取单个用户
// @Description  根据路径中的用户 ID 获取用户信息。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "用户ID" format(uint64) minimum(1)
// @Success      200 {object} vo.UserResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的用户 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	userVO, err := ctrl.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取用户失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, userVO, "用户获取成功")
}

// CreateUser 创建新用户
// @Summary      创建用户
// @Description  直接创建用户，允许显式指定状态和角色，缺省时取默认值。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "创建用户请求体"
// @Success      200 {object} vo.UserResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      409 {object} vo.BaseResponseWrapper "邮箱已存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userVO, err := ctrl.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrEmailExists) {
			response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "该邮箱已存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建用户失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, userVO, "用户创建成功")
}

// UpdateUser 更新用户
// @Summary      更新用户
// @Description  白名单式合并更新：请求体中未出现的字段保持原值，提交的密码会被重新散列。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "用户ID" format(uint64) minimum(1)
// @Param        request body dto.UpdateUserRequest true "更新用户请求体"
// @Success      200 {object} vo.UserResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或用户 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "邮箱已被其他用户使用"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userVO, err := ctrl.userService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户不存在")
			return
		}
		if errors.Is(err, myErrors.ErrEmailExists) {
			response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "该邮箱已被其他用户使用")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新用户失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, userVO, "用户更新成功")
}

// DeleteUser 删除用户
// @Summary      删除用户
// @Description  物理删除指定用户，响应中返回删除前的用户快照。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "用户ID" format(uint64) minimum(1)
// @Success      200 {object} vo.UserResponseWrapper "删除成功，包含删除前的快照"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的用户 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	userVO, err := ctrl.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除用户失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, userVO, "用户删除成功")
}

// RegisterRoutes 注册 UserController 的路由
func (ctrl *UserController) RegisterRoutes(group *gin.RouterGroup) {
	users := group.Group("/users")
	{
		users.GET("", ctrl.ListUsers)         // GET    /api/v1/users (?email= 可选)
		users.POST("", ctrl.CreateUser)       // POST   /api/v1/users
		users.GET(":id", ctrl.GetUserByID)    // GET    /api/v1/users/:id
		users.PUT(":id", ctrl.UpdateUser)     // PUT    /api/v1/users/:id
		users.DELETE(":id", ctrl.DeleteUser)  // DELETE /api/v1/users/:id
	}
}
