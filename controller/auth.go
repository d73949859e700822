package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/service"
)

// AuthController 定义认证控制器的结构体
type AuthController struct {
	authService service.AuthService // 服务层接口，通过依赖注入传入
}

// NewAuthController 构造函数，用于创建 AuthController 实例
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register 处理新用户注册的 HTTP 请求
// @Summary      注册新用户
// @Description  使用邮箱和密码注册新用户，状态与角色取默认值。响应中不包含密码散列。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册请求体"
// @Success      201 {object} vo.UserResponseWrapper "注册成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      409 {object} vo.BaseResponseWrapper "邮箱已被注册"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userVO, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrEmailExists) {
			response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "该邮箱已被注册")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "注册失败: "+err.Error())
		return
	}

	// 资源创建成功返回 201，响应体沿用统一信封
	c.JSON(http.StatusCreated, response.APIResponse[vo.UserVO]{
		Code:    0,
		Message: "注册成功",
		Data:    *userVO,
	})
}

// Login 处理用户登录的 HTTP 请求
// @Summary      用户登录
// @Description  使用邮箱和密码登录。邮箱未注册与密码错误返回相同的 401 响应。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录请求体"
// @Success      200 {object} vo.UserResponseWrapper "登录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "邮箱或密码错误"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userVO, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, myErrors.ErrInvalidCredentials) {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "邮箱或密码错误")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "登录失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, userVO, "登录成功")
}

// RegisterRoutes 注册 AuthController 的路由
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup) {
	auth := group.Group("/auth")
	{
		auth.POST("/register", ctrl.Register) // POST /api/v1/auth/register
		auth.POST("/login", ctrl.Login)       // POST /api/v1/auth/login
	}
}
