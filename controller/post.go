package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService // 服务层接口，通过依赖注入传入
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// ListPosts 获取帖子列表，支持按作者筛选
// @Summary      获取帖子列表
// @Description  获取全部帖子（含详情/评论/标签）。携带 userId 查询参数时只返回该作者的帖子。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        userId query uint64 false "按作者ID筛选" format(uint64) minimum(1)
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含帖子列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	// 带 userId 参数时按作者筛选
	if userIDStr := c.Query("userId"); userIDStr != "" {
		authorID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 userId 查询参数")
			return
		}
		postVOs, err := ctrl.postService.GetUserPosts(c.Request.Context(), authorID)
		if err != nil {
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取作者帖子列表失败: "+err.Error())
			return
		}
		response.RespondSuccess(c, postVOs, "作者帖子列表获取成功")
		return
	}

	postVOs, err := ctrl.postService.ListPosts(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, postVOs, "帖子列表获取成功")
}

// GetPostByID 根据 ID 获取单个帖子
// @Summary      获取单个帖子
// @Description  根据路径中的帖子 ID 获取帖子，包含详情、评论和标签。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子ID" format(uint64) minimum(1)
// @Success      200 {object} vo.PostResponseWrapper "成功响应"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts/{id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	postVO, err := ctrl.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, postVO, "帖子获取成功")
}

// CreatePost 创建新帖子
// @Summary      创建新帖子
// @Description  在单个事务中创建帖子及其详情、初始评论和标签。详情缺省时自动补空详情；标签按名称复用或创建。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "创建帖子请求体"
// @Success      200 {object} vo.PostResponseWrapper "创建成功，返回完整的帖子聚合"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建帖子失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, postVO, "帖子创建成功")
}

// UpdatePost 更新帖子
// @Summary      更新帖子
// @Description  白名单式合并更新。标量字段未提交时保持原值；评论/标签集合未提交时原样保留，提交时以提交内容为准对账。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子ID" format(uint64) minimum(1)
// @Param        request body dto.UpdatePostRequest true "更新帖子请求体"
// @Success      200 {object} vo.PostResponseWrapper "更新成功，返回更新后的帖子聚合"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或帖子 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts/{id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新帖子失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, postVO, "帖子更新成功")
}

// DeletePost 删除帖子
// @Summary      删除帖子
// @Description  在单个事务中级联删除帖子及其评论、详情和标签关联（标签本身保留），返回删除前的帖子快照。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子ID" format(uint64) minimum(1)
// @Success      200 {object} vo.PostResponseWrapper "删除成功，包含删除前的快照"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	postVO, err := ctrl.postService.DeletePost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除帖子失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, postVO, "帖子删除成功")
}

// GetPostComments 获取帖子的评论列表
// @Summary      获取帖子评论列表
// @Description  获取指定帖子的全部评论，没有评论时返回空列表。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "帖子ID" format(uint64) minimum(1)
// @Success      200 {object} vo.CommentListResponseWrapper "成功响应，包含评论列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子 ID"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts/{id}/comments [get]
func (ctrl *PostController) GetPostComments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	commentVOs, err := ctrl.postService.GetPostComments(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取评论列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, commentVOs, "评论列表获取成功")
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)                     // GET    /api/v1/posts (?userId= 可选)
		posts.POST("", ctrl.CreatePost)                   // POST   /api/v1/posts
		posts.GET(":id", ctrl.GetPostByID)                // GET    /api/v1/posts/:id
		posts.PUT(":id", ctrl.UpdatePost)                 // PUT    /api/v1/posts/:id
		posts.DELETE(":id", ctrl.DeletePost)              // DELETE /api/v1/posts/:id
		posts.GET(":id/comments", ctrl.GetPostComments)   // GET    /api/v1/posts/:id/comments
	}
}
