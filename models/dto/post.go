package dto

// PostDetailDTO 是创建/更新帖子时的详情子结构
type PostDetailDTO struct {
	Description string `json:"description" binding:"omitempty"`
}

// CommentDTO 是创建帖子时的评论子结构
type CommentDTO struct {
	Review string `json:"review" binding:"required"`
}

// UpdateCommentDTO 是更新帖子时的评论子结构。
// - ID 为 0 表示新增评论；非 0 表示更新已有评论。
// - 更新请求的评论集合里缺席的已有评论会被删除（孤儿清理）。
type UpdateCommentDTO struct {
	ID     uint64 `json:"id"`
	Review string `json:"review" binding:"required"`
}

// TagDTO 是帖子请求中的标签子结构，标签按名称查找或创建
type TagDTO struct {
	Name string `json:"name" binding:"required,max=64"`
}

// CreatePostRequest 定义了创建帖子的请求数据结构
// - Detail 缺省时服务层会自动补一条空详情（详情是非可选关系）
type CreatePostRequest struct {
	Title    string         `json:"title" binding:"required,max=255"`  // 帖子标题，必填
	AuthorID uint64         `json:"author_id" binding:"omitempty"`     // 作者ID，可选（关联 users 表）
	Detail   *PostDetailDTO `json:"detail" binding:"omitempty"`        // 帖子详情，可选
	Comments []CommentDTO   `json:"comments" binding:"omitempty,dive"` // 初始评论列表，可选
	Tags     []TagDTO       `json:"tags" binding:"omitempty,dive"`     // 标签列表，可选
}

// UpdatePostRequest 定义了更新帖子的请求数据结构。
// - 标量字段使用指针，nil 表示不更新。
// - 集合字段使用 nil/非 nil 区分: nil 表示集合原样保留；
//   非 nil（包括空切片）表示以提交内容为准做显式对账（差异增删）。
type UpdatePostRequest struct {
	Title    *string            `json:"title" binding:"omitempty,max=255"`
	AuthorID *uint64            `json:"author_id" binding:"omitempty"`
	Detail   *PostDetailDTO     `json:"detail" binding:"omitempty"`
	Comments []UpdateCommentDTO `json:"comments" binding:"omitempty,dive"`
	Tags     []TagDTO           `json:"tags" binding:"omitempty,dive"`
}
