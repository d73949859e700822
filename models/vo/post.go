package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// PostDetailVO 是帖子详情子结构的视图对象
type PostDetailVO struct {
	Description string    `json:"description"` // 详情描述
	CreatedAt   time.Time `json:"created_at"`  // 详情创建时间
	CreatedBy   string    `json:"created_by"`  // 详情创建者
}

// CommentVO 是单条评论的视图对象
type CommentVO struct {
	ID        uint64    `json:"id"`         // 评论ID
	PostID    uint64    `json:"post_id"`    // 所属帖子ID
	Review    string    `json:"review"`     // 评论内容
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间
}

// TagVO 是单个标签的视图对象，不携带帖子反向引用以避免循环负载
type TagVO struct {
	ID   uint64 `json:"id"`   // 标签ID
	Name string `json:"name"` // 标签名
}

// PostVO 定义了帖子的完整视图对象。
// 它聚合了 Post 实体、PostDetail 实体以及 Comment/Tag 实体列表的信息。
type PostVO struct {
	ID        uint64        `json:"id"`               // 帖子ID
	Title     string        `json:"title"`            // 标题
	AuthorID  uint64        `json:"author_id"`        // 作者ID
	CreatedAt time.Time     `json:"created_at"`       // 创建时间
	UpdatedAt time.Time     `json:"updated_at"`       // 更新时间
	Detail    *PostDetailVO `json:"detail,omitempty"` // 详情（一对一）
	Comments  []CommentVO   `json:"comments"`         // 评论列表（一对多）
	Tags      []TagVO       `json:"tags"`             // 标签列表（多对多）
}

// NewCommentVOFromEntity 将单个 Comment 实体转换为 CommentVO
func NewCommentVOFromEntity(comment *entities.Comment) CommentVO {
	if comment == nil {
		return CommentVO{}
	}
	return CommentVO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Review:    comment.Review,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// MapCommentsToCommentVOs 将评论实体列表转换为 VO 列表
func MapCommentsToCommentVOs(comments []*entities.Comment) []CommentVO {
	if len(comments) == 0 {
		return make([]CommentVO, 0) // 返回空的、非 nil 的切片，JSON 序列化为 [] 而不是 null
	}
	vos := make([]CommentVO, 0, len(comments))
	for _, comment := range comments {
		if comment != nil {
			vos = append(vos, NewCommentVOFromEntity(comment))
		}
	}
	return vos
}

// NewPostVOFromEntity 将 Post 实体（含已预加载的关联）转换为 PostVO。
func NewPostVOFromEntity(post *entities.Post) *PostVO {
	if post == nil {
		return nil
	}

	result := &PostVO{
		ID:        post.ID,
		Title:     post.Title,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Comments:  make([]CommentVO, 0, len(post.Comments)),
		Tags:      make([]TagVO, 0, len(post.Tags)),
	}

	if post.Detail != nil {
		result.Detail = &PostDetailVO{
			Description: post.Detail.Description,
			CreatedAt:   post.Detail.CreatedAt,
			CreatedBy:   post.Detail.CreatedBy,
		}
	}
	for i := range post.Comments {
		result.Comments = append(result.Comments, NewCommentVOFromEntity(&post.Comments[i]))
	}
	for _, tag := range post.Tags {
		if tag == nil {
			continue
		}
		result.Tags = append(result.Tags, TagVO{ID: tag.ID, Name: tag.Name})
	}
	return result
}

// MapPostsToPostVOs 是一个辅助函数，用于将帖子实体列表转换为帖子响应VO列表。
func MapPostsToPostVOs(posts []*entities.Post) []*PostVO {
	if len(posts) == 0 {
		return []*PostVO{} // 返回空切片而不是nil，便于前端处理
	}
	vos := make([]*PostVO, 0, len(posts))
	for _, post := range posts {
		if post == nil {
			continue
		}
		vos = append(vos, NewPostVOFromEntity(post))
	}
	return vos
}
