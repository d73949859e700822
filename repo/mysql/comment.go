package mysql

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

type CommentRepository interface {
	// BatchCreateComments 批量创建评论（帖子创建/更新事务内调用）
	BatchCreateComments(ctx context.Context, db *gorm.DB, comments []*entities.Comment) error

	// GetCommentsByPostID 获取指定帖子的全部评论
	// - 注意事项: 不校验帖子是否存在；没有评论时返回空列表而不是错误
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// UpdateCommentReview 更新单条评论的内容
	// - postID 条件防止把评论改挂到别的帖子名下；记录不存在返回 ErrRepoNotFound
	UpdateCommentReview(ctx context.Context, db *gorm.DB, commentID uint64, postID uint64, review string) error

	// DeleteCommentsByIDs 按主键批量删除评论（孤儿清理路径）
	DeleteCommentsByIDs(ctx context.Context, db *gorm.DB, ids []uint64) error

	// DeleteCommentsByPostID 删除指定帖子的全部评论（帖子级联删除路径）
	DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID uint64) error
}

type commentRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewCommentRepository 创建 CommentRepository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// BatchCreateComments 批量创建评论
func (r *commentRepository) BatchCreateComments(ctx context.Context, db *gorm.DB, comments []*entities.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(comments).Error; err != nil {
		return err
	}
	return nil
}

// GetCommentsByPostID 获取指定帖子的全部评论
func (r *commentRepository) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateCommentReview 更新单条评论的内容
func (r *commentRepository) UpdateCommentReview(ctx context.Context, db *gorm.DB, commentID uint64, postID uint64, review string) error {
	result := db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ? AND post_id = ?", commentID, postID).
		Updates(map[string]interface{}{
			"review":     review,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteCommentsByIDs 按主键批量删除评论
func (r *commentRepository) DeleteCommentsByIDs(ctx context.Context, db *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Delete(&entities.Comment{}, ids).Error; err != nil {
		return err
	}
	return nil
}

// DeleteCommentsByPostID 删除指定帖子的全部评论
// db 参数是执行此操作的数据库句柄
func (r *commentRepository) DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	result := db.WithContext(ctx).Where("post_id = ?", postID).Delete(&entities.Comment{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
