package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

type PostDetailRepository interface {
	// CreatePostDetail 创建新帖子详情
	// - 意图: 将新的帖子详情信息插入数据库，与帖子创建处于同一事务
	// - 注意事项: post_details.post_id 上的唯一索引保证一对一关系
	CreatePostDetail(ctx context.Context, db *gorm.DB, postDetail *entities.PostDetail) error

	// GetPostDetailByPostID 根据PostID获取帖子详情
	// - 注意事项: 若帖子详情不存在，返回 commonerrors.ErrRepoNotFound
	GetPostDetailByPostID(ctx context.Context, postID uint64) (*entities.PostDetail, error)

	// UpdateDescriptionByPostID 更新指定帖子的详情描述
	// - 注意事项: 仅更新 description 字段（以及时间戳），避免修改无关字段
	UpdateDescriptionByPostID(ctx context.Context, db *gorm.DB, postID uint64, description string) error

	// DeletePostDetailByPostID 根据 PostID 物理删除帖子详情
	DeletePostDetailByPostID(ctx context.Context, db *gorm.DB, postID uint64) error
}

type postDetailRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewPostDetailRepository 创建 PostDetailRepository 实例
func NewPostDetailRepository(db *gorm.DB) PostDetailRepository {
	return &postDetailRepository{db: db}
}

// CreatePostDetail 创建新帖子详情
func (r *postDetailRepository) CreatePostDetail(ctx context.Context, db *gorm.DB, postDetail *entities.PostDetail) error {
	if err := db.WithContext(ctx).Create(postDetail).Error; err != nil {
		return err
	}
	return nil
}

// GetPostDetailByPostID 根据PostID获取帖子详情
func (r *postDetailRepository) GetPostDetailByPostID(ctx context.Context, postID uint64) (*entities.PostDetail, error) {
	var postDetail entities.PostDetail

	err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&postDetail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &postDetail, nil
}

// UpdateDescriptionByPostID 更新帖子详情描述
func (r *postDetailRepository) UpdateDescriptionByPostID(ctx context.Context, db *gorm.DB, postID uint64, description string) error {
	if err := db.WithContext(ctx).
		Model(&entities.PostDetail{}).
		Where("post_id = ?", postID).
		Updates(map[string]interface{}{
			"description": description,
			"updated_at":  time.Now(),
		}).Error; err != nil {
		return err
	}
	return nil
}

// DeletePostDetailByPostID 按 PostID 物理删除帖子详情
// db 参数是执行此操作的数据库句柄
func (r *postDetailRepository) DeletePostDetailByPostID(ctx context.Context, db *gorm.DB, postID uint64) error {
	result := db.WithContext(ctx).Where("post_id = ?", postID).Delete(&entities.PostDetail{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
