package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录（仅 posts 表本行，关联由各自仓库负责）。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索帖子，并预加载 Detail / Comments / Tags。
	// - 如果未找到帖子，返回 commonerrors.ErrRepoNotFound 错误。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// ListPosts 检索全部帖子（预加载关联），无分页、无排序保证。
	ListPosts(ctx context.Context) ([]*entities.Post, error)

	// GetPostsByAuthorID 检索指定作者发布的全部帖子（预加载关联）。
	// - 作者不存在或没有帖子时返回空列表，不报错。
	GetPostsByAuthorID(ctx context.Context, authorID uint64) ([]*entities.Post, error)

	// UpdatePost 更新帖子的标量字段。
	// - 可选更新 Title, AuthorID；传入 nil 表示不更新对应字段。
	// - 总是会自动更新帖子的修改时间 (updated_at)。
	UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title *string, authorID *uint64, updatedBy string) error

	// ReplaceTags 以 tags 为准整体替换帖子的标签关联（只动连接表 post_tags）。
	ReplaceTags(ctx context.Context, db *gorm.DB, post *entities.Post, tags []*entities.Tag) error

	// ClearTags 清空帖子的标签关联（只动连接表，标签行保留）。
	ClearTags(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// DeletePost 对指定帖子执行物理删除（仅 posts 表本行）。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB        // GORM 数据库实例
	logger *core.ZapLogger // 日志记录器实例
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的数据库插入操作。
// 注意: 使用传入的 db 对象（通常为事务对象 tx）执行数据库操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	// 关联集合由服务层在同一事务中逐仓库写入，这里跳过嵌套关联的自动保存，
	// 避免 GORM 的级联写与显式流程重复落库。
	if err := db.WithContext(ctx).Omit("Detail", "Comments", "Tags").Create(post).Error; err != nil {
		return err
	}
	// 创建成功后，post 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

// GetPostByID 实现根据单个 ID 获取帖子（含关联）。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post

	err := r.db.WithContext(ctx).
		Preload("Detail").
		Preload("Comments").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取帖子未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

// ListPosts 实现获取全部帖子（含关联）。
func (r *postRepository) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Preload("Detail").
		Preload("Comments").
		Preload("Tags").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("获取帖子列表数据库查询失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

// GetPostsByAuthorID 实现按作者获取帖子列表（含关联）。
func (r *postRepository) GetPostsByAuthorID(ctx context.Context, authorID uint64) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Preload("Detail").
		Preload("Comments").
		Preload("Tags").
		Where("author_id = ?", authorID).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("按作者获取帖子列表数据库查询失败", zap.Error(err), zap.Uint64("authorID", authorID))
		return nil, err
	}
	return posts, nil
}

// UpdatePost 实现帖子标量字段 (Title, AuthorID) 的更新。
// 参数为指针类型，如果传入 nil，则对应字段不会被更新。
func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, title *string, authorID *uint64, updatedBy string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if authorID != nil {
		updateMap["author_id"] = *authorID
	}

	// 检查是否有任何字段需要更新。
	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新帖子 (所有可选参数均为nil)",
			zap.Uint64("postID", postID),
		)
		return nil
	}

	// 总是更新 updated_at / updated_by 字段
	updateMap["updated_at"] = time.Now()
	if updatedBy != "" {
		updateMap["updated_by"] = updatedBy
	}

	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新帖子数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("postID", postID),
			zap.Any("updateData", updateMap),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新帖子但未找到记录", zap.Uint64("postID", postID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// ReplaceTags 实现标签关联的整体替换。
// GORM 的 Association Replace 只调整连接表 post_tags，不会创建或删除标签行。
func (r *postRepository) ReplaceTags(ctx context.Context, db *gorm.DB, post *entities.Post, tags []*entities.Tag) error {
	if err := db.WithContext(ctx).Model(post).Association("Tags").Replace(tags); err != nil {
		r.logger.Error("替换帖子标签关联失败", zap.Error(err), zap.Uint64("postID", post.ID))
		return err
	}
	return nil
}

// ClearTags 实现标签关联的清空（删除帖子前调用，保持标签共享生命周期）。
func (r *postRepository) ClearTags(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Model(post).Association("Tags").Clear(); err != nil {
		r.logger.Error("清空帖子标签关联失败", zap.Error(err), zap.Uint64("postID", post.ID))
		return err
	}
	return nil
}

// DeletePost 实现帖子的物理删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
