package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// PostService 定义了帖子聚合（帖子/详情/评论/标签）的业务逻辑接口。
type PostService interface {
	// CreatePost 在单个事务中创建帖子及其全部关联。
	// - 详情缺省时自动补一条空详情；标签按名称查找或创建后建立关联。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostVO, error)

	// GetPostByID 获取单个帖子（含详情/评论/标签）。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error)

	// ListPosts 获取全部帖子列表，无分页。
	ListPosts(ctx context.Context) ([]*vo.PostVO, error)

	// GetUserPosts 获取指定作者的全部帖子。
	// - 作者没有帖子时返回空列表，不报错。
	GetUserPosts(ctx context.Context, authorID uint64) ([]*vo.PostVO, error)

	// UpdatePost 在单个事务中按白名单合并更新帖子及其关联。
	// - 标量字段: nil 表示不更新。
	// - 集合字段 (Comments/Tags): nil 表示原样保留；非 nil 表示以提交内容为准对账，
	//   缺席的已有评论会被删除，标签关联整体替换（标签行本身保留）。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error)

	// DeletePost 在单个事务中显式级联删除帖子。
	// - 删除顺序: 评论 -> 详情 -> 标签关联(连接表) -> 帖子本体；标签行保留。
	// - 返回删除前的帖子快照；未找到时返回 commonerrors.ErrRepoNotFound。
	DeletePost(ctx context.Context, id uint64) (*vo.PostVO, error)

	// GetPostComments 获取指定帖子的全部评论。
	// - 没有评论时返回空列表。
	GetPostComments(ctx context.Context, postID uint64) ([]vo.CommentVO, error)
}

// postService 是 PostService 接口的实现。
// 事务边界在服务层: 仓库方法都接受 db 句柄，由这里的 db.Transaction 统一编排。
type postService struct {
	db             *gorm.DB
	postRepo       mysql.PostRepository
	postDetailRepo mysql.PostDetailRepository
	commentRepo    mysql.CommentRepository
	tagRepo        mysql.TagRepository
	logger         *core.ZapLogger
}

// NewPostService 是 postService 的构造函数。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	postDetailRepo mysql.PostDetailRepository,
	commentRepo mysql.CommentRepository,
	tagRepo mysql.TagRepository,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:             db,
		postRepo:       postRepo,
		postDetailRepo: postDetailRepo,
		commentRepo:    commentRepo,
		tagRepo:        tagRepo,
		logger:         logger,
	}
}

// CreatePost 实现帖子聚合的事务性创建。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostVO, error) {
	post := &entities.Post{
		Title:    req.Title,
		AuthorID: req.AuthorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. 帖子本体，拿到自增 ID
		if err := s.postRepo.CreatePost(ctx, tx, post); err != nil {
			return err
		}

		// 2. 详情：请求未携带时补一条空详情，保证一对一关系总是成立
		detail := &entities.PostDetail{PostID: post.ID}
		if req.Detail != nil {
			detail.Description = req.Detail.Description
		}
		if err := s.postDetailRepo.CreatePostDetail(ctx, tx, detail); err != nil {
			return err
		}

		// 3. 初始评论
		if len(req.Comments) > 0 {
			comments := make([]*entities.Comment, 0, len(req.Comments))
			for _, c := range req.Comments {
				comments = append(comments, &entities.Comment{
					PostID: post.ID,
					Review: c.Review,
				})
			}
			if err := s.commentRepo.BatchCreateComments(ctx, tx, comments); err != nil {
				return err
			}
		}

		// 4. 标签：按名称查找或创建，再整体建立关联
		if len(req.Tags) > 0 {
			names := make([]string, 0, len(req.Tags))
			for _, t := range req.Tags {
				names = append(names, t.Name)
			}
			tags, err := s.tagRepo.GetOrCreateTagsByName(ctx, tx, names)
			if err != nil {
				return err
			}
			if err := s.postRepo.ReplaceTags(ctx, tx, post, tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建帖子事务失败", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.logger.Info("创建帖子成功", zap.Uint64("postID", post.ID))
	// 事务提交后重新加载完整聚合，保证返回的数据与库内一致
	return s.GetPostByID(ctx, post.ID)
}

// GetPostByID 实现获取单个帖子聚合。
func (s *postService) GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewPostVOFromEntity(post), nil
}

// ListPosts 实现获取全部帖子。
func (s *postService) ListPosts(ctx context.Context) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapPostsToPostVOs(posts), nil
}

// GetUserPosts 实现按作者获取帖子列表。
func (s *postService) GetUserPosts(ctx context.Context, authorID uint64) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.GetPostsByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return vo.MapPostsToPostVOs(posts), nil
}

// UpdatePost 实现帖子聚合的事务性合并更新。
func (s *postService) UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error) {
	// 先加载当前聚合：既是存在性检查，也是评论对账的基准
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("尝试更新帖子但未找到记录", zap.Uint64("postID", id))
		}
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. 标量字段
		if req.Title != nil || req.AuthorID != nil {
			if err := s.postRepo.UpdatePost(ctx, tx, id, req.Title, req.AuthorID, ""); err != nil {
				return err
			}
		}

		// 2. 详情描述
		if req.Detail != nil {
			if post.Detail != nil {
				if err := s.postDetailRepo.UpdateDescriptionByPostID(ctx, tx, id, req.Detail.Description); err != nil {
					return err
				}
			} else {
				// 正常流程下详情在创建时就存在，这里兜底补齐
				detail := &entities.PostDetail{PostID: id, Description: req.Detail.Description}
				if err := s.postDetailRepo.CreatePostDetail(ctx, tx, detail); err != nil {
					return err
				}
			}
		}

		// 3. 评论对账：以提交集合为准做差异增删改
		if req.Comments != nil {
			if err := s.reconcileComments(ctx, tx, post, req.Comments); err != nil {
				return err
			}
		}

		// 4. 标签整体替换
		if req.Tags != nil {
			names := make([]string, 0, len(req.Tags))
			for _, t := range req.Tags {
				names = append(names, t.Name)
			}
			tags, err := s.tagRepo.GetOrCreateTagsByName(ctx, tx, names)
			if err != nil {
				return err
			}
			if err := s.postRepo.ReplaceTags(ctx, tx, post, tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("更新帖子事务失败", zap.Error(err), zap.Uint64("postID", id))
		return nil, err
	}

	s.logger.Info("更新帖子成功", zap.Uint64("postID", id))
	return s.GetPostByID(ctx, id)
}

// reconcileComments 把提交的评论集合对账到数据库：
// ID 为 0 的新增；ID 匹配已有评论的更新内容；库里有但提交集合里缺席的删除。
func (s *postService) reconcileComments(ctx context.Context, tx *gorm.DB, post *entities.Post, submitted []dto.UpdateCommentDTO) error {
	submittedIDs := make(map[uint64]struct{}, len(submitted))
	var toCreate []*entities.Comment

	for _, c := range submitted {
		if c.ID == 0 {
			toCreate = append(toCreate, &entities.Comment{
				PostID: post.ID,
				Review: c.Review,
			})
			continue
		}
		submittedIDs[c.ID] = struct{}{}
		if err := s.commentRepo.UpdateCommentReview(ctx, tx, c.ID, post.ID, c.Review); err != nil {
			return err
		}
	}

	// 孤儿清理：库里有、提交集合里没有的评论
	var toDelete []uint64
	for i := range post.Comments {
		if _, ok := submittedIDs[post.Comments[i].ID]; !ok {
			toDelete = append(toDelete, post.Comments[i].ID)
		}
	}
	if err := s.commentRepo.DeleteCommentsByIDs(ctx, tx, toDelete); err != nil {
		return err
	}

	return s.commentRepo.BatchCreateComments(ctx, tx, toCreate)
}

// DeletePost 实现帖子聚合的事务性级联删除。
func (s *postService) DeletePost(ctx context.Context, id uint64) (*vo.PostVO, error) {
	// 先取完整快照，删除成功后返回给调用方
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snapshot := vo.NewPostVOFromEntity(post)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 级联顺序：子记录先行，帖子本体最后；标签行保留，只清连接表
		if err := s.commentRepo.DeleteCommentsByPostID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.postDetailRepo.DeletePostDetailByPostID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.postRepo.ClearTags(ctx, tx, post); err != nil {
			return err
		}
		return s.postRepo.DeletePost(ctx, tx, id)
	})
	if err != nil {
		s.logger.Error("删除帖子事务失败", zap.Error(err), zap.Uint64("postID", id))
		return nil, err
	}

	s.logger.Info("删除帖子成功", zap.Uint64("postID", id))
	return snapshot, nil
}

// GetPostComments 实现获取帖子评论列表。
func (s *postService) GetPostComments(ctx context.Context, postID uint64) ([]vo.CommentVO, error) {
	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return vo.MapCommentsToCommentVOs(comments), nil
}
