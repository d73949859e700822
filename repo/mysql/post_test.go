package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/blog_service/models/entities"
)

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger(t)
	postRepo := NewPostRepository(db, logger)
	detailRepo := NewPostDetailRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	post := &entities.Post{Title: "hello world", AuthorID: 7}
	if err := postRepo.CreatePost(ctx, db, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	if post.ID == 0 {
		t.Fatal("创建帖子后应回填自增 ID")
	}

	if err := detailRepo.CreatePostDetail(ctx, db, &entities.PostDetail{PostID: post.ID, Description: "desc"}); err != nil {
		t.Fatalf("创建帖子详情失败: %v", err)
	}
	if err := commentRepo.BatchCreateComments(ctx, db, []*entities.Comment{
		{PostID: post.ID, Review: "nice"},
		{PostID: post.ID, Review: "great"},
	}); err != nil {
		t.Fatalf("批量创建评论失败: %v", err)
	}

	got, err := postRepo.GetPostByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("获取帖子失败: %v", err)
	}
	if got.Title != "hello world" || got.AuthorID != 7 {
		t.Errorf("帖子标量字段不匹配: %+v", got)
	}
	if got.Detail == nil || got.Detail.Description != "desc" {
		t.Errorf("预加载的详情不匹配: %+v", got.Detail)
	}
	if len(got.Comments) != 2 {
		t.Errorf("预加载的评论数量不匹配: got %d want 2", len(got.Comments))
	}
}

func TestPostRepository_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))

	if _, err := postRepo.GetPostByID(context.Background(), 12345); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("不存在的帖子应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestPostRepository_GetPostsByAuthorID(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	for _, p := range []*entities.Post{
		{Title: "a1", AuthorID: 1},
		{Title: "a2", AuthorID: 1},
		{Title: "b1", AuthorID: 2},
	} {
		if err := postRepo.CreatePost(ctx, db, p); err != nil {
			t.Fatalf("创建帖子失败: %v", err)
		}
	}

	posts, err := postRepo.GetPostsByAuthorID(ctx, 1)
	if err != nil {
		t.Fatalf("按作者获取帖子失败: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("作者 1 的帖子数量不匹配: got %d want 2", len(posts))
	}

	// 没有帖子的作者返回空列表，不报错
	posts, err = postRepo.GetPostsByAuthorID(ctx, 99)
	if err != nil {
		t.Fatalf("按无帖子的作者查询失败: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("无帖子的作者应返回空列表, got %d", len(posts))
	}
}

func TestPostRepository_UpdatePost(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := &entities.Post{Title: "old title", AuthorID: 1}
	if err := postRepo.CreatePost(ctx, db, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	// 只更新标题，作者保持不变
	newTitle := "new title"
	if err := postRepo.UpdatePost(ctx, db, post.ID, &newTitle, nil, ""); err != nil {
		t.Fatalf("更新帖子标题失败: %v", err)
	}
	got, err := postRepo.GetPostByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("重新获取帖子失败: %v", err)
	}
	if got.Title != "new title" {
		t.Errorf("标题未更新: got %q", got.Title)
	}
	if got.AuthorID != 1 {
		t.Errorf("未提交的 AuthorID 不应改变: got %d", got.AuthorID)
	}

	// 全 nil 时是 no-op，不报错
	if err := postRepo.UpdatePost(ctx, db, post.ID, nil, nil, ""); err != nil {
		t.Errorf("全 nil 更新应为 no-op, got: %v", err)
	}

	// 更新不存在的帖子
	if err := postRepo.UpdatePost(ctx, db, 9999, &newTitle, nil, ""); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("更新不存在的帖子应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestPostRepository_ReplaceAndClearTags(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	post := &entities.Post{Title: "tagged"}
	if err := postRepo.CreatePost(ctx, db, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	tags, err := tagRepo.GetOrCreateTagsByName(ctx, db, []string{"go", "gorm"})
	if err != nil {
		t.Fatalf("创建标签失败: %v", err)
	}
	if err := postRepo.ReplaceTags(ctx, db, post, tags); err != nil {
		t.Fatalf("替换标签关联失败: %v", err)
	}

	got, err := postRepo.GetPostByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("获取帖子失败: %v", err)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("标签数量不匹配: got %d want 2", len(got.Tags))
	}

	// 替换为子集，只动连接表
	if err := postRepo.ReplaceTags(ctx, db, post, tags[:1]); err != nil {
		t.Fatalf("二次替换标签关联失败: %v", err)
	}
	got, _ = postRepo.GetPostByID(ctx, post.ID)
	if len(got.Tags) != 1 {
		t.Errorf("替换后的标签数量不匹配: got %d want 1", len(got.Tags))
	}

	if err := postRepo.ClearTags(ctx, db, post); err != nil {
		t.Fatalf("清空标签关联失败: %v", err)
	}
	got, _ = postRepo.GetPostByID(ctx, post.ID)
	if len(got.Tags) != 0 {
		t.Errorf("清空后标签关联应为空, got %d", len(got.Tags))
	}

	// 标签行本身保留
	var tagCount int64
	if err := db.Model(&entities.Tag{}).Count(&tagCount).Error; err != nil {
		t.Fatalf("统计标签行失败: %v", err)
	}
	if tagCount != 2 {
		t.Errorf("清空关联不应删除标签行: got %d want 2", tagCount)
	}
}

func TestTagRepository_GetOrCreateDedup(t *testing.T) {
	db := newTestDB(t)
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	tags, err := tagRepo.GetOrCreateTagsByName(ctx, db, []string{"go", "go", "web"})
	if err != nil {
		t.Fatalf("创建标签失败: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("重复名称应去重: got %d want 2", len(tags))
	}

	// 再次请求同名标签时复用已有行
	again, err := tagRepo.GetOrCreateTagsByName(ctx, db, []string{"go"})
	if err != nil {
		t.Fatalf("复用标签失败: %v", err)
	}
	if again[0].ID != tags[0].ID {
		t.Errorf("同名标签应复用已有行: got ID %d want %d", again[0].ID, tags[0].ID)
	}

	var count int64
	if err := db.Model(&entities.Tag{}).Count(&count).Error; err != nil {
		t.Fatalf("统计标签行失败: %v", err)
	}
	if count != 2 {
		t.Errorf("标签行数量不匹配: got %d want 2", count)
	}
}

func TestCommentRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	post := &entities.Post{Title: "with comments"}
	if err := postRepo.CreatePost(ctx, db, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	comments := []*entities.Comment{
		{PostID: post.ID, Review: "first"},
		{PostID: post.ID, Review: "second"},
	}
	if err := commentRepo.BatchCreateComments(ctx, db, comments); err != nil {
		t.Fatalf("批量创建评论失败: %v", err)
	}

	if err := commentRepo.UpdateCommentReview(ctx, db, comments[0].ID, post.ID, "edited"); err != nil {
		t.Fatalf("更新评论失败: %v", err)
	}
	got, err := commentRepo.GetCommentsByPostID(ctx, post.ID)
	if err != nil {
		t.Fatalf("获取评论失败: %v", err)
	}
	found := false
	for _, c := range got {
		if c.ID == comments[0].ID && c.Review == "edited" {
			found = true
		}
	}
	if !found {
		t.Error("评论内容未更新")
	}

	// postID 条件不匹配时视为未找到
	if err := commentRepo.UpdateCommentReview(ctx, db, comments[0].ID, post.ID+1, "x"); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("帖子 ID 不匹配应返回 ErrRepoNotFound, got: %v", err)
	}

	if err := commentRepo.DeleteCommentsByIDs(ctx, db, []uint64{comments[1].ID}); err != nil {
		t.Fatalf("按 ID 删除评论失败: %v", err)
	}
	got, _ = commentRepo.GetCommentsByPostID(ctx, post.ID)
	if len(got) != 1 {
		t.Errorf("删除后评论数量不匹配: got %d want 1", len(got))
	}

	if err := commentRepo.DeleteCommentsByPostID(ctx, db, post.ID); err != nil {
		t.Fatalf("按帖子删除评论失败: %v", err)
	}
	got, _ = commentRepo.GetCommentsByPostID(ctx, post.ID)
	if len(got) != 0 {
		t.Errorf("按帖子删除后评论应为空, got %d", len(got))
	}
}

func TestPostDetailRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))
	detailRepo := NewPostDetailRepository(db)
	ctx := context.Background()

	post := &entities.Post{Title: "detailed"}
	if err := postRepo.CreatePost(ctx, db, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	if _, err := detailRepo.GetPostDetailByPostID(ctx, post.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("不存在的详情应返回 ErrRepoNotFound, got: %v", err)
	}

	if err := detailRepo.CreatePostDetail(ctx, db, &entities.PostDetail{PostID: post.ID, Description: "v1"}); err != nil {
		t.Fatalf("创建详情失败: %v", err)
	}
	if err := detailRepo.UpdateDescriptionByPostID(ctx, db, post.ID, "v2"); err != nil {
		t.Fatalf("更新详情失败: %v", err)
	}
	got, err := detailRepo.GetPostDetailByPostID(ctx, post.ID)
	if err != nil {
		t.Fatalf("获取详情失败: %v", err)
	}
	if got.Description != "v2" {
		t.Errorf("详情描述未更新: got %q", got.Description)
	}

	if err := detailRepo.DeletePostDetailByPostID(ctx, db, post.ID); err != nil {
		t.Fatalf("删除详情失败: %v", err)
	}
	if _, err := detailRepo.GetPostDetailByPostID(ctx, post.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("删除后获取详情应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestPostRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db, newTestLogger(t))
	ctx := context.Background()

	post := &entities.Post{Title: "to delete"}
	if err := postRepo.CreatePost(ctx, db, post); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	if err := postRepo.DeletePost(ctx, db, post.ID); err != nil {
		t.Fatalf("删除帖子失败: %v", err)
	}
	if err := postRepo.DeletePost(ctx, db, post.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("重复删除应返回 ErrRepoNotFound, got: %v", err)
	}
}
