package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
)

func TestPostService_CreatePostFullAggregate(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	postVO, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title:    "my first post",
		AuthorID: 42,
		Detail:   &dto.PostDetailDTO{Description: "long description"},
		Comments: []dto.CommentDTO{{Review: "nice"}, {Review: "great"}},
		Tags:     []dto.TagDTO{{Name: "go"}, {Name: "web"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	if postVO.ID == 0 || postVO.Title != "my first post" || postVO.AuthorID != 42 {
		t.Errorf("帖子标量字段不匹配: %+v", postVO)
	}
	if postVO.Detail == nil || postVO.Detail.Description != "long description" {
		t.Errorf("详情不匹配: %+v", postVO.Detail)
	}
	if len(postVO.Comments) != 2 {
		t.Errorf("评论数量不匹配: got %d want 2", len(postVO.Comments))
	}
	if len(postVO.Tags) != 2 {
		t.Errorf("标签数量不匹配: got %d want 2", len(postVO.Tags))
	}
}

func TestPostService_CreatePostAutoDetail(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	// 不提交详情时自动补一条空详情
	postVO, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{Title: "no detail"})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	if postVO.Detail == nil {
		t.Fatal("缺省详情时应自动创建空详情")
	}
	if postVO.Detail.Description != "" {
		t.Errorf("自动创建的详情描述应为空: got %q", postVO.Detail.Description)
	}
}

func TestPostService_CreatePostReusesTags(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	first, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title: "p1", Tags: []dto.TagDTO{{Name: "shared"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	second, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title: "p2", Tags: []dto.TagDTO{{Name: "shared"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	if first.Tags[0].ID != second.Tags[0].ID {
		t.Errorf("同名标签应复用同一行: %d vs %d", first.Tags[0].ID, second.Tags[0].ID)
	}
}

func TestPostService_UpdatePostScalarsAndNilCollections(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title:    "original",
		AuthorID: 1,
		Comments: []dto.CommentDTO{{Review: "keep me"}},
		Tags:     []dto.TagDTO{{Name: "keep"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	// 只更新标题，nil 集合原样保留
	title := "renamed"
	updated, err := env.postService.UpdatePost(ctx, created.ID, &dto.UpdatePostRequest{Title: &title})
	if err != nil {
		t.Fatalf("更新帖子失败: %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("标题未更新: got %q", updated.Title)
	}
	if updated.AuthorID != 1 {
		t.Errorf("未提交的 AuthorID 不应改变: got %d", updated.AuthorID)
	}
	if len(updated.Comments) != 1 || updated.Comments[0].Review != "keep me" {
		t.Errorf("nil 评论集合不应被改动: %+v", updated.Comments)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Name != "keep" {
		t.Errorf("nil 标签集合不应被改动: %+v", updated.Tags)
	}
}

func TestPostService_UpdatePostReconcilesComments(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title:    "with comments",
		Comments: []dto.CommentDTO{{Review: "first"}, {Review: "second"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	keepID := created.Comments[0].ID

	// 保留并修改第一条，丢弃第二条，新增一条
	updated, err := env.postService.UpdatePost(ctx, created.ID, &dto.UpdatePostRequest{
		Comments: []dto.UpdateCommentDTO{
			{ID: keepID, Review: "first edited"},
			{Review: "brand new"},
		},
	})
	if err != nil {
		t.Fatalf("更新帖子失败: %v", err)
	}
	if len(updated.Comments) != 2 {
		t.Fatalf("对账后评论数量不匹配: got %d want 2", len(updated.Comments))
	}
	reviews := map[string]bool{}
	for _, c := range updated.Comments {
		reviews[c.Review] = true
		if c.Review == "first edited" && c.ID != keepID {
			t.Errorf("被修改的评论应保持原 ID: got %d want %d", c.ID, keepID)
		}
	}
	if !reviews["first edited"] || !reviews["brand new"] {
		t.Errorf("对账结果不匹配: %v", reviews)
	}
	if reviews["second"] {
		t.Error("提交集合里缺席的评论应被删除")
	}
}

func TestPostService_UpdatePostReplacesTags(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title: "tagged", Tags: []dto.TagDTO{{Name: "old"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	updated, err := env.postService.UpdatePost(ctx, created.ID, &dto.UpdatePostRequest{
		Tags: []dto.TagDTO{{Name: "new"}},
	})
	if err != nil {
		t.Fatalf("更新帖子失败: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Name != "new" {
		t.Errorf("标签关联应被整体替换: %+v", updated.Tags)
	}

	// 被移除关联的标签行保留
	var count int64
	if err := env.db.Model(&entities.Tag{}).Count(&count).Error; err != nil {
		t.Fatalf("统计标签行失败: %v", err)
	}
	if count != 2 {
		t.Errorf("替换关联不应删除标签行: got %d want 2", count)
	}
}

func TestPostService_UpdatePostNotFound(t *testing.T) {
	env := newServiceTestEnv(t)

	title := "x"
	_, err := env.postService.UpdatePost(context.Background(), 9999, &dto.UpdatePostRequest{Title: &title})
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("更新不存在的帖子应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestPostService_DeletePostCascade(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{
		Title:    "doomed",
		Detail:   &dto.PostDetailDTO{Description: "d"},
		Comments: []dto.CommentDTO{{Review: "c1"}, {Review: "c2"}},
		Tags:     []dto.TagDTO{{Name: "survivor"}},
	})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	snapshot, err := env.postService.DeletePost(ctx, created.ID)
	if err != nil {
		t.Fatalf("删除帖子失败: %v", err)
	}
	// 返回的是删除前的完整快照
	if snapshot.ID != created.ID || snapshot.Title != "doomed" {
		t.Errorf("删除返回的快照不匹配: %+v", snapshot)
	}
	if len(snapshot.Comments) != 2 || snapshot.Detail == nil {
		t.Errorf("快照应包含删除前的关联: %+v", snapshot)
	}

	if _, err := env.postService.GetPostByID(ctx, created.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("删除后获取应返回 ErrRepoNotFound, got: %v", err)
	}

	// 评论、详情、连接表都被清空
	var commentCount, detailCount int64
	env.db.Model(&entities.Comment{}).Where("post_id = ?", created.ID).Count(&commentCount)
	env.db.Model(&entities.PostDetail{}).Where("post_id = ?", created.ID).Count(&detailCount)
	if commentCount != 0 || detailCount != 0 {
		t.Errorf("级联删除后不应残留子记录: comments=%d details=%d", commentCount, detailCount)
	}

	// 标签是共享资源，随帖子删除而保留
	var tagCount int64
	env.db.Model(&entities.Tag{}).Count(&tagCount)
	if tagCount != 1 {
		t.Errorf("删除帖子不应删除标签行: got %d want 1", tagCount)
	}
}

func TestPostService_DeletePostNotFound(t *testing.T) {
	env := newServiceTestEnv(t)

	_, err := env.postService.DeletePost(context.Background(), 9999)
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("删除不存在的帖子应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestPostService_GetPostComments(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.postService.CreatePost(ctx, &dto.CreatePostRequest{Title: "quiet"})
	if err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	// 没有评论时返回空列表而不是错误
	comments, err := env.postService.GetPostComments(ctx, created.ID)
	if err != nil {
		t.Fatalf("获取评论失败: %v", err)
	}
	if comments == nil || len(comments) != 0 {
		t.Errorf("无评论时应返回非 nil 的空列表: %v", comments)
	}
}

func TestPostService_GetUserPosts(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	for _, req := range []*dto.CreatePostRequest{
		{Title: "a1", AuthorID: 1},
		{Title: "a2", AuthorID: 1},
		{Title: "b1", AuthorID: 2},
	} {
		if _, err := env.postService.CreatePost(ctx, req); err != nil {
			t.Fatalf("创建帖子失败: %v", err)
		}
	}

	posts, err := env.postService.GetUserPosts(ctx, 1)
	if err != nil {
		t.Fatalf("按作者获取帖子失败: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("作者 1 的帖子数量不匹配: got %d want 2", len(posts))
	}

	posts, err = env.postService.GetUserPosts(ctx, 99)
	if err != nil {
		t.Fatalf("无帖子作者查询失败: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("无帖子的作者应返回非 nil 的空列表: %v", posts)
	}
}
