package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/service"
)

// Seed 通过服务层填充测试数据：先注册一批用户，再并发创建挂在这些用户名下的帖子。
// 走服务层而不是直接写库，这样密码散列、默认值和事务语义与线上路径一致。
func Seed(
	ctx context.Context,
	authSvc service.AuthService,
	postSvc service.PostService,
	logger *core.ZapLogger,
	numUsers int,
	numPosts int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("用户数量", numUsers), zap.Int("帖子数量", numPosts))

	// --- 1. 串行注册用户，收集可用的作者 ID ---
	authorIDs := make([]uint64, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		registerReq := &dto.RegisterRequest{
			Email:      gofakeit.Email(),
			Password:   gofakeit.Password(true, true, true, false, false, 12),
			FirstName:  gofakeit.FirstName(),
			MiddleName: gofakeit.MiddleName(),
			LastName:   gofakeit.LastName(),
		}
		userVO, err := authSvc.Register(ctx, registerReq)
		if err != nil {
			// 随机邮箱偶尔撞库，跳过即可
			logger.Warn(fmt.Sprintf("注册用户 %d/%d 失败", i+1, numUsers),
				zap.Error(err), zap.String("email", registerReq.Email))
			continue
		}
		authorIDs = append(authorIDs, userVO.ID)
		logger.Info(fmt.Sprintf("成功注册用户 %d/%d", i+1, numUsers),
			zap.Uint64("user_id", userVO.ID), zap.String("email", userVO.Email))
	}
	if len(authorIDs) == 0 {
		logger.Error("没有成功注册任何用户，跳过帖子填充")
		return
	}

	// --- 2. 并发创建帖子 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			comments := make([]dto.CommentDTO, 0, 3)
			for j := 0; j < gofakeit.Number(0, 3); j++ {
				comments = append(comments, dto.CommentDTO{Review: gofakeit.Sentence(gofakeit.Number(5, 15))})
			}
			tags := make([]dto.TagDTO, 0, 3)
			for j := 0; j < gofakeit.Number(0, 3); j++ {
				tags = append(tags, dto.TagDTO{Name: gofakeit.Word()})
			}

			createReq := &dto.CreatePostRequest{
				Title:    gofakeit.Sentence(gofakeit.Number(5, 15)),
				AuthorID: authorIDs[gofakeit.Number(0, len(authorIDs)-1)],
				Detail: &dto.PostDetailDTO{
					Description: gofakeit.Paragraph(3, 5, 20, "\n\n"),
				},
				Comments: comments,
				Tags:     tags,
			}

			resp, err := postSvc.CreatePost(ctx, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.Uint64("author_id", createReq.AuthorID))
			} else {
				logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
					zap.Uint64("post_id", resp.ID),
					zap.String("title", resp.Title))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
