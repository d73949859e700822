package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

var testDBCounter int64

// serviceTestEnv 把一套基于进程内 SQLite 的完整服务栈装配起来，
// 服务层测试走和生产一致的事务与仓库路径。
type serviceTestEnv struct {
	db          *gorm.DB
	authService AuthService
	userService UserService
	postService PostService
}

func newServiceTestEnv(t *testing.T) *serviceTestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Post{},
		&entities.PostDetail{},
		&entities.Comment{},
		&entities.Tag{},
	); err != nil {
		t.Fatalf("测试数据库自动迁移失败: %v", err)
	}

	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	if err != nil {
		t.Fatalf("初始化测试 Logger 失败: %v", err)
	}

	hasher := dependencies.NewBcryptHasher(0)
	userRepo := mysql.NewUserRepository(db, logger)
	postRepo := mysql.NewPostRepository(db, logger)
	postDetailRepo := mysql.NewPostDetailRepository(db)
	commentRepo := mysql.NewCommentRepository(db)
	tagRepo := mysql.NewTagRepository(db)

	return &serviceTestEnv{
		db:          db,
		authService: NewAuthService(db, userRepo, hasher, logger),
		userService: NewUserService(db, userRepo, hasher, logger),
		postService: NewPostService(db, postRepo, postDetailRepo, commentRepo, tagRepo, logger),
	}
}
