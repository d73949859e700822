package mysql

import (
	"fmt"
	"sync/atomic"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/blog_service/models/entities"
)

var testDBCounter int64

// newTestDB 创建一个进程内的 SQLite 数据库并完成自动迁移。
// cache=shared 让连接池里的多个连接看到同一份数据；每次调用使用独立的库名，测试之间互不干扰。
// TranslateError 与生产配置保持一致，唯一键冲突同样翻译为 gorm.ErrDuplicatedKey。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
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
	return db
}

// newTestLogger 构造测试用的 ZapLogger。
func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	if err != nil {
		t.Fatalf("初始化测试 Logger 失败: %v", err)
	}
	return logger
}
