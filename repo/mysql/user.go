package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type UserRepository interface {
	// CreateUser 持久化一个新的用户记录。
	// - 邮箱唯一性由 users.email 上的唯一索引保证；
	//   冲突时返回 myErrors.ErrEmailExists，由服务层/控制器映射为 409。
	CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error

	// GetUserByID 根据单个 ID 检索用户。
	// - 如果未找到用户，返回 commonerrors.ErrRepoNotFound 错误。
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)

	// GetUserByEmail 根据邮箱检索用户。
	// - 同时服务于 GET /users?email= 查询和登录流程。
	// - 如果未找到用户，返回 commonerrors.ErrRepoNotFound 错误。
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)

	// ListUsers 检索全部用户。
	// - 无分页、无排序保证（与原始契约保持一致）。
	ListUsers(ctx context.Context) ([]*entities.User, error)

	// SaveUser 将（服务层已完成白名单合并的）用户实体整行写回。
	// - 实体必须是先 Get 出来再合并过的，而不是直接来自请求体，
	//   否则会退化为规格里明确要求避免的整对象拷贝。
	SaveUser(ctx context.Context, user *entities.User) error

	// DeleteUser 对指定用户执行物理删除。
	// - 记录不存在时返回 commonerrors.ErrRepoNotFound。
	DeleteUser(ctx context.Context, db *gorm.DB, id uint64) error
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB        // GORM 数据库实例
	logger *core.ZapLogger // 日志记录器实例
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser 实现用户的数据库插入操作。
func (r *userRepository) CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		// 唯一键冲突依赖 gorm.Config.TranslateError 把驱动错误翻译成 gorm.ErrDuplicatedKey
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn("创建用户失败：邮箱已存在", zap.String("email", user.Email))
			return myErrors.ErrEmailExists
		}
		r.logger.Error("创建用户数据库操作失败", zap.Error(err), zap.String("email", user.Email))
		return err
	}
	// 创建成功后，user 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

// GetUserByID 实现根据单个 ID 获取用户。
func (r *userRepository) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.Uint64("userID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.Uint64("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 实现根据邮箱获取用户。
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 登录流程也走这里，未找到同样返回 ErrRepoNotFound，由服务层折叠为统一的凭证错误
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据邮箱获取用户数据库查询失败", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ListUsers 实现获取全部用户。
func (r *userRepository) ListUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		r.logger.Error("获取用户列表数据库查询失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// SaveUser 实现合并后实体的整行写回。
func (r *userRepository) SaveUser(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		// 更新邮箱同样可能撞上唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Warn("更新用户失败：邮箱已存在", zap.Uint64("userID", user.ID), zap.String("email", user.Email))
			return myErrors.ErrEmailExists
		}
		r.logger.Error("更新用户数据库操作失败", zap.Error(err), zap.Uint64("userID", user.ID))
		return err
	}
	return nil
}

// DeleteUser 实现用户的物理删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)。
func (r *userRepository) DeleteUser(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.User{}, id)
	if result.Error != nil {
		r.logger.Error("删除用户数据库操作失败", zap.Error(result.Error), zap.Uint64("userID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
