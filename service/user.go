package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// UserService 定义了用户管理的业务逻辑接口。
type UserService interface {
	// ListUsers 获取全部用户列表，无分页。
	ListUsers(ctx context.Context) ([]*vo.UserVO, error)

	// GetUserByID 根据 ID 获取单个用户。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error)

	// GetUserByEmail 根据邮箱获取单个用户。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUserByEmail(ctx context.Context, email string) (*vo.UserVO, error)

	// CreateUser 管理接口直接创建用户。
	// - 密码先散列后落库；状态/角色缺省时填默认值。
	// - 邮箱冲突返回 myErrors.ErrEmailExists。
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*vo.UserVO, error)

	// UpdateUser 按白名单合并更新用户。
	// - 先加载目标用户（不存在返回 commonerrors.ErrRepoNotFound），
	//   再把请求中非 nil 的字段合并进实体后整行写回。
	// - 提交了 Password 时会重新散列；ID 与审计字段不接受外部输入。
	UpdateUser(ctx context.Context, id uint64, req *dto.UpdateUserRequest) (*vo.UserVO, error)

	// DeleteUser 物理删除用户，返回删除前的用户快照。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	DeleteUser(ctx context.Context, id uint64) (*vo.UserVO, error)
}

// userService 是 UserService 接口的实现。
type userService struct {
	db       *gorm.DB
	userRepo mysql.UserRepository
	hasher   dependencies.PasswordHasher
	logger   *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(
	db *gorm.DB,
	userRepo mysql.UserRepository,
	hasher dependencies.PasswordHasher,
	logger *core.ZapLogger,
) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// ListUsers 实现获取全部用户。
func (s *userService) ListUsers(ctx context.Context) ([]*vo.UserVO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapUsersToUserVOs(users), nil
}

// GetUserByID 实现根据 ID 获取用户。
func (s *userService) GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewUserVOFromEntity(user), nil
}

// GetUserByEmail 实现根据邮箱获取用户。
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return vo.NewUserVOFromEntity(user), nil
}

// CreateUser 实现管理接口直接创建用户。
func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*vo.UserVO, error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("创建用户时生成密码散列失败", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constant.DefaultUserStatus
	}
	roles := req.Roles
	if roles == "" {
		roles = constant.DefaultUserRole
	}

	user := &entities.User{
		Email:      req.Email,
		Password:   hashed,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Status:     status,
		Roles:      roles,
	}
	user.CreatedBy = req.Email
	user.UpdatedBy = req.Email

	if err := s.userRepo.CreateUser(ctx, s.db, user); err != nil {
		return nil, err
	}

	s.logger.Info("创建用户成功", zap.Uint64("userID", user.ID), zap.String("email", user.Email))
	return vo.NewUserVOFromEntity(user), nil
}

// UpdateUser 实现白名单式合并更新。
func (s *userService) UpdateUser(ctx context.Context, id uint64, req *dto.UpdateUserRequest) (*vo.UserVO, error) {
	// 先加载，后合并：请求体永远不会直接覆盖整个实体
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("尝试更新用户但未找到记录", zap.Uint64("userID", id))
		}
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, hashErr := s.hasher.Hash(*req.Password)
		if hashErr != nil {
			s.logger.Error("更新用户时生成密码散列失败", zap.Error(hashErr), zap.Uint64("userID", id))
			return nil, hashErr
		}
		user.Password = hashed
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Roles != nil {
		user.Roles = *req.Roles
	}
	user.UpdatedBy = user.Email

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("更新用户成功", zap.Uint64("userID", user.ID))
	return vo.NewUserVOFromEntity(user), nil
}

// DeleteUser 实现用户的物理删除。
func (s *userService) DeleteUser(ctx context.Context, id uint64) (*vo.UserVO, error) {
	// 先取快照，删除成功后把删除前的数据返回给调用方
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.DeleteUser(ctx, s.db, id); err != nil {
		return nil, err
	}

	s.logger.Info("删除用户成功", zap.Uint64("userID", id))
	return vo.NewUserVOFromEntity(user), nil
}
