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
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// AuthService 定义了注册与登录的业务逻辑接口。
type AuthService interface {
	// Register 注册新用户。
	// - 意图: 对明文密码做散列后落库，未提供的状态/角色字段取默认值。
	// - 注意事项: 邮箱已存在时返回 myErrors.ErrEmailExists。
	Register(ctx context.Context, req *dto.RegisterRequest) (*vo.UserVO, error)

	// Login 使用邮箱与密码登录。
	// - 注意事项: 用户不存在与密码错误折叠为同一个 myErrors.ErrInvalidCredentials，
	//   不向调用方泄露邮箱是否注册过。
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.UserVO, error)
}

// authService 是 AuthService 接口的实现。
type authService struct {
	db       *gorm.DB
	userRepo mysql.UserRepository
	hasher   dependencies.PasswordHasher
	logger   *core.ZapLogger
}

// NewAuthService 是 authService 的构造函数。
func NewAuthService(
	db *gorm.DB,
	userRepo mysql.UserRepository,
	hasher dependencies.PasswordHasher,
	logger *core.ZapLogger,
) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register 实现新用户注册。
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.UserVO, error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("注册用户时生成密码散列失败", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	user := &entities.User{
		Email:      req.Email,
		Password:   hashed,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Status:     constant.DefaultUserStatus,
		Roles:      constant.DefaultUserRole,
	}
	// 审计字段记录操作者；自注册场景下操作者就是用户本人
	user.CreatedBy = req.Email
	user.UpdatedBy = req.Email

	if err := s.userRepo.CreateUser(ctx, s.db, user); err != nil {
		if errors.Is(err, myErrors.ErrEmailExists) {
			s.logger.Warn("注册被拒绝：邮箱已存在", zap.String("email", req.Email))
		} else {
			s.logger.Error("注册用户数据库操作失败", zap.Error(err), zap.String("email", req.Email))
		}
		return nil, err
	}

	s.logger.Info("新用户注册成功", zap.Uint64("userID", user.ID), zap.String("email", user.Email))
	return vo.NewUserVOFromEntity(user), nil
}

// Login 实现邮箱密码登录。
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 不区分"邮箱不存在"和"密码错误"
			s.logger.Warn("登录失败：邮箱未注册", zap.String("email", req.Email))
			return nil, myErrors.ErrInvalidCredentials
		}
		s.logger.Error("登录时查询用户失败", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		s.logger.Warn("登录失败：密码不匹配", zap.Uint64("userID", user.ID))
		return nil, myErrors.ErrInvalidCredentials
	}

	s.logger.Info("用户登录成功", zap.Uint64("userID", user.ID))
	return vo.NewUserVOFromEntity(user), nil
}
