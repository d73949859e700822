package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func TestAuthService_Register(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	userVO, err := env.authService.Register(ctx, &dto.RegisterRequest{
		Email:     "alice@example.com",
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Liddell",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if userVO.ID == 0 {
		t.Error("注册成功后应返回用户 ID")
	}
	if userVO.Status != constant.DefaultUserStatus {
		t.Errorf("默认状态不匹配: got %q want %q", userVO.Status, constant.DefaultUserStatus)
	}
	if userVO.Roles != constant.DefaultUserRole {
		t.Errorf("默认角色不匹配: got %q want %q", userVO.Roles, constant.DefaultUserRole)
	}

	// 落库的必须是散列，不是明文，且能通过 bcrypt 校验
	var stored entities.User
	if err := env.db.First(&stored, userVO.ID).Error; err != nil {
		t.Fatalf("读取落库用户失败: %v", err)
	}
	if stored.Password == "secret123" {
		t.Fatal("密码被明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Errorf("落库的密码散列无法通过校验: %v", err)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "secret123", FirstName: "A"}
	if _, err := env.authService.Register(ctx, req); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := env.authService.Register(ctx, req); !errors.Is(err, myErrors.ErrEmailExists) {
		t.Fatalf("重复注册应返回 ErrEmailExists, got: %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	if _, err := env.authService.Register(ctx, &dto.RegisterRequest{
		Email: "bob@example.com", Password: "secret123", FirstName: "Bob",
	}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"正确凭证", "bob@example.com", "secret123", nil},
		{"密码错误", "bob@example.com", "wrong", myErrors.ErrInvalidCredentials},
		{"邮箱未注册", "nobody@example.com", "secret123", myErrors.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userVO, err := env.authService.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("登录应成功, got: %v", err)
				}
				if userVO.Email != tt.email {
					t.Errorf("返回的邮箱不匹配: got %q", userVO.Email)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("期望错误 %v, got: %v", tt.wantErr, err)
			}
		})
	}
}
