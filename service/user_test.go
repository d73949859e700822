package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
)

func strPtr(s string) *string { return &s }

func TestUserService_CreateUserDefaults(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	// 缺省状态/角色时填默认值
	userVO, err := env.userService.CreateUser(ctx, &dto.CreateUserRequest{
		Email: "c1@example.com", Password: "secret123", FirstName: "C",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	if userVO.Status != "ACTIVE" || userVO.Roles != "ROLE_USER" {
		t.Errorf("默认状态/角色不匹配: status=%q roles=%q", userVO.Status, userVO.Roles)
	}

	// 显式指定时不覆盖
	userVO, err = env.userService.CreateUser(ctx, &dto.CreateUserRequest{
		Email: "c2@example.com", Password: "secret123", FirstName: "C",
		Status: "SUSPENDED", Roles: "ROLE_ADMIN",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	if userVO.Status != "SUSPENDED" || userVO.Roles != "ROLE_ADMIN" {
		t.Errorf("显式状态/角色不匹配: status=%q roles=%q", userVO.Status, userVO.Roles)
	}
}

func TestUserService_UpdateUserMerge(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.userService.CreateUser(ctx, &dto.CreateUserRequest{
		Email: "merge@example.com", Password: "secret123",
		FirstName: "First", MiddleName: "Mid", LastName: "Last",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	// 只提交 FirstName，其余字段保持原值
	updated, err := env.userService.UpdateUser(ctx, created.ID, &dto.UpdateUserRequest{
		FirstName: strPtr("Changed"),
	})
	if err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}
	if updated.FirstName != "Changed" {
		t.Errorf("FirstName 未更新: got %q", updated.FirstName)
	}
	if updated.MiddleName != "Mid" || updated.LastName != "Last" || updated.Email != "merge@example.com" {
		t.Errorf("未提交的字段被改动: %+v", updated)
	}

	// 提交密码时重新散列，而不是原样存储
	var before entities.User
	if err := env.db.First(&before, created.ID).Error; err != nil {
		t.Fatalf("读取用户失败: %v", err)
	}
	if _, err := env.userService.UpdateUser(ctx, created.ID, &dto.UpdateUserRequest{
		Password: strPtr("newsecret"),
	}); err != nil {
		t.Fatalf("更新密码失败: %v", err)
	}
	var after entities.User
	if err := env.db.First(&after, created.ID).Error; err != nil {
		t.Fatalf("读取用户失败: %v", err)
	}
	if after.Password == "newsecret" {
		t.Fatal("更新后的密码被明文存储")
	}
	if after.Password == before.Password {
		t.Error("提交新密码后散列应发生变化")
	}
}

func TestUserService_UpdateUserNotFound(t *testing.T) {
	env := newServiceTestEnv(t)

	_, err := env.userService.UpdateUser(context.Background(), 9999, &dto.UpdateUserRequest{
		FirstName: strPtr("X"),
	})
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("更新不存在的用户应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestUserService_DeleteUserSnapshot(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	created, err := env.userService.CreateUser(ctx, &dto.CreateUserRequest{
		Email: "snap@example.com", Password: "secret123", FirstName: "Snap",
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	snapshot, err := env.userService.DeleteUser(ctx, created.ID)
	if err != nil {
		t.Fatalf("删除用户失败: %v", err)
	}
	if snapshot.ID != created.ID || snapshot.Email != "snap@example.com" {
		t.Errorf("删除返回的快照不匹配: %+v", snapshot)
	}

	if _, err := env.userService.GetUserByID(ctx, created.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("删除后获取应返回 ErrRepoNotFound, got: %v", err)
	}
	if _, err := env.userService.DeleteUser(ctx, created.ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("重复删除应返回 ErrRepoNotFound, got: %v", err)
	}
}

func TestUserService_ListAndGetByEmail(t *testing.T) {
	env := newServiceTestEnv(t)
	ctx := context.Background()

	list, err := env.userService.ListUsers(ctx)
	if err != nil {
		t.Fatalf("获取空列表失败: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("空库应返回非 nil 的空列表: %v", list)
	}

	if _, err := env.userService.CreateUser(ctx, &dto.CreateUserRequest{
		Email: "find@example.com", Password: "secret123", FirstName: "F",
	}); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	got, err := env.userService.GetUserByEmail(ctx, "find@example.com")
	if err != nil {
		t.Fatalf("按邮箱查询失败: %v", err)
	}
	if got.Email != "find@example.com" {
		t.Errorf("邮箱不匹配: got %q", got.Email)
	}

	if _, err := env.userService.GetUserByEmail(ctx, "none@example.com"); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("不存在的邮箱应返回 ErrRepoNotFound, got: %v", err)
	}
}
