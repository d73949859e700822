package myErrors

import "errors"

// ErrInvalidCredentials 表示登录凭证无效。
// 注意: "邮箱不存在" 和 "密码错误" 统一返回本错误，
// 不向调用方区分两种情况，避免被用于探测已注册邮箱。
var ErrInvalidCredentials = errors.New("auth: invalid email or password")

// ErrEmailExists 表示注册/创建用户时邮箱已被占用（唯一约束冲突）。
var ErrEmailExists = errors.New("user: email already exists")
