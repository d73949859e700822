package dependencies

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 定义了密码散列与校验需要实现的方法
// 抽象为接口便于服务层测试时替换实现
type PasswordHasher interface {
	// Hash 对明文密码进行散列，返回可入库的散列串
	Hash(plain string) (string, error)
	// Verify 校验明文密码与散列串是否匹配
	Verify(plain string, hashed string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher 创建基于 bcrypt 的 PasswordHasher 实例
// cost 为 0 时使用 bcrypt.DefaultCost
func NewBcryptHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash 对明文密码进行 bcrypt 散列
func (h *bcryptHasher) Hash(plain string) (string, error) {
	// bcrypt 对超过 72 字节的输入会直接报错，DTO 层的 max=72 校验与此对应
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("生成密码散列失败: %w", err)
	}
	return string(hashed), nil
}

// Verify 校验明文密码与散列串是否匹配
func (h *bcryptHasher) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
