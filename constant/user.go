package constant

// 用户注册时的默认值。
// 注意: 之所以提升为命名常量而不是散落在注册逻辑里的字面量，
// 是为了让 "每个新注册用户初始为 ACTIVE 且携带 ROLE_USER" 这一不变量显式、可测试。
const (
	// DefaultUserStatus 是新注册用户的初始状态
	DefaultUserStatus = "ACTIVE"

	// DefaultUserRole 是新注册用户的初始角色
	DefaultUserRole = "ROLE_USER"
)
