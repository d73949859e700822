package entities

// User 用户实体
// - 使用场景: 注册、登录以及用户管理接口的数据载体
// - 表名: users (GORM 默认使用结构体名复数形式)
type User struct {
	BaseModel // 内嵌基础模型，包含 ID、时间戳和审计字段

	// 邮箱，唯一，必填
	// - 类型: varchar(64)，与邮箱的常见长度上限匹配
	// - GORM 标签: uniqueIndex 在数据库层保证邮箱唯一性（重复注册由唯一约束拦截），not null 表示非空
	Email string `gorm:"type:varchar(64);uniqueIndex;not null" json:"email"`

	// 密码哈希，必填
	// - 类型: varchar(128)，bcrypt 哈希长度固定为 60 字符，预留余量
	// - 注意: 这里永远只存哈希，不存明文；json:"-" 确保实体即使被直接序列化也不会泄露哈希
	Password string `gorm:"type:varchar(128);not null" json:"-"`

	// 名，必填
	FirstName string `gorm:"type:varchar(64);not null" json:"first_name"`

	// 中间名，可选
	MiddleName string `gorm:"type:varchar(64)" json:"middle_name"`

	// 姓，必填
	LastName string `gorm:"type:varchar(64);not null" json:"last_name"`

	// 状态，自由文本，注册时默认为 constant.DefaultUserStatus ("ACTIVE")
	// - 本服务内没有状态流转逻辑，字段仅在注册时赋值一次
	Status string `gorm:"type:varchar(32);not null;default:ACTIVE" json:"status"`

	// 角色，自由文本（逗号分隔），注册时默认为 constant.DefaultUserRole ("ROLE_USER")
	Roles string `gorm:"type:varchar(128);not null;default:ROLE_USER" json:"roles"`
}
