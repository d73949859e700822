package dto

// RegisterRequest 定义了用户注册的请求数据结构
// - 添加了 binding 标签用于输入验证
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email,max=64"`    // 邮箱，必填，需为合法邮箱格式
	Password   string `json:"password" binding:"required,min=6,max=72"` // 明文密码，必填；72 为 bcrypt 的输入上限
	FirstName  string `json:"first_name" binding:"required,max=64"`     // 名，必填
	MiddleName string `json:"middle_name" binding:"omitempty,max=64"`   // 中间名，可选
	LastName   string `json:"last_name" binding:"omitempty,max=64"`     // 姓，可选
}

// LoginRequest 定义了用户登录的请求数据结构
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // 邮箱，必填
	Password string `json:"password" binding:"required"`    // 明文密码，必填
}
