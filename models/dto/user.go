package dto

// CreateUserRequest 定义了管理接口直接创建用户的请求数据结构。
// 与注册不同，创建接口允许显式指定状态与角色；缺省时由服务层填入默认值。
type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email,max=64"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	FirstName  string `json:"first_name" binding:"required,max=64"`
	MiddleName string `json:"middle_name" binding:"omitempty,max=64"`
	LastName   string `json:"last_name" binding:"omitempty,max=64"`
	Status     string `json:"status" binding:"omitempty,max=32"`
	Roles      string `json:"roles" binding:"omitempty,max=128"`
}

// UpdateUserRequest 定义了更新用户的请求数据结构。
// - 所有字段均为指针类型: nil 表示 "不更新该字段"，这是白名单式合并的基础，
//   避免整对象拷贝把未提交的字段清空（见 DESIGN.md 对更新语义的决策）。
// - 身份字段 (ID) 与审计字段永远不接受外部输入。
type UpdateUserRequest struct {
	Email      *string `json:"email" binding:"omitempty,email,max=64"`
	Password   *string `json:"password" binding:"omitempty,min=6,max=72"` // 提交时会被重新哈希
	FirstName  *string `json:"first_name" binding:"omitempty,max=64"`
	MiddleName *string `json:"middle_name" binding:"omitempty,max=64"`
	LastName   *string `json:"last_name" binding:"omitempty,max=64"`
	Status     *string `json:"status" binding:"omitempty,max=32"`
	Roles      *string `json:"roles" binding:"omitempty,max=128"`
}
