package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// UserVO 定义了用户信息的响应数据结构。
// 注意: 这里有意没有密码字段——注册/登录/查询接口一律不回传密码哈希
// （原始实现会把哈希随用户对象一起返回，属于缺陷，本实现已修正，见 DESIGN.md）。
type UserVO struct {
	ID         uint64    `json:"id"`          // 用户ID
	Email      string    `json:"email"`       // 邮箱
	FirstName  string    `json:"first_name"`  // 名
	MiddleName string    `json:"middle_name"` // 中间名
	LastName   string    `json:"last_name"`   // 姓
	Status     string    `json:"status"`      // 状态，注册时默认 ACTIVE
	Roles      string    `json:"roles"`       // 角色，注册时默认 ROLE_USER
	CreatedAt  time.Time `json:"created_at"`  // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`  // 更新时间
	CreatedBy  string    `json:"created_by"`  // 创建者标识
	UpdatedBy  string    `json:"updated_by"`  // 最后更新者标识
}

// NewUserVOFromEntity 将单个 User 实体转换为 UserVO。
func NewUserVOFromEntity(user *entities.User) *UserVO {
	if user == nil {
		return nil
	}
	return &UserVO{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		MiddleName: user.MiddleName,
		LastName:   user.LastName,
		Status:     user.Status,
		Roles:      user.Roles,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		CreatedBy:  user.CreatedBy,
		UpdatedBy:  user.UpdatedBy,
	}
}

// MapUsersToUserVOs 将用户实体列表转换为 VO 列表。
// 返回空切片而不是 nil，便于前端直接拿到 [] 而非 null。
func MapUsersToUserVOs(users []*entities.User) []*UserVO {
	if len(users) == 0 {
		return []*UserVO{}
	}
	vos := make([]*UserVO, 0, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		vos = append(vos, NewUserVOFromEntity(user))
	}
	return vos
}
