package entities

import "time"

// BaseModel 是本服务所有实体共享的基础模型。
// - 注意: 这里没有使用 go-common 的 BaseModel，因为公共版本内嵌了 gorm.DeletedAt（软删除），
//   而本服务的删除语义是物理删除（删除即从表中移除，不保留墓碑记录）。
// - 审计字段: CreatedBy / UpdatedBy 记录操作者标识（注册场景下为用户邮箱），
//   CreatedAt / UpdatedAt 由 GORM 在创建/更新时自动维护。
type BaseModel struct {
	// 主键，自增
	ID uint64 `gorm:"primarykey" json:"id"`

	// 创建时间，GORM 在 Create 时自动填充
	CreatedAt time.Time `json:"created_at"`

	// 更新时间，GORM 在每次写操作时自动刷新
	UpdatedAt time.Time `json:"updated_at"`

	// 创建者标识（例如注册邮箱）
	CreatedBy string `gorm:"type:varchar(64)" json:"created_by"`

	// 最后更新者标识
	UpdatedBy string `gorm:"type:varchar(64)" json:"updated_by"`
}
