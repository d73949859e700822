package entities

// PostDetail 帖子详情实体
// - 使用场景: 存储帖子的长文本描述，与帖子分表以保持 posts 表的行宽可控
// - 表名: post_details
// - 关系: 与 Post 表一对一关系，通过 PostID 外键关联
type PostDetail struct {
	BaseModel

	// 帖子ID，外键，关联 posts 表
	// - GORM 标签:
	//   - type:bigint 与 posts 表主键类型一致
	//   - uniqueIndex 确保一对一关系（一个 Post 只能有一个 PostDetail）
	//   - not null 表示非空
	PostID uint64 `gorm:"type:bigint;uniqueIndex;not null" json:"post_id"`

	// 描述，支持多行文本，存储为 TEXT 类型
	// - 帖子创建时若未携带详情，会自动补一条空描述的详情记录，
	//   保证 "每个帖子都有且仅有一条详情" 的不变量从创建起就成立
	Description string `gorm:"type:text" json:"description"`
}
