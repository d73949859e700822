package entities

// Post 帖子实体
// - 使用场景: 博客帖子的核心记录，聚合详情、评论和标签三类关联数据
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	BaseModel // 内嵌基础模型，包含 ID、时间戳和审计字段

	// 标题，必填，最大长度255个字符
	Title string `gorm:"type:varchar(255);not null" json:"title"`

	// 作者ID，外键，关联 users 表
	// - 类型: bigint，与 users 表的自增主键类型一致
	// - GORM 标签: index 为按作者查询帖子列表（GET /posts?userId=）建立索引
	// - 注意: 原始模型中帖子与用户没有关联，"按用户查帖子" 因此无法实现；
	//   这里补上外键并实现该查询（决策见 DESIGN.md）
	AuthorID uint64 `gorm:"type:bigint;index" json:"author_id"`

	// 帖子详情，一对一独占关系
	// - 约束: post_details.post_id 上的唯一索引保证一个帖子最多一条详情
	// - 级联: 数据库层 ON DELETE CASCADE 仅作为兜底；删除流程在服务层事务中
	//   显式删除详情（见 service/post.go），不依赖 ORM 魔法
	Detail *PostDetail `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"detail,omitempty"`

	// 评论列表，一对多独占关系
	// - 级联删除 + 孤儿清理: 更新帖子时从集合中移除的评论会被删除（服务层显式对比差异）
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`

	// 标签列表，多对多共享关系，连接表 post_tags
	// - 无级联: 标签生命周期独立于帖子，删除帖子只清理连接表记录，标签本身保留
	Tags []*Tag `gorm:"many2many:post_tags" json:"tags"`
}
