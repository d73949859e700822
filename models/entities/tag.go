package entities

// Tag 标签实体
// - 表名: tags
// - 关系: 与 Post 多对多共享，连接表 post_tags；标签不随帖子删除
type Tag struct {
	BaseModel

	// 标签名，唯一
	Name string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`

	// 反向引用，序列化时忽略以避免 Post -> Tag -> Post 的循环
	Posts []*Post `gorm:"many2many:post_tags" json:"-"`
}
