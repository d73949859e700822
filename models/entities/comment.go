package entities

// Comment 评论实体
// - 表名: comments
// - 关系: 多对一从属于 Post；评论被某个帖子独占，帖子删除时评论随之删除
type Comment struct {
	BaseModel

	// 所属帖子ID，外键，非空并建立索引（GET /posts/:id/comments 按此列查询）
	PostID uint64 `gorm:"type:bigint;not null;index" json:"post_id"`

	// 评论内容
	Review string `gorm:"type:text;not null" json:"review"`
}
