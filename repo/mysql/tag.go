package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

type TagRepository interface {
	// GetOrCreateTagsByName 按名称查找或创建标签。
	// - 标签是共享资源: 请求里出现已存在的标签名时复用已有行，而不是报错或重复创建
	// - 输入名称会去重；返回的切片顺序与去重后的输入一致
	GetOrCreateTagsByName(ctx context.Context, db *gorm.DB, names []string) ([]*entities.Tag, error)
}

type tagRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewTagRepository 创建 TagRepository 实例
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// GetOrCreateTagsByName 按名称查找或创建标签
func (r *tagRepository) GetOrCreateTagsByName(ctx context.Context, db *gorm.DB, names []string) ([]*entities.Tag, error) {
	if len(names) == 0 {
		return []*entities.Tag{}, nil
	}

	// 去重，保持首次出现的顺序
	seen := make(map[string]struct{}, len(names))
	tags := make([]*entities.Tag, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag := &entities.Tag{}
		// FirstOrCreate: 命中唯一索引时复用已有行，否则插入新行
		if err := db.WithContext(ctx).
			Where(&entities.Tag{Name: name}).
			FirstOrCreate(tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
