package repository

import "gorm.io/gorm"

// OwnedBy 所有者过滤 Scope
// 归属资源（students/courses）的每一次读写都必须显式套用该 Scope，
// 不允许只凭客户端提供的资源 id 定位记录
func OwnedBy(ownerID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID)
	}
}
