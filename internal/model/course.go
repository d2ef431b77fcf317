package model

import "time"

// 课程类型枚举
const (
	CourseTypeOffline = "OFFLINE"
	CourseTypeOnline  = "ONLINE"
)

// Course 课程表 — 对应 courses
type Course struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null"                      json:"name"`
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Type      string    `gorm:"type:varchar(10);not null"                      json:"type"` // OFFLINE | ONLINE
	UserID    string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Timestamps

	// 关联
	Schedules []Schedule `gorm:"foreignKey:CourseID;references:ID" json:"schedules,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
