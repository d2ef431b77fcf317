package model

import "time"

// Enrollment 学生选课关联表 — 对应 course_students
// (student_id, course_id) 为联合主键，同一组合只允许存在一条
type Enrollment struct {
	StudentID string    `gorm:"type:uuid;primaryKey"               json:"student_id"`
	CourseID  string    `gorm:"type:uuid;primaryKey"               json:"course_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "course_students" }
