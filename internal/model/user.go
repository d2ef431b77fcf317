package model

// User 教师账户表 — 对应 users
// 学生与课程均以 user_id 归属到某个教师
type User struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Lastname string `gorm:"type:varchar(100);not null"                     json:"lastname"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Password string `gorm:"type:varchar(255);not null"                     json:"-"`
	Timestamps
}

// TableName 指定表名
func (User) TableName() string { return "users" }
