package model

// Student 学生表 — 对应 students
// 同一教师名下 (email 或 identification) 不允许重复
type Student struct {
	ID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	Lastname       string `gorm:"type:varchar(100);not null"                     json:"lastname"`
	Email          string `gorm:"type:varchar(255);not null"                     json:"email"`
	Age            int    `gorm:"not null"                                       json:"age"`
	Identification string `gorm:"type:varchar(11);not null"                      json:"identification"`
	UserID         string `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Timestamps

	// 关联
	Courses []Course `gorm:"many2many:course_students;joinForeignKey:StudentID;joinReferences:CourseID" json:"courses,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
