package model

// WeekDays 允许的星期枚举（沿用原始数据中的西语值）
var WeekDays = []string{"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO", "DOMINGO"}

// Schedule 课程时间表 — 对应 schedules
// 随所属课程删除而级联删除；未强制校验同一课程的时段重叠
type Schedule struct {
	ID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Day       string `gorm:"type:varchar(10);not null"                      json:"day"`
	StartHour int    `gorm:"type:smallint;not null"                         json:"start_hour"` // 0-23
	EndHour   int    `gorm:"type:smallint;not null"                         json:"end_hour"`   // 0-23
	CourseID  string `gorm:"type:uuid;not null;index"                       json:"course_id"`
	Timestamps
}

// TableName 指定表名
func (Schedule) TableName() string { return "schedules" }
