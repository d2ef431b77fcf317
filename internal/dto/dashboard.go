package dto

// ── 看板模块 DTO ──
// JSON 键名沿用对外已发布的格式（含 topSixMoths 的历史拼写）

// CourseStatsResponse 带选课人数的课程
type CourseStatsResponse struct {
	CourseResponse
	StudentsCount int64 `json:"students_count"`
}

// StudentStatsResponse 带课程数的学生
type StudentStatsResponse struct {
	StudentResponse
	CoursesCount int64 `json:"courses_count"`
}

// DashboardResponse 教师看板聚合数据
type DashboardResponse struct {
	TopSixMonths  []CourseStatsResponse  `json:"topSixMoths"`
	TopStudents   []StudentStatsResponse `json:"topStudents"`
	TotalStudents int64                  `json:"totalStudents"`
	TotalCourses  int64                  `json:"totalCourses"`
}
