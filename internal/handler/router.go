package handler

import "github.com/gin-gonic/gin"

// Handlers groups every HTTP handler served under the API prefix.
type Handlers struct {
	Professors *ProfessorHandler
	Classrooms *ClassroomHandler
	Courses    *CourseHandler
	Schedule   *ScheduleHandler
	Analytics  *AnalyticsHandler
	Exports    *ExportHandler
}

// Register mounts the scheduling API on r.
func Register(r gin.IRouter, h Handlers) {
	professors := r.Group("/professors")
	professors.GET("", h.Professors.List)
	professors.POST("", h.Professors.Create)
	professors.GET("/:id", h.Professors.Get)
	professors.GET("/:id/lessons", h.Professors.Lessons)

	classrooms := r.Group("/classrooms")
	classrooms.GET("", h.Classrooms.List)
	classrooms.POST("", h.Classrooms.Create)
	classrooms.GET("/:number", h.Classrooms.Get)

	courses := r.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", h.Courses.Create)
	courses.GET("/:id", h.Courses.Get)

	lessons := r.Group("/lessons")
	lessons.GET("", h.Schedule.List)
	lessons.POST("", h.Schedule.Create)
	lessons.POST("/bulk", h.Schedule.BulkCreate)
	lessons.POST("/check", h.Schedule.Check)
	lessons.POST("/import", h.Schedule.Import)
	lessons.GET("/:id", h.Schedule.Get)
	lessons.DELETE("/:id", h.Schedule.Cancel)
	lessons.PATCH("/:id/classroom", h.Schedule.Reassign)

	positions := r.Group("/schedule/positions")
	positions.PATCH("/:position/classroom", h.Schedule.ReassignAt)
	positions.DELETE("/:position", h.Schedule.CancelAt)

	analytics := r.Group("/analytics")
	analytics.GET("/available-classrooms", h.Analytics.AvailableClassrooms)
	analytics.GET("/utilization", h.Analytics.Utilization)
	analytics.GET("/utilization/:number", h.Analytics.ClassroomUtilization)
	analytics.GET("/popular-course-type", h.Analytics.PopularCourseType)
	analytics.GET("/system", h.Analytics.System)

	r.GET("/exports/schedule", h.Exports.Schedule)
}
