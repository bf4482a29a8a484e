// File: internal/router/router.go
package router

import (
	"student-registry/internal/cache"
	"student-registry/internal/handler"
	"student-registry/internal/handler/auth"
	"student-registry/internal/handler/students"
	"student-registry/internal/middleware"
	"student-registry/internal/model"
	"student-registry/internal/service"
	"student-registry/internal/store"
	"student-registry/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup wires services over st and registers every route on e.
func Setup(e *echo.Echo, st store.Store, cch cache.Cache, tokens *service.TokenManager, hashers worker.Pool) {
	accounts := service.NewAccounts(st, tokens, hashers)
	gate := service.NewGate(tokens, st, cch)
	studentSvc := service.NewStudents(st)

	requireAuth := middleware.RequireAuth(gate)
	requireAdmin := middleware.RequireRole(gate, model.RoleAdmin)

	api := e.Group("/api")

	// health check, login required
	api.GET("/ping", handler.PingHandler(st, cch), requireAuth)

	api.POST("/auth/register", auth.RegisterHandler(accounts))
	api.POST("/auth/login", auth.LoginHandler(accounts))
	api.POST("/auth/logout", auth.LogoutHandler(gate), requireAuth)

	// any authenticated user may create and read; changes are admin only
	apiStudents := api.Group("/students", requireAuth)
	apiStudents.POST("", students.CreateStudentHandler(studentSvc))
	apiStudents.GET("", students.ListStudentsHandler(studentSvc))
	apiStudents.GET("/:id", students.GetStudentHandler(studentSvc))
	apiStudents.PUT("/:id", students.UpdateStudentHandler(studentSvc), requireAdmin)
	apiStudents.PATCH("/:id", students.PatchStudentHandler(studentSvc), requireAdmin)
	apiStudents.DELETE("/:id", students.DeleteStudentHandler(studentSvc), requireAdmin)
}
