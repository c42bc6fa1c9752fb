package router

import (
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/handler"
	"github.com/fatima3985/InternLinkt/internal/handler/companies"
	"github.com/fatima3985/InternLinkt/internal/handler/internships"
	"github.com/fatima3985/InternLinkt/internal/handler/students"
	"github.com/fatima3985/InternLinkt/internal/storage"
	"github.com/fatima3985/InternLinkt/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有 /api 路由
func Setup(e *echo.Echo, db database.DB, rc cache.Cache, wp worker.Pool, blobs storage.Store) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rc))

	apiStudents := api.Group("/students")
	apiStudents.POST("/signup", students.SignupHandler(db))
	apiStudents.POST("/login", students.LoginHandler(db))
	apiStudents.POST("/apply", students.ApplyHandler(db, blobs))
	apiStudents.GET("/:id", students.GetHandler(db))
	apiStudents.PUT("/:id", students.UpdateHandler(db))
	apiStudents.GET("/:id/applications", students.ListApplicationsHandler(db))

	apiCompanies := api.Group("/companies")
	apiCompanies.POST("/signup", companies.SignupHandler(db))
	apiCompanies.POST("/login", companies.LoginHandler(db))
	apiCompanies.GET("/:id", companies.GetHandler(db))
	apiCompanies.PUT("/:id", companies.UpdateHandler(db, rc))
	apiCompanies.POST("/:id/internships", companies.CreateInternshipHandler(db))
	apiCompanies.GET("/:id/internships", companies.ListInternshipsHandler(db))
	apiCompanies.GET("/internship/:id/applications", companies.ListApplicantsHandler(db))
	apiCompanies.PUT("/application/:id/status", companies.SetStatusHandler(db, rc))

	apiInternships := api.Group("/internships")
	apiInternships.POST("", internships.CreateHandler(db))
	apiInternships.GET("", internships.ListHandler(db))
	apiInternships.GET("/:id", internships.GetHandler(db, rc))
	apiInternships.PUT("/:id", internships.UpdateHandler(db, rc))
	apiInternships.DELETE("/:id", internships.DeleteHandler(db, rc, wp, blobs))
	apiInternships.POST("/:id/apply", internships.ApplyHandler(db, blobs))
}
