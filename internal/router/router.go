package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/internal/handlers"
	"github.com/verita-dev/verita/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws", handlers.WebSocket)

		api.POST("/parse", handlers.ParseUpdate)
		api.POST("/updates", handlers.CreateUpdate)
		api.POST("/chat", handlers.Chat)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", handlers.ListTasks)
			tasks.GET("/carried", handlers.ListCarriedTasks)
			tasks.POST("", handlers.CreateTask)
			tasks.PATCH("/:id", handlers.UpdateTask)
			tasks.DELETE("/:id", handlers.DeleteTask)
		}

		members := api.Group("/team-members")
		{
			members.GET("", handlers.ListTeamMembers)
			members.POST("", handlers.CreateTeamMember)
			members.PATCH("/:id", handlers.UpdateTeamMember)
			members.DELETE("/:id", handlers.DeleteTeamMember)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", handlers.ListProjects)
			projects.POST("", handlers.CreateProject)
			projects.PATCH("/:id", handlers.UpdateProject)
			projects.DELETE("/:id", handlers.DeleteProject)
		}
	}

	return r
}
