package main

import (
	"log"
	"os"

	"writeflow-api/internal/database"
	"writeflow-api/internal/routes"
)

func main() {
	// Init in-memory database with the demo dataset
	database.InitDB()

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8008"
	}
	log.Printf("Server starting on port :%s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/tasks")
	log.Println("  GET    /api/tasks/:id")
	log.Println("  POST   /api/tasks")
	log.Println("  PATCH  /api/tasks/:id/status")
	log.Println("  GET    /api/writers")
	log.Println("  POST   /api/writers")
	log.Println("  GET    /api/stats")
	log.Println("  GET    /api/stats/weekly")
	log.Println("  GET    /api/reviews/pending")
	log.Println("  GET    /api/templates")
	log.Println("  POST   /api/templates")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
