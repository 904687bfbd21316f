package main

import (
	"log"

	"tracker/config"
	"tracker/database"
	"tracker/handlers"
	"tracker/models"
	"tracker/server"
)

func main() {
	config.ParseFlags("Workout Tracker API")

	logFile, err := server.SetupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Workout Tracker starting up...")

	// In-memory database: workout data does not survive a restart.
	db, err := database.Open(":memory:", &models.WorkoutEntry{})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	database.SeedSampleWorkouts(db)

	h := handlers.NewWorkoutHandlers(db)

	r := server.NewEngine()
	api := r.Group("/api")
	{
		api.GET("/entries", h.ListWorkouts)
		api.GET("/entries/:id", h.GetWorkout)
		api.POST("/entries", h.CreateWorkout)
		api.PUT("/entries/:id", h.UpdateWorkout)
		api.DELETE("/entries/:id", h.DeleteWorkout)

		api.GET("/stats", h.Stats)
		api.GET("/health", h.Health)
	}

	server.Run(r, config.Settings.Port, func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
