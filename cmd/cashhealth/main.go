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
	config.ParseFlags("Cash Health Tracker API")

	logFile, err := server.SetupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Cash Health Tracker starting up...")

	// Persistent database file in the platform user-data directory unless an
	// explicit path was configured.
	dbPath := config.Settings.DatabaseURL
	if dbPath == "" {
		dbPath = database.ResolveDataPath("cash-health", "cash-health.db")
	}
	log.Printf("Database path: %s", dbPath)

	db, err := database.Open(dbPath, &models.Setting{}, &models.FinancialEntry{})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	database.SeedDefaultSettings(db)

	h := handlers.NewCashHandlers(db, dbPath)

	r := server.NewEngine()
	api := r.Group("/api")
	{
		api.GET("/settings", h.ListSettings)
		api.GET("/settings/:key", h.GetSetting)
		api.PUT("/settings/:key", h.UpsertSetting)

		api.GET("/entries", h.ListEntries)
		api.GET("/entries/:id", h.GetEntry)
		api.POST("/entries", h.CreateEntry)
		api.PUT("/entries/:id", h.UpdateEntry)
		api.DELETE("/entries/:id", h.DeleteEntry)

		api.GET("/health", h.Health)
	}

	server.Run(r, config.Settings.Port, func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
