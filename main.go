package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"ChecklistPro/Controllers"
	"ChecklistPro/CronJobs"
	"ChecklistPro/FiberConfig"
	"ChecklistPro/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	db, err := Models.Connect(dbPath)
	if err != nil {
		log.Fatal(err)
	}

	service := Controllers.NewDocumentService(db)

	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "backups"
	}
	backups := CronJobs.NewBackupScheduler(service.WorkbookBackup, backupDir, os.Getenv("BACKUP_SCHEDULE"), false)
	if err := backups.Start(); err != nil {
		log.Printf("Failed to start backup scheduler: %v", err)
	}
	defer backups.Stop()

	FiberConfig.FiberConfig(db, service)
}
