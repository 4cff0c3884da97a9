package main

import (
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-taskhub/internal/core/config"
	"go-taskhub/internal/core/database"
	"go-taskhub/internal/core/logger"
	"go-taskhub/internal/domain"
	"go-taskhub/pkg/utils"
)

// Loads a small demo data set: one user, three categories, five tasks.
// Skips everything when the database already has users.
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Task{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	var existing int64
	if err := db.Model(&domain.User{}).Count(&existing).Error; err != nil {
		log.Fatal("count users", zap.Error(err))
	}
	if existing > 0 {
		log.Info("database already seeded", zap.Int64("users", existing))
		return
	}

	if err := seed(db); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("database seeded")
}

func seed(db *gorm.DB) error {
	name := "Demo User"
	user := domain.User{ID: utils.NewID(), Email: "demo@example.com", Name: &name}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	categories := []domain.Category{
		{ID: utils.NewID(), Name: "Work", Description: strPtr("Work-related tasks and projects"), Color: "#3B82F6"},
		{ID: utils.NewID(), Name: "Personal", Description: strPtr("Personal tasks and goals"), Color: "#10B981"},
		{ID: utils.NewID(), Name: "Learning", Description: strPtr("Educational and skill development"), Color: "#8B5CF6"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	work, personal, learning := categories[0].ID, categories[1].ID, categories[2].ID
	in2d := time.Now().Add(2 * 24 * time.Hour)
	in7d := time.Now().Add(7 * 24 * time.Hour)

	tasks := []domain.Task{
		{
			ID:          utils.NewID(),
			Title:       "Complete project proposal",
			Description: strPtr("Write and submit the Q1 project proposal for the new client"),
			Priority:    domain.PriorityHigh,
			UserID:      user.ID,
			CategoryID:  &work,
			DueDate:     &in7d,
		},
		{
			ID:          utils.NewID(),
			Title:       "Buy groceries",
			Description: strPtr("Weekly grocery shopping - milk, bread, eggs, vegetables"),
			Priority:    domain.PriorityMedium,
			UserID:      user.ID,
			CategoryID:  &personal,
		},
		{
			ID:          utils.NewID(),
			Title:       "Work through the database tutorial",
			Description: strPtr("Complete the comprehensive database tutorial"),
			Priority:    domain.PriorityLow,
			Completed:   true,
			UserID:      user.ID,
			CategoryID:  &learning,
		},
		{
			ID:          utils.NewID(),
			Title:       "Team meeting preparation",
			Description: strPtr("Prepare slides and agenda for the weekly team meeting"),
			Priority:    domain.PriorityMedium,
			UserID:      user.ID,
			CategoryID:  &work,
			DueDate:     &in2d,
		},
		{
			ID:          utils.NewID(),
			Title:       "Exercise routine",
			Description: strPtr("Go for a 30-minute run in the park"),
			Priority:    domain.PriorityLow,
			UserID:      user.ID,
			CategoryID:  &personal,
		},
	}
	return db.Create(&tasks).Error
}

func strPtr(s string) *string { return &s }
