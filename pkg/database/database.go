package database

import (
	"fmt"
	"job_portal_backend/internal/config"
	"job_portal_backend/internal/model"
	applog "job_portal_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models 需要自动迁移的全部表
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Job{},
		&model.JobApplication{},
		&model.JobBookmark{},
		&model.Mentor{},
		&model.MentorSession{},
		&model.Test{},
		&model.Challenge{},
		&model.ChallengeSubmission{},
		&model.Internship{},
		&model.InternshipTask{},
		&model.InternshipApplication{},
		&model.TaskCompletion{},
		&model.Notification{},
		&model.Resume{},
		&model.Review{},
	}
}

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	level := logger.Info
	if mode == "release" {
		level = logger.Warn
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	applog.Log.Info("Database connection established", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, err
	}

	applog.Log.Info("Database migration completed")
	return db, nil
}
