// @title Job Portal 后端 API
// @version 1.0
// @description 求职与学习平台的后端服务。

// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"job_portal_backend/internal/app"
	"job_portal_backend/internal/config"
	"job_portal_backend/pkg/logger"
	"log"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	createAdmin := flag.Bool("create-admin", false, "创建管理员账号后退出")
	adminName := flag.String("admin-name", "Admin", "管理员名称")
	adminEmail := flag.String("admin-email", "", "管理员邮箱")
	adminPassword := flag.String("admin-password", "", "管理员密码")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 创建管理员只需要数据库
	cfg.MigrateOnly = *migrateOnly || *createAdmin

	application := app.NewApp(cfg)
	defer application.Close()

	if *createAdmin {
		if *adminEmail == "" || *adminPassword == "" {
			logger.Log.Error("-admin-email and -admin-password are required")
			return
		}
		user, err := application.CreateAdmin(*adminName, *adminEmail, *adminPassword)
		if err != nil {
			logger.Log.Error("Failed to create admin", zap.Error(err))
			return
		}
		logger.Log.Info("Admin created", zap.Uint("id", user.ID), zap.String("email", user.Email))
		return
	}

	if *migrateOnly {
		logger.Log.Info("Database migration completed, exiting")
		return
	}

	application.Run()
}
