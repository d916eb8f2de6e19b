// @title           House Board API
// @version         1.0
// @description     A multi-tenant announcement board for residential houses

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
	"github.com/Marypvlva/house-board/routes"
	"github.com/Marypvlva/house-board/utils"
)

// 种子数据：5个固定小区及各自的管理员
const seedHouseCount = 5

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	config.Debug("数据库驱动: %s", cfg.DBDriver)
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 自动迁移：只添加新列和新表
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 播种小区和管理员账户（幂等，只创建缺失的记录）
	if err := seedHousesAndAdmins(db, cfg); err != nil {
		log.Fatalf("播种数据失败: %v", err)
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// initDB 初始化数据库连接，驱动由配置决定
func initDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.GetDSN())
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.House{},
		&models.User{},
		&models.Announcement{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// seedHousesAndAdmins 播种固定的小区和管理员账户
// 幂等：先检查存在再插入，可安全重复执行
func seedHousesAndAdmins(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedAdminPassword == "admin12345" {
		config.Warning("种子管理员使用默认密码，生产环境请设置SEED_ADMIN_PASSWORD")
	}

	for i := 1; i <= seedHouseCount; i++ {
		slug := fmt.Sprintf("dom%d", i)

		var house models.House
		err := db.Where("slug = ?", slug).First(&house).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			house = models.House{
				Name: fmt.Sprintf("House %d", i),
				Slug: slug,
			}
			if err := db.Create(&house).Error; err != nil {
				return fmt.Errorf("创建小区%s失败: %w", slug, err)
			}
		} else if err != nil {
			return err
		}

		email := fmt.Sprintf("admin%d@example.com", i)

		var user models.User
		err = db.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashedPassword, err := utils.HashPassword(cfg.SeedAdminPassword)
			if err != nil {
				return fmt.Errorf("为管理员%s哈希密码失败: %w", email, err)
			}

			user = models.User{
				Email:    email,
				Password: hashedPassword,
				Role:     "admin",
				HouseID:  house.ID,
			}
			if err := db.Create(&user).Error; err != nil {
				return fmt.Errorf("创建管理员%s失败: %w", email, err)
			}
		} else if err != nil {
			return err
		}
	}

	config.Info("种子数据就绪: %d个小区及其管理员", seedHouseCount)
	return nil
}
