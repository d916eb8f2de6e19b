package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
	"github.com/Marypvlva/house-board/utils"
)

var testDBCounter int64

// newTestDB 为每个测试创建独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&models.House{}, &models.User{}, &models.Announcement{}); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return db
}

// newTestConfig 测试用配置
func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenTTLHours: 24,
	}
}

// seedHouseWithAdmin 播种一个小区及其管理员，返回两者
func seedHouseWithAdmin(t *testing.T, db *gorm.DB, slug, email, password string) (*models.House, *models.User) {
	t.Helper()

	house := &models.House{Name: "House " + slug, Slug: slug}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("创建小区失败: %v", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Role:     "admin",
		HouseID:  house.ID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建管理员失败: %v", err)
	}

	return house, user
}
