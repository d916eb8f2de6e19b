package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
)

// InterfaceHouseService 定义小区服务接口
type InterfaceHouseService interface {
	ListHouses(current *models.User) ([]models.House, error)
	GetHouseBySlug(slug string) (*models.House, error)
	GetHouseByID(id uint) (*models.House, error)
	GetUserByEmail(email string) (*models.User, error)
}

// HouseService 提供小区相关的服务
type HouseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHouseService 创建一个新的小区服务
func NewHouseService(db *gorm.DB, cfg *config.Config) InterfaceHouseService {
	return &HouseService{
		DB:     db,
		Config: cfg,
	}
}

// 1. ListHouses 获取小区列表
// 匿名访问者看到全部小区；已登录管理员只看到自己的小区
func (s *HouseService) ListHouses(current *models.User) ([]models.House, error) {
	query := s.DB.Model(&models.House{})
	if houseID, narrowed := NarrowHouseListing(current); narrowed {
		query = query.Where("id = ?", houseID)
	}

	var houses []models.House
	if err := query.Find(&houses).Error; err != nil {
		return nil, err
	}
	return houses, nil
}

// 2. GetHouseBySlug 根据slug获取小区
func (s *HouseService) GetHouseBySlug(slug string) (*models.House, error) {
	var house models.House
	if err := s.DB.Where("slug = ?", slug).First(&house).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// 3. GetHouseByID 根据ID获取小区
func (s *HouseService) GetHouseByID(id uint) (*models.House, error) {
	var house models.House
	if err := s.DB.First(&house, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// 4. GetUserByEmail 根据邮箱获取用户
func (s *HouseService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
