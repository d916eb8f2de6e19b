package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
)

// InterfaceAnnouncementService 定义公告服务接口
type InterfaceAnnouncementService interface {
	ListByHouseSlug(slug string, current *models.User) ([]AnnouncementView, error)
	Create(slug string, current *models.User, title, content string, pinned bool) (*AnnouncementView, error)
	Update(id uint, current *models.User, title, content string, pinned bool) (*AnnouncementView, error)
	Delete(id uint, current *models.User) error
}

// AnnouncementView 表示对外输出的公告
type AnnouncementView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorEmail string    `json:"author_email"`
}

// AnnouncementService 提供公告相关的服务
type AnnouncementService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAnnouncementService 创建一个新的公告服务
func NewAnnouncementService(db *gorm.DB, cfg *config.Config) InterfaceAnnouncementService {
	return &AnnouncementService{
		DB:     db,
		Config: cfg,
	}
}

// 1. ListByHouseSlug 获取小区的公告列表
// 排序：置顶在前，其次创建时间倒序，并列时按自然插入顺序
func (s *AnnouncementService) ListByHouseSlug(slug string, current *models.User) ([]AnnouncementView, error) {
	house, err := s.getHouseBySlug(slug)
	if err != nil {
		return nil, err
	}

	if !CanViewHouseAnnouncements(current, house.ID) {
		return nil, ErrForbidden
	}

	var announcements []models.Announcement
	if err := s.DB.Preload("Author").
		Where("house_id = ?", house.ID).
		Order("pinned DESC, created_at DESC, id").
		Find(&announcements).Error; err != nil {
		return nil, err
	}

	views := make([]AnnouncementView, 0, len(announcements))
	for i := range announcements {
		views = append(views, toView(&announcements[i]))
	}
	return views, nil
}

// 2. Create 在小区发布新公告
// 标题和内容去除首尾空白；created_at由存储在插入时赋值
func (s *AnnouncementService) Create(slug string, current *models.User, title, content string, pinned bool) (*AnnouncementView, error) {
	house, err := s.getHouseBySlug(slug)
	if err != nil {
		return nil, err
	}

	if !CanManageHouseAnnouncements(current, house.ID) {
		return nil, ErrForbidden
	}

	announcement := models.Announcement{
		Title:    strings.TrimSpace(title),
		Content:  strings.TrimSpace(content),
		Pinned:   pinned,
		HouseID:  house.ID,
		AuthorID: current.ID,
	}
	if err := s.DB.Create(&announcement).Error; err != nil {
		return nil, err
	}

	announcement.Author = current
	view := toView(&announcement)
	return &view, nil
}

// 3. Update 更新公告：整体覆盖三个可变字段
// 没有部分更新语义，请求中省略pinned等同于提交false
func (s *AnnouncementService) Update(id uint, current *models.User, title, content string, pinned bool) (*AnnouncementView, error) {
	announcement, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if !CanManageHouseAnnouncements(current, announcement.HouseID) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{
		"title":   strings.TrimSpace(title),
		"content": strings.TrimSpace(content),
		"pinned":  pinned,
	}
	if err := s.DB.Model(announcement).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新读取，带上作者投影
	updated, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	view := toView(updated)
	return &view, nil
}

// 4. Delete 删除公告：硬删除，不可恢复
func (s *AnnouncementService) Delete(id uint, current *models.User) error {
	announcement, err := s.getByID(id)
	if err != nil {
		return err
	}

	if !CanManageHouseAnnouncements(current, announcement.HouseID) {
		return ErrForbidden
	}

	return s.DB.Delete(announcement).Error
}

// getHouseBySlug 根据slug查找小区
func (s *AnnouncementService) getHouseBySlug(slug string) (*models.House, error) {
	var house models.House
	if err := s.DB.Where("slug = ?", slug).First(&house).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

// getByID 根据ID查找公告，带作者
func (s *AnnouncementService) getByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := s.DB.Preload("Author").First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

// toView 将公告模型投影为对外输出结构
func toView(a *models.Announcement) AnnouncementView {
	view := AnnouncementView{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Pinned:    a.Pinned,
		CreatedAt: a.CreatedAt,
	}
	if a.Author != nil {
		view.AuthorEmail = a.Author.Email
	}
	return view
}
