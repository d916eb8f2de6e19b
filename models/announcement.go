package models

// Announcement 表示小区公告
// house_id和author_id在创建后不可变更，公告不能在租户之间迁移
type Announcement struct {
	BaseModel
	Title    string `gorm:"type:varchar(200);not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Pinned   bool   `gorm:"default:false" json:"pinned"`    // 置顶公告排在最前
	HouseID  uint   `gorm:"not null;index" json:"house_id"` // 所属小区ID
	AuthorID uint   `gorm:"not null" json:"author_id"`      // 发布者ID

	// 关联关系：仅用于投影author_email，单跳查询，无反向引用
	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}
