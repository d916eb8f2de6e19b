package models

// User 表示小区管理员用户
// 每个用户固定属于一个小区，house_id在创建后不可变更
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(100);unique;not null" json:"email"` // 登录邮箱，全局唯一
	Password string `gorm:"type:varchar(100);not null" json:"-"`            // bcrypt哈希，不在JSON中暴露
	Role     string `gorm:"type:varchar(20);default:'admin'" json:"role"`   // 角色，目前只有admin有意义
	HouseID  uint   `gorm:"not null;index" json:"house_id"`                 // 所属小区ID
}
