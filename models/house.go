package models

// House 表示一个小区（租户）
// 房屋只在启动时播种，没有任何对外的创建/修改/删除接口
type House struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name"`       // 小区名称，如"House 1"
	Slug string `gorm:"type:varchar(50);unique;not null" json:"slug"` // 小区标识，URL中唯一的租户标识，如"dom1"
}
