package services

import "github.com/Marypvlva/house-board/models"

// 访问控制规则：无状态谓词，每个请求单独求值
// current == nil 表示匿名访问者

// IsAdmin 判断用户是否为已认证的管理员
func IsAdmin(current *models.User) bool {
	return current != nil && current.Role == "admin"
}

// CanViewHouseAnnouncements 判断能否读取指定小区的公告列表
// 匿名和非管理员可以读取任何小区；已登录管理员只能读取自己的小区，
// 读取别人小区的公告比查看小区列表更严格，直接拒绝
func CanViewHouseAnnouncements(current *models.User, houseID uint) bool {
	if !IsAdmin(current) {
		return true
	}
	return current.HouseID == houseID
}

// CanManageHouseAnnouncements 判断能否在指定小区发布/修改/删除公告
// 必须是已认证的管理员且操作自己的小区，没有跨租户角色
func CanManageHouseAnnouncements(current *models.User, houseID uint) bool {
	return IsAdmin(current) && current.HouseID == houseID
}

// NarrowHouseListing 判断小区列表是否收窄到用户自己的小区
// 匿名看到全部小区；已登录管理员只看到自己的小区（恰好一个，永不为空）
func NarrowHouseListing(current *models.User) (houseID uint, narrowed bool) {
	if IsAdmin(current) {
		return current.HouseID, true
	}
	return 0, false
}
