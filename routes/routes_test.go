package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Marypvlva/house-board/config"
	"github.com/Marypvlva/house-board/models"
	"github.com/Marypvlva/house-board/utils"
)

var testDBCounter int64

// newTestRouter 构建带内存数据库和两个种子小区的完整路由
// 指向不存在的Redis端口，登录防护降级为放行
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterAt(t, "localhost", "6399")
}

// newTestRouterAt 同上，但连接指定地址的Redis
func newTestRouterAt(t *testing.T, redisHost, redisPort string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&models.House{}, &models.User{}, &models.Announcement{}); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	for i := 1; i <= 2; i++ {
		house := models.House{
			Name: fmt.Sprintf("House %d", i),
			Slug: fmt.Sprintf("dom%d", i),
		}
		if err := db.Create(&house).Error; err != nil {
			t.Fatalf("播种小区失败: %v", err)
		}

		hash, err := utils.HashPassword("admin12345")
		if err != nil {
			t.Fatalf("哈希密码失败: %v", err)
		}
		user := models.User{
			Email:    fmt.Sprintf("admin%d@example.com", i),
			Password: hash,
			Role:     "admin",
			HouseID:  house.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("播种管理员失败: %v", err)
		}
	}

	cfg := &config.Config{
		JWTSecretKey:  "routes-test-secret",
		TokenTTLHours: 24,
		RedisHost:     redisHost,
		RedisPort:     redisPort,
	}

	return SetupRouter(db, cfg)
}

// doJSON 执行一次请求并返回响应
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login 通过指定入口登录并返回访问令牌
func login(t *testing.T, r *gin.Engine, path, email, password string) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, path, "", gin.H{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s as %s: status = %d, body = %s", path, email, w.Code, w.Body.String())
	}

	var result struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if result.TokenType != "bearer" {
		t.Fatalf("token_type = %q, want bearer", result.TokenType)
	}
	return result.AccessToken
}

type announcementOut struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Pinned      bool   `json:"pinned"`
	AuthorEmail string `json:"author_email"`
}

// TestEndToEndScenario 按完整场景走一遍：登录、发布、公开读取、跨租户拒绝
func TestEndToEndScenario(t *testing.T) {
	r := newTestRouter(t)

	// 健康检查
	if w := doJSON(r, http.MethodGet, "/ping", "", nil); w.Code != http.StatusOK {
		t.Fatalf("/ping status = %d", w.Code)
	}

	// 小区入口登录
	token1 := login(t, r, "/auth/login/dom1", "admin1@example.com", "admin12345")

	// 置顶公告先发，再发普通公告，置顶的仍应排在最前
	w := doJSON(r, http.MethodPost, "/houses/dom1/announcements", token1,
		gin.H{"title": "Pinned notice", "content": "Important", "pinned": true})
	if w.Code != http.StatusOK {
		t.Fatalf("create pinned: status = %d, body = %s", w.Code, w.Body.String())
	}
	var pinned announcementOut
	if err := json.Unmarshal(w.Body.Bytes(), &pinned); err != nil {
		t.Fatalf("decode created announcement: %v", err)
	}
	if pinned.AuthorEmail != "admin1@example.com" {
		t.Errorf("author_email = %q, want admin1@example.com", pinned.AuthorEmail)
	}

	w = doJSON(r, http.MethodPost, "/houses/dom1/announcements", token1,
		gin.H{"title": "Regular notice", "content": "Later but unpinned"})
	if w.Code != http.StatusOK {
		t.Fatalf("create unpinned: status = %d, body = %s", w.Code, w.Body.String())
	}

	// 匿名读取：置顶公告排第一
	w = doJSON(r, http.MethodGet, "/houses/dom1/announcements", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous list: status = %d", w.Code)
	}
	var list []announcementOut
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("anonymous list length = %d, want 2", len(list))
	}
	if list[0].Title != "Pinned notice" {
		t.Errorf("first announcement = %q, want the pinned one", list[0].Title)
	}

	// dom2管理员读取dom1的公告被拒绝
	token2 := login(t, r, "/auth/login", "admin2@example.com", "admin12345")
	if w := doJSON(r, http.MethodGet, "/houses/dom1/announcements", token2, nil); w.Code != http.StatusForbidden {
		t.Errorf("foreign admin list: status = %d, want 403", w.Code)
	}

	// dom2管理员也不能写dom1
	w = doJSON(r, http.MethodPost, "/houses/dom1/announcements", token2,
		gin.H{"title": "x", "content": "y"})
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign admin create: status = %d, want 403", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, fmt.Sprintf("/announcements/%d", pinned.ID), token2,
		gin.H{"title": "x", "content": "y"}); w.Code != http.StatusForbidden {
		t.Errorf("foreign admin update: status = %d, want 403", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/announcements/%d", pinned.ID), token2, nil); w.Code != http.StatusForbidden {
		t.Errorf("foreign admin delete: status = %d, want 403", w.Code)
	}
}

// TestHouseListingFilter 匿名看到全部小区，管理员只看到自己的
func TestHouseListingFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/houses", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous /houses: status = %d", w.Code)
	}
	var houses []struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &houses); err != nil {
		t.Fatalf("decode houses: %v", err)
	}
	if len(houses) != 2 {
		t.Fatalf("anonymous sees %d houses, want 2", len(houses))
	}

	token1 := login(t, r, "/auth/login", "admin1@example.com", "admin12345")
	w = doJSON(r, http.MethodGet, "/houses", token1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin /houses: status = %d", w.Code)
	}
	houses = nil
	if err := json.Unmarshal(w.Body.Bytes(), &houses); err != nil {
		t.Fatalf("decode houses: %v", err)
	}
	if len(houses) != 1 || houses[0].Slug != "dom1" {
		t.Errorf("admin houses = %+v, want exactly dom1", houses)
	}
}

// TestAuthFailures 登录和认证的失败路径
func TestAuthFailures(t *testing.T) {
	r := newTestRouter(t)

	// 密码错误
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "admin1@example.com", "password": "wrong"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad password: status = %d, want 400", w.Code)
	}

	// 凭据正确但不是这个小区的入口
	w = doJSON(r, http.MethodPost, "/auth/login/dom2", "", gin.H{"email": "admin1@example.com", "password": "admin12345"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong house entry: status = %d, want 400", w.Code)
	}

	// 缺少令牌的必选认证端点
	if w := doJSON(r, http.MethodGet, "/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("/me without token: status = %d, want 401", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/houses/dom1/announcements", "",
		gin.H{"title": "x", "content": "y"}); w.Code != http.StatusUnauthorized {
		t.Errorf("create without token: status = %d, want 401", w.Code)
	}

	// 伪造令牌
	if w := doJSON(r, http.MethodGet, "/me", "not-a-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("/me with garbage token: status = %d, want 401", w.Code)
	}

	// 可选认证端点对无效令牌降级为匿名而不是拒绝
	if w := doJSON(r, http.MethodGet, "/houses", "not-a-token", nil); w.Code != http.StatusOK {
		t.Errorf("/houses with garbage token: status = %d, want 200", w.Code)
	}
}

// TestLoginFailureGuard 失败次数超限后登录被拒，成功登录清零计数
func TestLoginFailureGuard(t *testing.T) {
	mr := miniredis.RunT(t)
	r := newTestRouterAt(t, mr.Host(), mr.Port())

	// 计数已到上限：即使凭据正确也被拒
	if err := mr.Set("login_failures:admin1@example.com", "10"); err != nil {
		t.Fatalf("预置失败计数失败: %v", err)
	}
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "admin1@example.com", "password": "admin12345"})
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("login over failure limit: status = %d, want 429", w.Code)
	}

	// 上限以下登录成功，并清除计数
	if err := mr.Set("login_failures:admin2@example.com", "3"); err != nil {
		t.Fatalf("预置失败计数失败: %v", err)
	}
	login(t, r, "/auth/login", "admin2@example.com", "admin12345")
	if mr.Exists("login_failures:admin2@example.com") {
		t.Error("successful login should clear the failure counter")
	}

	// 登录失败记一次计数
	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "admin2@example.com", "password": "wrong"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad password: status = %d, want 400", w.Code)
	}
	if got, err := mr.Get("login_failures:admin2@example.com"); err != nil || got != "1" {
		t.Errorf("failure counter = %q (err %v), want 1", got, err)
	}
}

// TestMe 返回当前用户及其小区slug
func TestMe(t *testing.T) {
	r := newTestRouter(t)

	token1 := login(t, r, "/auth/login", "admin1@example.com", "admin12345")

	w := doJSON(r, http.MethodGet, "/me", token1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("/me status = %d", w.Code)
	}

	var me struct {
		ID        uint   `json:"id"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		HouseSlug string `json:"house_slug"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode /me: %v", err)
	}
	if me.Email != "admin1@example.com" || me.Role != "admin" || me.HouseSlug != "dom1" {
		t.Errorf("/me = %+v", me)
	}
}

// TestUpdateAndDelete 更新是整体覆盖，删除返回{ok:true}
func TestUpdateAndDelete(t *testing.T) {
	r := newTestRouter(t)

	token1 := login(t, r, "/auth/login/dom1", "admin1@example.com", "admin12345")

	w := doJSON(r, http.MethodPost, "/houses/dom1/announcements", token1,
		gin.H{"title": "  A  ", "content": "  B  ", "pinned": true})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}
	var created announcementOut
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Title != "A" || created.Content != "B" {
		t.Errorf("trim on create: (%q, %q), want (A, B)", created.Title, created.Content)
	}

	// 更新时省略pinned：应用载荷默认值false，不保留原值
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/announcements/%d", created.ID), token1,
		gin.H{"title": "New title", "content": "New content"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated announcementOut
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Pinned {
		t.Error("omitted pinned must reset to false, not preserve the stored value")
	}
	if updated.Title != "New title" {
		t.Errorf("title = %q", updated.Title)
	}

	// 删除返回 {ok: true}
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/announcements/%d", created.ID), token1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	var deleted map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if !deleted["ok"] {
		t.Errorf("delete response = %v, want {ok: true}", deleted)
	}

	// 再次删除已不存在
	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/announcements/%d", created.ID), token1, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", w.Code)
	}

	// 未知slug
	if w := doJSON(r, http.MethodGet, "/houses/nope/announcements", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown slug: status = %d, want 404", w.Code)
	}
}
