package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"budgetbuddy/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		Email:  config.EmailConfig{Enabled: false},
	}
}

func TestTransactionHandler_Create_Expense(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/transactions", NewTransactionHandler(testConfig()).Create)

	body := `{"type":"expense","amount":99.99,"description":"午餐","category":"Food"}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Create_Income(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/transactions", NewTransactionHandler(testConfig()).Create)

	body := `{"type":"income","amount":5000,"source":"工资"}`
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 校验失败时不应产生任何数据库写入
func TestTransactionHandler_Create_InvalidInput(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/transactions", NewTransactionHandler(testConfig()).Create)

	cases := []string{
		`{"type":"expense","amount":99,"description":"午餐","category":"无效类别"}`, // 类别不在枚举内
		`{"type":"expense","amount":99,"category":"Food"}`,                      // 缺少描述
		`{"type":"income","amount":5000,"source":"工资","category":"Food"}`,       // 收入不允许类别
		`{"type":"expense","amount":-5,"description":"午餐","category":"Food"}`,   // 金额非正
		`{"type":"transfer","amount":99,"description":"x"}`,                     // 未知类型
	}

	for _, body := range cases {
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, "body: %s", body)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count.* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "description", "source", "category", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, 1, "income", 5000.0, "", "工资", "", time.Now(), time.Now(), nil).
			AddRow(1, 1, "expense", 99.99, "午餐", "", "Food", time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/transactions", NewTransactionHandler(testConfig()).List)

	req := httptest.NewRequest("GET", "/transactions?page=1&page_size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Len(t, data["list"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 编辑整体替换金额/描述/来源/类别，记账时间不变
func TestTransactionHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	createdAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "description", "source", "category", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "expense", 99.99, "午餐", "", "Food", createdAt, createdAt, nil))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 更新后重新读取
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "description", "source", "category", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "expense", 150.0, "晚餐", "", "Food", createdAt, time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/transactions/:id", NewTransactionHandler(testConfig()).Update)

	body := `{"amount":150,"description":"晚餐","category":"Food"}`
	req := httptest.NewRequest("PUT", "/transactions/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(150), data["amount"])
	assert.Equal(t, "晚餐", data["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/transactions/:id", NewTransactionHandler(testConfig()).Delete)

	req := httptest.NewRequest("DELETE", "/transactions/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 类别枚举是进程级静态配置，顺序固定
func TestTransactionHandler_GetCategories(t *testing.T) {
	router := gin.New()
	router.GET("/categories", NewTransactionHandler(testConfig()).GetCategories)

	req := httptest.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	require.Len(t, list, 8)
	assert.Equal(t, "Housing", list[0])
	assert.Equal(t, "Other", list[7])
}
