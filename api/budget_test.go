package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetHandler_Get_NoRecord(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budget_records`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/budgets", NewBudgetHandler().Get)

	req := httptest.NewRequest("GET", "/budgets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 无记录时返回零值记录而非 404
	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["overall_limit"])
	assert.Equal(t, "overall", data["mode"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_PutOverallLimit_CreatesRecord(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 首次设置：无已有记录
	mock.ExpectQuery("SELECT .* FROM `budget_records`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budget_records`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/overall", NewBudgetHandler().PutOverallLimit)

	body := `{"limit":500}`
	req := httptest.NewRequest("PUT", "/budgets/overall", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["overall_limit"])
	assert.Equal(t, "overall", data["mode"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 设置类别上限只更新 categories 和 mode 两列，总体上限原样保留
func TestBudgetHandler_PutCategoryLimit_PreservesOverall(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `budget_records`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "overall_limit", "categories", "mode", "created_at", "updated_at"}).
			AddRow(1, 1, 500.0, `{}`, "overall", now, now))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budget_records`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/categories", NewBudgetHandler().PutCategoryLimit)

	body := `{"category":"Food","amount":100}`
	req := httptest.NewRequest("PUT", "/budgets/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["overall_limit"])
	assert.Equal(t, "category", data["mode"])
	categories := data["categories"].(map[string]interface{})
	assert.Equal(t, float64(100), categories["Food"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 反向合并：已有类别上限时设置总体上限不清空 categories
func TestBudgetHandler_PutOverallLimit_PreservesCategories(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `budget_records`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "overall_limit", "categories", "mode", "created_at", "updated_at"}).
			AddRow(1, 1, 0.0, `{"Food":100}`, "category", now, now))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budget_records`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/overall", NewBudgetHandler().PutOverallLimit)

	body := `{"limit":800}`
	req := httptest.NewRequest("PUT", "/budgets/overall", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(800), data["overall_limit"])
	assert.Equal(t, "overall", data["mode"])
	categories := data["categories"].(map[string]interface{})
	assert.Equal(t, float64(100), categories["Food"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_PutCategoryLimit_InvalidCategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/categories", NewBudgetHandler().PutCategoryLimit)

	body := `{"category":"不存在的类别","amount":100}`
	req := httptest.NewRequest("PUT", "/budgets/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_PutOverallLimit_InvalidAmount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 金额校验在读取已有记录之后
	mock.ExpectQuery("SELECT .* FROM `budget_records`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/budgets/overall", NewBudgetHandler().PutOverallLimit)

	body := `{"limit":-100}`
	req := httptest.NewRequest("PUT", "/budgets/overall", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
