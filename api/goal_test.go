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

func TestGoalHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `savings_goals`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/goals", NewGoalHandler().Create)

	body := `{"name":"旅行基金","target":10000}`
	req := httptest.NewRequest("POST", "/goals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["current"])
	assert.Equal(t, float64(0), data["progress"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_List_WithProgress(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "target", "current", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "旅行基金", 10000.0, 2500.0, now, now, nil).
			AddRow(2, 1, "应急基金", 1000.0, 1500.0, now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/goals", NewGoalHandler().List)

	req := httptest.NewRequest("GET", "/goals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	assert.Equal(t, float64(25), first["progress"])
	// 进度封顶 100，即使当前额超过目标
	second := list[1].(map[string]interface{})
	assert.Equal(t, float64(100), second["progress"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 投入走 current = current + ? 的原子自增，不做读-改-写
func TestGoalHandler_Contribute(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "target", "current", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "旅行基金", 10000.0, 2500.0, now, now, nil))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `savings_goals` SET `current`=current \\+ ").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "target", "current", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "旅行基金", 10000.0, 2600.0, now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/goals/:id/contribute", NewGoalHandler().Contribute)

	body := `{"amount":100}`
	req := httptest.NewRequest("POST", "/goals/1/contribute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2600), data["current"])
	assert.Equal(t, float64(26), data["progress"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 金额非法时不触存储写入
func TestGoalHandler_Contribute_InvalidAmount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "target", "current", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "旅行基金", 10000.0, 2500.0, now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/goals/:id/contribute", NewGoalHandler().Contribute)

	body := `{"amount":-50}`
	req := httptest.NewRequest("POST", "/goals/1/contribute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalHandler_Contribute_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `savings_goals`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/goals/:id/contribute", NewGoalHandler().Contribute)

	body := `{"amount":100}`
	req := httptest.NewRequest("POST", "/goals/99/contribute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
