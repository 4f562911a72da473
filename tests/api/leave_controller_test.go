package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/api"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submitBody 构造一份合法的提交请求体
func submitBody(email string, admins ...string) map[string]interface{} {
	return map[string]interface{}{
		"email":           email,
		"from_date":       "2025-03-10",
		"to_date":         "2025-03-14",
		"reason":          "Family function",
		"selected_admins": admins,
	}
}

// submitLeaveHTTP 通过 HTTP 提交请假单并返回其 ID
func submitLeaveHTTP(t *testing.T, env *testEnv, email string, admins ...string) uint {
	w := env.postJSON(t, "/submit-leave", submitBody(email, admins...))
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var leave model.LeaveRequestModel
	require.NoError(t, json.Unmarshal(data, &leave))
	require.NotZero(t, leave.ID)
	return leave.ID
}

// TestLeaveAPI_SubmitAndList 测试提交与列表接口
func TestLeaveAPI_SubmitAndList(t *testing.T) {
	env := setupAPITest(t)
	env.createUser(t, "Sarthak", "student@pccoe.com", model.RoleStudent)
	env.createUser(t, "Shivani", "shivani@pccoe.com", model.RoleAdmin)

	leaveID := submitLeaveHTTP(t, env, "student@pccoe.com", "shivani@pccoe.com")

	w := env.get(t, "/get-leaves")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	leaves, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, leaves, 1)

	first, ok := leaves[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(leaveID), first["ID"])
	assert.Equal(t, string(model.LeaveStatusPending), first["Status"])
	assert.Equal(t, "Sarthak", first["owner_name"])
}

// TestLeaveAPI_SubmitValidation 测试提交参数校验
func TestLeaveAPI_SubmitValidation(t *testing.T) {
	env := setupAPITest(t)
	env.createUser(t, "Sarthak", "student@pccoe.com", model.RoleStudent)

	// 缺少必填字段
	w := env.postJSON(t, "/submit-leave", map[string]interface{}{"email": "student@pccoe.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 未选定任何审批管理员
	w = env.postJSON(t, "/submit-leave", submitBody("student@pccoe.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestLeaveAPI_SubmitUnknownOwner 测试未知申请人返回 404
func TestLeaveAPI_SubmitUnknownOwner(t *testing.T) {
	env := setupAPITest(t)
	env.createUser(t, "Shivani", "shivani@pccoe.com", model.RoleAdmin)

	w := env.postJSON(t, "/submit-leave", submitBody("ghost@pccoe.com", "shivani@pccoe.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusNotFound, errResp.Code)
}

// TestLeaveAPI_DecideApprove 测试审批通过流程
func TestLeaveAPI_DecideApprove(t *testing.T) {
	env := setupAPITest(t)
	env.createUser(t, "Sarthak", "student@pccoe.com", model.RoleStudent)
	env.createUser(t, "Shivani", "shivani@pccoe.com", model.RoleAdmin)

	leaveID := submitLeaveHTTP(t, env, "student@pccoe.com", "shivani@pccoe.com")

	w := env.postJSON(t, "/approve-leave", map[string]interface{}{
		"leave_id": leaveID,
		"email":    "shivani@pccoe.com",
		"action":   "APPROVED",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var leave model.LeaveRequestModel
	require.NoError(t, env.db.First(&leave, leaveID).Error)
	assert.Equal(t, model.LeaveStatusApproved, leave.Status)
}

// TestLeaveAPI_DecideErrorMapping 测试审批错误到状态码的映射
func TestLeaveAPI_DecideErrorMapping(t *testing.T) {
	env := setupAPITest(t)
	env.createUser(t, "Sarthak", "student@pccoe.com", model.RoleStudent)
	env.createUser(t, "Shivani", "shivani@pccoe.com", model.RoleAdmin)
	env.createUser(t, "Rahul", "rahul@pccoe.com", model.RoleAdmin)

	leaveID := submitLeaveHTTP(t, env, "student@pccoe.com", "shivani@pccoe.com")

	decide := func(leaveID uint, email, action string) *httptest.ResponseRecorder {
		return env.postJSON(t, "/approve-leave", map[string]interface{}{
			"leave_id": leaveID,
			"email":    email,
			"action":   action,
		})
	}

	// 非管理员操作
	w := decide(leaveID, "student@pccoe.com", "APPROVED")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员未被选定
	w = decide(leaveID, "rahul@pccoe.com", "APPROVED")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 请假单不存在
	w = decide(9999, "shivani@pccoe.com", "APPROVED")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 非法动作
	w = decide(leaveID, "shivani@pccoe.com", "MAYBE")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 重复表态
	w = decide(leaveID, "shivani@pccoe.com", "APPROVED")
	require.Equal(t, http.StatusOK, w.Code)
	w = decide(leaveID, "shivani@pccoe.com", "APPROVED")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestLeaveAPI_DecideAfterFinalized 测试终态后的审批被拒绝
func TestLeaveAPI_DecideAfterFinalized(t *testing.T) {
	env := setupAPITest(t)
	env.createUser(t, "Sarthak", "student@pccoe.com", model.RoleStudent)
	env.createUser(t, "Shivani", "shivani@pccoe.com", model.RoleAdmin)
	env.createUser(t, "Rahul", "rahul@pccoe.com", model.RoleAdmin)

	leaveID := submitLeaveHTTP(t, env, "student@pccoe.com", "shivani@pccoe.com", "rahul@pccoe.com")

	w := env.postJSON(t, "/approve-leave", map[string]interface{}{
		"leave_id": leaveID,
		"email":    "shivani@pccoe.com",
		"action":   "REJECTED",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.postJSON(t, "/approve-leave", map[string]interface{}{
		"leave_id": leaveID,
		"email":    "rahul@pccoe.com",
		"action":   "APPROVED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var leave model.LeaveRequestModel
	require.NoError(t, env.db.First(&leave, leaveID).Error)
	assert.Equal(t, model.LeaveStatusRejected, leave.Status)
}
