package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/washease/laundry-app/models"
	"github.com/washease/laundry-app/services"
)

func TestEmployeeLoginRoleGate(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	student, _ := seedUserWithToken(t, db, "justastudent", "student")
	washer, _ := seedUserWithToken(t, db, "thewasher", "washer")

	// Students cannot obtain an employee token, even with valid
	// credentials.
	w := doJSON(t, r, "POST", "/api/employee/login", "", map[string]string{
		"email":    student.Email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "POST", "/api/employee/login", "", map[string]string{
		"email":    washer.Email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "washer", body["role"])
	assert.NotEmpty(t, body["token"])
}

func TestEmployeeGateBlocksStudents(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	_, tokenStudent := seedUserWithToken(t, db, "sneaky", "student")

	w := doJSON(t, r, "GET", "/api/employee/orders", tokenStudent, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied. Employee role required.", decodeBody(t, w)["message"])

	w = doJSON(t, r, "GET", "/api/employee/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmployeeOrderQueue(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	student, _ := seedUserWithToken(t, db, "queueowner", "student")
	_, tokenA := seedUserWithToken(t, db, "queueA", "washer")
	_, tokenB := seedUserWithToken(t, db, "queueB", "washer")

	svc := services.NewLaundryService(db)
	order, err := svc.Create(student, []services.ClothingItemInput{
		{ItemType: "Shirt", Quantity: 3},
	}, "")
	assert.NoError(t, err)

	// Pending unassigned orders show up for every employee.
	for _, token := range []string{tokenA, tokenB} {
		w := doJSON(t, r, "GET", "/api/employee/orders", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w), 1)
	}

	// A claims it; B's queue empties.
	w := doJSON(t, r, "POST", fmt.Sprintf("/api/employee/orders/%d/accept", order.ID), tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/employee/orders", tokenB, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)

	w = doJSON(t, r, "GET", "/api/employee/orders", tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
}

func TestAcceptAdvanceRejectEndpoints(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	student, _ := seedUserWithToken(t, db, "flowowner", "student")
	_, tokenA := seedUserWithToken(t, db, "flowA", "washer")
	_, tokenB := seedUserWithToken(t, db, "flowB", "washer")

	svc := services.NewLaundryService(db)
	order, err := svc.Create(student, []services.ClothingItemInput{
		{ItemType: "Hoodie", Quantity: 1},
	}, "")
	assert.NoError(t, err)

	acceptURL := fmt.Sprintf("/api/employee/orders/%d/accept", order.ID)
	statusURL := fmt.Sprintf("/api/employee/orders/%d/status", order.ID)
	detailURL := fmt.Sprintf("/api/employee/orders/%d", order.ID)

	w := doJSON(t, r, "POST", acceptURL, tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "accepted", body["status"])
	assert.Len(t, body["activity_log"].([]interface{}), 1)

	// Another employee cannot touch the assigned order.
	w = doJSON(t, r, "POST", acceptURL, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, "PUT", statusURL, tokenB, map[string]string{"status": "picked_up"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "PUT", statusURL, tokenA, map[string]string{"status": "picked_up"})
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "picked_up", body["status"])
	assert.NotNil(t, body["pickup_date"])
	assert.Len(t, body["activity_log"].([]interface{}), 2)

	// Skipping ahead is refused and names the one legal successor.
	w = doJSON(t, r, "PUT", statusURL, tokenA, map[string]string{"status": "ready"})
	assert.Equal(t, http.StatusConflict, w.Code)
	msg := decodeBody(t, w)["message"].(string)
	assert.Contains(t, msg, "Cannot change status from picked_up to ready")
	assert.Contains(t, msg, "Valid next status: in_process")

	// The failed attempt left no trace.
	w = doJSON(t, r, "GET", detailURL, tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "picked_up", body["status"])
	assert.Len(t, body["activity_log"].([]interface{}), 2)
}

func TestRejectEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	student, _ := seedUserWithToken(t, db, "rejowner", "student")
	_, tokenW := seedUserWithToken(t, db, "rejwasher", "washer")

	svc := services.NewLaundryService(db)
	order, err := svc.Create(student, []services.ClothingItemInput{
		{ItemType: "Blazer", Quantity: 1},
	}, "")
	assert.NoError(t, err)

	rejectURL := fmt.Sprintf("/api/employee/orders/%d/reject", order.ID)

	w := doJSON(t, r, "POST", rejectURL, tokenW, map[string]string{
		"reason": "stained beyond repair",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "rejected", body["status"])
	assert.Equal(t, "stained beyond repair", body["rejection_reason"])

	// Terminal: accepting afterwards conflicts.
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/employee/orders/%d/accept", order.ID), tokenW, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var reloaded models.Laundry
	assert.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, "rejected", reloaded.Status)
}

func TestOrderDetailsResolvesPeople(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	student, _ := seedUserWithToken(t, db, "detowner", "student")
	washer, tokenW := seedUserWithToken(t, db, "detwasher", "washer")

	svc := services.NewLaundryService(db)
	order, err := svc.Create(student, []services.ClothingItemInput{
		{ItemType: "Saree", Quantity: 1},
	}, "handle with care")
	assert.NoError(t, err)
	_, err = svc.Accept(order.ID, washer)
	assert.NoError(t, err)

	w := doJSON(t, r, "GET", fmt.Sprintf("/api/employee/orders/%d", order.ID), tokenW, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	user := body["user"].(map[string]interface{})
	assert.Equal(t, student.Name, user["name"])
	assignee := body["assigned_to"].(map[string]interface{})
	assert.Equal(t, washer.Name, assignee["name"])

	logEntries := body["activity_log"].([]interface{})
	if assert.Len(t, logEntries, 1) {
		entry := logEntries[0].(map[string]interface{})
		updatedBy := entry["updated_by"].(map[string]interface{})
		assert.Equal(t, washer.Name, updatedBy["name"])
	}

	w = doJSON(t, r, "GET", "/api/employee/orders/99999", tokenW, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
