package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupLoginFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	payload := map[string]interface{}{
		"name":        "Asha Nair",
		"email":       "asha@hostel.edu",
		"password":    "washme123",
		"hostelBlock": "C",
		"roomNumber":  "312",
	}

	w := doJSON(t, r, "POST", "/api/auth/signup", "", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Asha Nair", body["name"])
	assert.Equal(t, "asha@hostel.edu", body["email"])
	// Role defaults to student when the client does not send one.
	assert.Equal(t, "student", body["role"])
	assert.NotEmpty(t, body["token"])

	// Duplicate email is refused.
	w = doJSON(t, r, "POST", "/api/auth/signup", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decodeBody(t, w)["message"])

	// Login with the right password.
	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "asha@hostel.edu",
		"password": "washme123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	// And with the wrong one.
	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "asha@hostel.edu",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["message"])
}

func TestProfileRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	w := doJSON(t, r, "GET", "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "GET", "/api/auth/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileUpdateKeepsEmailAndRole(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	user, token := seedUserWithToken(t, db, "ravi", "student")

	w := doJSON(t, r, "PUT", "/api/auth/profile", token, map[string]string{
		"name":        "Ravi K",
		"hostelBlock": "D",
		"roomNumber":  "101",
		"email":       "new@hostel.edu",
		"role":        "admin",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Ravi K", body["name"])
	assert.Equal(t, "D", body["hostel_block"])
	assert.Equal(t, "101", body["room_number"])
	// Email and role are immutable on the profile path.
	assert.Equal(t, user.Email, body["email"])
	assert.Equal(t, "student", body["role"])
}

func TestProfilePasswordChange(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)
	user, token := seedUserWithToken(t, db, "sana", "student")

	w := doJSON(t, r, "PUT", "/api/auth/profile", token, map[string]string{
		"password": "newpass456",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "newpass456",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
