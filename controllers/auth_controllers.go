package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/washease/laundry-app/middlewares"
	"github.com/washease/laundry-app/models"
	"github.com/washease/laundry-app/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func authResponse(user *models.User, token string) gin.H {
	return gin.H{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"hostel_block": user.HostelBlock,
		"room_number":  user.RoomNumber,
		"token":        token,
	}
}

// Signup registers a new user and returns a fresh token.
func (ac *AuthController) Signup(c *gin.Context) {
	type request struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		Role        string `json:"role"`
		HostelBlock string `json:"hostelBlock"`
		RoomNumber  string `json:"roomNumber"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("User already exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleWasher && role != models.RoleAdmin {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid user data"))
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        role,
		HostelBlock: req.HostelBlock,
		RoomNumber:  req.RoomNumber,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusCreated, authResponse(&user, token))
}

// Login authenticates any user by email and password.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Please provide email and password"))
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid email or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, authResponse(&user, token))
}

// GetProfile returns the caller's record.
func (ac *AuthController) GetProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, user)
}

// UpdateProfile changes name, hostel block, room number and password only.
// Email and role are immutable on this path; values sent for them are
// ignored.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	var req struct {
		Name        string `json:"name"`
		HostelBlock string `json:"hostelBlock"`
		RoomNumber  string `json:"roomNumber"`
		Password    string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.HostelBlock != "" {
		user.HostelBlock = req.HostelBlock
	}
	if req.RoomNumber != "" {
		user.RoomNumber = req.RoomNumber
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		user.Password = string(hashed)
	}

	if err := ac.DB.Model(user).Select("name", "hostel_block", "room_number", "password").
		Updates(user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, user)
}
