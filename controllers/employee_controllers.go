package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/washease/laundry-app/middlewares"
	"github.com/washease/laundry-app/models"
	"github.com/washease/laundry-app/services"
	"github.com/washease/laundry-app/utils"
)

// EmployeeController serves the order-fulfillment workflow for washers and
// admins.
type EmployeeController struct {
	DB      *gorm.DB
	Service *services.LaundryService
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Service: services.NewLaundryService(db)}
}

// Login issues an employee-scoped token. Only washer and admin accounts
// match; a student with valid credentials still gets a 401 here.
func (ec *EmployeeController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Please provide email and password"))
		return
	}

	var employee models.User
	err := ec.DB.Where("email = ? AND role IN ?", input.Email,
		[]string{models.RoleWasher, models.RoleAdmin}).First(&employee).Error
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid email or password"))
		return
	}

	token, err := utils.GenerateToken(employee.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Employee login: %s (role=%s)", employee.Email, employee.Role)
	utils.RespondJSON(c, http.StatusOK, authResponse(&employee, token))
}

// GetOrders lists orders assigned to the caller plus unassigned pending
// ones.
func (ec *EmployeeController) GetOrders(c *gin.Context) {
	employee, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	orders, err := ec.Service.ListForEmployee(employee.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

// GetOrderDetails returns one order with its full activity log resolved.
func (ec *EmployeeController) GetOrderDetails(c *gin.Context) {
	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ec.Service.Details(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// AcceptOrder claims a pending order for the caller.
func (ec *EmployeeController) AcceptOrder(c *gin.Context) {
	employee, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ec.Service.Accept(id, employee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// RejectOrder declines a pending order with a reason.
func (ec *EmployeeController) RejectOrder(c *gin.Context) {
	employee, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; an absent reason falls back to a placeholder.
	_ = c.ShouldBindJSON(&req)

	order, err := ec.Service.Reject(id, employee, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// UpdateOrderStatus advances an order one step along the lifecycle.
func (ec *EmployeeController) UpdateOrderStatus(c *gin.Context) {
	employee, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Status is required"))
		return
	}

	order, err := ec.Service.Advance(id, employee, req.Status, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}
