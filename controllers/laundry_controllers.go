package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washease/laundry-app/middlewares"
	"github.com/washease/laundry-app/services"
	"github.com/washease/laundry-app/utils"
)

// LaundryController serves the customer-facing surface plus the admin
// panel's direct status override.
type LaundryController struct {
	DB      *gorm.DB
	Service *services.LaundryService
}

func NewLaundryController(db *gorm.DB) *LaundryController {
	return &LaundryController{DB: db, Service: services.NewLaundryService(db)}
}

func orderIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("Invalid order id")
	}
	return uint(id), nil
}

// CreateLaundry opens a new request for the caller.
func (lc *LaundryController) CreateLaundry(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	var req struct {
		Clothes             []services.ClothingItemInput `json:"clothes"`
		SpecialInstructions string                       `json:"specialInstructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := lc.Service.Create(user, req.Clothes, req.SpecialInstructions)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, order)
}

// GetMyLaundry lists the caller's own requests, newest first.
func (lc *LaundryController) GetMyLaundry(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	orders, err := lc.Service.ListForUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

// GetAllLaundry lists every request. Any authenticated user may call it;
// the dashboards for admin and washer are the intended consumers.
func (lc *LaundryController) GetAllLaundry(c *gin.Context) {
	orders, err := lc.Service.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orders)
}

// UpdateLaundryStatus is the admin panel's direct override: it sets any of
// the panel's statuses without walking the transition graph. Restricted to
// employees, and audited like every other status change.
func (lc *LaundryController) UpdateLaundryStatus(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}
	if !user.IsEmployee() {
		utils.RespondError(c, http.StatusForbidden, errors.New("Access denied. Employee role required."))
		return
	}

	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Status is required"))
		return
	}

	order, err := lc.Service.Override(id, user, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

// DeleteLaundry removes the caller's own request.
func (lc *LaundryController) DeleteLaundry(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user not found in context"))
		return
	}

	id, err := orderIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := lc.Service.Delete(id, user.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Laundry request removed"})
}
