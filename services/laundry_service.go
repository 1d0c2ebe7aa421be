package services

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/washease/laundry-app/models"
	"github.com/washease/laundry-app/utils"
)

// LaundryService is the order workflow engine. Every status mutation runs as
// a conditional update against the status the caller observed, inside one
// transaction with its activity-log append, so concurrent writers cannot
// silently overwrite each other and the audit trail never misses a change.
type LaundryService struct {
	db *gorm.DB
}

func NewLaundryService(db *gorm.DB) *LaundryService {
	return &LaundryService{db: db}
}

type ClothingItemInput struct {
	ItemType string `json:"itemType"`
	Quantity int    `json:"quantity"`
}

// Create opens a new laundry request for user. Status starts at pending,
// unassigned.
func (s *LaundryService) Create(user *models.User, items []ClothingItemInput, instructions string) (*models.Laundry, error) {
	if len(items) == 0 {
		return nil, newError(http.StatusBadRequest, "Please provide at least one clothing item")
	}
	for _, item := range items {
		if item.ItemType == "" || item.Quantity < 1 {
			return nil, newError(http.StatusBadRequest, "Each item must have a type and quantity of at least 1")
		}
	}

	laundry := models.Laundry{
		UserID:              user.ID,
		Status:              models.StatusPending,
		SpecialInstructions: instructions,
	}
	for _, item := range items {
		laundry.Clothes = append(laundry.Clothes, models.ClothingItem{
			ItemType: item.ItemType,
			Quantity: item.Quantity,
		})
	}

	if err := s.db.Create(&laundry).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Laundry request #%d created by user %d (%d items)",
		laundry.ID, user.ID, len(items))

	return s.Details(laundry.ID)
}

// ListForUser returns the user's own requests, newest first.
func (s *LaundryService) ListForUser(userID uint) ([]models.Laundry, error) {
	var orders []models.Laundry
	err := s.db.Preload("User").Preload("Clothes").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListAll returns every request, newest first.
func (s *LaundryService) ListAll() ([]models.Laundry, error) {
	var orders []models.Laundry
	err := s.db.Preload("User").Preload("Clothes").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListForEmployee returns orders assigned to the employee plus unassigned
// pending ones, newest first.
func (s *LaundryService) ListForEmployee(employeeID uint) ([]models.Laundry, error) {
	var orders []models.Laundry
	err := s.db.Preload("User").Preload("AssignedTo").Preload("Clothes").
		Where("assigned_to_id = ? OR (status = ? AND assigned_to_id IS NULL)",
			employeeID, models.StatusPending).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// Details loads one order with user, assignee and activity-log authors
// resolved for display.
func (s *LaundryService) Details(orderID uint) (*models.Laundry, error) {
	var order models.Laundry
	err := s.db.Preload("User").Preload("AssignedTo").Preload("Clothes").
		Preload("ActivityLog", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("activity_logs.id ASC")
		}).
		Preload("ActivityLog.UpdatedBy").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(http.StatusNotFound, "Order not found")
		}
		return nil, err
	}
	return &order, nil
}

// Delete removes an order. Only the owning user may delete, and only on the
// customer path; the employee surface never deletes.
func (s *LaundryService) Delete(orderID, userID uint) error {
	var order models.Laundry
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(http.StatusNotFound, "Laundry request not found")
		}
		return err
	}
	if order.UserID != userID {
		return newError(http.StatusForbidden, "You can only delete your own laundry requests")
	}
	return s.db.Select("Clothes", "ActivityLog").Delete(&order).Error
}

// Accept assigns a pending order to the acting employee and moves it to
// accepted. Assignment is set exactly once and never cleared.
func (s *LaundryService) Accept(orderID uint, employee *models.User) (*models.Laundry, error) {
	order, err := s.Details(orderID)
	if err != nil {
		return nil, err
	}
	if order.AssignedToID != nil && *order.AssignedToID != employee.ID {
		return nil, newError(http.StatusForbidden, "Order is already assigned to another employee")
	}
	if order.Status != models.StatusPending {
		return nil, newError(http.StatusConflict, "Order is not in pending status")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Laundry{}).
			Where("id = ? AND status = ?", order.ID, models.StatusPending).
			Updates(map[string]interface{}{
				"status":         models.StatusAccepted,
				"assigned_to_id": employee.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// A concurrent writer got there first.
			return newError(http.StatusConflict, "Order is not in pending status")
		}
		return tx.Create(&models.ActivityLog{
			LaundryID:   order.ID,
			Status:      models.StatusAccepted,
			UpdatedByID: employee.ID,
			UpdatedAt:   time.Now(),
			Notes:       "Order accepted by employee",
		}).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d accepted by employee %d", order.ID, employee.ID)
	return s.Details(order.ID)
}

// Reject moves a pending order to the terminal rejected status. An omitted
// reason is stored as a placeholder rather than refused; the client is
// expected to enforce non-empty input.
func (s *LaundryService) Reject(orderID uint, employee *models.User, reason string) (*models.Laundry, error) {
	order, err := s.Details(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.StatusPending {
		return nil, newError(http.StatusConflict, "Order is not in pending status")
	}

	if reason == "" {
		reason = "No reason provided"
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Laundry{}).
			Where("id = ? AND status = ?", order.ID, models.StatusPending).
			Updates(map[string]interface{}{
				"status":           models.StatusRejected,
				"rejection_reason": reason,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return newError(http.StatusConflict, "Order is not in pending status")
		}
		return tx.Create(&models.ActivityLog{
			LaundryID:   order.ID,
			Status:      models.StatusRejected,
			UpdatedByID: employee.ID,
			UpdatedAt:   time.Now(),
			Notes:       reason,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d rejected by employee %d: %s", order.ID, employee.ID, reason)
	return s.Details(order.ID)
}

// Advance moves an order one step forward along the lifecycle. The target
// must be the single legal successor of the current status. Pickup and
// delivery timestamps are stamped the first time their status is reached and
// never overwritten.
func (s *LaundryService) Advance(orderID uint, employee *models.User, target, notes string) (*models.Laundry, error) {
	if !models.IsAdvanceTarget(target) {
		return nil, newError(http.StatusBadRequest, "Invalid status")
	}

	order, err := s.Details(orderID)
	if err != nil {
		return nil, err
	}
	if order.AssignedToID != nil && *order.AssignedToID != employee.ID {
		return nil, newError(http.StatusForbidden, "You are not assigned to this order")
	}

	next, ok := models.NextStatus(order.Status)
	if !ok {
		return nil, newError(http.StatusConflict,
			"Cannot change status from %s to %s", order.Status, target)
	}
	if next != target {
		return nil, newError(http.StatusConflict,
			"Cannot change status from %s to %s. Valid next status: %s",
			order.Status, target, next)
	}

	if notes == "" {
		notes = "Status changed from " + order.Status + " to " + target
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": target}
		now := time.Now()
		if target == models.StatusPickedUp && order.PickupDate == nil {
			updates["pickup_date"] = now
		}
		if target == models.StatusDelivered && order.DeliveryDate == nil {
			updates["delivery_date"] = now
		}

		res := tx.Model(&models.Laundry{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return newError(http.StatusConflict,
				"Order status changed concurrently, please retry")
		}
		return tx.Create(&models.ActivityLog{
			LaundryID:   order.ID,
			Status:      target,
			UpdatedByID: employee.ID,
			UpdatedAt:   now,
			Notes:       notes,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d moved %s -> %s by employee %d",
		order.ID, order.Status, target, employee.ID)
	return s.Details(order.ID)
}

// Override sets an order's status directly, skipping the transition graph.
// This is the admin panel's privileged bypass: it accepts the panel's legacy
// status vocabulary, but unlike the historical behavior it is audited like
// every other mutation. Date stamping remains first-time-only.
func (s *LaundryService) Override(orderID uint, actor *models.User, legacyStatus string) (*models.Laundry, error) {
	target, ok := models.ResolveLegacyStatus(legacyStatus)
	if !ok {
		return nil, newError(http.StatusBadRequest, "Invalid status")
	}

	order, err := s.Details(orderID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": target}
		now := time.Now()
		if target == models.StatusPickedUp && order.PickupDate == nil {
			updates["pickup_date"] = now
		}
		if target == models.StatusDelivered && order.DeliveryDate == nil {
			updates["delivery_date"] = now
		}

		res := tx.Model(&models.Laundry{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return newError(http.StatusConflict,
				"Order status changed concurrently, please retry")
		}
		return tx.Create(&models.ActivityLog{
			LaundryID:   order.ID,
			Status:      target,
			UpdatedByID: actor.ID,
			UpdatedAt:   now,
			Notes:       "Status overridden from " + order.Status + " to " + target + " (direct admin update)",
		}).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d status overridden %s -> %s by user %d",
		order.ID, order.Status, target, actor.ID)
	return s.Details(order.ID)
}
