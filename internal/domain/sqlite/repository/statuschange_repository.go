package repository

import (
	"errors"

	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

// DefaultStatusChangeRepository is the transition log: the append-mostly
// journal of stage entries per order.
type DefaultStatusChangeRepository struct {
	db *gorm.DB
}

func NewStatusChangeRepository(db *gorm.DB) *DefaultStatusChangeRepository {
	return &DefaultStatusChangeRepository{db: db}
}

// OpenForOrder returns the order's current position: the most recently
// created entry still marked incomplete. Creation time is the source of
// truth, with the row id breaking same-millisecond ties.
func (d *DefaultStatusChangeRepository) OpenForOrder(orderID int64) (*entity.StatusChange, error) {
	var change entity.StatusChange
	err := d.db.
		Where("service_order_id = ? AND is_completed = ? AND is_active = ?", orderID, false, true).
		Order("created_at DESC, status_change_id DESC").
		First(&change).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &change, nil
}

func (d *DefaultStatusChangeRepository) Append(change *entity.StatusChange) error {
	return d.db.Create(change).Error
}

func (d *DefaultStatusChangeRepository) Close(change *entity.StatusChange) error {
	change.IsCompleted = true
	return d.db.Model(change).Update("is_completed", true).Error
}

// CloseAllOpen completes every open entry of the order in one shot,
// stamping sysDetail with the actor's identity. Returns the number of
// entries closed.
func (d *DefaultStatusChangeRepository) CloseAllOpen(orderID int64, sysDetail string) (int64, error) {
	res := d.db.Model(&entity.StatusChange{}).
		Where("service_order_id = ? AND is_completed = ? AND is_active = ?", orderID, false, true).
		Updates(map[string]any{
			"is_completed": true,
			"sys_detail":   sysDetail,
		})
	return res.RowsAffected, res.Error
}

// HistoryForOrder returns the full journal of the order, in the order the
// entries were created, each with its stage and acting user.
func (d *DefaultStatusChangeRepository) HistoryForOrder(orderID int64) ([]*entity.StatusChange, error) {
	var changes []*entity.StatusChange
	err := d.db.
		Preload("Status").
		Preload("User.Role").
		Where("service_order_id = ? AND is_active = ?", orderID, true).
		Order("created_at ASC, status_change_id ASC").
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}

// OpenAtPosition lists the open entries of a company whose stage sits at
// the given pipeline position, i.e. "which orders are currently at stage
// N". Finished or soft-deleted orders never appear.
func (d *DefaultStatusChangeRepository) OpenAtPosition(companyID int64, stageOrder int) ([]*entity.StatusChange, error) {
	var changes []*entity.StatusChange
	err := d.db.
		Preload("Status").
		Preload("ServiceOrder.Client.Person").
		Preload("ServiceOrder.Model").
		Joins("JOIN service_statuses ON service_statuses.status_id = status_changes.status_id").
		Joins("JOIN service_orders ON service_orders.service_order_id = status_changes.service_order_id").
		Joins("JOIN clients ON clients.client_id = service_orders.client_id").
		Where("status_changes.is_completed = ? AND status_changes.is_active = ?", false, true).
		Where("service_statuses.stage_order = ? AND clients.company_id = ?", stageOrder, companyID).
		Where("service_orders.is_active = ? AND service_orders.is_finished = ?", true, false).
		Order("status_changes.created_at ASC, status_changes.status_change_id ASC").
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}
