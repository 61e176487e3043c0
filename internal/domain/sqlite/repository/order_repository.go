package repository

import (
	"errors"

	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

// DefaultOrderRepository is the order ledger. Company scoping always joins
// through the client row, because orders only reach their tenant that way.
type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

// FindActiveScoped fetches an active order by id. Non-elevated callers only
// see orders belonging to a client of their own company; for them an
// out-of-scope id behaves exactly like a missing row.
func (d *DefaultOrderRepository) FindActiveScoped(id, companyID int64, elevated bool) (*entity.ServiceOrder, error) {
	return d.findScoped(id, companyID, elevated, true)
}

// FindScopedWithState is FindActiveScoped with an explicit is_active
// expectation, used by the soft-delete toggle.
func (d *DefaultOrderRepository) FindScopedWithState(id, companyID int64, elevated, active bool) (*entity.ServiceOrder, error) {
	return d.findScoped(id, companyID, elevated, active)
}

func (d *DefaultOrderRepository) findScoped(id, companyID int64, elevated, active bool) (*entity.ServiceOrder, error) {
	q := d.db.
		Preload("Client").
		Where("service_orders.service_order_id = ? AND service_orders.is_active = ?", id, active)
	if !elevated {
		q = q.
			Joins("JOIN clients ON clients.client_id = service_orders.client_id").
			Where("clients.company_id = ?", companyID)
	}

	var order entity.ServiceOrder
	err := q.First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindDetailedScoped loads the order with the full display graph used by
// the history view.
func (d *DefaultOrderRepository) FindDetailedScoped(id, companyID int64, elevated bool) (*entity.ServiceOrder, error) {
	q := d.db.
		Preload("Client.Person").
		Preload("Client.Company").
		Preload("Model.Brand").
		Where("service_orders.service_order_id = ? AND service_orders.is_active = ?", id, true)
	if !elevated {
		q = q.
			Joins("JOIN clients ON clients.client_id = service_orders.client_id").
			Where("clients.company_id = ?", companyID)
	}

	var order entity.ServiceOrder
	err := q.First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &order, nil
}

// NextNumber allocates the next human-facing order number within the
// company. Callers must run it inside the same transaction that inserts
// the order, otherwise two creations can race to the same number.
func (d *DefaultOrderRepository) NextNumber(companyID int64) (int64, error) {
	var max int64
	err := d.db.Model(&entity.ServiceOrder{}).
		Joins("JOIN clients ON clients.client_id = service_orders.client_id").
		Where("clients.company_id = ?", companyID).
		Select("COALESCE(MAX(service_orders.number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (d *DefaultOrderRepository) Create(order *entity.ServiceOrder) error {
	return d.db.Create(order).Error
}

func (d *DefaultOrderRepository) Save(order *entity.ServiceOrder) error {
	return d.db.Save(order).Error
}

// FindPendingByCompany lists unfinished active orders of a company, oldest
// reception first.
func (d *DefaultOrderRepository) FindPendingByCompany(companyID int64, limit, offset int) ([]*entity.ServiceOrder, int64, error) {
	base := d.db.Model(&entity.ServiceOrder{}).
		Joins("JOIN clients ON clients.client_id = service_orders.client_id").
		Where("clients.company_id = ?", companyID).
		Where("service_orders.is_finished = ? AND service_orders.is_active = ?", false, true)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []*entity.ServiceOrder
	err := base.
		Preload("Client.Person").
		Preload("Model").
		Order("service_orders.received_at ASC, service_orders.service_order_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}
