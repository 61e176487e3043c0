package repository

import (
	"errors"

	"gorm.io/gorm"

	"repairdesk/internal/domain/entity"
)

// DefaultStatusRepository is the stage registry: the per-company ordered
// list of pipeline stages the workflow engine traverses.
type DefaultStatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *DefaultStatusRepository {
	return &DefaultStatusRepository{db: db}
}

func (d *DefaultStatusRepository) FindByID(id int64) (*entity.ServiceStatus, error) {
	var status entity.ServiceStatus
	err := d.db.First(&status, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (d *DefaultStatusRepository) FindActiveByID(id int64) (*entity.ServiceStatus, error) {
	var status entity.ServiceStatus
	err := d.db.Where("status_id = ? AND is_active = ?", id, true).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &status, nil
}

// FindByCompanyAndOrder fetches the company's active stage sitting at the
// given pipeline position. Duplicate positions are a data-integrity gap the
// registry does not police; the lowest id wins so traversal stays
// deterministic.
func (d *DefaultStatusRepository) FindByCompanyAndOrder(companyID int64, stageOrder int) (*entity.ServiceStatus, error) {
	var status entity.ServiceStatus
	err := d.db.
		Where("company_id = ? AND stage_order = ? AND is_active = ?", companyID, stageOrder, true).
		Order("status_id ASC").
		First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &status, nil
}

// FirstActiveForCompany is the stage new orders start at: the active stage
// with the minimum pipeline position.
func (d *DefaultStatusRepository) FirstActiveForCompany(companyID int64) (*entity.ServiceStatus, error) {
	var status entity.ServiceStatus
	err := d.db.
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("stage_order ASC, status_id ASC").
		First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (d *DefaultStatusRepository) FindActiveByCompany(companyID int64) ([]*entity.ServiceStatus, error) {
	var statuses []*entity.ServiceStatus
	err := d.db.
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("stage_order ASC, status_id ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (d *DefaultStatusRepository) ExistsActiveByNameAndCompany(name string, companyID int64) (bool, error) {
	var count int64
	err := d.db.Model(&entity.ServiceStatus{}).
		Where("company_id = ? AND name = ? AND is_active = ?", companyID, name, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *DefaultStatusRepository) Save(status *entity.ServiceStatus) error {
	return d.db.Save(status).Error
}
