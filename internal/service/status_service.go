package service

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"repairdesk/internal/contract"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/sqlite/repository"
	"repairdesk/internal/utils"
	"repairdesk/internal/utils/apierror"
)

// StatusService is the stage registry's admin surface. The workflow engine
// only ever reads stages; all writes come through here.
type StatusService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStatusService(db *gorm.DB, validate *validator.Validate) *StatusService {
	return &StatusService{DB: db, Validate: validate}
}

func (s *StatusService) Create(actor *entity.Actor, req *contract.CreateStatusRequest) (*contract.StatusEnvelope, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	stages := repository.NewStatusRepository(s.DB)
	companyID := actor.CompanyID()

	exists, err := stages.ExistsActiveByNameAndCompany(req.Name, companyID)
	if err != nil {
		log.Errorf("creating service status [%s]: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	if exists {
		return nil, apierror.NewSimple(http.StatusBadRequest, "Service status %q is already registered in your company", req.Name)
	}

	now := utils.NowUTC()
	status := &entity.ServiceStatus{
		UUID:       utils.NewPublicID(),
		Name:       req.Name,
		Details:    req.Details,
		StageOrder: req.Order,
		Cost:       req.Cost,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
		CompanyID:  companyID,
	}
	if err := stages.Save(status); err != nil {
		log.Errorf("creating service status [%s]: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}

	return &contract.StatusEnvelope{
		OK:     true,
		Msg:    "Service status created",
		Status: toStageResponse(status),
	}, nil
}

func (s *StatusService) List(actor *entity.Actor) (*contract.StatusListResponse, apierror.ErrorResponse) {
	stages := repository.NewStatusRepository(s.DB)

	found, err := stages.FindActiveByCompany(actor.CompanyID())
	if err != nil {
		log.Errorf("listing service statuses [company %d]: %v", actor.CompanyID(), err)
		return nil, apierror.InternalServerError
	}
	if len(found) == 0 {
		return nil, apierror.NewNotFound("Service statuses")
	}

	resp := make([]*contract.StageResponse, len(found))
	for i, status := range found {
		resp[i] = toStageResponse(status)
	}

	return &contract.StatusListResponse{
		OK:       true,
		Msg:      "Service statuses",
		Statuses: resp,
	}, nil
}

// SetActive toggles a stage in or out of the pipeline. Deactivated stages
// are skipped by traversal, so removing a middle stage shortens the
// pipeline for orders that have not reached it yet.
func (s *StatusService) SetActive(actor *entity.Actor, statusID int64, typeParam string) (*contract.SimpleResponse, apierror.ErrorResponse) {
	var activate bool
	switch strings.ToLower(typeParam) {
	case "on":
		activate = true
	case "off":
		activate = false
	default:
		return nil, apierror.NewInvalidParamValueError("type", "on|off")
	}

	stages := repository.NewStatusRepository(s.DB)
	status, err := stages.FindByID(statusID)
	if err != nil {
		log.Errorf("toggling service status [%d/%t]: %v", statusID, activate, err)
		return nil, apierror.InternalServerError
	}
	if status == nil || (!actor.Elevated && status.CompanyID != actor.CompanyID()) {
		return nil, apierror.NewNotFound("Service status")
	}
	if status.IsActive == activate {
		state := "inactive"
		if activate {
			state = "active"
		}
		return nil, apierror.NewSimple(http.StatusNotFound, "Service status is already %s", state)
	}

	status.IsActive = activate
	status.UpdatedAt = utils.NowUTC()
	if err := stages.Save(status); err != nil {
		log.Errorf("toggling service status [%d/%t]: %v", statusID, activate, err)
		return nil, apierror.InternalServerError
	}

	msg := "Service status deactivated"
	if activate {
		msg = "Service status activated"
	}
	return contract.NewSimpleResponse(msg), nil
}
