package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"repairdesk/internal/contract"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/sqlite/repository"
	"repairdesk/internal/utils"
	"repairdesk/internal/utils/apierror"
)

// errAbortTx rolls a transaction back when the failure is already captured
// as an API error and must not reach the generic 500 path.
var errAbortTx = errors.New("workflow: abort transaction")

// WorkflowService advances service orders through their company's stage
// pipeline. Every mutating operation runs inside one database transaction:
// either the open entry is closed AND its successor recorded (or the order
// finished), or nothing happened.
type WorkflowService struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cipher   *utils.FieldCipher
}

func NewWorkflowService(db *gorm.DB, validate *validator.Validate, cipher *utils.FieldCipher) *WorkflowService {
	return &WorkflowService{DB: db, Validate: validate, Cipher: cipher}
}

// Advance moves the order one step forward: closes the open journal entry,
// then either appends an entry for the next active stage or, when the
// pipeline is exhausted, marks the order finished. Calling it on an
// already finished order is a no-op that reports the terminal state.
func (s *WorkflowService) Advance(actor *entity.Actor, req *contract.AdvanceRequest) (*contract.AdvanceResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var resp *contract.AdvanceResponse
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrderRepository(tx)
		changes := repository.NewStatusChangeRepository(tx)
		stages := repository.NewStatusRepository(tx)

		order, err := orders.FindActiveScoped(req.ServiceOrderID, actor.CompanyID(), actor.Elevated)
		if err != nil {
			return err
		}
		if order == nil {
			apierr = apierror.NewNotFound("Service order")
			return errAbortTx
		}

		if order.IsFinished {
			resp = &contract.AdvanceResponse{
				OK:       true,
				Msg:      "Service order is already finished",
				Finished: true,
			}
			return nil
		}

		open, err := changes.OpenForOrder(order.ServiceOrderID)
		if err != nil {
			return err
		}
		if open == nil {
			apierr = apierror.NewNotFound("Open status entry")
			return errAbortTx
		}

		current, err := stages.FindActiveByID(open.StatusID)
		if err != nil {
			return err
		}
		if current == nil {
			apierr = apierror.NewNotFound("Current service status")
			return errAbortTx
		}

		next, err := stages.FindByCompanyAndOrder(order.Client.CompanyID, current.StageOrder+1)
		if err != nil {
			return err
		}

		if err := changes.Close(open); err != nil {
			return err
		}

		if next == nil {
			order.IsFinished = true
			order.UpdatedAt = utils.NowUTC()
			if err := orders.Save(order); err != nil {
				return err
			}

			resp = &contract.AdvanceResponse{
				OK:       true,
				Msg:      fmt.Sprintf("Stage %q completed, service order finished", current.Name),
				Finished: true,
			}
			return nil
		}

		entry := &entity.StatusChange{
			UUID:           utils.NewPublicID(),
			Details:        req.Details,
			SysDetail:      fmt.Sprintf("Advanced to stage %q (position %d)", next.Name, next.StageOrder),
			CreatedAt:      utils.NowUTC(),
			StatusID:       next.StatusID,
			ServiceOrderID: order.ServiceOrderID,
			UserID:         actor.User.UserID,
		}
		if err := changes.Append(entry); err != nil {
			return err
		}

		resp = &contract.AdvanceResponse{
			OK:    true,
			Msg:   fmt.Sprintf("Service order moved to stage %q", next.Name),
			Entry: toStatusChangeResponse(entry, next, actor.User),
		}
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("advancing service order [%d]: %v", req.ServiceOrderID, err)
		return nil, apierror.InternalServerError
	}
	return resp, nil
}

// Finish is the administrative escape hatch: it closes every open journal
// entry of the order and marks it finished, skipping the remaining stages.
// Finishing an already finished order succeeds without touching anything.
func (s *WorkflowService) Finish(actor *entity.Actor, orderID int64) (*contract.FinishResponse, apierror.ErrorResponse) {
	var resp *contract.FinishResponse
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrderRepository(tx)
		changes := repository.NewStatusChangeRepository(tx)

		order, err := orders.FindActiveScoped(orderID, actor.CompanyID(), actor.Elevated)
		if err != nil {
			return err
		}
		if order == nil {
			apierr = apierror.NewNotFound("Service order")
			return errAbortTx
		}

		if order.IsFinished {
			resp = &contract.FinishResponse{OK: true, Msg: "Service order is already finished"}
			return nil
		}

		sysDetail := fmt.Sprintf("Force-finished by user %d (%s)", actor.User.UserID, actor.User.Email)
		closed, err := changes.CloseAllOpen(order.ServiceOrderID, sysDetail)
		if err != nil {
			return err
		}

		order.IsFinished = true
		order.UpdatedAt = utils.NowUTC()
		if err := orders.Save(order); err != nil {
			return err
		}

		resp = &contract.FinishResponse{
			OK:            true,
			Msg:           "Service order finished",
			ClosedEntries: closed,
		}
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("finishing service order [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}
	return resp, nil
}

// History returns the order with its client, device and the complete
// journal in creation order. Read-only.
func (s *WorkflowService) History(actor *entity.Actor, orderID int64) (*contract.HistoryResponse, apierror.ErrorResponse) {
	orders := repository.NewOrderRepository(s.DB)
	changes := repository.NewStatusChangeRepository(s.DB)

	order, err := orders.FindDetailedScoped(orderID, actor.CompanyID(), actor.Elevated)
	if err != nil {
		log.Errorf("fetching service order history [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}
	if order == nil {
		return nil, apierror.NewNotFound("Service order")
	}

	entries, err := changes.HistoryForOrder(order.ServiceOrderID)
	if err != nil {
		log.Errorf("fetching status changes [order %d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}

	history := make([]*contract.StatusChangeResponse, len(entries))
	for i, entry := range entries {
		history[i] = toStatusChangeResponse(entry, nil, nil)
	}

	return &contract.HistoryResponse{
		OK:           true,
		Msg:          "Service order history",
		ServiceOrder: toOrderResponse(order, s.Cipher),
		History:      history,
	}, nil
}

// CurrentState resolves the explicit pipeline state of an order:
// Finished, or AtStage with the stage of the single open journal entry.
func (s *WorkflowService) CurrentState(actor *entity.Actor, orderID int64) (*entity.OrderState, apierror.ErrorResponse) {
	orders := repository.NewOrderRepository(s.DB)
	changes := repository.NewStatusChangeRepository(s.DB)
	stages := repository.NewStatusRepository(s.DB)

	order, err := orders.FindActiveScoped(orderID, actor.CompanyID(), actor.Elevated)
	if err != nil {
		log.Errorf("resolving order state [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}
	if order == nil {
		return nil, apierror.NewNotFound("Service order")
	}

	if order.IsFinished {
		return &entity.OrderState{Finished: true}, nil
	}

	open, err := changes.OpenForOrder(order.ServiceOrderID)
	if err != nil {
		log.Errorf("resolving order state [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}
	if open == nil {
		return nil, apierror.NewNotFound("Open status entry")
	}

	stage, err := stages.FindActiveByID(open.StatusID)
	if err != nil {
		log.Errorf("resolving order state [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}
	if stage == nil {
		return nil, apierror.NewNotFound("Current service status")
	}
	return &entity.OrderState{Stage: stage}, nil
}

// OrdersAtPosition lists the company's open orders currently sitting at
// the given pipeline position.
func (s *WorkflowService) OrdersAtPosition(actor *entity.Actor, stageOrder int) (*contract.OrdersAtPositionResponse, apierror.ErrorResponse) {
	changes := repository.NewStatusChangeRepository(s.DB)

	entries, err := changes.OpenAtPosition(actor.CompanyID(), stageOrder)
	if err != nil {
		log.Errorf("listing orders at stage position [%d]: %v", stageOrder, err)
		return nil, apierror.InternalServerError
	}
	if len(entries) == 0 {
		return nil, apierror.NewNotFound("Service orders at this stage")
	}

	resp := make([]*contract.StatusChangeResponse, len(entries))
	for i, entry := range entries {
		sc := toStatusChangeResponse(entry, nil, nil)
		if entry.ServiceOrder != nil {
			sc.ServiceOrder = toOrderResponse(entry.ServiceOrder, s.Cipher)
		}
		resp[i] = sc
	}

	return &contract.OrdersAtPositionResponse{
		OK:      true,
		Msg:     fmt.Sprintf("Service orders at stage position %d", stageOrder),
		Count:   len(resp),
		Entries: resp,
	}, nil
}
