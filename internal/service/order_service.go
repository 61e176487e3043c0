package service

import (
	"fmt"
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

// OrderService owns the order ledger's CRUD surface. Creation seeds the
// initial journal entry at the company's first active stage in the same
// transaction as the order row itself.
type OrderService struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cipher   *utils.FieldCipher
}

func NewOrderService(db *gorm.DB, validate *validator.Validate, cipher *utils.FieldCipher) *OrderService {
	return &OrderService{DB: db, Validate: validate, Cipher: cipher}
}

func (s *OrderService) Create(actor *entity.Actor, req *contract.CreateOrderRequest) (*contract.CreateOrderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	companyID := actor.CompanyID()

	var resp *contract.CreateOrderResponse
	var apierr apierror.ErrorResponse

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrderRepository(tx)
		changes := repository.NewStatusChangeRepository(tx)
		stages := repository.NewStatusRepository(tx)
		clients := repository.NewClientRepository(tx)
		models := repository.NewModelRepository(tx)

		client, err := clients.FindActiveInCompany(req.ClientID, companyID)
		if err != nil {
			return err
		}
		if client == nil {
			apierr = apierror.NewSimple(http.StatusBadRequest, "Client is not registered in your company")
			return errAbortTx
		}

		model, err := models.FindActiveByID(req.ModelID)
		if err != nil {
			return err
		}
		if model == nil {
			apierr = apierror.NewSimple(http.StatusBadRequest, "Device model not found")
			return errAbortTx
		}

		first, err := stages.FirstActiveForCompany(companyID)
		if err != nil {
			return err
		}
		if first == nil {
			apierr = apierror.NoStagesError
			return errAbortTx
		}

		number, err := orders.NextNumber(companyID)
		if err != nil {
			return err
		}

		lockPatron, err := s.Cipher.Encrypt(req.LockPatron)
		if err != nil {
			return err
		}
		lockPass, err := s.Cipher.Encrypt(req.LockPass)
		if err != nil {
			return err
		}

		now := utils.NowUTC()
		receivedAt := now
		if req.ReceivedAt != nil {
			receivedAt = *req.ReceivedAt
		}

		order := &entity.ServiceOrder{
			UUID:               utils.NewPublicID(),
			Number:             number,
			Observation:        req.Observation,
			LockPatron:         lockPatron,
			LockPass:           lockPass,
			ReceivedAt:         receivedAt,
			SerialNumber:       req.SerialNumber,
			Color:              req.Color,
			IsRepair:           req.IsRepair,
			TechSpecifications: req.TechSpecifications,
			ProblemDescription: req.ProblemDescription,
			AdvancePayment:     req.AdvancePayment,
			IsActive:           true,
			CreatedAt:          now,
			UpdatedAt:          now,
			ClientID:           client.ClientID,
			ModelID:            model.ModelID,
		}
		if err := orders.Create(order); err != nil {
			return err
		}

		entry := &entity.StatusChange{
			UUID:           utils.NewPublicID(),
			SysDetail:      fmt.Sprintf("Order received at stage %q (position %d)", first.Name, first.StageOrder),
			CreatedAt:      now,
			StatusID:       first.StatusID,
			ServiceOrderID: order.ServiceOrderID,
			UserID:         actor.User.UserID,
		}
		if err := changes.Append(entry); err != nil {
			return err
		}

		client.ServicesNumber++
		client.UpdatedAt = now
		if err := clients.Save(client); err != nil {
			return err
		}

		resp = &contract.CreateOrderResponse{
			OK:           true,
			Msg:          "Service order created",
			ServiceOrder: toOrderResponse(order, s.Cipher),
			Entry:        toStatusChangeResponse(entry, first, actor.User),
		}
		return nil
	})

	if apierr != nil {
		return nil, apierr
	}
	if err != nil {
		log.Errorf("creating service order [client %d, model %d]: %v", req.ClientID, req.ModelID, err)
		return nil, apierror.InternalServerError
	}
	return resp, nil
}

// Update patches the mutable fields of an order. It never touches the
// pipeline position or the finished flag; that is the workflow engine's
// job.
func (s *OrderService) Update(actor *entity.Actor, orderID int64, req *contract.UpdateOrderRequest) (*contract.OrderEnvelope, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	orders := repository.NewOrderRepository(s.DB)
	order, err := orders.FindActiveScoped(orderID, actor.CompanyID(), actor.Elevated)
	if err != nil {
		log.Errorf("updating service order [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}
	if order == nil {
		return nil, apierror.NewNotFound("Service order")
	}

	if req.Observation != nil {
		order.Observation = *req.Observation
	}
	if req.ProblemDescription != nil {
		order.ProblemDescription = *req.ProblemDescription
	}
	if req.ReceivedAt != nil {
		order.ReceivedAt = *req.ReceivedAt
	}
	if req.SerialNumber != nil {
		order.SerialNumber = *req.SerialNumber
	}
	if req.Color != nil {
		order.Color = *req.Color
	}
	if req.IsRepair != nil {
		order.IsRepair = *req.IsRepair
	}
	if req.TechSpecifications != nil {
		order.TechSpecifications = *req.TechSpecifications
	}
	if req.AdvancePayment != nil {
		order.AdvancePayment = *req.AdvancePayment
	}
	if req.LockPatron != nil {
		ciphered, cerr := s.Cipher.Encrypt(*req.LockPatron)
		if cerr != nil {
			log.Errorf("updating service order [%d]: %v", orderID, cerr)
			return nil, apierror.InternalServerError
		}
		order.LockPatron = ciphered
	}
	if req.LockPass != nil {
		ciphered, cerr := s.Cipher.Encrypt(*req.LockPass)
		if cerr != nil {
			log.Errorf("updating service order [%d]: %v", orderID, cerr)
			return nil, apierror.InternalServerError
		}
		order.LockPass = ciphered
	}

	order.UpdatedAt = utils.NowUTC()
	if err := orders.Save(order); err != nil {
		log.Errorf("updating service order [%d]: %v", orderID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.OrderEnvelope{
		OK:           true,
		Msg:          "Service order updated",
		ServiceOrder: toOrderResponse(order, s.Cipher),
	}, nil
}

// SetActive toggles the soft-delete flag. The type parameter follows the
// on/off convention of the rest of the API.
func (s *OrderService) SetActive(actor *entity.Actor, orderID int64, typeParam string) (*contract.SimpleResponse, apierror.ErrorResponse) {
	var activate bool
	switch strings.ToLower(typeParam) {
	case "on":
		activate = true
	case "off":
		activate = false
	default:
		return nil, apierror.NewInvalidParamValueError("type", "on|off")
	}

	orders := repository.NewOrderRepository(s.DB)
	order, err := orders.FindScopedWithState(orderID, actor.CompanyID(), actor.Elevated, !activate)
	if err != nil {
		log.Errorf("toggling service order [%d/%t]: %v", orderID, activate, err)
		return nil, apierror.InternalServerError
	}
	if order == nil {
		state := "inactive"
		if activate {
			state = "active"
		}
		return nil, apierror.NewSimple(http.StatusNotFound, "Service order not found or already %s", state)
	}

	order.IsActive = activate
	order.UpdatedAt = utils.NowUTC()
	if err := orders.Save(order); err != nil {
		log.Errorf("toggling service order [%d/%t]: %v", orderID, activate, err)
		return nil, apierror.InternalServerError
	}

	msg := "Service order deactivated"
	if activate {
		msg = "Service order activated"
	}
	return contract.NewSimpleResponse(msg), nil
}

// Pending lists the company's unfinished active orders, oldest first.
func (s *OrderService) Pending(actor *entity.Actor, limit, offset int) (*contract.PendingOrdersResponse, apierror.ErrorResponse) {
	orders := repository.NewOrderRepository(s.DB)

	found, count, err := orders.FindPendingByCompany(actor.CompanyID(), limit, offset)
	if err != nil {
		log.Errorf("listing pending service orders [company %d]: %v", actor.CompanyID(), err)
		return nil, apierror.InternalServerError
	}
	if count == 0 {
		return nil, apierror.NewNotFound("Pending service orders")
	}

	resp := make([]*contract.OrderResponse, len(found))
	for i, order := range found {
		resp[i] = toOrderResponse(order, s.Cipher)
	}

	return &contract.PendingOrdersResponse{
		OK:      true,
		Msg:     "Pending service orders",
		Count:   count,
		Pending: resp,
	}, nil
}
