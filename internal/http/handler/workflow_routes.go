package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"repairdesk/internal/contract"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/utils"
	"repairdesk/internal/utils/apierror"
)

type WorkflowService interface {
	Advance(actor *entity.Actor, req *contract.AdvanceRequest) (*contract.AdvanceResponse, apierror.ErrorResponse)
	Finish(actor *entity.Actor, orderID int64) (*contract.FinishResponse, apierror.ErrorResponse)
	History(actor *entity.Actor, orderID int64) (*contract.HistoryResponse, apierror.ErrorResponse)
	OrdersAtPosition(actor *entity.Actor, stageOrder int) (*contract.OrdersAtPositionResponse, apierror.ErrorResponse)
}

type DefaultWorkflowRoute struct {
	WorkflowService WorkflowService
}

func NewWorkflowDefault(workflowService WorkflowService) *DefaultWorkflowRoute {
	return &DefaultWorkflowRoute{WorkflowService: workflowService}
}

// AdvanceOrder handles POST /change.
func (w *DefaultWorkflowRoute) AdvanceOrder(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.AdvanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := w.WorkflowService.Advance(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// FinishOrder handles PUT /change/finish/:serviceOrder.
func (w *DefaultWorkflowRoute) FinishOrder(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("serviceOrder"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("serviceOrder", "int"))
	}

	resp, apierr := w.WorkflowService.Finish(actor, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// OrderHistory handles GET /change/history/:serviceOrder.
func (w *DefaultWorkflowRoute) OrderHistory(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("serviceOrder"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("serviceOrder", "int"))
	}

	resp, apierr := w.WorkflowService.History(actor, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// OrdersByStage handles GET /change/status?order=N.
func (w *DefaultWorkflowRoute) OrdersByStage(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	stageOrder, err := strconv.Atoi(c.QueryParam("order"))
	if err != nil || stageOrder <= 0 {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamValueError("order", "positive int"))
	}

	resp, apierr := w.WorkflowService.OrdersAtPosition(actor, stageOrder)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
