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

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type OrderService interface {
	Create(actor *entity.Actor, req *contract.CreateOrderRequest) (*contract.CreateOrderResponse, apierror.ErrorResponse)
	Update(actor *entity.Actor, orderID int64, req *contract.UpdateOrderRequest) (*contract.OrderEnvelope, apierror.ErrorResponse)
	SetActive(actor *entity.Actor, orderID int64, typeParam string) (*contract.SimpleResponse, apierror.ErrorResponse)
	Pending(actor *entity.Actor, limit, offset int) (*contract.PendingOrdersResponse, apierror.ErrorResponse)
}

type DefaultOrderRoute struct {
	OrderService OrderService
}

func NewOrderDefault(orderService OrderService) *DefaultOrderRoute {
	return &DefaultOrderRoute{OrderService: orderService}
}

func (o *DefaultOrderRoute) CreateOrder(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := o.OrderService.Create(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (o *DefaultOrderRoute) UpdateOrder(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := o.OrderService.Update(actor, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (o *DefaultOrderRoute) ToggleOrder(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	resp, apierr := o.OrderService.SetActive(actor, id, c.QueryParam("type"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (o *DefaultOrderRoute) PendingOrders(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	limit := queryInt(c, "limit", defaultPageLimit)
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	resp, apierr := o.OrderService.Pending(actor, limit, offset)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
