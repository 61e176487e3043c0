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

type StatusService interface {
	Create(actor *entity.Actor, req *contract.CreateStatusRequest) (*contract.StatusEnvelope, apierror.ErrorResponse)
	List(actor *entity.Actor) (*contract.StatusListResponse, apierror.ErrorResponse)
	SetActive(actor *entity.Actor, statusID int64, typeParam string) (*contract.SimpleResponse, apierror.ErrorResponse)
}

type DefaultStatusRoute struct {
	StatusService StatusService
}

func NewStatusDefault(statusService StatusService) *DefaultStatusRoute {
	return &DefaultStatusRoute{StatusService: statusService}
}

func (s *DefaultStatusRoute) CreateStatus(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := s.StatusService.Create(actor, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultStatusRoute) ListStatuses(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := s.StatusService.List(actor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultStatusRoute) ToggleStatus(c echo.Context) error {
	actor, cerr := utils.GetActorFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	resp, apierr := s.StatusService.SetActive(actor, id, c.QueryParam("type"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
