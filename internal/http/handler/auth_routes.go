package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"repairdesk/internal/contract"
	"repairdesk/internal/utils/apierror"
)

type AuthService interface {
	Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (a *DefaultAuthRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := a.AuthService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
