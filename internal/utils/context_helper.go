package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/utils/apierror"
)

func GetActorFromContext(c echo.Context) (*entity.Actor, apierror.ErrorResponse) {
	val := c.Get("actor")
	if val == nil {
		log.Warnf("route %s attempted to read nil actor from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	actor, ok := val.(*entity.Actor)
	if !ok {
		log.Warnf("expected actor type at 'actor' context key, got %T", val)
		return nil, apierror.InternalServerError
	}
	return actor, nil
}
