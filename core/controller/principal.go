package controller

import (
	"team-scheduler/core/constants"
	"team-scheduler/core/errors"
	"team-scheduler/core/utils"

	"github.com/labstack/echo/v4"
)

// PrincipalFromContext reads the claims stored by the auth middleware.
func PrincipalFromContext(c echo.Context) (utils.Principal, *errors.AppError) {
	tokenData := c.Get(constants.ContextTokenData)
	if tokenData == nil {
		return utils.Principal{}, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || !claims.UserID.Valid {
		return utils.Principal{}, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.Principal(), nil
}
