package controller

import (
	"net/http"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/service"
	"storefront-backend/pkg/response"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.PaymentService
}

func CreatePaymentController(e *echo.Echo, service service.PaymentService) {
	c := Controller{
		service: service,
	}

	e.GET("/status/:uid", c.GetEmailVerificationStatus)
	e.POST("/charge", c.Charge)
	e.GET("/det/:transaction_id", c.GetTransactionDetail)
	e.POST("/notification_handler", c.HandleNotification)
}

func (c *Controller) GetEmailVerificationStatus(e echo.Context) error {
	uid := e.Param("uid")

	verified, err := c.service.GetEmailVerified(e.Request().Context(), uid)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, response.VerificationResponse{
		StatusCode:    "200",
		EmailVerified: verified,
	})
}

func (c *Controller) Charge(e echo.Context) error {
	payload := dto.ChargeRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Charge").Msg("")
	}

	token, err := c.service.CreateTransactionToken(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

func (c *Controller) GetTransactionDetail(e echo.Context) error {
	transactionID := e.Param("transaction_id")

	status, err := c.service.GetTransactionDetail(e.Request().Context(), transactionID)
	if err != nil {
		return response.WriteTransactionNotFoundResponse(e)
	}

	return e.JSON(http.StatusOK, status)
}

func (c *Controller) HandleNotification(e echo.Context) error {
	payload := dto.PaymentNotification{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "HandleNotification").Msg("")
	}

	status, err := c.service.HandleNotification(e.Request().Context(), payload)
	if err != nil {
		return response.WriteTransactionNotFoundResponse(e)
	}

	return e.JSON(http.StatusOK, status)
}
