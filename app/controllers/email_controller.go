package controllers

import (
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/apperr"
	"github.com/bargaoui/rideaux/pkg/ctx"
)

// EmailController is the generic transactional-mail passthrough.
type EmailController struct {
	mailer services.Mailer
}

func NewEmailController(mailer services.Mailer) *EmailController {
	return &EmailController{mailer: mailer}
}

type sendEmailInput struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Send delivers one email synchronously; a provider failure surfaces as 500.
func (e *EmailController) Send(c *ctx.Context) {
	var in sendEmailInput
	if !c.BindJSON(&in) {
		return
	}

	if err := e.mailer.Send(in.Email, in.Subject, in.Message); err != nil {
		fail(c, apperr.Wrap(apperr.Notification, "Email could not be sent", err))
		return
	}
	c.SuccessMessage("Email sent successfully")
}
