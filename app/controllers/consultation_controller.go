package controllers

import (
	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/pkg/ctx"
)

// ConsultationController handles the consultation booking form.
type ConsultationController struct {
	consultations *services.ConsultationService
}

func NewConsultationController(consultations *services.ConsultationService) *ConsultationController {
	return &ConsultationController{consultations: consultations}
}

type consultationInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Book persists the request and queues a confirmation email.
func (cc *ConsultationController) Book(c *ctx.Context) {
	var in consultationInput
	if !c.BindJSON(&in) {
		return
	}

	consultation := models.Consultation{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := cc.consultations.Book(c.Context(), &consultation); err != nil {
		fail(c, err)
		return
	}
	c.Created(consultation)
}
