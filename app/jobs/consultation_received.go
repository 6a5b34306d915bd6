package jobs

import (
	"github.com/bargaoui/rideaux/pkg/mail"
)

// ConsultationReceivedJob confirms a consultation booking to the submitter.
type ConsultationReceivedJob struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

func (j *ConsultationReceivedJob) Handle() error {
	body := "<p>Bonjour " + j.Name + ",</p>" +
		"<p>Nous avons bien reçu votre demande de consultation. " +
		"Un conseiller vous contactera sous 48 heures.</p>" +
		"<p>Bargaoui Rideaux Tahar</p>"

	return mail.To(j.To).
		Subject("Votre demande de consultation").
		Body(body).
		Send()
}
