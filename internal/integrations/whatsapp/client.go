package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

const baseURL = "https://wa.me/"

// displayDateFormat pt-BR date format used in messages
const displayDateFormat = "02/01/2006"

// Client builds click-to-chat links for client notifications.
// It makes no network calls: the admin opens the link.
type Client struct {
	countryCode string
	shopName    string
}

// NewClient creates a client for phones in the given country code
func NewClient(countryCode, shopName string) *Client {
	return &Client{
		countryCode: onlyDigits(countryCode),
		shopName:    shopName,
	}
}

// Message returns the client message for a status change.
// Only confirmed and completed appointments produce a message.
func (c *Client) Message(appointment *domain.Appointment) string {
	serviceLabel := domain.ServiceTypeLabels[appointment.ServiceType]
	carSizeLabel := domain.CarSizeLabels[appointment.CarSize]
	statusLabel := domain.StatusLabels[appointment.Status]

	switch appointment.Status {
	case domain.StatusConfirmed:
		return fmt.Sprintf("Olá %s! Seu agendamento foi *%s*!\n\n"+
			"📅 Data: %s\n"+
			"🕐 Horário: %s\n"+
			"🚗 Veículo: %s (%s)\n"+
			"✨ Serviço: %s\n"+
			"💰 Valor: R$ %.2f\n\n"+
			"Aguardamos você na %s!",
			appointment.ClientName, statusLabel,
			formatDate(appointment.AppointmentDate),
			appointment.AppointmentTime,
			appointment.CarModel, carSizeLabel,
			serviceLabel,
			appointment.Price,
			c.shopName,
		)

	case domain.StatusCompleted:
		return fmt.Sprintf("Olá %s! Seu serviço foi *%s*!\n\n"+
			"✨ Serviço: %s\n"+
			"🚗 Veículo: %s\n"+
			"💰 Valor: R$ %.2f\n\n"+
			"Obrigado por confiar na %s! 🚗✨",
			appointment.ClientName, statusLabel,
			serviceLabel,
			appointment.CarModel,
			appointment.Price,
			c.shopName,
		)
	}

	return ""
}

// Link returns the wa.me URL that opens a chat with phone prefilled with message
func (c *Client) Link(phone, message string) string {
	return baseURL + c.countryCode + onlyDigits(phone) + "?text=" + url.QueryEscape(message)
}

// NotificationLink returns the link for the appointment's current status, empty when no message applies
func (c *Client) NotificationLink(appointment *domain.Appointment) string {
	message := c.Message(appointment)
	if message == "" {
		return ""
	}
	return c.Link(appointment.Phone, message)
}

// formatDate renders a YYYY-MM-DD civil date as DD/MM/YYYY, unparseable input is returned as is
func formatDate(date string) string {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return date
	}
	return day.Format(displayDateFormat)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
