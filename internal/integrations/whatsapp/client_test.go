package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

func newAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              "a1",
		ClientName:      "Maria",
		Phone:           "(47) 98888-7777",
		CarModel:        "Hilux",
		CarSize:         domain.CarSizePickup,
		ServiceType:     domain.ServiceDetailed,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "14:00",
		Price:           460,
		Status:          status,
	}
}

func TestMessage_Confirmed(t *testing.T) {
	client := NewClient("55", "Carlach Detailing")

	msg := client.Message(newAppointment(domain.StatusConfirmed))

	assert.True(t, strings.HasPrefix(msg, "Olá Maria! Seu agendamento foi *Confirmado*!"))
	assert.Contains(t, msg, "Data: 10/03/2025")
	assert.Contains(t, msg, "Horário: 14:00")
	assert.Contains(t, msg, "Veículo: Hilux (Caminhonete)")
	assert.Contains(t, msg, "Serviço: Detalhada")
	assert.Contains(t, msg, "Valor: R$ 460.00")
	assert.Contains(t, msg, "Aguardamos você na Carlach Detailing!")
}

func TestMessage_Completed(t *testing.T) {
	client := NewClient("55", "Carlach Detailing")

	msg := client.Message(newAppointment(domain.StatusCompleted))

	assert.Contains(t, msg, "Seu serviço foi *Finalizado*!")
	assert.Contains(t, msg, "Obrigado por confiar na Carlach Detailing!")
	assert.NotContains(t, msg, "Horário")
}

func TestMessage_OtherStatuses(t *testing.T) {
	client := NewClient("55", "Carlach Detailing")

	assert.Empty(t, client.Message(newAppointment(domain.StatusPending)))
	assert.Empty(t, client.Message(newAppointment(domain.StatusCancelled)))
	assert.Empty(t, client.NotificationLink(newAppointment(domain.StatusCancelled)))
}

func TestLink(t *testing.T) {
	client := NewClient("+55", "Carlach Detailing")

	link := client.Link("(47) 98888-7777", "Olá & até logo")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5547988887777", parsed.Path)
	assert.Equal(t, "Olá & até logo", parsed.Query().Get("text"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "16/03/2025", formatDate("2025-03-16"))
	assert.Equal(t, "garbage", formatDate("garbage"))
}
