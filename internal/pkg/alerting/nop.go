package alerting

import (
	"context"

	"github.com/AayushBarhate/backend/internal/pkg/logging"
)

// NopAlerter — заглушка диспетчера для отключённого алертинга.
type NopAlerter struct{}

// NewNopAlerter создаёт заглушку.
func NewNopAlerter() *NopAlerter {
	return &NopAlerter{}
}

// Dispatch ничего не делает.
func (a *NopAlerter) Dispatch(_ context.Context, _ logging.Event) {}
