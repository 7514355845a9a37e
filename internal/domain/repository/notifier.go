package repository

import (
	"context"

	"github.com/trip-planner-service/internal/domain"
)

// Notifier - сигнал об изменении доменного состояния.
// Мутация и уведомление не связаны внутри доменных объектов: use case
// публикует событие после успешной мутации.
type Notifier interface {
	Notify(ctx context.Context, event domain.ChangeEvent)
}
