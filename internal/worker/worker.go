package worker

import (
	"context"
)

// Worker - фоновая задача сервиса (пересчёт среза статистики и другие
// потребители стримов изменений)
type Worker interface {
	// Start запускает воркер и блокируется до остановки
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру о завершении
	Stop() error

	// Name возвращает имя воркера для логов
	Name() string
}
