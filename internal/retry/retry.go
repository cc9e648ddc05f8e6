// Package retry содержит утилиты повторных попыток с фиксированной задержкой.
package retry

import (
	"context"
	"log"
	"time"
)

// Policy задает правила повторов: фиксированная пауза между попытками
// и общее число попыток. Без экспоненциального роста и джиттера.
type Policy struct {
	Wait        time.Duration
	MaxAttempts int
}

// Именованные политики. Путь выдачи списка продавцов исторически повторяет
// 3 раза, остальные чтения — 5; обе политики сохранены и переопределяются
// из конфигурации.
var (
	VendorListing = Policy{Wait: 2 * time.Second, MaxAttempts: 3}
	DefaultRead   = Policy{Wait: 2 * time.Second, MaxAttempts: 5}
)

// Do выполняет op не более policy.MaxAttempts раз, логируя каждую попытку
// перед вызовом. Между неуспешными попытками выдерживается policy.Wait.
// После исчерпания попыток возвращается последняя ошибка без изменений.
func Do(ctx context.Context, policy Policy, name string, op func() error) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Printf("retry: %s attempt %d/%d", name, attempt, attempts)
		lastErr = op()
		if lastErr == nil {
			return nil
		}

		if attempt == attempts {
			break
		}
		if policy.Wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(policy.Wait):
			}
		}
	}
	return lastErr
}
