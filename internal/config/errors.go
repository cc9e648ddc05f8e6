package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Интервалы между попытками подключения к базе при старте.
var connectIntervals = []time.Duration{
	1 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

// RetryOnConnError выполняет op, повторяя ее по фиксированному расписанию,
// пока ошибка классифицируется как ошибка соединения (класс 08 Postgres).
// Любая другая ошибка возвращается сразу.
func RetryOnConnError(ctx context.Context, op func() error) error {
	var lastErr error
	for i, wait := range connectIntervals {
		err := op()
		if err == nil {
			return nil
		}
		if !isConnError(err) {
			return err
		}

		lastErr = err
		log.Printf("DB connection error: %v (attempt %d/%d), next try in %v", err, i+1, len(connectIntervals), wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("operation failed after retries: %w", lastErr)
}

func isConnError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08")
	}
	return false
}
