package domain

import (
	"context"
	"fmt"
)

// OrderSource — порт получения заказа по идентификатору.
type OrderSource interface {
	Get(ctx context.Context, id string) (*Order, error)
}

// OrderStore — порт хранилища заказов фикстурного бэкенда.
type OrderStore interface {
	Get(id string) (Order, bool)
	Set(o Order)
}

// Общие доменные ошибки
var (
	ErrNotFound  = notFoundError("order not found")
	ErrMalformed = malformedError("malformed order payload")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type malformedError string

func (e malformedError) Error() string { return string(e) }

// BackendError — неуспешный статус бэкенда, кроме «не найдено».
// Body хранит сырой текст тела ответа, если он был.
type BackendError struct {
	Code int
	Body string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Code, e.Body)
}
