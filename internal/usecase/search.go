package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/wb-order-client/internal/domain"
	"github.com/example/wb-order-client/internal/render"
	"github.com/example/wb-order-client/internal/view"
)

// Тексты, которые видит пользователь.
const (
	msgEmptyInput = "Please enter an Order UID"
	msgNotFound   = "The requested order does not exist."
	msgTransport  = "Failed to connect to the server"
	msgMalformed  = "Received invalid order data from the server"
	msgUnknown    = "Unknown error"
)

// InputSource — порт текущего значения поля ввода.
type InputSource interface {
	Value() string
}

// Search — оркестратор поиска заказа: одно срабатывание на действие
// пользователя, без дедупликации и без отмены уже начатых запросов.
type Search struct {
	Input  InputSource
	Source domain.OrderSource
	Render *render.Renderer
	View   *view.Controller
	Log    *zap.Logger

	token atomic.Int64
}

// Trigger обрабатывает одно срабатывание поиска. Повторные срабатывания
// независимы; видимым становится только результат самого свежего из них —
// устаревшие разрешения отбрасываются по токену.
func (s *Search) Trigger(ctx context.Context) {
	uid := strings.TrimSpace(s.Input.Value())
	attempt := uuid.NewString()
	s.Log.Info("search triggered",
		zap.String("attempt", attempt),
		zap.String("order_uid", uid))

	if uid == "" {
		s.View.Set(view.Failure{Message: msgEmptyInput})
		return
	}

	token := s.token.Add(1)
	s.View.Set(view.Loading{})

	order, err := s.Source.Get(ctx, uid)

	if token != s.token.Load() {
		// успело начаться более новое срабатывание
		s.Log.Debug("stale lookup dropped",
			zap.String("attempt", attempt),
			zap.Int64("token", token))
		return
	}

	if err != nil {
		s.View.Set(view.Failure{Message: s.failureMessage(attempt, err)})
		return
	}
	s.View.Set(view.Populated{Doc: s.Render.Render(order)})
	s.Log.Info("order rendered",
		zap.String("attempt", attempt),
		zap.String("order_uid", order.OrderUID),
		zap.Int("items", len(order.Items)))
}

// failureMessage переводит ошибку поиска в фиксированный текст состояния.
func (s *Search) failureMessage(attempt string, err error) string {
	var be *domain.BackendError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.Log.Info("order not found", zap.String("attempt", attempt))
		return msgNotFound
	case errors.As(err, &be):
		s.Log.Warn("backend error",
			zap.String("attempt", attempt),
			zap.Int("status", be.Code),
			zap.String("body", be.Body))
		body := be.Body
		if body == "" {
			body = msgUnknown
		}
		return fmt.Sprintf("Error %d: %s", be.Code, body)
	case errors.Is(err, domain.ErrMalformed):
		s.Log.Error("malformed order payload", zap.String("attempt", attempt), zap.Error(err))
		return msgMalformed
	default:
		s.Log.Error("lookup failed", zap.String("attempt", attempt), zap.Error(err))
		return msgTransport
	}
}
