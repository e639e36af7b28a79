package view

import (
	"sync"

	"github.com/example/wb-order-client/internal/render"
)

// State — одно из трёх взаимоисключающих состояний области отображения.
type State interface{ state() }

// Loading — идёт загрузка заказа.
type Loading struct{}

// Failure — попытка завершилась ошибкой; Message готов к показу как есть.
type Failure struct{ Message string }

// Populated — область заполнена готовым документом.
type Populated struct{ Doc *render.Document }

func (Loading) state()   {}
func (Failure) state()   {}
func (Populated) state() {}

// Region — порт единственной области отображения.
type Region interface {
	Show(State)
}

// Controller владеет областью отображения: в каждый момент активно ровно
// одно состояние, вход в новое состояние полностью заменяет содержимое.
type Controller struct {
	mu      sync.Mutex
	region  Region
	current State
}

func NewController(region Region) *Controller {
	return &Controller{region: region}
}

// Set синхронно и атомарно заменяет видимое содержимое. Повторный вход
// в то же состояние даёт тот же видимый результат.
func (c *Controller) Set(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
	c.region.Show(s)
}

// Current возвращает активное состояние.
func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
