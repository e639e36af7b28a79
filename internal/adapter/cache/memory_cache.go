package cache

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/example/wb-order-client/internal/domain"
)

// MemoryOrderStore — потокобезопасное хранилище заказов фикстурного бэкенда.
type MemoryOrderStore struct {
	mu    sync.RWMutex
	store map[string]domain.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{store: make(map[string]domain.Order)}
}

func (s *MemoryOrderStore) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.store[id]
	return o, ok
}

func (s *MemoryOrderStore) Set(o domain.Order) {
	s.mu.Lock()
	s.store[o.OrderUID] = o
	s.mu.Unlock()
}

func (s *MemoryOrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// SeedFile загружает массив заказов из JSON-файла и возвращает число
// добавленных записей. Записи без order_uid пропускаются.
func (s *MemoryOrderStore) SeedFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return 0, err
	}
	n := 0
	for _, o := range orders {
		if o.OrderUID == "" {
			continue
		}
		s.Set(o)
		n++
	}
	return n, nil
}

var _ domain.OrderStore = (*MemoryOrderStore)(nil)
