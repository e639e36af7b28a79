package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/wb-order-client/internal/domain"
)

// Server — фикстурный бэкенд: отдаёт заранее загруженные заказы
// по тому же проводному контракту, что и боевой сервис.
type Server struct {
	Router *mux.Router
	Store  domain.OrderStore
	Log    *zap.Logger
}

func NewServer(store domain.OrderStore, log *zap.Logger) *Server {
	s := &Server{Router: mux.NewRouter(), Store: store, Log: log}
	s.Router.HandleFunc("/api/v1/order/{id}", s.handleGet).Methods(http.MethodGet)
	return s
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	o, ok := s.Store.Get(id)
	if !ok {
		s.Log.Info("order not found", zap.String("order_uid", id))
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	s.Log.Info("order served", zap.String("order_uid", id))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(o); err != nil {
		s.Log.Error("encode response", zap.Error(err))
	}
}
