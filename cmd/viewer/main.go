package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/example/wb-order-client/internal/adapter/console"
	"github.com/example/wb-order-client/internal/adapter/orderapi"
	"github.com/example/wb-order-client/internal/config"
	"github.com/example/wb-order-client/internal/format"
	"github.com/example/wb-order-client/internal/lib/logger"
	"github.com/example/wb-order-client/internal/render"
	"github.com/example/wb-order-client/internal/usecase"
	"github.com/example/wb-order-client/internal/view"
)

func main() {
	cfg, err := config.LoadViewer()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := orderapi.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout}, zl)
	renderer := render.New(format.NewCurrency(zl))
	controller := view.NewController(console.NewRegion(os.Stdout))

	input := &lineInput{}
	search := &usecase.Search{
		Input:  input,
		Source: client,
		Render: renderer,
		View:   controller,
		Log:    zl,
	}

	fmt.Println("WB Order Viewer")
	fmt.Println("Enter an order UID and press Enter (Ctrl+D to quit).")

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() || ctx.Err() != nil {
			break
		}
		input.Set(sc.Text())
		search.Trigger(ctx)
	}
	fmt.Println()
}

// lineInput хранит последнее введённое значение поля поиска.
type lineInput struct {
	mu sync.Mutex
	v  string
}

func (l *lineInput) Set(v string) {
	l.mu.Lock()
	l.v = v
	l.mu.Unlock()
}

func (l *lineInput) Value() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.v
}
