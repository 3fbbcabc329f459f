// Command storefront runs the shop client with console views. Stdin
// commands stand in for the gestures a graphical frontend would produce;
// each command publishes the same broker event a view would emit.
//
// Commands:
//
//	list                 re-render the catalog
//	open <n>             open product detail by catalog position (1-based)
//	toggle               add/remove the opened product to/from the basket
//	basket               open the basket
//	remove <n>           remove the n-th basket row
//	checkout             start checkout from the open basket
//	set <field> <value>  edit a checkout field (payment|address|email|phone)
//	next                 submit checkout step 1
//	pay                  submit checkout step 2
//	close                close the modal
//	quit                 exit
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/api"
	"github.com/shopfront/shopfront/internal/appevent"
	"github.com/shopfront/shopfront/internal/basket"
	"github.com/shopfront/shopfront/internal/buyer"
	"github.com/shopfront/shopfront/internal/catalog"
	"github.com/shopfront/shopfront/internal/config"
	"github.com/shopfront/shopfront/internal/models"
	"github.com/shopfront/shopfront/internal/presenter"
	"github.com/shopfront/shopfront/internal/storage"
	"github.com/shopfront/shopfront/internal/view"
	"github.com/shopfront/shopfront/pkg/events"
	"github.com/shopfront/shopfront/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync()

	ctx := context.Background()

	var store storage.Store
	if cfg.RedisURL != "" {
		redisStore, err := storage.NewRedisStore(ctx, cfg.RedisURL, cfg.BasketKey, zlog)
		if err != nil {
			zlog.Fatal("failed to connect basket storage", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		zlog.Info("no REDIS_URL configured, basket will not survive restarts")
		store = storage.NewMemoryStore()
	}

	bus := events.New(zlog)
	cat := catalog.New(bus, zlog)
	bas := basket.New(bus, store, zlog)
	buy := buyer.New(bus, zlog)
	shop := api.New(cfg.APIBaseURL, cfg.Timeout(), zlog)

	views := presenter.Views{
		Gallery: &view.ConsoleGallery{W: os.Stdout},
		Header:  &view.ConsoleHeader{W: os.Stdout},
		Modal:   &view.ConsoleModal{W: os.Stdout},
	}

	pres := presenter.New(bus, cat, bas, buy, shop, views, zlog)
	if err := pres.Run(ctx); err != nil {
		os.Exit(1)
	}

	runCommandLoop(bus, cat, bas, os.Stdin)
}

// runCommandLoop translates stdin commands into the broker events the
// views would publish.
func runCommandLoop(bus *events.Bus, cat *catalog.Model, bas *basket.Model, in *os.File) {
	scanner := bufio.NewScanner(in)
	fmt.Println("\ntype a command (list, open <n>, toggle, basket, remove <n>, checkout, set <field> <value>, next, pay, close, quit)")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")

		switch cmd {
		case "":
		case "list":
			bus.Publish(appevent.CatalogChanged, appevent.CatalogChangedData{Items: cat.Products()})
		case "open":
			if id, ok := productIDAt(cat.Products(), arg); ok {
				bus.Publish(appevent.CardSelect, appevent.CardSelectData{ID: id})
			} else {
				fmt.Println("no such catalog position")
			}
		case "toggle":
			if selected, ok := cat.Selected(); ok {
				bus.Publish(appevent.CardToggle, appevent.CardToggleData{ID: selected.ID})
			} else {
				fmt.Println("open a product first")
			}
		case "basket":
			bus.Publish(appevent.BasketOpen, struct{}{})
		case "remove":
			if id, ok := productIDAt(bas.Items(), arg); ok {
				bus.Publish(appevent.BasketItemRemove, appevent.BasketItemRemoveData{ID: id})
			} else {
				fmt.Println("no such basket row")
			}
		case "checkout":
			bus.Publish(appevent.BasketCheckout, struct{}{})
		case "set":
			field, value, _ := strings.Cut(arg, " ")
			bus.Publish(appevent.OrderField, appevent.OrderFieldData{Field: field, Value: value})
		case "next":
			bus.Publish(appevent.OrderNext, struct{}{})
		case "pay":
			bus.Publish(appevent.OrderPay, struct{}{})
		case "close":
			bus.Publish(appevent.ModalClose, struct{}{})
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// productIDAt resolves a 1-based list position to a product id.
func productIDAt(items []models.Product, arg string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(items) {
		return "", false
	}
	return items[n-1].ID, true
}
