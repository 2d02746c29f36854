package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KretovDmitry/ordrin-go/internal/application/errs"
	"github.com/KretovDmitry/ordrin-go/internal/application/interfaces"
	"github.com/KretovDmitry/ordrin-go/internal/application/params"
	"github.com/KretovDmitry/ordrin-go/internal/application/services"
	"github.com/KretovDmitry/ordrin-go/internal/config"
	"github.com/KretovDmitry/ordrin-go/internal/domain/entities/session"
	"github.com/KretovDmitry/ordrin-go/internal/infrastructure/ordrin"
	"github.com/KretovDmitry/ordrin-go/internal/metrics"
	"github.com/KretovDmitry/ordrin-go/pkg/logger"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

var errUsage = errors.New(`usage: ordrin [-config path] <command> [args]

commands:
  account                                     show account information
  addrs [nick]                                list saved addresses or show one
  rm-addr <nick>                              delete a saved address
  cards [nick]                                list saved cards or show one
  rm-card <nick>                              delete a saved card
  orders [id]                                 list past orders or show one
  passwd <new password>                       change the account password
  register <email> <password> <first> <last>  create an account
  order <file.json>                           submit the order described in file`)

// app groups what commands need.
type app struct {
	accounts interfaces.AccountService
	orders   interfaces.OrderService
	readFile func(name string) ([]byte, error)
}

func main() {
	if err := run(); err != nil {
		var ve *errs.ValidationError
		if errors.As(err, &ve) {
			for _, msg := range ve.Messages {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load application configurations.
	cfg := config.MustLoad()

	// Create root logger tagged with client version.
	logger := logger.New(cfg).With(ctx, "version", Version)
	defer func() {
		_ = logger.Sync()
	}()

	// Session identity shared by the transports and the account service.
	sess := session.New(cfg.Session.Email, cfg.Session.Password)

	m := metrics.NewClientMetrics()

	userAPI, err := ordrin.NewFromConfig(cfg, cfg.Servers.User, sess, logger, m)
	if err != nil {
		return fmt.Errorf("failed to init user api client: %w", err)
	}

	orderAPI, err := ordrin.NewFromConfig(cfg, cfg.Servers.Order, sess, logger, m)
	if err != nil {
		return fmt.Errorf("failed to init order api client: %w", err)
	}

	accountService, err := services.NewAccountService(userAPI, sess, logger)
	if err != nil {
		return fmt.Errorf("failed to init account service: %w", err)
	}

	orderService, err := services.NewOrderService(orderAPI, logger)
	if err != nil {
		return fmt.Errorf("failed to init order service: %w", err)
	}

	a := &app{accounts: accountService, orders: orderService, readFile: os.ReadFile}

	res, err := a.execute(ctx, flag.Args())
	if err != nil {
		return err
	}

	return printJSON(os.Stdout, res)
}

// execute runs one command.
func (a *app) execute(ctx context.Context, args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	cmd, args := args[0], args[1:]
	optional := func() string {
		if len(args) > 0 {
			return args[0]
		}
		return ""
	}

	switch {
	case cmd == "account" && len(args) == 0:
		return a.accounts.GetAccountInfo(ctx)
	case cmd == "addrs" && len(args) <= 1:
		return a.accounts.GetAddress(ctx, optional())
	case cmd == "rm-addr" && len(args) == 1:
		return a.accounts.DeleteAddress(ctx, args[0])
	case cmd == "cards" && len(args) <= 1:
		return a.accounts.GetCard(ctx, optional())
	case cmd == "rm-card" && len(args) == 1:
		return a.accounts.DeleteCard(ctx, args[0])
	case cmd == "orders" && len(args) <= 1:
		return a.accounts.GetOrderHistory(ctx, optional())
	case cmd == "passwd" && len(args) == 1:
		return a.accounts.UpdatePassword(ctx, args[0])
	case cmd == "register" && len(args) == 4:
		return a.accounts.Create(ctx, args[0], args[1], args[2], args[3])
	case cmd == "order" && len(args) == 1:
		return a.submitOrder(ctx, args[0])
	}

	return nil, errUsage
}

func (a *app) submitOrder(ctx context.Context, path string) (json.RawMessage, error) {
	data, err := a.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}

	p := new(params.SubmitOrder)
	if err = json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode order file %s: %w", path, err)
	}

	return a.orders.Submit(ctx, p)
}

// printJSON writes the response indented; non-JSON bodies are written as is.
func printJSON(w io.Writer, res json.RawMessage) error {
	if len(res) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, res, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, string(res))
		return err
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return err
}
