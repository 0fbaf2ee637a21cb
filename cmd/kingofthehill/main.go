package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/app"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
	"github.com/goodnatureofminers/kingofthehill-client/internal/service"
	"github.com/goodnatureofminers/kingofthehill-client/internal/transport"
	"github.com/goodnatureofminers/kingofthehill-client/internal/wallet"
	"github.com/goodnatureofminers/kingofthehill-client/pkg/safe"
)

type config struct {
	NetworkName       string        `long:"network-name" env:"KOTH_NETWORK_NAME" description:"network display name"`
	ChainID           uint64        `long:"chain-id" env:"KOTH_CHAIN_ID" description:"expected chain id"`
	RPCURL            string        `long:"rpc-url" env:"KOTH_RPC_URL" description:"fallback JSON-RPC endpoint"`
	ContractAddress   string        `long:"contract-address" env:"KOTH_CONTRACT_ADDRESS" description:"King of the Hill contract address"`
	KeystoreDir       string        `long:"keystore-dir" env:"KOTH_KEYSTORE_DIR" description:"wallet keystore directory, empty for read-only mode"`
	WalletRPCURL      string        `long:"wallet-rpc-url" env:"KOTH_WALLET_RPC_URL" description:"node the wallet signs against, empty to use the fallback endpoint"`
	WalletPassword    string        `long:"wallet-password" env:"KOTH_WALLET_PASSWORD" description:"keystore passphrase, authorizes the wallet at startup"`
	Interactive       bool          `long:"interactive" env:"KOTH_INTERACTIVE" description:"ask for the passphrase and transaction approval on the terminal"`
	RefreshInterval   time.Duration `long:"refresh-interval" env:"KOTH_REFRESH_INTERVAL" description:"periodic refresh interval" default:"15s"`
	ReadDelay         time.Duration `long:"read-delay" env:"KOTH_READ_DELAY" description:"delay between consecutive contract reads" default:"250ms"`
	RetryDelay        time.Duration `long:"retry-delay" env:"KOTH_RETRY_DELAY" description:"delay before retrying a rate-limited refresh" default:"3s"`
	MaxRetries        int           `long:"max-retries" env:"KOTH_MAX_RETRIES" description:"automatic retries after a rate-limited refresh" default:"3"`
	ChainPollInterval time.Duration `long:"chain-poll-interval" env:"KOTH_CHAIN_POLL_INTERVAL" description:"how often the wallet node's chain id is checked" default:"5s"`
	HTTPAddr          string        `long:"http-addr" env:"KOTH_HTTP_ADDR" description:"address for the API and metrics server" default:":8080"`
	LogJSON           bool          `long:"log-json" env:"KOTH_LOG_JSON" description:"log in JSON"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse flags: " + err.Error())
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("king of the hill client failed", zap.Error(err))
	}
}

func newLogger(jsonOutput bool) (*zap.Logger, error) {
	if jsonOutput {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network, err := cfg.network()
	if err != nil {
		return err
	}
	if err := network.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	supervisor := app.NewSupervisor(app.SessionConfig{
		Network:      network,
		WalletRPCURL: cfg.WalletRPCURL,
		ReadDelay:    cfg.ReadDelay,
		Store: service.GameStoreConfig{
			RefreshInterval: cfg.RefreshInterval,
			RetryDelay:      cfg.RetryDelay,
			MaxRetries:      cfg.MaxRetries,
		},
		OpenWallet: keystoreOpener(cfg, logger),
	}, logger)

	handler := transport.NewGameHandler(func() (transport.Game, func()) {
		session, release := supervisor.Acquire()
		if session == nil {
			return nil, release
		}
		return session, release
	}, logger)
	startHTTPServer(ctx, cfg.HTTPAddr, handler, logger)

	logger.Info("starting king of the hill client",
		zap.String("network", network.Name),
		zap.Uint64("chain_id", network.ChainID),
		zap.Stringer("contract", network.ContractAddress),
	)
	if err := supervisor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (c config) network() (model.Network, error) {
	if c.ContractAddress != "" && !common.IsHexAddress(c.ContractAddress) {
		return model.Network{}, fmt.Errorf("contract address %q is not a hex address", c.ContractAddress)
	}
	return model.Network{
		Name:            c.NetworkName,
		ChainID:         c.ChainID,
		RPCURL:          c.RPCURL,
		ContractAddress: common.HexToAddress(c.ContractAddress),
	}, nil
}

func keystoreOpener(cfg config, logger *zap.Logger) app.WalletOpener {
	var (
		passphrase wallet.PassphrasePrompt = wallet.StaticPrompt{Secret: cfg.WalletPassword}
		confirm    wallet.ConfirmPrompt    = wallet.StaticPrompt{Approve: true}
	)
	if cfg.Interactive {
		prompt := wallet.NewTerminalPrompt(os.Stdin, os.Stderr)
		passphrase, confirm = prompt, prompt
	}

	return func(ctx context.Context, chain wallet.ChainIDReader) (wallet.Provider, func(), error) {
		w, err := wallet.OpenKeystore(ctx, wallet.KeystoreConfig{
			Dir:               cfg.KeystoreDir,
			ChainID:           safe.ChainID(cfg.ChainID),
			PreAuthorized:     cfg.WalletPassword != "",
			Passphrase:        cfg.WalletPassword,
			ChainPollInterval: cfg.ChainPollInterval,
		}, passphrase, confirm, chain, logger)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil
	}
}

func startHTTPServer(ctx context.Context, addr string, handler *transport.GameHandler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/api/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// Submissions wait for the receipt.
		WriteTimeout:   2 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", zap.Error(err))
		}
	}()
}
