// @title        Local Keyring API
// @version      1.0
// @description  Origin-scoped Ethereum keyring served over local HTTP
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/local-keyring/internal/api"
	"github.com/AlexZinkM/local-keyring/internal/config"
	"github.com/AlexZinkM/local-keyring/internal/crypto"
	"github.com/AlexZinkM/local-keyring/internal/handler"
	"github.com/AlexZinkM/local-keyring/internal/keyring"
	"github.com/AlexZinkM/local-keyring/internal/model"
	"github.com/AlexZinkM/local-keyring/internal/permission"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := config.SetupLogger(config.GetLogLevel(), config.GetLogPretty()); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logger")
	}
	if err := config.PromptForPassword(); err != nil {
		log.Fatal().Err(err).Msg("Failed to read keystore password")
	}

	state, err := loadState(config.GetKeystoreFilePath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load keystore")
	}

	kr := keyring.New(keyring.WithLogger(log.With().Str("component", "keyring").Logger()))
	if err := kr.Initialize(state); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize keyring")
	}

	router := api.SetupRouter(kr, permission.NewRegistry(), handler.NewKeystoreStore())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	log.Info().Str("port", config.GetPort()).Int("accounts", len(state)).Msg("Keyring server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Keyring server stopped")
}

// loadState decrypts the keystore. A missing file starts an empty keyring.
func loadState(filePath string) ([]model.SerializedAccount, error) {
	passwordBytes, err := config.GetKeystorePasswordBytes()
	if err != nil {
		return nil, err
	}
	defer clear(passwordBytes)

	_, data, err := crypto.DecryptKeyring(filePath, passwordBytes)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", filePath).Msg("Keystore file not found, starting with an empty keyring")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data.Accounts, nil
}
