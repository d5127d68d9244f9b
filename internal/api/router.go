package api

import (
	"net/http"

	"github.com/AlexZinkM/local-keyring/internal/handler"
	"github.com/AlexZinkM/local-keyring/internal/keyring"
	"github.com/AlexZinkM/local-keyring/internal/permission"

	_ "github.com/AlexZinkM/local-keyring/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(kr *keyring.Keyring, registry *permission.Registry, store handler.AccountStore) http.Handler {
	keyringHandler := handler.NewKeyringHandler(kr, registry, store)
	permissionHandler := handler.NewPermissionHandler(registry)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Keyring endpoints
	mux.HandleFunc("/keyring/accounts", keyringHandler.Accounts)
	mux.HandleFunc("/keyring/accounts/remove", keyringHandler.RemoveAccount)
	mux.HandleFunc("/keyring/export", keyringHandler.Export)
	mux.HandleFunc("/keyring/app-key-address", keyringHandler.AppKeyAddress)
	mux.HandleFunc("/keyring/sign/transaction", keyringHandler.SignTransaction)
	mux.HandleFunc("/keyring/sign/message", keyringHandler.SignMessage)
	mux.HandleFunc("/keyring/sign/personal", keyringHandler.SignPersonal)
	mux.HandleFunc("/keyring/sign/typed-data", keyringHandler.SignTypedData)
	mux.HandleFunc("/keyring/encryption-public-key", keyringHandler.EncryptionPublicKey)
	mux.HandleFunc("/keyring/decrypt", keyringHandler.Decrypt)

	// Permission endpoints
	mux.HandleFunc("/permissions", permissionHandler.Get)
	mux.HandleFunc("/permissions/grant", permissionHandler.Grant)
	mux.HandleFunc("/permissions/revoke", permissionHandler.Revoke)

	return requestID(accessLog(mux))
}
