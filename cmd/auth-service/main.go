// File: cmd/auth-service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/config"
	repoPostgres "github.com/expensio-labs/expense-platform/auth-service/internal/domain/repository/postgres"
	httpHandler "github.com/expensio-labs/expense-platform/auth-service/internal/handler/http"
	dbPostgres "github.com/expensio-labs/expense-platform/auth-service/internal/infrastructure/database/postgres"
	"github.com/expensio-labs/expense-platform/auth-service/internal/infrastructure/security"
	"github.com/expensio-labs/expense-platform/auth-service/internal/service"
	"github.com/expensio-labs/expense-platform/auth-service/internal/tenant"
	"github.com/expensio-labs/expense-platform/auth-service/internal/utils/logger"
	"github.com/expensio-labs/expense-platform/auth-service/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("service exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.AutoMigrate {
		if err := migrations.Run(cfg.Database, logger.WithComponent(zapLogger, "migrations")); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	pool, err := dbPostgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	userRepo := repoPostgres.NewUserRepositoryPostgres(pool)
	roleRepo := repoPostgres.NewRoleRepositoryPostgres(pool)
	permissionRepo := repoPostgres.NewPermissionRepositoryPostgres(pool)
	tenantRepo := repoPostgres.NewTenantRepositoryPostgres(pool)
	roleGroupRepo := repoPostgres.NewRoleGroupRepositoryPostgres(pool)
	txManager := repoPostgres.NewTxManagerPostgres(pool)

	passwordService, err := security.NewArgon2idPasswordService(cfg.Security.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to build password service: %w", err)
	}
	signerCfg := security.SignerConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}
	signer, err := security.NewTokenSigner(cfg.JWT.SigningStrategy, signerCfg)
	if err != nil {
		return fmt.Errorf("failed to build token signer: %w", err)
	}
	verifier, err := security.NewTokenVerifier(signerCfg)
	if err != nil {
		return fmt.Errorf("failed to build token verifier: %w", err)
	}

	tokenService := service.NewTokenService(signer, cfg.JWT)
	authService := service.NewAuthService(userRepo, roleRepo, passwordService, tokenService,
		cfg.Security.Lockout, logger.WithComponent(zapLogger, "auth"))
	permissionService := service.NewPermissionService(userRepo, permissionRepo,
		logger.WithComponent(zapLogger, "permissions"))
	tenantResolver := tenant.NewResolver(tenantRepo, roleGroupRepo, cfg.Registration.DefaultTenantCode)
	registrationService := service.NewRegistrationService(userRepo, passwordService, tenantResolver,
		txManager, logger.WithComponent(zapLogger, "registration"))

	router := httpHandler.NewRouter(httpHandler.RouterDeps{
		AuthHandler: httpHandler.NewAuthHandler(authService, registrationService,
			logger.WithComponent(zapLogger, "http")),
		RoleHandler: httpHandler.NewRoleHandler(permissionService,
			logger.WithComponent(zapLogger, "http")),
		TokenVerifier:  verifier,
		Logger:         logger.WithComponent(zapLogger, "http"),
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("http server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
