package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pickndrop/walletd/internal/adapter/http/handler"
	apimiddleware "github.com/pickndrop/walletd/internal/adapter/http/middleware"
	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/infrastructure/auth"
	"github.com/pickndrop/walletd/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_AuthGuardsAPI(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.JWTManager = jwtManager
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties/rider/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	token, err := jwtManager.Generate("op-1", "Ops")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/parties/rider/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/transfers/",
		"GET /api/v1/transfers/{reference}",
		"POST /api/v1/parties/{kind}/",
		"GET /api/v1/parties/{kind}/",
		"GET /api/v1/parties/{kind}/{id}",
		"GET /api/v1/parties/{kind}/{id}/transactions",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		HealthHandler:   &handler.HealthHandler{},
		PartyHandler:    handler.NewPartyHandler(stubPartyService{}),
		TransferHandler: handler.NewTransferHandler(stubTransferService{}, stubHistoryService{}),
		RecordHandler:   handler.NewRecordHandler(stubHistoryService{}),
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubPartyService struct{}

func (stubPartyService) CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
	return &domain.Party{Ref: domain.PartyRef{Kind: input.Kind, ID: "p-1"}}, nil
}

func (stubPartyService) GetParty(ctx context.Context, ref domain.PartyRef) (*domain.Party, error) {
	return &domain.Party{Ref: ref}, nil
}

func (stubPartyService) ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error) {
	return []*domain.Party{}, nil
}

type stubTransferService struct{}

func (stubTransferService) Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error) {
	return &domain.TransferReceipt{Reference: "PnD-stub--0"}, nil
}

type stubHistoryService struct{}

func (stubHistoryService) ListByParty(ctx context.Context, input usecase.ListByPartyInput) ([]*domain.TransactionRecord, error) {
	return []*domain.TransactionRecord{}, nil
}

func (stubHistoryService) GetByReference(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error) {
	return []*domain.TransactionRecord{}, nil
}
