package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nikolayk812/storefront/internal/api"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/platform/config"
	"github.com/nikolayk812/storefront/internal/platform/observability"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/store"
)

// app holds everything one command invocation needs.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	pool   *pgxpool.Pool

	carts     port.CartRepository
	wishlists port.WishlistRepository

	client  *api.Client
	session *store.SessionStore
	auth    *store.Authenticator
	home    *store.HomeCache

	cart     *store.CartStore
	wishlist *store.WishlistStore
}

func (a *app) open(ctx context.Context, envFile string) error {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return fmt.Errorf("config.LoadFile: %w", err)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	a.cfg = cfg

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("observability.NewLogger: %w", err)
	}
	a.logger = logger

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	a.pool = pool

	a.carts = repository.NewCart(pool)
	a.wishlists = repository.NewWishlist(pool)

	storage, err := repository.NewKeyValue(pool, cfg.Device.ID)
	if err != nil {
		return fmt.Errorf("repository.NewKeyValue: %w", err)
	}

	a.session, err = store.NewSessionStore(storage, logger.Named("session"))
	if err != nil {
		return fmt.Errorf("store.NewSessionStore: %w", err)
	}

	a.client, err = api.New(api.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout}, storage,
		api.WithLogger(logger.Named("api")),
		api.WithUnauthorizedHook(func(ctx context.Context) {
			if err := a.session.ClearSession(ctx); err != nil {
				logger.Warn("clear rejected session", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("api.New: %w", err)
	}

	a.auth, err = store.NewAuthenticator(a.client, a.session)
	if err != nil {
		return fmt.Errorf("store.NewAuthenticator: %w", err)
	}

	a.home, err = store.NewHomeCache(a.client, cfg.Cart.HomeCacheTTL, nil)
	if err != nil {
		return fmt.Errorf("store.NewHomeCache: %w", err)
	}

	a.session.Initialize(ctx)

	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// requireSession fails for visitors who neither signed in nor chose guest mode.
func (a *app) requireSession() (domain.Session, error) {
	session := a.session.Session()
	if !session.Authenticated {
		return domain.Session{}, fmt.Errorf("not signed in, run login or pass --guest")
	}
	return session, nil
}

// cartStore loads the signed-in user's cart and keeps it persisted.
// A guest cart lives in memory only.
func (a *app) cartStore(ctx context.Context) (*store.CartStore, error) {
	if a.cart != nil {
		return a.cart, nil
	}

	session, err := a.requireSession()
	if err != nil {
		return nil, err
	}

	ownerID := session.OwnerID()
	if ownerID == "" {
		a.cart = store.NewCartStore(domain.NewCart("", a.cfg.CurrencyUnit()))
		return a.cart, nil
	}

	cart, err := store.LoadCart(ctx, a.carts, ownerID, a.cfg.CurrencyUnit())
	if err != nil {
		return nil, fmt.Errorf("store.LoadCart: %w", err)
	}

	a.cart = store.NewCartStore(cart)
	a.cart.Subscribe(store.PersistCart(ctx, a.carts, a.logger.Named("cart")))
	return a.cart, nil
}

func (a *app) wishlistStore(ctx context.Context) (*store.WishlistStore, error) {
	if a.wishlist != nil {
		return a.wishlist, nil
	}

	session, err := a.requireSession()
	if err != nil {
		return nil, err
	}

	ownerID := session.OwnerID()
	if ownerID == "" {
		a.wishlist = store.NewWishlistStore(domain.Wishlist{})
		return a.wishlist, nil
	}

	wishlist, err := store.LoadWishlist(ctx, a.wishlists, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store.LoadWishlist: %w", err)
	}

	a.wishlist = store.NewWishlistStore(wishlist)
	a.wishlist.Subscribe(store.PersistWishlist(ctx, a.wishlists, a.logger.Named("wishlist")))
	return a.wishlist, nil
}

func (a *app) checkoutStore(ctx context.Context) (*store.CheckoutStore, error) {
	cart, err := a.cartStore(ctx)
	if err != nil {
		return nil, err
	}

	policy, err := a.cfg.ShippingPolicy()
	if err != nil {
		return nil, fmt.Errorf("cfg.ShippingPolicy: %w", err)
	}

	return store.NewCheckoutStore(store.CheckoutStoreDeps{
		Cart:     cart,
		Orders:   a.client,
		Shipping: policy,
		Logger:   a.logger.Named("checkout"),
	})
}

// findProduct looks a product up in the catalog by id.
func (a *app) findProduct(ctx context.Context, productID string) (domain.Product, error) {
	result := a.client.Products(ctx, api.ProductQuery{})
	if !result.Success {
		return domain.Product{}, errors.New(result.Error)
	}

	for _, p := range result.Data {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q not found", productID)
}

// resultErr turns a failed API result into an error.
func resultErr[T any](result api.Result[T]) error {
	if result.Success {
		return nil
	}
	return errors.New(result.Error)
}
