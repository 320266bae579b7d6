package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/pantry-backend/api/controllers"
	"github.com/angelmondragon/pantry-backend/api/middleware"
	"github.com/angelmondragon/pantry-backend/api/responses"
	"github.com/angelmondragon/pantry-backend/internal/additionalinfo"
	"github.com/angelmondragon/pantry-backend/internal/consumption"
	"github.com/angelmondragon/pantry-backend/internal/products"
	"github.com/angelmondragon/pantry-backend/internal/shoppinglist"
	"github.com/angelmondragon/pantry-backend/internal/stock"
	"github.com/angelmondragon/pantry-backend/internal/users"
	"github.com/angelmondragon/pantry-backend/pkg/config"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/metrics"
	"github.com/angelmondragon/pantry-backend/pkg/redis"
)

// Services groups the entity services exposed over HTTP.
type Services struct {
	Products       products.Service
	Users          users.Service
	Stock          stock.Service
	Consumption    consumption.Service
	AdditionalInfo additionalinfo.Service
	ShoppingList   shoppinglist.Service
}

// NewRouter wires middleware and routes. redisClient and httpMetrics may be nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	svc Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.NotFound("route not found"))
	})

	readiness := map[string]controllers.Pinger{"database": dbP}
	var idempotencyStore redis.IdempotencyStore
	if redisClient != nil {
		readiness["redis"] = redisClient
		idempotencyStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(readiness, logg))
	})
	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, cfg.Redis.IdempotencyTTL, logg))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", controllers.CreateUser(svc.Users, logg))
			r.Get("/", controllers.ListUsers(svc.Users, logg))
			r.Get("/{id}", controllers.GetUser(svc.Users, logg))
			r.Put("/{id}", controllers.UpdateUser(svc.Users, logg))
			r.Delete("/{id}", controllers.DeleteUser(svc.Users, logg))
		})

		r.Route("/produto", func(r chi.Router) {
			r.Post("/", controllers.CreateProduct(svc.Products, logg))
			r.Get("/", controllers.ListProducts(svc.Products, logg))
			r.Get("/{id}", controllers.GetProduct(svc.Products, logg))
			r.Put("/{id}", controllers.UpdateProduct(svc.Products, logg))
			r.Delete("/{id}", controllers.DeleteProduct(svc.Products, logg))
		})

		r.Route("/estoque", func(r chi.Router) {
			r.Post("/", controllers.CreateStock(svc.Stock, logg))
			r.Get("/", controllers.ListStock(svc.Stock, logg))
			r.Get("/{id}", controllers.GetStock(svc.Stock, logg))
			r.Put("/{id}", controllers.UpdateStock(svc.Stock, logg))
			r.Delete("/{id}", controllers.DeleteStock(svc.Stock, logg))
		})

		r.Route("/historico-consumo", func(r chi.Router) {
			r.Post("/", controllers.CreateHistory(svc.Consumption, logg))
			r.Get("/", controllers.ListHistory(svc.Consumption, logg))
			r.Get("/{id}", controllers.GetHistory(svc.Consumption, logg))
			r.Put("/{id}", controllers.UpdateHistory(svc.Consumption, logg))
			r.Delete("/{id}", controllers.DeleteHistory(svc.Consumption, logg))
			r.Post("/{id}/uso", controllers.RecordUsage(svc.Consumption, logg))
		})

		r.Route("/informacoes-adicionais", func(r chi.Router) {
			r.Post("/", controllers.CreateInfo(svc.AdditionalInfo, logg))
			r.Get("/", controllers.ListInfo(svc.AdditionalInfo, logg))
			r.Get("/{id}", controllers.GetInfo(svc.AdditionalInfo, logg))
			r.Put("/{id}", controllers.UpdateInfo(svc.AdditionalInfo, logg))
			r.Delete("/{id}", controllers.DeleteInfo(svc.AdditionalInfo, logg))
		})

		r.Route("/lista-compras", func(r chi.Router) {
			r.Post("/", controllers.CreateEntry(svc.ShoppingList, logg))
			r.Get("/", controllers.ListEntries(svc.ShoppingList, logg))
			r.Get("/{id}", controllers.GetEntry(svc.ShoppingList, logg))
			r.Put("/{id}", controllers.UpdateEntry(svc.ShoppingList, logg))
			r.Delete("/{id}", controllers.DeleteEntry(svc.ShoppingList, logg))
		})
	})

	return r
}
