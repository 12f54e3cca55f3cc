package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/metrics"
)

// RouterConfig carries the collaborators the HTTP surface needs.
type RouterConfig struct {
	Catalog     Catalog
	Orders      Orders
	CORSOrigins []string
	Logger      zerolog.Logger
	Metrics     *metrics.Metrics
}

// NewRouter wires every route behind the shared middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = NotFoundHandler()
	r.MethodNotAllowedHandler = MethodNotAllowedHandler()
	r.Use(Instrument(cfg.Metrics))

	r.HandleFunc("/", RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.Handle("/products", HandleCreateProduct(cfg.Catalog)).Methods(http.MethodPost)
	r.Handle("/products", HandleListProducts(cfg.Catalog)).Methods(http.MethodGet)
	r.Handle("/orders", HandleCreateOrder(cfg.Orders)).Methods(http.MethodPost)
	r.Handle("/orders/{user_id}", HandleListOrders(cfg.Orders)).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = RequestLogger(handler, cfg.Logger)
	handler = CORS(cfg.CORSOrigins, handler)
	handler = WithRequestID(handler)
	return handler
}
