package routes

import (
	"net/http"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/handlers"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/middleware"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogHandler   *handlers.CatalogHandler
	billHandler      *handlers.BillHandler
	complaintHandler *handlers.ComplaintHandler
	statsHandler     *handlers.StatsHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
	allowedOrigins  []string
}

// NewRouter creates a new router
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	billHandler *handlers.BillHandler,
	complaintHandler *handlers.ComplaintHandler,
	statsHandler *handlers.StatsHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
	allowedOrigins []string,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		catalogHandler:   catalogHandler,
		billHandler:      billHandler,
		complaintHandler: complaintHandler,
		statsHandler:     statsHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
		allowedOrigins:  allowedOrigins,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/medicines", r.catalogHandler.ListMedicines)
	r.mux.HandleFunc("GET /api/procedures", r.catalogHandler.ListProcedures)
	r.mux.HandleFunc("GET /api/search", r.catalogHandler.SearchCatalog)

	// Price verification endpoints
	r.mux.HandleFunc("POST /api/check-price", r.billHandler.CheckPrice)
	r.mux.HandleFunc("POST /api/verify-bill", r.billHandler.VerifyBill)
	r.mux.HandleFunc("GET /api/bills", r.billHandler.ListBills)
	r.mux.HandleFunc("GET /api/bills/{id}", r.billHandler.GetBillDetails)

	// Complaint endpoints
	r.mux.HandleFunc("POST /api/complaints", r.complaintHandler.FileComplaint)
	r.mux.HandleFunc("GET /api/complaints", r.complaintHandler.ListComplaints)

	// Dashboard endpoints
	r.mux.HandleFunc("GET /api/stats", r.statsHandler.GetStats)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORS(r.allowedOrigins)(handler)

	return handler
}
