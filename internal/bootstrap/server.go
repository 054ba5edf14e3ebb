package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/flightbooking/api"
	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/service/auth"
	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface. Admin routes other than /admin/login
// sit behind the bearer-token middleware.
func NewRouter(authSvc auth.AuthUseCase, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.Default()

	authHandler := api.NewAuthHandler(authSvc)
	flightHandler := api.NewFlightHandler(flightSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)

	authHandler.Register(router)
	flightHandler.RegisterPublic(router)
	bookingHandler.RegisterPublic(router)

	admin := router.Group("/admin", api.AdminAuth(authSvc))
	flightHandler.RegisterAdmin(admin)
	bookingHandler.RegisterAdmin(admin)

	return router
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, authSvc auth.AuthUseCase, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(authSvc, flightSvc, bookingSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
