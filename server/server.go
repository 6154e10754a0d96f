package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	quoteweb "github.com/mmonclus-coder/quote-web"
	"github.com/mmonclus-coder/quote-web/handlers"
)

type Server struct {
	echo   *echo.Echo
	Quote  handlers.QuoteHandler
	Reaper *quoteweb.Reaper
}

func NewServer(
	Quote handlers.QuoteHandler,
	Reaper *quoteweb.Reaper,
) *Server {
	return &Server{
		echo:   echo.New(),
		Quote:  Quote,
		Reaper: Reaper,
	}
}

// Start initializes the server by registering middlewares and routes, and
// starts listening for connections on the provided address.
func (s *Server) Start(address string) error {
	s.registerMiddlewares()
	s.registerRoutes()
	s.Reaper.Run()
	return s.echo.Start(address)
}

// Run starts the server in a goroutine and blocks until an interrupt or
// SIGTERM arrives, then shuts down gracefully with a 5 second deadline and
// drains the cleanup queue.
func (s *Server) Run(address string) error {

	go func() {
		if err := s.Start(address); err != nil {
			s.echo.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Reaper.Stop()
	return s.echo.Shutdown(ctx)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
}

func (s *Server) registerRoutes() {

	s.echo.GET("/", s.Quote.ShowForm)
	s.echo.POST("/generate", s.Quote.Generate)
	s.echo.GET("/quotes/:quote_no", s.Quote.GetQuote)

	s.echo.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
