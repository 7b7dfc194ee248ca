package server

import (
	"order-management-demo/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo         *echo.Echo
	orderHandler *handler.OrderHandler
}

func NewServer(orderHandler *handler.OrderHandler) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:         e,
		orderHandler: orderHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- orders --------
	s.echo.POST("/order", s.orderHandler.CreateOrder)
	s.echo.GET("/order", s.orderHandler.ListOrders)
	s.echo.GET("/order/:id", s.orderHandler.GetOrder)
	s.echo.PUT("/order/:id", s.orderHandler.UpdateOrder)
	s.echo.DELETE("/order/:id", s.orderHandler.DeleteOrder)

	// -------- payments --------
	s.echo.POST("/order/:id/payment", s.orderHandler.PayOrder)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
