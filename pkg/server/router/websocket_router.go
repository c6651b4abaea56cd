package router

import (
	"errors"

	wsHandlers "github.com/NeuralTrust/TrustPost/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustPost/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

var ErrInvalidHandlerTransport = errors.New("invalid handler transport")

type websocketRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    wsHandlers.HandlerTransport
}

func NewWebsocketRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport wsHandlers.HandlerTransport,
) ServerRouter {
	return &websocketRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *websocketRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	router.Get("/ws/submissions/:id",
		r.middlewareTransport.AuthMiddleware.Middleware(),
		r.middlewareTransport.WebsocketMiddleware.Middleware(),
		websocket.New(handlerTransport.ProgressHandler.Handle),
	)
	return nil
}
