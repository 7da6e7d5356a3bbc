package api

import "github.com/RoyceAzure/lab/sweetshop/internal/api/handler"

type Server struct {
	SweetHandler *handler.SweetHandler
	AuthHandler  *handler.AuthHandler
}

func NewServer(
	sweetHandler *handler.SweetHandler,
	authHandler *handler.AuthHandler,
) *Server {
	return &Server{
		SweetHandler: sweetHandler,
		AuthHandler:  authHandler,
	}
}
