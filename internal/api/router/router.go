package router

import (
	"fmt"
	"net/http"

	_ "github.com/RoyceAzure/lab/sweetshop/docs"
	"github.com/RoyceAzure/lab/sweetshop/internal/api"
	m "github.com/RoyceAzure/lab/sweetshop/internal/api/middleware"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker[uuid.UUID], logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		//Auth相關路由
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/login", server.AuthHandler.Login)
			r.With(m.AuthMiddleware).Get("/me", server.AuthHandler.Me)
		})

		//甜點目錄與庫存, 查詢也需要登入
		r.Route("/sweets", func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Get("/", server.SweetHandler.ListSweets)
			r.Get("/search", server.SweetHandler.SearchSweets)
			r.Get("/{id}", server.SweetHandler.GetSweet)
			r.Post("/", server.SweetHandler.CreateSweet)
			r.Put("/{id}", server.SweetHandler.UpdateSweet)
			r.Delete("/{id}", server.SweetHandler.DeleteSweet)
			r.Post("/{id}/purchase", server.SweetHandler.PurchaseSweet)
			r.Post("/{id}/restock", server.SweetHandler.RestockSweet)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
