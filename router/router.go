package router

import (
	"net/http"

	"stockguard/app/controllers"
	"stockguard/app/middleware"
)

type Controllers struct {
	HTTP      *controllers.HTTPController
	Auth      *controllers.AuthController
	Admin     *controllers.AdminController
	Inventory *controllers.InventoryController
	Tools     *controllers.ToolController
	Tasks     *controllers.TaskController
	Socket    *controllers.SocketController
}

func New(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /health", c.HTTP.Health)
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)
	mux.HandleFunc("POST /api/auth/reset", c.Auth.ResetBegin)
	mux.HandleFunc("POST /api/auth/reset/confirm", c.Auth.ResetConfirm)

	// authenticated
	mux.Handle("POST /api/auth/logout", mw.RequireAuth(http.HandlerFunc(c.Auth.Logout)))

	mux.Handle("GET /api/inventory", mw.RequireAuth(http.HandlerFunc(c.Inventory.List)))
	mux.Handle("POST /api/inventory", mw.RequireAuth(http.HandlerFunc(c.Inventory.Create)))
	mux.Handle("GET /api/inventory/{id}", mw.RequireAuth(http.HandlerFunc(c.Inventory.Get)))
	mux.Handle("PUT /api/inventory/{id}", mw.RequireAuth(http.HandlerFunc(c.Inventory.Update)))
	mux.Handle("DELETE /api/inventory/{id}", mw.RequireAuth(http.HandlerFunc(c.Inventory.Delete)))

	mux.Handle("GET /api/toolbox", mw.RequireAuth(http.HandlerFunc(c.Tools.List)))
	mux.Handle("POST /api/toolbox", mw.RequireAuth(http.HandlerFunc(c.Tools.Create)))
	mux.Handle("GET /api/toolbox/{id}", mw.RequireAuth(http.HandlerFunc(c.Tools.Get)))
	mux.Handle("PUT /api/toolbox/{id}", mw.RequireAuth(http.HandlerFunc(c.Tools.Update)))
	mux.Handle("DELETE /api/toolbox/{id}", mw.RequireAuth(http.HandlerFunc(c.Tools.Delete)))

	mux.Handle("GET /api/tasks", mw.RequireAuth(http.HandlerFunc(c.Tasks.List)))
	mux.Handle("POST /api/tasks", mw.RequireAuth(http.HandlerFunc(c.Tasks.Create)))
	mux.Handle("GET /api/tasks/{id}", mw.RequireAuth(http.HandlerFunc(c.Tasks.Get)))
	mux.Handle("PUT /api/tasks/{id}", mw.RequireAuth(http.HandlerFunc(c.Tasks.Update)))
	mux.Handle("DELETE /api/tasks/{id}", mw.RequireAuth(http.HandlerFunc(c.Tasks.Delete)))

	// admin-only
	mux.Handle("GET /api/admin/users", mw.RequireAdmin(http.HandlerFunc(c.Admin.ListUsers)))
	mux.Handle("POST /api/admin/users", mw.RequireAdmin(http.HandlerFunc(c.Admin.CreateUser)))
	mux.Handle("DELETE /api/admin/users/{id}", mw.RequireAdmin(http.HandlerFunc(c.Admin.DisableUser)))

	// realtime channel; auth handled inside (token query param)
	mux.HandleFunc("GET /api/events", c.Socket.Events)

	return mux
}
