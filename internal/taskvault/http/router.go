package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/jwtx"
	"github.com/quollsoft/taskvault/pkg/slogx"

	_ "github.com/quollsoft/taskvault/api/taskvault" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	anonymous    string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	UserService     *service.UserService
	AuthService     *service.AuthService
	TaskService     *service.TaskService
	IdentityService *service.IdentityService
}

func NewRouter(
	verifier jwtx.Verifier,
	anonymous, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		anonymous:    anonymous,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global middleware chain: request logging first, then identity
	// resolution so every handler below sees a principal in context.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.IdentityMiddleware(r.verifier, r.anonymous),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerIdentity()
	r.registerAccounts()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TaskVault API
//	@version		0.1.0
//	@description	Single-process task management service with per-user accounts and
//	@description	session-scoped authorization. Tasks are only visible to and mutable
//	@description	by the identity that created them.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	IdentityToken
//	@in							header
//	@name						Authorization
//	@description				Identity token minted by POST /v1/identity. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerIdentity() {
	mintHandler := &IdentityMintHandler{IdentityService: r.IdentityService}
	r.Mux.Handle("POST /v1/identity", mintHandler)

	whoamiHandler := &WhoAmIHandler{Anonymous: r.anonymous}
	r.Mux.Handle("GET /v1/whoami", whoamiHandler)
}

func (r *Router) registerAccounts() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/register", registerHandler)

	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/login", loginHandler)

	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/logout", logoutHandler)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("POST /v1/tasks", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("GET /v1/tasks", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /v1/tasks/completed", http.HandlerFunc(h.HandleListCompleted))
	r.Mux.Handle("POST /v1/tasks/toggle-completed", http.HandlerFunc(h.HandleToggleCompleted))
	r.Mux.Handle("POST /v1/tasks/toggle-important", http.HandlerFunc(h.HandleToggleImportant))
	r.Mux.Handle("POST /v1/tasks/delete", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
