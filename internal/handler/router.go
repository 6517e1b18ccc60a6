package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yujin6121/maeum/backend/internal/handler/catalog"
	"github.com/yujin6121/maeum/backend/internal/handler/chatws"
	counselingHandler "github.com/yujin6121/maeum/backend/internal/handler/counseling"
	sessionHandler "github.com/yujin6121/maeum/backend/internal/handler/session"
	middlewarePkg "github.com/yujin6121/maeum/backend/internal/middleware"
	"github.com/yujin6121/maeum/backend/internal/model/emotion"
	"github.com/yujin6121/maeum/backend/internal/model/resource"
	counselingService "github.com/yujin6121/maeum/backend/internal/service/counseling"
	sessionService "github.com/yujin6121/maeum/backend/internal/service/session"
	"github.com/yujin6121/maeum/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(
	client *counselingService.Client,
	sessions *sessionService.Store,
	draft *sessionService.DraftStore,
	emotions emotion.Store,
	resources []resource.CrisisResource,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Maeum counseling API is running"})
	})

	counseling := counselingHandler.New(client, draft)
	sessionH := sessionHandler.New(sessions, draft, emotions)
	catalogH := catalog.New(client, emotions, resources)
	relay := chatws.New(client)

	r.Route("/api", func(api chi.Router) {
		counseling.RegisterRoutes(api)
		sessionH.RegisterRoutes(api)
		catalogH.RegisterRoutes(api)
		relay.RegisterRoutes(api)
	})

	return r
}
