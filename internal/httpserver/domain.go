package httpserver

import (
	"context"

	adviceHTTP "campus-advisor/internal/advice/delivery/http"
	chatHTTP "campus-advisor/internal/chat/delivery/http"
	plannerHTTP "campus-advisor/internal/planner/delivery/http"
	profileHTTP "campus-advisor/internal/profile/delivery/http"
	resourceHTTP "campus-advisor/internal/resource/delivery/http"
)

// registerDomainRoutes mounts every configured domain under /api/v1.
//
// Adding a domain:
//  1. Build its UseCase in cmd/api and pass it through Config.
//  2. Create the HTTP handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register routes:         mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.profileUC != nil {
		profileHTTP.RegisterRoutes(api, profileHTTP.New(srv.l, srv.profileUC), srv.mw)
		srv.l.Infof(ctx, "Profile routes registered at /api/v1/users and /api/v1/profile/me")
	}

	if srv.chatUC != nil {
		chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), srv.mw)
		srv.l.Infof(ctx, "Chat routes registered at /api/v1/chat")
	} else {
		srv.l.Warnf(ctx, "Chat use case not configured, skipping /api/v1/chat")
	}

	if srv.adviceUC != nil {
		adviceHTTP.RegisterRoutes(api, adviceHTTP.New(srv.l, srv.adviceUC), srv.mw)
		srv.l.Infof(ctx, "Advice routes registered at /api/v1/advice")
	}

	if srv.resourceUC != nil {
		resourceHTTP.RegisterRoutes(api, resourceHTTP.New(srv.l, srv.resourceUC), srv.mw)
		srv.l.Infof(ctx, "Resource routes registered at /api/v1/resources")
	}

	if srv.plannerUC != nil {
		plannerHTTP.RegisterRoutes(api, plannerHTTP.New(srv.l, srv.plannerUC), srv.mw)
		srv.l.Infof(ctx, "Planner routes registered at /api/v1/planner")
	}
}
