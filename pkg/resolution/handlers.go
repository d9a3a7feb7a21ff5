// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolution

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/pkg/authentication"
)

// URLs anchors the flow's navigation targets. Paths are joined onto the
// application base URL, so the service works behind any public hostname.
type URLs struct {
	AppBaseURL      string
	LoginPath       string
	PartnershipPath string
}

func (u URLs) login() string {
	returnTo := url.Values{"return_to": []string{u.PartnershipPath}}
	return u.AppBaseURL + u.LoginPath + "?" + returnTo.Encode()
}

func (u URLs) partnership() string {
	return u.AppBaseURL + u.PartnershipPath
}

var successTemplate = template.Must(template.New("success").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.DelaySeconds}};url={{.PartnershipURL}}">
<title>Partnership linked</title>
</head>
<body>
<h1>You are now linked with your partner</h1>
<p>Taking you to your shared space in {{.DelaySeconds}} seconds.</p>
<p><a href="{{.PartnershipURL}}">Continue now</a></p>
</body>
</html>
`))

type API struct {
	resolver ResolverInterface
	profiles ProfileProviderInterface
	urls     URLs
	delay    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	resolver ResolverInterface,
	profiles ProfileProviderInterface,
	urls URLs,
	delay time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		resolver: resolver,
		profiles: profiles,
		urls:     urls,
		delay:    delay,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/partner/accept", a.accept)
}

// accept is the landing endpoint behind the invitation link. It is the only
// GET that mutates state: acceptance has to happen on the first navigation,
// before any page is rendered, so following the link twice cannot double
// apply.
func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "resolution.API.accept")
	defer span.End()

	token := r.URL.Query().Get("token")

	var ident *Identity
	if userID, ok := authentication.GetUserID(ctx); ok {
		profile, err := a.profiles.GetProfile(ctx, userID)
		if err != nil {
			// A session whose profile cannot be resolved cannot pass the
			// invitee match; send it to the partnership screen.
			a.logger.Errorf("failed to resolve profile for %s: %v", userID, err)
			http.Redirect(w, r, a.urls.partnership(), http.StatusSeeOther)
			return
		}
		ident = &Identity{UserID: userID, Email: profile.Email}
	}

	outcome := a.resolver.Resolve(ctx, token, ident)

	switch outcome.Kind {
	case KindRedirectToLogin:
		http.Redirect(w, r, a.urls.login(), http.StatusSeeOther)
	case KindShowSuccess:
		a.successResponse(w)
	default:
		http.Redirect(w, r, a.urls.partnership(), http.StatusSeeOther)
	}
}

func (a *API) successResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	err := successTemplate.Execute(w, map[string]interface{}{
		"DelaySeconds":   fmt.Sprintf("%.0f", a.delay.Seconds()),
		"PartnershipURL": a.urls.partnership(),
	})
	if err != nil {
		a.logger.Errorf("failed to render success page: %v", err)
	}
}
