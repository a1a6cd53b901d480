package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/muslimtime-api/internal/application/avatar"
	"github.com/muslimtime-api/internal/application/history"
	"github.com/muslimtime-api/internal/application/otp"
	"github.com/muslimtime-api/internal/application/prayer"
	"github.com/muslimtime-api/internal/application/quran"
	"github.com/muslimtime-api/internal/application/registration"
	"github.com/muslimtime-api/internal/application/session"
	"github.com/muslimtime-api/internal/application/user"
	"github.com/muslimtime-api/internal/application/verification"
	"github.com/muslimtime-api/internal/config"
	"github.com/muslimtime-api/internal/transport/http/handler"
	appmiddleware "github.com/muslimtime-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(deps.OTPRepo)
	verificationSvc := verification.NewService(deps.VerificationRepo)
	userSvc := user.NewService(deps.UserRepo)
	registrationSvc := registration.NewService(otpSvc, userSvc, verificationSvc, deps.Mailer)
	sessionSvc := session.NewService(deps.SessionRepo, deps.UserRepo, verificationSvc, deps.JWTProvider)
	avatarSvc := avatar.NewService(deps.S3Store, deps.UserRepo)
	historySvc := history.NewService(deps.HistoryRepo)
	quranSvc := quran.NewService(deps.QuranClient)
	prayerSvc := prayer.NewService(deps.PrayerClient)

	healthH := handler.NewHealthHandler()
	otpH := handler.NewOTPHandler(deps.Mailer, verificationSvc)
	registrationH := handler.NewRegistrationHandler(registrationSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	userH := handler.NewUserHandler(userSvc)
	avatarH := handler.NewAvatarHandler(avatarSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	quranH := handler.NewQuranHandler(quranSvc)
	prayerH := handler.NewPrayerHandler(prayerSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/register", registrationH.Begin)
		r.With(sensitiveRL.Limit).Post("/register/confirm", registrationH.Confirm)
		r.With(sensitiveRL.Limit).Post("/otp/send", otpH.Send)
		r.With(sensitiveRL.Limit).Post("/otp/mark-email-verified", otpH.MarkEmailVerified)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.Post("/sessions/refresh", sessionH.Refresh)

		r.Get("/users/count", userH.Count)
		r.Get("/quran/surahs", quranH.ListSurahs)
		r.Get("/quran/surahs/{number}", quranH.GetSurah)
		r.Get("/quran/juz/{number}", quranH.GetJuz)
		r.Get("/prayer-times", prayerH.Today)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			r.Get("/users/me", userH.Me)
			r.Put("/users/me", userH.UpdateProfile)
			r.Put("/users/me/avatar", avatarH.Upload)
			r.Delete("/users/me/avatar", avatarH.Remove)

			r.Put("/history", historyH.Save)
			r.Get("/history", historyH.List)
			r.Get("/history/last-read", historyH.LastRead)
		})
	})

	return r
}
