package http

import (
	"github.com/muslimtime-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/muslimtime-api/internal/infrastructure/jwt"
	"github.com/muslimtime-api/internal/infrastructure/mail"
	"github.com/muslimtime-api/internal/infrastructure/prayer"
	"github.com/muslimtime-api/internal/infrastructure/quran"
	s3infra "github.com/muslimtime-api/internal/infrastructure/s3"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	SessionRepo      *dynamo.SessionRepo
	OTPRepo          *dynamo.OTPRepo
	VerificationRepo *dynamo.VerificationRepo
	HistoryRepo      *dynamo.HistoryRepo
	S3Store          *s3infra.Store
	Mailer           mail.Sender
	QuranClient      *quran.Client
	PrayerClient     *prayer.Client
	JWTProvider      *jwtinfra.Provider
}
