package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FlashError is the category of flashes raised by rejected input or failed downloads.
const FlashError = "error"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"cat"`
	Message  string `json:"msg"`
}

type flashClaims struct {
	jwt.RegisteredClaims

	Flash
}

// FlasherOptions configure the flash cookie.
type FlasherOptions struct {
	// SecretKey signs the cookie with HS256.
	SecretKey string
	// CookieName is the name of the flash cookie.
	CookieName string
	// TTL bounds how long an unread message stays valid.
	TTL time.Duration
}

// Flasher keeps flash messages in a signed, read-once cookie so they survive
// a redirect without server-side session state.
type Flasher struct {
	options FlasherOptions
	now     func() time.Time
}

// NewFlasher returns a Flasher configured by opts.
func NewFlasher(opts FlasherOptions) (*Flasher, error) {
	if opts.SecretKey == "" {
		return nil, fmt.Errorf("flash secret key must not be empty")
	}
	if opts.CookieName == "" {
		return nil, fmt.Errorf("flash cookie name must not be empty")
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Minute
	}

	return &Flasher{options: opts, now: time.Now}, nil
}

// Set stores f in the response's flash cookie, replacing any pending one.
func (fl *Flasher) Set(w http.ResponseWriter, f Flash) error {
	now := fl.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, flashClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(fl.options.TTL)),
		},
		Flash: f,
	})
	signed, err := token.SignedString([]byte(fl.options.SecretKey))
	if err != nil {
		return fmt.Errorf("could not sign flash: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     fl.options.CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(fl.options.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Pop returns the pending flash message, if any, and clears the cookie.
// Tampered or expired cookies are discarded silently.
func (fl *Flasher) Pop(w http.ResponseWriter, r *http.Request) (*Flash, bool) {
	cookie, err := r.Cookie(fl.options.CookieName)
	if err != nil {
		return nil, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     fl.options.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	var claims flashClaims
	_, err = jwt.ParseWithClaims(cookie.Value, &claims, func(*jwt.Token) (any, error) {
		return []byte(fl.options.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(fl.now))
	if err != nil || claims.Message == "" {
		return nil, false
	}

	return &claims.Flash, true
}
