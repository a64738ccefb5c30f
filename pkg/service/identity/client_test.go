package identity_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/service/identity"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("empty base URL is rejected", func(t *testing.T) {
		_, err := identity.New("")
		gt.Error(t, err)
	})

	t.Run("valid base URL", func(t *testing.T) {
		svc, err := identity.New("https://id.example.com/")
		gt.NoError(t, err).Required()
		gt.Value(t, svc).NotNil()
	})
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/env/oauth/session-data" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Header.Get("X-Session-ID") {
		case "valid-session":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":            "user-123",
				"email":         "owner@acme.example",
				"name":          "Acme Owner",
				"picture":       "https://cdn.example.com/p.png",
				"session_token": "st-abc",
			})
		case "expired-session":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	svc, err := identity.New(srv.URL)
	gt.NoError(t, err).Required()
	ctx := context.Background()

	t.Run("valid session returns profile", func(t *testing.T) {
		profile, err := svc.Exchange(ctx, "valid-session")
		gt.NoError(t, err).Required()
		gt.Value(t, profile.ID).Equal("user-123")
		gt.Value(t, profile.Email).Equal("owner@acme.example")
		gt.Value(t, profile.Name).Equal("Acme Owner")
		gt.Value(t, profile.Picture).Equal("https://cdn.example.com/p.png")
		gt.Value(t, profile.SessionToken).Equal("st-abc")
	})

	t.Run("rejected session maps to authentication error", func(t *testing.T) {
		_, err := svc.Exchange(ctx, "expired-session")
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagAuthn)).True()
	})

	t.Run("provider failure maps to upstream error", func(t *testing.T) {
		_, err := svc.Exchange(ctx, "broken-session")
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagUpstream)).True()
	})

	t.Run("empty session ID is rejected without a provider call", func(t *testing.T) {
		_, err := svc.Exchange(ctx, "")
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagValidation)).True()
	})
}

func TestExchangeIDTokenVerification(t *testing.T) {
	rawKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	gt.NoError(t, err).Required()

	signKey, err := jwk.FromRaw(rawKey)
	gt.NoError(t, err).Required()
	gt.NoError(t, signKey.Set(jwk.KeyIDKey, "test-key"))
	gt.NoError(t, signKey.Set(jwk.AlgorithmKey, jwa.ES256))

	pubKey, err := signKey.PublicKey()
	gt.NoError(t, err).Required()
	keySet := jwk.NewSet()
	gt.NoError(t, keySet.AddKey(pubKey))

	jwksSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(keySet)
	}))
	defer jwksSrv.Close()

	signToken := func(t *testing.T, email string) string {
		tok, err := jwt.NewBuilder().
			Issuer("https://id.example.com").
			IssuedAt(time.Now()).
			Expiration(time.Now().Add(time.Hour)).
			Claim("email", email).
			Build()
		gt.NoError(t, err).Required()

		signed, err := jwt.Sign(tok, jwt.WithKey(jwa.ES256, signKey))
		gt.NoError(t, err).Required()
		return string(signed)
	}

	var idToken string
	providerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":            "user-123",
			"email":         "owner@acme.example",
			"name":          "Acme Owner",
			"session_token": "st-abc",
			"id_token":      idToken,
		})
	}))
	defer providerSrv.Close()

	svc, err := identity.New(providerSrv.URL, identity.WithJWKSURL(jwksSrv.URL))
	gt.NoError(t, err).Required()
	ctx := context.Background()

	t.Run("matching email claim passes", func(t *testing.T) {
		idToken = signToken(t, "owner@acme.example")
		profile, err := svc.Exchange(ctx, "valid-session")
		gt.NoError(t, err).Required()
		gt.Value(t, profile.Email).Equal("owner@acme.example")
	})

	t.Run("mismatched email claim is rejected", func(t *testing.T) {
		idToken = signToken(t, "attacker@evil.example")
		_, err := svc.Exchange(ctx, "valid-session")
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagAuthn)).True()
	})

	t.Run("unsigned id_token is rejected", func(t *testing.T) {
		idToken = "not-a-jwt"
		_, err := svc.Exchange(ctx, "valid-session")
		gt.Error(t, err)
		gt.Bool(t, goerr.HasTag(err, types.ErrTagAuthn)).True()
	})
}
