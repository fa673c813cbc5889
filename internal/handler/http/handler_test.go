// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/mock"
	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
	"go.uber.org/mock/gomock"
)

// testMocks bundles the service doubles a handler test can set expectations on.
type testMocks struct {
	auth     *mock.MockAuthService
	profile  *mock.MockProfileService
	analysis *mock.MockAnalysisService
	archive  *mock.MockArchiveService
	feedback *mock.MockFeedbackService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock service doubles and a
// development config.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *testMocks) {
	t.Helper()

	mocks := &testMocks{
		auth:     mock.NewMockAuthService(ctrl),
		profile:  mock.NewMockProfileService(ctrl),
		analysis: mock.NewMockAnalysisService(ctrl),
		archive:  mock.NewMockArchiveService(ctrl),
		feedback: mock.NewMockFeedbackService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:     mocks.auth,
		ProfileService:  mocks.profile,
		AnalysisService: mocks.analysis,
		ArchiveService:  mocks.archive,
		FeedbackService: mocks.feedback,
		AppInfoService:  mocks.appInfo,
	}

	cfg := &config.StructuredConfig{
		App: config.App{Environment: config.EnvDevelopment, Version: "test"},
		Auth: config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "insight-server",
			TokenDuration: time.Hour,
		},
		Storage: config.Storage{
			Files: config.Files{AvatarDir: t.TempDir(), StaticDir: t.TempDir()},
		},
	}

	return NewHandler(services, cfg, logger.Nop()), mocks
}

// testSession is the session identity used across handler tests.
var testSession = models.Session{
	UserID: 7,
	Email:  "jane@example.com",
	Name:   "Jane Doe",
	Avatar: "/uploads/avatars/a.png",
}

// withSession puts the test session into the request context the way the
// session middleware does.
func withSession(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), utils.SessionCtxKey, testSession)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sessionCookie extracts the session cookie from a recorded response, nil when
// absent.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	return nil
}
