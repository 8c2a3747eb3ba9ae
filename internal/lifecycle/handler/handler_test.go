package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"custodian/internal/lifecycle/handler/mocks"
	"custodian/internal/lifecycle/models"
	"custodian/internal/platform/middleware"
	id "custodian/pkg/domain"
	"custodian/pkg/testutil"
)

const testSigningKey = "test-signing-key"

// =============================================================================
// Privacy Handler Test Suite
// =============================================================================
// Justification for handler tests: the handler is the trust boundary. It must
// reject unauthenticated and under-scoped callers, reject malformed ids before
// touching the service, and return HTTP 200 for reports whose status is
// partial or failed because the report body is the contract, not the status
// line.

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(s.service, logger, middleware.NewJWTValidator(testSigningKey))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) adminToken(scope string) string {
	claims := middleware.AdminClaims{
		ActorID: "operator-7",
		Scope:   scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	s.Require().NoError(err)
	return token
}

func (s *HandlerSuite) do(req *http.Request, scope string) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+s.adminToken(scope))
	return testutil.DoRequest(s.router, req)
}

// =============================================================================
// Authentication and Authorization
// =============================================================================

func (s *HandlerSuite) TestMissingTokenIsUnauthorized() {
	req := testutil.NewRequest(s.T(), http.MethodPost, "/v1/privacy/users/"+id.NewUserID().String()+"/export")

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
}

func (s *HandlerSuite) TestGarbageTokenIsUnauthorized() {
	req := testutil.NewRequest(s.T(), http.MethodPost, "/v1/privacy/users/"+id.NewUserID().String()+"/export")
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
}

func (s *HandlerSuite) TestMissingScopeIsForbidden() {
	req := testutil.NewRequest(s.T(), http.MethodPost, "/v1/privacy/users/"+id.NewUserID().String()+"/export")

	rr := s.do(req, "some:other")

	testutil.AssertStatus(s.T(), rr, http.StatusForbidden)
}

// =============================================================================
// Export
// =============================================================================

func (s *HandlerSuite) TestExportReturnsPackage() {
	userID := id.NewUserID()
	s.service.EXPECT().ExportUserData(gomock.Any(), userID).Return(&models.ExportPackage{
		PackageID: "01JEXAMPLE",
		Complete:  true,
	}, nil)

	req := testutil.NewRequest(s.T(), http.MethodPost, "/v1/privacy/users/"+userID.String()+"/export")
	rr := s.do(req, "privacy:admin")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "complete", true)
}

func (s *HandlerSuite) TestExportRejectsMalformedUserID() {
	req := testutil.NewRequest(s.T(), http.MethodPost, "/v1/privacy/users/not-a-uuid/export")
	rr := s.do(req, "privacy:admin")

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}

// =============================================================================
// Erasure
// =============================================================================

func (s *HandlerSuite) TestErasureReturnsReportEvenWhenFailed() {
	userID := id.NewUserID()
	s.service.EXPECT().DeleteUserData(gomock.Any(), userID).Return(&models.ErasureReport{
		ReportID:         "01JEXAMPLE",
		OverallStatus:    models.StatusFailed,
		CriticalFailures: []string{"relational_store"},
	}, nil)

	req := testutil.NewRequest(s.T(), http.MethodDelete, "/v1/privacy/users/"+userID.String())
	rr := s.do(req, "privacy:admin")

	// 200 means the orchestration ran; the body carries the honest status.
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "overall_status", "failed")
}

// =============================================================================
// Restriction
// =============================================================================

func (s *HandlerSuite) TestFreezeAndUnfreezeRoutes() {
	userID := id.NewUserID()
	s.service.EXPECT().FreezeUserData(gomock.Any(), userID).Return(&models.RestrictionReport{
		State:         models.RestrictionRestricted,
		OverallStatus: models.StatusSuccess,
	}, nil)
	s.service.EXPECT().UnfreezeUserData(gomock.Any(), userID).Return(&models.RestrictionReport{
		State:         models.RestrictionActive,
		OverallStatus: models.StatusSuccess,
	}, nil)

	freeze := testutil.NewRequest(s.T(), http.MethodPost, "/v1/privacy/users/"+userID.String()+"/restriction")
	rr := s.do(freeze, "privacy:admin")
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "state", "restricted")

	unfreeze := testutil.NewRequest(s.T(), http.MethodDelete, "/v1/privacy/users/"+userID.String()+"/restriction")
	rr = s.do(unfreeze, "privacy:admin")
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "state", "active")
}

// =============================================================================
// Bulk Erasure
// =============================================================================

func (s *HandlerSuite) TestBulkErasureParsesAllIDs() {
	userA := id.NewUserID()
	userB := id.NewUserID()
	s.service.EXPECT().BulkDeleteUsers(gomock.Any(), []id.UserID{userA, userB}).Return(&models.BulkErasureResult{
		UserCount:     2,
		OverallStatus: models.StatusSuccess,
	}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/privacy/erasures", map[string]any{
		"user_ids": []string{userA.String(), userB.String()},
	})
	rr := s.do(req, "privacy:admin")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "overall_status", "success")
}

func (s *HandlerSuite) TestBulkErasureRejectsOversizedBatch() {
	ids := make([]string, maxBulkUsers+1)
	for i := range ids {
		ids[i] = id.NewUserID().String()
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/privacy/erasures", map[string]any{
		"user_ids": ids,
	})
	rr := s.do(req, "privacy:admin")

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *HandlerSuite) TestBulkErasureRejectsMalformedID() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/privacy/erasures", map[string]any{
		"user_ids": []string{id.NewUserID().String(), "not-a-uuid"},
	})
	rr := s.do(req, "privacy:admin")

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}

func (s *HandlerSuite) TestBulkErasureRejectsInvalidBody() {
	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/v1/privacy/erasures", "{not json")
	rr := s.do(req, "privacy:admin")

	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
}
