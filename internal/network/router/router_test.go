package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/denmor86/orderdesk/internal/client"
	"github.com/denmor86/orderdesk/internal/config"
	"github.com/denmor86/orderdesk/internal/logger"
	"github.com/denmor86/orderdesk/internal/models"
	"github.com/denmor86/orderdesk/internal/notice"
	"github.com/denmor86/orderdesk/internal/projection"
	"github.com/denmor86/orderdesk/internal/services"
	"github.com/denmor86/orderdesk/internal/services/mocks"
	"github.com/denmor86/orderdesk/internal/view"
)

func newTestServer(t *testing.T, ws services.WorkstationService) (*httptest.Server, string) {
	t.Helper()
	cfg := config.DefaultConfig()
	require.NoError(t, logger.Initialize(cfg.Server.LogLevel))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Server.AdminPasswordHash = string(hash)

	identity := services.NewIdentity(cfg.Server)
	srv := httptest.NewServer(NewRouter(identity, ws).HandleRouter())
	t.Cleanup(srv.Close)

	token, err := identity.GenerateJWT(cfg.Server.AdminLogin)
	require.NoError(t, err)
	return srv, token
}

func do(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, mocks.NewMockWorkstationService(ctrl))

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
		wantToken      bool
	}{
		{name: "valid_credentials_return_200", body: `{"login":"admin","password":"secret-pass"}`, wantStatusCode: http.StatusOK, wantToken: true},
		{name: "wrong_password_return_401", body: `{"login":"admin","password":"nope"}`, wantStatusCode: http.StatusUnauthorized},
		{name: "empty_fields_return_400", body: `{"login":""}`, wantStatusCode: http.StatusBadRequest},
		{name: "broken_json_return_400", body: `{`, wantStatusCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, http.MethodPost, srv.URL+"/api/admin/login", "", tt.body)
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			assert.Equal(t, tt.wantToken, strings.HasPrefix(res.Header.Get("Authorization"), "Bearer "))
		})
	}
}

func TestOrders_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, mocks.NewMockWorkstationService(ctrl))

	res := do(t, http.MethodGet, srv.URL+"/api/admin/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkstationService(ctrl)
	srv, token := newTestServer(t, ws)

	table := view.Table{Rows: []view.Row{{OrderID: "1", Product: view.NoItems, NoItems: true}}, Orders: 1}

	t.Run("status_toggles_return_200", func(t *testing.T) {
		ws.EXPECT().Orders(projection.Filter{
			Query:    "kurta",
			Mode:     projection.ModeStatusToggles,
			Statuses: map[string]bool{models.StatusAccepted: true, models.StatusPending: true},
		}).Return(table)

		res := do(t, http.MethodGet, srv.URL+"/api/admin/orders?q=kurta&status=accepted,Pending", token, "")
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

		var got view.Table
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		assert.Equal(t, table, got)
	})

	t.Run("hide_declined_mode", func(t *testing.T) {
		ws.EXPECT().Orders(projection.Filter{Mode: projection.ModeHideDeclined, HideDeclined: true}).Return(view.Table{Rows: []view.Row{}, Placeholder: view.NoOrders})

		res := do(t, http.MethodGet, srv.URL+"/api/admin/orders?hide_declined=true", token, "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("unknown_status_return_400", func(t *testing.T) {
		res := do(t, http.MethodGet, srv.URL+"/api/admin/orders?status=Shipped", token, "")
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestOrderActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkstationService(ctrl)
	srv, token := newTestServer(t, ws)

	failed := notice.Notice{Kind: notice.KindError, Message: notice.MsgUpdateFailed}

	tests := []struct {
		name           string
		path           string
		setup          func()
		wantStatusCode int
		wantNotice     string
	}{
		{
			name: "accept_return_200",
			path: "/orders/7/accept",
			setup: func() {
				ws.EXPECT().Accept(gomock.Any(), "admin", "7").Return(services.Outcome{
					OrderID: "7", Decision: models.DecisionAccepted, Status: models.StatusAccepted,
					Notice: &notice.Notice{Kind: notice.KindSuccess, Message: notice.MsgEmailSent},
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantNotice:     notice.MsgEmailSent,
		},
		{
			name: "decline_declined_return_409",
			path: "/orders/7/decline",
			setup: func() {
				ws.EXPECT().Decline(gomock.Any(), "admin", "7").Return(services.Outcome{}, services.ErrAlreadyDeclined)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "accept_declined_return_409",
			path: "/orders/7/accept",
			setup: func() {
				ws.EXPECT().Accept(gomock.Any(), "admin", "7").Return(services.Outcome{}, services.ErrAlreadyDecided)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "complete_in_progress_return_409",
			path: "/orders/7/complete",
			setup: func() {
				ws.EXPECT().Complete(gomock.Any(), "admin", "7").Return(services.Outcome{}, services.ErrActionInProgress)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "unknown_order_return_404",
			path: "/orders/404/accept",
			setup: func() {
				ws.EXPECT().Accept(gomock.Any(), "admin", "404").Return(services.Outcome{}, services.ErrOrderNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "remote_failure_return_502",
			path: "/orders/7/accept",
			setup: func() {
				ws.EXPECT().Accept(gomock.Any(), "admin", "7").Return(
					services.Outcome{OrderID: "7", Notice: &failed},
					&services.RemoteError{Err: &client.APIError{StatusCode: 500}})
			},
			wantStatusCode: http.StatusBadGateway,
			wantNotice:     notice.MsgUpdateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			res := do(t, http.MethodPost, srv.URL+"/api/admin"+tt.path, token, "")
			require.Equal(t, tt.wantStatusCode, res.StatusCode)

			var body struct {
				Notice *notice.Notice `json:"notice"`
			}
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			if tt.wantNotice == "" {
				assert.Nil(t, body.Notice)
				return
			}
			require.NotNil(t, body.Notice)
			assert.Equal(t, tt.wantNotice, body.Notice.Message)
		})
	}
}

func TestRefreshAndNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkstationService(ctrl)
	srv, token := newTestServer(t, ws)

	ws.EXPECT().Refresh(gomock.Any(), "admin").Return(nil)
	res := do(t, http.MethodPost, srv.URL+"/api/admin/orders/refresh", token, "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	ws.EXPECT().Refresh(gomock.Any(), "admin").Return(&services.RemoteError{Err: &client.APIError{StatusCode: 500, Message: "database is down"}})
	res = do(t, http.MethodPost, srv.URL+"/api/admin/orders/refresh", token, "")
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "database is down", body["error"])

	ws.EXPECT().Notice().Return(notice.Notice{}, false)
	res = do(t, http.MethodGet, srv.URL+"/api/admin/notice", token, "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	ws.EXPECT().Notice().Return(notice.Notice{Kind: notice.KindSuccess, Message: notice.MsgBothSent}, true)
	res = do(t, http.MethodGet, srv.URL+"/api/admin/notice", token, "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestGetActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockWorkstationService(ctrl)
	srv, token := newTestServer(t, ws)

	records := []models.ActionRecord{{OrderID: "7", Action: models.ActionAccept, Actor: "admin", Result: models.ActionResultOK, CreatedAt: "2024-05-01T10:00:00Z"}}
	ws.EXPECT().Actions(gomock.Any(), 5).Return(records, nil)

	res := do(t, http.MethodGet, srv.URL+"/api/admin/actions?limit=5", token, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	var got []models.ActionRecord
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, records, got)

	res = do(t, http.MethodGet, srv.URL+"/api/admin/actions?limit=-3", token, "")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
