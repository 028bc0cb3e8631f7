package httpv1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpv1 "github.com/Egor213/UniLog/internal/controller/http/v1"
	"github.com/Egor213/UniLog/internal/domain"
	servicemocks "github.com/Egor213/UniLog/internal/mocks/service"
	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	logs    *servicemocks.MockLog
	setup   *servicemocks.MockSetup
	sweeper *servicemocks.MockRetentionSweeper
}

func newRouter(t *testing.T) (*echo.Echo, routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := routerMocks{
		logs:    servicemocks.NewMockLog(ctrl),
		setup:   servicemocks.NewMockSetup(ctrl),
		sweeper: servicemocks.NewMockRetentionSweeper(ctrl),
	}

	e := echo.New()
	httpv1.ConfigureRouter(e, httpv1.RouterDependencies{
		Log:     m.logs,
		Setup:   m.setup,
		Sweeper: m.sweeper,
	})
	return e, m
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Channels(t *testing.T) {
	orders := domain.Channel{Id: 3, TenantId: 1, Name: "orders", RetentionHours: 24, MinimumLevel: domain.LevelDetail}

	type mockBehavior func(m routerMocks)

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior mockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/api/v1/tenants/1/channels",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().ListChannels(gomock.Any(), int64(1)).Return([]domain.Channel{orders}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":3,"name":"orders","retention_hours":24,"minimum_level":"Detail"}]`,
		},
		{
			name:   "list store failure",
			method: http.MethodGet,
			target: "/api/v1/tenants/1/channels",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().ListChannels(gomock.Any(), int64(1)).Return(nil, service.ErrCannotLoadChannels)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:         "invalid tenant",
			method:       http.MethodGet,
			target:       "/api/v1/tenants/abc/channels",
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/v1/tenants/1/channels/orders",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(1), "orders").Return(orders, true)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":3,"name":"orders","retention_hours":24,"minimum_level":"Detail"}`,
		},
		{
			name:   "get unknown",
			method: http.MethodGet,
			target: "/api/v1/tenants/1/channels/nope",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(1), "nope").Return(domain.Channel{}, false)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "upsert",
			method: http.MethodPut,
			target: "/api/v1/tenants/1/channels/orders",
			body:   `{"retention_hours":24,"minimum_level":"Detail"}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().UpsertChannel(gomock.Any(), int64(1), "orders", gomock.Any(), gomock.Any()).Return(true, nil)
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(1), "orders").Return(orders, true)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":3,"name":"orders","retention_hours":24,"minimum_level":"Detail"}`,
		},
		{
			name:         "upsert invalid level",
			method:       http.MethodPut,
			target:       "/api/v1/tenants/1/channels/orders",
			body:         `{"minimum_level":"Loud"}`,
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "upsert rejected by service",
			method: http.MethodPut,
			target: "/api/v1/tenants/1/channels/orders",
			body:   `{"retention_hours":1}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().UpsertChannel(gomock.Any(), int64(1), "orders", gomock.Any()).Return(false, service.ErrInvalidArgument)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "upsert store failure",
			method: http.MethodPut,
			target: "/api/v1/tenants/1/channels/orders",
			body:   `{}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().UpsertChannel(gomock.Any(), int64(1), "orders").Return(false, nil)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/v1/tenants/1/channels/orders",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().DeleteChannel(gomock.Any(), int64(1), "orders").Return(true)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete unknown",
			method: http.MethodDelete,
			target: "/api/v1/tenants/1/channels/orders",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().DeleteChannel(gomock.Any(), int64(1), "orders").Return(false)
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(1), "orders").Return(domain.Channel{}, false)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "delete store failure",
			method: http.MethodDelete,
			target: "/api/v1/tenants/1/channels/orders",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().DeleteChannel(gomock.Any(), int64(1), "orders").Return(false)
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(1), "orders").Return(orders, true)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newRouter(t)
			tc.mockBehavior(m)

			rec := serve(e, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_Entries(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()

	type mockBehavior func(m routerMocks)

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior mockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "insert stored",
			method: http.MethodPost,
			target: "/api/v1/tenants/2/channels/orders/entries",
			body:   `{"level":"Error","message":"payment failed","caller":"billing-worker"}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().InsertEntry(gomock.Any(), int64(2), "orders", domain.LevelError, "payment failed", gomock.Any()).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"stored":true}`,
		},
		{
			name:   "insert numeric level with full trace",
			method: http.MethodPost,
			target: "/api/v1/tenants/2/channels/orders/entries",
			body:   `{"level":"1","message":"slow","full_trace":true}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().InsertEntry(gomock.Any(), int64(2), "orders", domain.LevelWarning, "slow", gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"stored":true}`,
		},
		{
			name:   "insert filtered",
			method: http.MethodPost,
			target: "/api/v1/tenants/2/channels/orders/entries",
			body:   `{"level":"Detail","message":"noise"}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().InsertEntry(gomock.Any(), int64(2), "orders", domain.LevelDetail, "noise", gomock.Any()).Return(false, nil)
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(2), "orders").Return(domain.Channel{Id: 1}, true)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"stored":false}`,
		},
		{
			name:   "insert into unknown channel",
			method: http.MethodPost,
			target: "/api/v1/tenants/2/channels/nope/entries",
			body:   `{"level":"Error","message":"x"}`,
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().InsertEntry(gomock.Any(), int64(2), "nope", domain.LevelError, "x", gomock.Any()).Return(false, nil)
				m.logs.EXPECT().GetChannel(gomock.Any(), int64(2), "nope").Return(domain.Channel{}, false)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "insert with oversized caller",
			method:       http.MethodPost,
			target:       "/api/v1/tenants/2/channels/orders/entries",
			body:         `{"level":"Error","message":"x","caller":"` + strings.Repeat("c", 257) + `"}`,
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "insert without level",
			method:       http.MethodPost,
			target:       "/api/v1/tenants/2/channels/orders/entries",
			body:         `{"message":"x"}`,
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "list with defaults",
			method: http.MethodGet,
			target: "/api/v1/tenants/2/channels/orders/entries",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().GetEntries(gomock.Any(), int64(2), "orders", domain.DefaultEntryFilter()).
					Return([]domain.LogEntry{{Id: 8, ChannelId: 1, Level: domain.LevelError, Message: "boom", Timestamp: at}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":8,"level":"Error","message":"boom","timestamp":1700000000}]`,
		},
		{
			name:   "list with query",
			method: http.MethodGet,
			target: "/api/v1/tenants/2/channels/orders/entries?min_ts=10&max_ts=20&min_level=Detail&max_level=0",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().GetEntries(gomock.Any(), int64(2), "orders", domain.EntryFilter{
					MinTS: 10, MaxTS: 20, MinLevel: domain.LevelDetail, MaxLevel: domain.LevelDetail,
				}).Return([]domain.LogEntry{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "list with bad level",
			method:       http.MethodGet,
			target:       "/api/v1/tenants/2/channels/orders/entries?min_level=Loud",
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "list with bad timestamp",
			method:       http.MethodGet,
			target:       "/api/v1/tenants/2/channels/orders/entries?min_ts=yesterday",
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "list unknown channel",
			method: http.MethodGet,
			target: "/api/v1/tenants/2/channels/nope/entries",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().GetEntries(gomock.Any(), int64(2), "nope", gomock.Any()).Return(nil, service.ErrChannelNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "list store failure",
			method: http.MethodGet,
			target: "/api/v1/tenants/2/channels/orders/entries",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().GetEntries(gomock.Any(), int64(2), "orders", gomock.Any()).Return(nil, service.ErrCannotGetEntries)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "can log",
			method: http.MethodGet,
			target: "/api/v1/tenants/2/channels/orders/can-log?level=Warning",
			mockBehavior: func(m routerMocks) {
				m.logs.EXPECT().CanLog(gomock.Any(), int64(2), "orders", domain.LevelWarning).Return(true)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"can_log":true}`,
		},
		{
			name:         "can log without level",
			method:       http.MethodGet,
			target:       "/api/v1/tenants/2/channels/orders/can-log",
			mockBehavior: func(m routerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newRouter(t)
			tc.mockBehavior(m)

			rec := serve(e, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouter_Sweep(t *testing.T) {
	started := time.Unix(1700000000, 0)

	t.Run("completed", func(t *testing.T) {
		e, m := newRouter(t)
		m.sweeper.EXPECT().Sweep(gomock.Any()).
			Return(service.SweepReport{StartedAt: started, Tenants: 2, Channels: 5, Deleted: 40}, true)

		rec := serve(e, http.MethodPost, "/api/v1/sweep", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"started_at":1700000000,"tenants":2,"channels":5,"deleted":40,"failures":0}`, rec.Body.String())
	})

	t.Run("already running", func(t *testing.T) {
		e, m := newRouter(t)
		m.sweeper.EXPECT().Sweep(gomock.Any()).Return(service.SweepReport{}, false)

		rec := serve(e, http.MethodPost, "/api/v1/sweep", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_Tenants(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		e, m := newRouter(t)
		m.setup.EXPECT().ListTenants(gomock.Any()).Return([]int64{1, 2}, nil)

		rec := serve(e, http.MethodGet, "/api/v1/tenants", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var ids []int64
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("install", func(t *testing.T) {
		e, m := newRouter(t)
		m.setup.EXPECT().Install(gomock.Any(), int64(9)).Return(nil)

		rec := serve(e, http.MethodPost, "/api/v1/tenants/9/install", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("install failure", func(t *testing.T) {
		e, m := newRouter(t)
		m.setup.EXPECT().Install(gomock.Any(), int64(9)).Return(service.ErrCannotInstallTenant)

		rec := serve(e, http.MethodPost, "/api/v1/tenants/9/install", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("uninstall", func(t *testing.T) {
		e, m := newRouter(t)
		m.setup.EXPECT().Uninstall(gomock.Any(), int64(9)).DoAndReturn(func(context.Context, int64) error {
			return nil
		})

		rec := serve(e, http.MethodPost, "/api/v1/tenants/9/uninstall", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
