package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
	"github.com/goran-ethernal/SolanaRelay/internal/logger"
	"github.com/goran-ethernal/SolanaRelay/pkg/config"
	"github.com/goran-ethernal/SolanaRelay/pkg/moralis"
	moralismocks "github.com/goran-ethernal/SolanaRelay/pkg/moralis/mocks"
	"github.com/goran-ethernal/SolanaRelay/pkg/relay"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.UnixMilli(1_700_000_000_000)

// newTestHandler wires a real relay to a mocked gateway client behind the full server handler.
func newTestHandler(t *testing.T, apiKey string) (http.Handler, *moralismocks.Client) {
	t.Helper()

	client := moralismocks.NewClient(t)
	r := relay.New(
		config.MoralisConfig{APIKey: apiKey},
		client,
		logger.NewNopLogger(),
		relay.WithClock(func() time.Time { return testNow }),
	)

	cfg := &config.APIConfig{
		ListenAddress: "localhost:0",
		ReadTimeout:   common.NewDuration(5 * time.Second),
		WriteTimeout:  common.NewDuration(5 * time.Second),
		IdleTimeout:   common.NewDuration(60 * time.Second),
	}

	return NewServer(cfg, r, logger.NewNopLogger()).Handler(), client
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	return response
}

func TestRespondHelpers(t *testing.T) {
	t.Parallel()

	t.Run("raw upstream body is written unchanged", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"usdPrice":1.0001, "exchangeName":"Raydium"}`)
		w := httptest.NewRecorder()
		respondRawJSON(w, http.StatusOK, body)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.Equal(t, string(body), w.Body.String())
	})

	t.Run("unencodable value", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		respondJSON(w, http.StatusOK, make(chan int))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "Failed to encode response")
	})

	t.Run("error body carries status text and code", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		respondError(w, http.StatusNotFound, "no route for GET /token-info/mainnet")

		require.Equal(t, http.StatusNotFound, w.Code)

		response := decodeError(t, w)
		require.Equal(t, "Not Found", response.Error)
		require.Equal(t, http.StatusNotFound, response.Code)
		require.Empty(t, response.Kind)
		require.Equal(t, "no route for GET /token-info/mainnet", response.Message)
	})
}

func TestHandler_Root(t *testing.T) {
	t.Parallel()

	// no API key and no upstream expectations: the root must not depend on either
	h, _ := newTestHandler(t, "")

	w := serve(t, h, "/")

	require.Equal(t, http.StatusOK, w.Code)

	var response StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, rootMessage, response.Message)
	require.Equal(t, common.Version, response.Version)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus string
	}{
		{
			name:           "healthy with API key",
			apiKey:         "key",
			expectedStatus: "healthy",
		},
		{
			name:           "degraded without API key",
			apiKey:         "",
			expectedStatus: "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestHandler(t, tt.apiKey)
			w := serve(t, h, "/health")

			require.Equal(t, http.StatusOK, w.Code)

			var response HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			require.Equal(t, tt.expectedStatus, response.Status)
			require.Equal(t, tt.apiKey != "", response.APIKeyConfigured)
			require.Equal(t, len(relay.Routes()), response.Routes)
			require.False(t, response.Timestamp.IsZero())
		})
	}
}

func TestHandler_TestAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		apiKey         string
		setupMock      func(c *moralismocks.Client)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:   "key accepted",
			apiKey: "key",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.Anything).
					Return(&moralis.Response{StatusCode: http.StatusOK, Body: []byte(`{"symbol":"SOL"}`)}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "key rejected",
			apiKey: "bad",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.Anything).
					Return(&moralis.Response{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"Invalid key"}`)}, nil).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKind:   string(relay.KindUnauthorized),
		},
		{
			name:           "key missing",
			apiKey:         "",
			setupMock:      func(c *moralismocks.Client) {},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   string(relay.KindConfiguration),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, client := newTestHandler(t, tt.apiKey)
			tt.setupMock(client)

			w := serve(t, h, "/test-api-key")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedKind == "" {
				var response APIKeyCheckResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				require.Equal(t, "ok", response.Status)
				return
			}

			response := decodeError(t, w)
			require.Equal(t, tt.expectedKind, response.Kind)
			require.Equal(t, tt.expectedStatus, response.Code)
		})
	}
}

func TestHandler_RelayRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		setupMock      func(c *moralismocks.Client)
		expectedStatus int
		expectedBody   string
		expectedKind   string
	}{
		{
			name:   "pump suffix stripped before forwarding",
			target: "/token-info/mainnet/EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1vpump",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.MatchedBy(func(req moralis.Request) bool {
					return req.Path == "/token/mainnet/EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v/metadata"
				})).Return(&moralis.Response{StatusCode: http.StatusOK, Body: []byte(`{"name":"USD Coin"}`)}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"USD Coin"}`,
		},
		{
			name:   "solana network relayed as mainnet",
			target: "/wallet-sol-balance/SOLANA/wallet1",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.MatchedBy(func(req moralis.Request) bool {
					return req.Path == "/account/mainnet/wallet1/balance"
				})).Return(&moralis.Response{StatusCode: http.StatusOK, Body: []byte(`{"lamports":"1"}`)}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"lamports":"1"}`,
		},
		{
			name:   "ohlcv query forwarded",
			target: "/pair-ohlcv/mainnet/pair1?timeframe=15m&days_ago=1&limit=10",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.MatchedBy(func(req moralis.Request) bool {
					return req.Path == "/token/mainnet/pairs/pair1/ohlcv" &&
						req.Query.Get("timeframe") == "15m" &&
						req.Query.Get("limit") == "10" &&
						req.Query.Get("toDate") == "1700000000000" &&
						req.Query.Get("fromDate") == "1699913600000"
				})).Return(&moralis.Response{StatusCode: http.StatusOK, Body: []byte(`{"result":[]}`)}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result":[]}`,
		},
		{
			name:           "invalid network",
			target:         "/token-price/devnet/mint1",
			setupMock:      func(c *moralismocks.Client) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(relay.KindInvalidArgument),
		},
		{
			name:           "limit out of range",
			target:         "/token-swaps/mainnet/mint1?limit=0",
			setupMock:      func(c *moralismocks.Client) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(relay.KindInvalidArgument),
		},
		{
			name:           "bad timeframe",
			target:         "/pair-ohlcv/mainnet/pair1?timeframe=2h",
			setupMock:      func(c *moralismocks.Client) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(relay.KindInvalidArgument),
		},
		{
			name:   "upstream not found",
			target: "/wallet-portfolio/mainnet/wallet1",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.Anything).
					Return(&moralis.Response{StatusCode: http.StatusNotFound, Body: []byte(`{"message":"not found"}`)}, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   string(relay.KindNotFound),
		},
		{
			name:   "upstream rate limited",
			target: "/token-pairs/mainnet/mint1",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.Anything).
					Return(&moralis.Response{StatusCode: http.StatusTooManyRequests, Body: []byte("slow down")}, nil).Once()
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedKind:   string(relay.KindUpstreamError),
		},
		{
			name:   "upstream unreachable",
			target: "/pair-snipers/mainnet/pair1",
			setupMock: func(c *moralismocks.Client) {
				c.EXPECT().Get(mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: i/o timeout")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   string(relay.KindUpstreamUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, client := newTestHandler(t, "key")
			tt.setupMock(client)

			w := serve(t, h, tt.target)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedKind == "" {
				require.Equal(t, "application/json", w.Header().Get("Content-Type"))
				require.Equal(t, tt.expectedBody, w.Body.String())
				return
			}

			response := decodeError(t, w)
			require.Equal(t, tt.expectedKind, response.Kind)
			require.Equal(t, tt.expectedStatus, response.Code)
			require.Equal(t, http.StatusText(tt.expectedStatus), response.Error)
			require.NotEmpty(t, response.Message)
		})
	}
}

func TestHandler_InvalidNetworkOnEveryRoute(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, "key")

	for _, route := range relay.Routes() {
		target := "/" + route.Name + "/ethereum/addr"

		w := serve(t, h, target)
		require.Equal(t, http.StatusBadRequest, w.Code, target)
		require.Equal(t, string(relay.KindInvalidArgument), decodeError(t, w).Kind, target)
	}
}

func TestHandler_PassesRequestContext(t *testing.T) {
	t.Parallel()

	h, client := newTestHandler(t, "key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client.EXPECT().Get(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ moralis.Request) (*moralis.Response, error) {
			return nil, ctx.Err()
		}).Once()

	req := httptest.NewRequest(http.MethodGet, "/token-info/mainnet/mint1", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, string(relay.KindUpstreamUnavailable), decodeError(t, w).Kind)
}

func TestHandler_UnknownRoute(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, "key")

	w := serve(t, h, "/token-info/mainnet")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, http.StatusNotFound, decodeError(t, w).Code)
}
