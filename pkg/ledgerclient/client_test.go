// Copyright © 2025 Wolf Edge Labs, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledgerclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/canton"
)

func newTestClient(t *testing.T, mode string, handler http.HandlerFunc) (LedgerClient, *httptest.Server) {
	gwconfig.Reset()
	config.Set(gwconfig.ClientMode, mode)
	config.Set(gwconfig.ClientRetryInitDelay, "1ms")
	config.Set(gwconfig.ClientRetryMaxDelay, "3ms")
	server := httptest.NewServer(handler)
	gwconfig.ClientConfig.Set(ffresty.HTTPConfigURL, server.URL)
	lc, err := NewLedgerClient(context.Background(), gwconfig.ClientConfig, nil)
	assert.NoError(t, err)
	return lc, server
}

func queryResultHandler(calls *int, records string) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		*calls++
		res.Header().Set("Content-Type", "application/json")
		_, _ = res.Write([]byte(`{"result":` + records + `}`))
	}
}

func TestNewLedgerClientBadMode(t *testing.T) {
	gwconfig.Reset()
	config.Set(gwconfig.ClientMode, "wrong")
	_, err := NewLedgerClient(context.Background(), gwconfig.ClientConfig, nil)
	assert.Regexp(t, "FF27012", err)
}

func TestQueryPathsByMode(t *testing.T) {
	var path string
	handler := func(res http.ResponseWriter, req *http.Request) {
		path = req.URL.Path
		_, _ = res.Write([]byte(`{"result":[]}`))
	}

	lc, server := newTestClient(t, gwconfig.ClientModeProxy, handler)
	_, err := lc.Query(context.Background(), []string{"T"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "/api/v1/query", path)
	server.Close()

	lc, server = newTestClient(t, gwconfig.ClientModeDirect, handler)
	_, err = lc.Query(context.Background(), []string{"T"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "/v1/query", path)
	server.Close()
}

func TestQueryCacheHit(t *testing.T) {
	calls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, queryResultHandler(&calls, `[{"contractId":"c1"}]`))
	defer server.Close()

	ctx := context.Background()
	r1, err := lc.Query(ctx, []string{"T"}, fftypes.JSONObject{"status": "open"})
	assert.NoError(t, err)
	r2, err := lc.Query(ctx, []string{"T"}, fftypes.JSONObject{"status": "open"})
	assert.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, r1, r2)

	// a different filter is a different cache entry
	_, err = lc.Query(ctx, []string{"T"}, fftypes.JSONObject{"status": "closed"})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestQueryForceRefresh(t *testing.T) {
	calls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, queryResultHandler(&calls, `[]`))
	defer server.Close()

	ctx := context.Background()
	_, _ = lc.Query(ctx, []string{"T"}, nil)
	_, _ = lc.Query(ctx, []string{"T"}, nil, WithForceRefresh())
	assert.Equal(t, 2, calls)

	// the refreshed result was stored
	_, _ = lc.Query(ctx, []string{"T"}, nil)
	assert.Equal(t, 2, calls)
}

func TestQueryWithoutCache(t *testing.T) {
	calls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, queryResultHandler(&calls, `[]`))
	defer server.Close()

	ctx := context.Background()
	_, _ = lc.Query(ctx, []string{"T"}, nil, WithoutCache())
	_, _ = lc.Query(ctx, []string{"T"}, nil, WithoutCache())
	assert.Equal(t, 2, calls)
}

func TestQueryRetriesServerErrors(t *testing.T) {
	calls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		calls++
		if calls < 3 {
			res.WriteHeader(503)
			return
		}
		_, _ = res.Write([]byte(`{"result":[{"contractId":"c1"}]}`))
	})
	defer server.Close()

	records, err := lc.Query(context.Background(), []string{"T"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, records, 1)
}

func TestQueryDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		calls++
		res.WriteHeader(400)
		_, _ = res.Write([]byte(`{"error":"bad template"}`))
	})
	defer server.Close()

	_, err := lc.Query(context.Background(), []string{"T"}, nil)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)

	var le *LedgerError
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, 400, le.Status())
}

func TestQueryErrorsAreNotCached(t *testing.T) {
	calls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		calls++
		if calls == 1 {
			res.WriteHeader(404)
			return
		}
		_, _ = res.Write([]byte(`{"result":[]}`))
	})
	defer server.Close()

	ctx := context.Background()
	_, err := lc.Query(ctx, []string{"T"}, nil)
	assert.Error(t, err)
	_, err = lc.Query(ctx, []string{"T"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSubmitCommandInvalidatesCache(t *testing.T) {
	queryCalls := 0
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/api/v1/query" {
			queryCalls++
			_, _ = res.Write([]byte(`{"result":[]}`))
			return
		}
		_, _ = res.Write([]byte(`{"status":200}`))
	})
	defer server.Close()

	ctx := context.Background()
	_, _ = lc.Query(ctx, []string{"T"}, nil)
	_, _ = lc.Query(ctx, []string{"T"}, nil)
	assert.Equal(t, 1, queryCalls)

	_, err := lc.SubmitCommand(ctx, &canton.CommandSubmission{
		Party: "Alice",
		List:  []*canton.Command{{TemplateID: "T", Payload: fftypes.JSONObject{}}},
	})
	assert.NoError(t, err)

	_, _ = lc.Query(ctx, []string{"T"}, nil)
	assert.Equal(t, 2, queryCalls)
}

func TestSubmitCommandEmptyListRejected(t *testing.T) {
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		t.Fail() // must not reach the wire
	})
	defer server.Close()

	_, err := lc.SubmitCommand(context.Background(), &canton.CommandSubmission{Party: "Alice"})
	assert.Regexp(t, "FF27032", err)
	_, err = lc.SubmitCommand(context.Background(), nil)
	assert.Regexp(t, "FF27032", err)
}

func TestSubmitCommandDefaultsAndStableID(t *testing.T) {
	var received []*canton.CommandRequest
	fails := 2
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		var cr canton.CommandRequest
		_ = json.NewDecoder(req.Body).Decode(&cr)
		received = append(received, &cr)
		if len(received) <= fails {
			res.WriteHeader(503)
			return
		}
		_, _ = res.Write([]byte(`{"status":200}`))
	})
	defer server.Close()

	gwconfig.Reset() // newTestClient already read config; bump the command retry budget
	config.Set(gwconfig.ClientCommandRetries, 3)
	config.Set(gwconfig.ClientRetryInitDelay, "1ms")
	config.Set(gwconfig.ClientRetryMaxDelay, "3ms")
	gwconfig.ClientConfig.Set(ffresty.HTTPConfigURL, server.URL)
	lc, err := NewLedgerClient(context.Background(), gwconfig.ClientConfig, nil)
	assert.NoError(t, err)

	_, err = lc.SubmitCommand(context.Background(), &canton.CommandSubmission{
		Party: "Alice",
		List:  []*canton.Command{{TemplateID: "T", Payload: fftypes.JSONObject{}}},
	})
	assert.NoError(t, err)
	assert.Len(t, received, 3)

	first := received[0].Commands
	assert.Equal(t, "prediction-markets", first.ApplicationID)
	assert.NotEmpty(t, first.CommandID)
	for _, r := range received[1:] {
		assert.Equal(t, first.CommandID, r.Commands.CommandID)
	}
}

func TestCreateAndExerciseShape(t *testing.T) {
	var requests []*canton.CommandRequest
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		var cr canton.CommandRequest
		_ = json.NewDecoder(req.Body).Decode(&cr)
		requests = append(requests, &cr)
		_, _ = res.Write([]byte(`{"status":200}`))
	})
	defer server.Close()

	ctx := context.Background()
	_, err := lc.Create(ctx, "PredictionMarkets:Market", fftypes.JSONObject{"marketId": "m1"}, "Alice")
	assert.NoError(t, err)
	_, err = lc.Exercise(ctx, "PredictionMarkets:Market", "c1", "PlaceBet", fftypes.JSONObject{"amount": "5"}, "Bob")
	assert.NoError(t, err)

	assert.Len(t, requests, 2)
	create := requests[0].Commands
	assert.Equal(t, "Alice", create.Party)
	assert.Len(t, create.List, 1)
	assert.Equal(t, "m1", create.List[0].Payload.GetString("marketId"))
	assert.Empty(t, create.List[0].Choice)

	exercise := requests[1].Commands
	assert.Equal(t, "Bob", exercise.Party)
	assert.Equal(t, "c1", exercise.List[0].ContractID)
	assert.Equal(t, "PlaceBet", exercise.List[0].Choice)
	assert.NotEqual(t, create.CommandID, exercise.CommandID)
}

func TestCheckHealthProxy(t *testing.T) {
	var path string
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		path = req.URL.Path
		_, _ = res.Write([]byte(`{"status":"ok"}`))
	})
	defer server.Close()

	assert.NoError(t, lc.CheckHealth(context.Background()))
	assert.Equal(t, "/api/v1/health", path)
}

func TestCheckHealthDirectUsesQuery(t *testing.T) {
	var path string
	lc, server := newTestClient(t, gwconfig.ClientModeDirect, func(res http.ResponseWriter, req *http.Request) {
		path = req.URL.Path
		_, _ = res.Write([]byte(`{"result":[]}`))
	})
	defer server.Close()

	assert.NoError(t, lc.CheckHealth(context.Background()))
	assert.Equal(t, "/v1/query", path)
}

func TestCheckHealthFailure(t *testing.T) {
	lc, server := newTestClient(t, gwconfig.ClientModeProxy, func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(404)
	})
	defer server.Close()

	err := lc.CheckHealth(context.Background())
	assert.Regexp(t, "FF27031", err)
}
