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

package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/canton"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) (*Resolver, *httptest.Server) {
	gwconfig.Reset()
	server := httptest.NewServer(handler)
	gwconfig.LedgerConfig.Set(ffresty.HTTPConfigURL, server.URL)
	r, err := NewResolver(context.Background(), gwconfig.LedgerConfig)
	assert.NoError(t, err)
	return r, server
}

func testSubmission() *canton.CommandSubmission {
	return &canton.CommandSubmission{
		Party:         "Alice",
		ApplicationID: "prediction-markets",
		CommandID:     "command-test-0001",
		List: []*canton.Command{
			{TemplateID: "PredictionMarkets:Market", Payload: fftypes.JSONObject{"marketId": "m1"}},
		},
	}
}

func TestForwardQueryFirstEndpointWins(t *testing.T) {
	var paths []string
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.URL.Path)
		res.Header().Set("Content-Type", "application/json")
		_, _ = res.Write([]byte(`{"result":[{"contractId":"c1"}]}`))
	})
	defer server.Close()

	result := r.ForwardQuery(context.Background(), &canton.QueryRequest{TemplateIDs: []string{"T"}}, "")
	assert.Equal(t, 200, result.Status)
	assert.Equal(t, []string{"/v2/query"}, paths)
	assert.Empty(t, result.Attempts)
	assert.Contains(t, string(result.Body), "c1")
}

func TestForwardQueryFallsThrough404(t *testing.T) {
	var paths []string
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.URL.Path)
		if req.URL.Path != "/query" {
			res.WriteHeader(404)
			return
		}
		_, _ = res.Write([]byte(`{"result":[]}`))
	})
	defer server.Close()

	result := r.ForwardQuery(context.Background(), &canton.QueryRequest{}, "")
	assert.Equal(t, 200, result.Status)
	assert.Equal(t, []string{"/v2/query", "/v1/query", "/query"}, paths)
	assert.Len(t, result.Attempts, 2)
	assert.False(t, result.SoftEmpty)
}

func TestForwardQueryAll404SoftFails(t *testing.T) {
	count := 0
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		count++
		res.WriteHeader(404)
	})
	defer server.Close()

	result := r.ForwardQuery(context.Background(), &canton.QueryRequest{}, "")
	assert.Equal(t, 200, result.Status)
	assert.Equal(t, 5, count)
	assert.True(t, result.SoftEmpty)

	var parsed canton.QueryResponse
	err := json.Unmarshal(result.Body, &parsed)
	assert.NoError(t, err)
	assert.Empty(t, parsed.Result)
}

func TestForwardQueryNon404IsFinal(t *testing.T) {
	count := 0
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		count++
		res.WriteHeader(500)
		_, _ = res.Write([]byte(`{"error":"boom"}`))
	})
	defer server.Close()

	result := r.ForwardQuery(context.Background(), &canton.QueryRequest{}, "")
	assert.Equal(t, 500, result.Status)
	assert.Equal(t, 1, count) // no fallthrough on a live-but-failing endpoint
	assert.Contains(t, string(result.Body), "boom")
}

func TestForwardQueryNormalizesNilFields(t *testing.T) {
	var received fftypes.JSONObject
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&received)
		_, _ = res.Write([]byte(`{"result":[]}`))
	})
	defer server.Close()

	r.ForwardQuery(context.Background(), &canton.QueryRequest{}, "")
	assert.NotNil(t, received["templateIds"])
	assert.NotNil(t, received["query"])
}

func TestForwardQueryPassesAuthorization(t *testing.T) {
	var auth string
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		auth = req.Header.Get("Authorization")
		_, _ = res.Write([]byte(`{"result":[]}`))
	})
	defer server.Close()

	r.ForwardQuery(context.Background(), &canton.QueryRequest{}, "Bearer token123")
	assert.Equal(t, "Bearer token123", auth)
}

func TestForwardCommandShapeRotation(t *testing.T) {
	var bodies []fftypes.JSONObject
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		var body fftypes.JSONObject
		_ = json.NewDecoder(req.Body).Decode(&body)
		bodies = append(bodies, body)
		if req.URL.Path != "/v2/command" {
			res.WriteHeader(404)
			return
		}
		// reject the actAs shape, accept the wrapped one
		if _, isActAs := body["actAs"]; isActAs {
			res.WriteHeader(400)
			_, _ = res.Write([]byte(`{"error":"unexpected actAs"}`))
			return
		}
		_, _ = res.Write([]byte(`{"status":200,"result":{"completionOffset":"1"}}`))
	})
	defer server.Close()

	result := r.ForwardCommand(context.Background(), testSubmission(), "")
	assert.Equal(t, 200, result.Status)
	assert.Len(t, bodies, 2)
	assert.NotNil(t, bodies[0]["actAs"])
	assert.NotNil(t, bodies[1]["commands"])
	assert.Len(t, result.Attempts, 1)
	assert.Equal(t, 400, result.Attempts[0].Status)
	assert.Equal(t, "unexpected actAs", result.Attempts[0].Error)
}

func TestForwardCommandExhaustionDiagnostics(t *testing.T) {
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(404)
	})
	defer server.Close()

	result := r.ForwardCommand(context.Background(), testSubmission(), "")
	assert.Equal(t, 404, result.Status)

	var parsed fftypes.JSONObject
	err := json.Unmarshal(result.Body, &parsed)
	assert.NoError(t, err)
	assert.Equal(t, "Canton endpoint not found", parsed.GetString("error"))
	assert.NotEmpty(t, parsed.GetString("message"))
	tried := parsed.GetObjectArray("triedEndpoints")
	assert.Len(t, tried, 3) // one 404 per endpoint, no shape rotation
	assert.NotNil(t, parsed["lastError"])
}

func TestForwardCommandOtherStatusIsFinal(t *testing.T) {
	count := 0
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		count++
		res.WriteHeader(401)
		_, _ = res.Write([]byte(`{"error":"no auth"}`))
	})
	defer server.Close()

	result := r.ForwardCommand(context.Background(), testSubmission(), "")
	assert.Equal(t, 401, result.Status)
	assert.Equal(t, 1, count)
	assert.Contains(t, string(result.Body), "no auth")
}

func TestForwardCommandWrapsNonJSONResponse(t *testing.T) {
	r, server := newTestResolver(t, func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(502)
		_, _ = res.Write([]byte("<html>Bad Gateway: " + strings.Repeat("x", 600) + "</html>"))
	})
	defer server.Close()

	result := r.ForwardCommand(context.Background(), testSubmission(), "")
	assert.Equal(t, 502, result.Status)
	assert.True(t, json.Valid(result.Body))

	var parsed fftypes.JSONObject
	_ = json.Unmarshal(result.Body, &parsed)
	assert.Equal(t, "Non-JSON response", parsed.GetString("error"))
	assert.LessOrEqual(t, len(parsed.GetString("text")), 500)
}

func TestForwardCommandTransportErrorAdvances(t *testing.T) {
	gwconfig.Reset()
	gwconfig.LedgerConfig.Set(ffresty.HTTPConfigURL, "http://127.0.0.1:1")
	r, err := NewResolver(context.Background(), gwconfig.LedgerConfig)
	assert.NoError(t, err)

	result := r.ForwardCommand(context.Background(), testSubmission(), "")
	assert.Equal(t, 404, result.Status)
	assert.Len(t, result.Attempts, 3) // one transport failure per endpoint
	for _, a := range result.Attempts {
		assert.NotEmpty(t, a.Error)
	}
}

func TestWellFormedJSONEmptyBody(t *testing.T) {
	assert.Equal(t, []byte(`{}`), wellFormedJSON(nil))
	assert.Equal(t, []byte(`{}`), wellFormedJSON([]byte{}))
}
