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

package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/metrics"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/resolver"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/canton"
)

func (m *manager) proxyQueryHandler(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var qr canton.QueryRequest
	if err := json.NewDecoder(req.Body).Decode(&qr); err != nil {
		m.writeJSONError(res, http.StatusBadRequest, i18n.NewError(ctx, gwmsgs.MsgInvalidRequestBody, "query", err))
		return
	}

	result := m.resolver.ForwardQuery(ctx, &qr, req.Header.Get("Authorization"))
	outcome := metrics.QueryOutcomeForwarded
	if result.SoftEmpty {
		outcome = metrics.QueryOutcomeSoftEmpty
	}
	m.metrics.IncQueryForwarded(ctx, outcome)
	m.metrics.AddEndpointAttempts(ctx, "query", len(result.Attempts))
	m.writeResult(res, result)
}

func (m *manager) proxyCommandHandler(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		m.writeJSONError(res, http.StatusBadRequest, i18n.NewError(ctx, gwmsgs.MsgInvalidRequestBody, "command", err))
		return
	}
	sub, err := parseCommandSubmission(body)
	if err != nil {
		m.writeJSONError(res, http.StatusBadRequest, i18n.NewError(ctx, gwmsgs.MsgInvalidRequestBody, "command", err))
		return
	}
	if len(sub.List) == 0 {
		m.writeJSONError(res, http.StatusBadRequest, i18n.NewError(ctx, gwmsgs.MsgEmptyCommandList))
		return
	}
	if sub.CommandID == "" {
		sub.CommandID = canton.NewCommandID("command")
	}

	result := m.resolver.ForwardCommand(ctx, sub, req.Header.Get("Authorization"))
	m.metrics.IncCommandForwarded(ctx, result.Status)
	m.metrics.AddEndpointAttempts(ctx, "command", len(result.Attempts))
	if result.Status >= 200 && result.Status < 300 && m.wsServer != nil {
		m.wsServer.Broadcast(fftypes.JSONObject{
			"type":      "commandCompleted",
			"commandId": sub.CommandID,
			"party":     sub.Party,
			"status":    result.Status,
			"time":      fftypes.Now(),
		})
	}
	m.writeResult(res, result)
}

// parseCommandSubmission accepts the submission either nested under a
// "commands" key (as the ledger client sends it) or flat at the top level
// (as older UIs post it).
func parseCommandSubmission(body []byte) (*canton.CommandSubmission, error) {
	var wrapped canton.CommandRequest
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Commands != nil {
		return wrapped.Commands, nil
	}
	var flat canton.CommandSubmission
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, err
	}
	return &flat, nil
}

func (m *manager) writeResult(res http.ResponseWriter, result *resolver.Result) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(result.Status)
	_, _ = res.Write(result.Body)
}

func (m *manager) writeJSONError(res http.ResponseWriter, status int, err error) {
	log.L(m.ctx).Errorf("Request failed [%d]: %s", status, err)
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(fftypes.JSONObject{"error": err.Error()})
}
