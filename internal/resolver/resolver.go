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

// Package resolver delivers gateway requests to whichever participant JSON
// API path and body shape actually works. Candidates are tried strictly one
// at a time - first success wins, and command/query latency is not
// performance-critical here.
package resolver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/canton"
)

// Result is what the resolver hands back to the gateway route: a status and
// a well-formed JSON body, whatever the upstream did. Attempts lists the
// failed trials that preceded the outcome.
type Result struct {
	Status   int
	Body     []byte
	Attempts []*Attempt

	// SoftEmpty marks a synthesized empty query result, produced when no
	// query endpoint was available at all
	SoftEmpty bool
}

type Resolver struct {
	client *resty.Client
}

func NewResolver(ctx context.Context, conf config.Section) (*Resolver, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &Resolver{client: client}, nil
}

// ForwardQuery tries each query candidate in order. A 404 means "try the
// next path"; any other status (success included) is final and passed
// through. If every candidate 404s the result is a successful empty result
// set, so the UI degrades to "no markets" instead of a hard failure when the
// participant's query surface is unavailable.
func (r *Resolver) ForwardQuery(ctx context.Context, req *canton.QueryRequest, authorization string) *Result {
	if req.TemplateIDs == nil {
		req.TemplateIDs = []string{}
	}
	if req.Query == nil {
		req.Query = fftypes.JSONObject{}
	}

	candidates := QueryCandidates()
	var history []*Attempt
	for {
		path, _, ok := Next(candidates, history)
		if !ok {
			break
		}
		res, err := r.post(ctx, path, req, authorization)
		if err != nil {
			log.L(ctx).Warnf("Query endpoint %s failed: %s", path, err)
			history = append(history, &Attempt{Endpoint: path, Error: err.Error()})
			continue
		}
		if res.StatusCode() == http.StatusNotFound {
			log.L(ctx).Debugf("Query endpoint %s returned 404, trying next", path)
			history = append(history, &Attempt{Endpoint: path, Status: http.StatusNotFound})
			continue
		}
		log.L(ctx).Debugf("Query endpoint %s responded with %d", path, res.StatusCode())
		return &Result{Status: res.StatusCode(), Body: wellFormedJSON(res.Body()), Attempts: history}
	}

	log.L(ctx).Warnf("All %d query endpoints unavailable - returning empty result set", len(history))
	body, _ := json.Marshal(&canton.QueryResponse{Result: []*canton.ContractRecord{}})
	return &Result{Status: http.StatusOK, Body: body, Attempts: history, SoftEmpty: true}
}

// ForwardCommand tries each command candidate, rotating body shapes on a
// 400 (possibly the wrong nesting for that API generation) and endpoints on
// a 404. Any 2xx stops the search; any other status is final and passed
// through. Commands never get the query path's soft-fail treatment - a
// failed write must be visible as a failure, so exhaustion produces a
// diagnostic listing every attempted candidate.
func (r *Resolver) ForwardCommand(ctx context.Context, sub *canton.CommandSubmission, authorization string) *Result {
	candidates := CommandCandidates()
	var history []*Attempt
	for {
		path, shape, ok := Next(candidates, history)
		if !ok {
			break
		}
		res, err := r.post(ctx, path, commandBody(shape, sub), authorization)
		if err != nil {
			log.L(ctx).Warnf("Command endpoint %s (%s) failed: %s", path, shape, err)
			history = append(history, &Attempt{Endpoint: path, Shape: shape, Error: err.Error()})
			continue
		}
		status := res.StatusCode()
		switch status {
		case http.StatusNotFound, http.StatusBadRequest:
			log.L(ctx).Debugf("Command endpoint %s (%s) returned %d, trying next", path, shape, status)
			history = append(history, &Attempt{Endpoint: path, Shape: shape, Status: status, Error: remoteError(res.Body())})
			continue
		default:
			log.L(ctx).Infof("Command %s forwarded via %s (%s) status=%d", sub.CommandID, path, shape, status)
			return &Result{Status: status, Body: wellFormedJSON(res.Body()), Attempts: history}
		}
	}

	var lastError *Attempt
	if len(history) > 0 {
		lastError = history[len(history)-1]
	}
	log.L(ctx).Errorf("All command endpoints failed for %s after %d attempts", sub.CommandID, len(history))
	body, _ := json.Marshal(fftypes.JSONObject{
		"error":          "Canton endpoint not found",
		"message":        i18n.NewError(ctx, gwmsgs.MsgNoLedgerEndpoint).Error(),
		"triedEndpoints": history,
		"lastError":      lastError,
	})
	return &Result{Status: http.StatusNotFound, Body: body, Attempts: history}
}

func (r *Resolver) post(ctx context.Context, path string, body interface{}, authorization string) (*resty.Response, error) {
	req := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBody(body)
	if authorization != "" {
		req = req.SetHeader("Authorization", authorization)
	}
	return req.Post(path)
}

// commandBody nests the submission the way the selected shape demands.
func commandBody(shape BodyShape, sub *canton.CommandSubmission) interface{} {
	switch shape {
	case ShapeFlat:
		return sub
	case ShapeActAs:
		return fftypes.JSONObject{
			"commands":      sub.List,
			"commandId":     sub.CommandID,
			"applicationId": sub.ApplicationID,
			"actAs":         []string{sub.Party},
		}
	default:
		return &canton.CommandRequest{Commands: sub}
	}
}

const maxWrappedTextLen = 500

// wellFormedJSON guarantees the gateway never relays a body its callers
// cannot parse. Non-JSON upstream responses are wrapped in a structured
// error object rather than surfacing a parse failure.
func wellFormedJSON(body []byte) []byte {
	if len(body) == 0 {
		return []byte(`{}`)
	}
	if json.Valid(body) {
		return body
	}
	text := string(body)
	if len(text) > maxWrappedTextLen {
		text = text[:maxWrappedTextLen]
	}
	wrapped, _ := json.Marshal(fftypes.JSONObject{
		"error": "Non-JSON response",
		"text":  text,
	})
	return wrapped
}

// remoteError extracts the upstream error message for the attempt log.
func remoteError(body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		return parsed.Error
	}
	return ""
}
