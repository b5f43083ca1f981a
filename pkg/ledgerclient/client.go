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

// Package ledgerclient orchestrates query and command traffic against the
// Canton participant JSON API, either via the gateway's proxy routes or
// directly. Queries are cached and retried generously; commands get a
// stricter retry budget and invalidate the whole cache on success.
package ledgerclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/backoff"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/cache"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/canton"
)

// LedgerClient is the interface the UI-facing layers consume. Results are
// ordered as the ledger returned them.
type LedgerClient interface {
	Query(ctx context.Context, templateIDs []string, filter fftypes.JSONObject, opts ...QueryOption) ([]*canton.ContractRecord, error)
	SubmitCommand(ctx context.Context, sub *canton.CommandSubmission) (fftypes.JSONObject, error)
	Create(ctx context.Context, templateID string, payload fftypes.JSONObject, party string) (fftypes.JSONObject, error)
	Exercise(ctx context.Context, templateID, contractID, choice string, argument fftypes.JSONObject, party string) (fftypes.JSONObject, error)
	CheckHealth(ctx context.Context) error
}

// QueryOption tunes a single Query call.
type QueryOption func(*queryOptions)

type queryOptions struct {
	useCache     bool
	forceRefresh bool
	ttl          time.Duration
}

// WithoutCache bypasses the cache entirely for this query (no read, no store).
func WithoutCache() QueryOption {
	return func(o *queryOptions) { o.useCache = false }
}

// WithForceRefresh skips the cache read but stores the fresh result.
func WithForceRefresh() QueryOption {
	return func(o *queryOptions) { o.forceRefresh = true }
}

// WithTTL overrides the configured TTL for this query's cached result.
func WithTTL(ttl time.Duration) QueryOption {
	return func(o *queryOptions) { o.ttl = ttl }
}

const healthCheckTimeout = 3 * time.Second

type ledgerClient struct {
	client        *resty.Client
	mode          string
	applicationID string
	cache         *cache.QueryCache
	cacheEnabled  bool
	cacheTTL      time.Duration
	queryRetry    *backoff.Policy
	commandRetry  *backoff.Policy
}

// NewLedgerClient builds a client from the given ffresty config section.
// The proxy/direct transport selection is a deployment-time switch read from
// config - the client never probes both and chooses at runtime.
func NewLedgerClient(ctx context.Context, conf config.Section, qc *cache.QueryCache) (LedgerClient, error) {
	mode := config.GetString(gwconfig.ClientMode)
	if mode != gwconfig.ClientModeProxy && mode != gwconfig.ClientModeDirect {
		return nil, i18n.NewError(ctx, gwmsgs.MsgInvalidClientMode, mode)
	}
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	if qc == nil {
		qc = cache.NewQueryCache(config.GetDuration(gwconfig.ClientCacheTTL))
	}
	initialDelay := config.GetDuration(gwconfig.ClientRetryInitDelay)
	maxDelay := config.GetDuration(gwconfig.ClientRetryMaxDelay)
	return &ledgerClient{
		client:        client,
		mode:          mode,
		applicationID: config.GetString(gwconfig.ClientApplicationID),
		cache:         qc,
		cacheEnabled:  config.GetBool(gwconfig.ClientCacheEnabled),
		cacheTTL:      config.GetDuration(gwconfig.ClientCacheTTL),
		queryRetry: &backoff.Policy{
			MaxRetries:   config.GetInt(gwconfig.ClientQueryRetries),
			InitialDelay: initialDelay,
			MaxDelay:     maxDelay,
			ShouldRetry:  retryable,
		},
		commandRetry: &backoff.Policy{
			MaxRetries:   config.GetInt(gwconfig.ClientCommandRetries),
			InitialDelay: initialDelay,
			MaxDelay:     maxDelay,
			ShouldRetry:  retryable,
		},
	}, nil
}

func (lc *ledgerClient) queryPath() string {
	if lc.mode == gwconfig.ClientModeProxy {
		return "/api/v1/query"
	}
	return "/v1/query"
}

func (lc *ledgerClient) commandPath() string {
	if lc.mode == gwconfig.ClientModeProxy {
		return "/api/v1/command"
	}
	return "/v1/command"
}

func (lc *ledgerClient) Query(ctx context.Context, templateIDs []string, filter fftypes.JSONObject, opts ...QueryOption) ([]*canton.ContractRecord, error) {
	q := &queryOptions{useCache: true}
	for _, opt := range opts {
		opt(q)
	}
	if filter == nil {
		filter = fftypes.JSONObject{}
	}
	key := cache.QueryKey(templateIDs, filter)
	useCache := lc.cacheEnabled && q.useCache
	if useCache && !q.forceRefresh {
		if cached, ok := lc.cache.Get(key); ok {
			log.L(ctx).Debugf("Query cache hit: %s", key)
			return cached, nil
		}
	}

	var response *canton.QueryResponse
	err := lc.queryRetry.Do(ctx, "ledger query", func(ctx context.Context) error {
		var qr canton.QueryResponse
		res, err := lc.client.R().
			SetContext(ctx).
			SetBody(&canton.QueryRequest{TemplateIDs: templateIDs, Query: filter}).
			SetResult(&qr).
			Post(lc.queryPath())
		if err != nil {
			return err
		}
		if res.IsError() {
			return newStatusError(ctx, res)
		}
		response = &qr
		return nil
	})
	if err != nil {
		return nil, newLedgerError(ctx, err)
	}

	records := response.Result
	if records == nil {
		records = []*canton.ContractRecord{}
	}
	if useCache {
		lc.cache.Set(key, records, q.ttl)
	}
	return records, nil
}

func (lc *ledgerClient) SubmitCommand(ctx context.Context, sub *canton.CommandSubmission) (fftypes.JSONObject, error) {
	if sub == nil || len(sub.List) == 0 {
		return nil, i18n.NewError(ctx, gwmsgs.MsgEmptyCommandList)
	}
	if sub.ApplicationID == "" {
		sub.ApplicationID = lc.applicationID
	}
	if sub.CommandID == "" {
		sub.CommandID = canton.NewCommandID("command")
	}

	// The command ID is deliberately stable across retry attempts of the same
	// submission, so a participant that deduplicates on commandId cannot
	// double-apply a retried command.
	var response fftypes.JSONObject
	err := lc.commandRetry.Do(ctx, "ledger command", func(ctx context.Context) error {
		var out fftypes.JSONObject
		res, err := lc.client.R().
			SetContext(ctx).
			SetBody(&canton.CommandRequest{Commands: sub}).
			SetResult(&out).
			Post(lc.commandPath())
		if err != nil {
			return err
		}
		if res.IsError() {
			return newStatusError(ctx, res)
		}
		response = out
		return nil
	})
	if err != nil {
		return nil, newLedgerError(ctx, err)
	}

	// Command effects are not locally predictable from the sub-command list,
	// so every cached query is dropped rather than attempting fine-grained
	// invalidation.
	lc.cache.Clear()
	log.L(ctx).Infof("Command %s submitted, query cache cleared", sub.CommandID)
	return response, nil
}

func (lc *ledgerClient) Create(ctx context.Context, templateID string, payload fftypes.JSONObject, party string) (fftypes.JSONObject, error) {
	return lc.SubmitCommand(ctx, &canton.CommandSubmission{
		Party:         party,
		ApplicationID: lc.applicationID,
		CommandID:     canton.NewCommandID("create"),
		List: []*canton.Command{
			{TemplateID: templateID, Payload: payload},
		},
	})
}

func (lc *ledgerClient) Exercise(ctx context.Context, templateID, contractID, choice string, argument fftypes.JSONObject, party string) (fftypes.JSONObject, error) {
	return lc.SubmitCommand(ctx, &canton.CommandSubmission{
		Party:         party,
		ApplicationID: lc.applicationID,
		CommandID:     canton.NewCommandID("exercise"),
		List: []*canton.Command{
			{TemplateID: templateID, ContractID: contractID, Choice: choice, Argument: argument},
		},
	})
}

// CheckHealth probes the gateway health route (proxy mode) or issues a
// throwaway query (direct mode), bounded to a short timeout so a missing
// deployment is detected quickly.
func (lc *ledgerClient) CheckHealth(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if lc.mode == gwconfig.ClientModeProxy {
		res, err := lc.client.R().SetContext(ctx).Get("/api/v1/health")
		if err != nil {
			return i18n.NewError(ctx, gwmsgs.MsgHealthCheckFailed, err)
		}
		if res.IsError() {
			return i18n.NewError(ctx, gwmsgs.MsgHealthCheckFailed, res.Status())
		}
		return nil
	}
	res, err := lc.client.R().
		SetContext(ctx).
		SetBody(&canton.QueryRequest{TemplateIDs: []string{"Test"}, Query: fftypes.JSONObject{}}).
		Post(lc.queryPath())
	if err != nil {
		return i18n.NewError(ctx, gwmsgs.MsgHealthCheckFailed, err)
	}
	if res.IsError() {
		return i18n.NewError(ctx, gwmsgs.MsgHealthCheckFailed, res.Status())
	}
	return nil
}
