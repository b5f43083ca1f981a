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

// Package oracle polls an external price API and drives market resolution on
// the ledger when a feed's trigger price is crossed.
package oracle

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
	"github.com/wolfedge-labs/canton-ledger-gateway/pkg/ledgerclient"
)

const (
	marketTemplateID      = "PredictionMarkets:Market"
	dataFeedTemplateID    = "PredictionMarkets:OracleDataFeed"
	startResolutionChoice = "StartResolution"
)

// feed is one market the monitor watches: when the symbol's price exceeds
// resolveAbove, the market's resolution choice is exercised.
type feed struct {
	marketID     string
	symbol       string
	resolveAbove float64
	resolved     bool
}

// Monitor owns the polling loop. It is constructed disabled or enabled from
// config by the gateway manager.
type Monitor struct {
	ctx       context.Context
	cancelCtx func()
	party     string
	interval  time.Duration
	prices    *PriceClient
	ledger    ledgerclient.LedgerClient
	feeds     []*feed
	done      chan struct{}
	started   bool
	startOnce sync.Once
}

func NewMonitor(ctx context.Context, prices *PriceClient, ledger ledgerclient.LedgerClient) *Monitor {
	mCtx, cancelCtx := context.WithCancel(ctx)
	m := &Monitor{
		ctx:       mCtx,
		cancelCtx: cancelCtx,
		party:     config.GetString(gwconfig.OracleParty),
		interval:  config.GetDuration(gwconfig.OraclePollingInterval),
		prices:    prices,
		ledger:    ledger,
		done:      make(chan struct{}),
	}
	for _, f := range config.GetObjectArray(gwconfig.OracleFeeds) {
		m.feeds = append(m.feeds, &feed{
			marketID:     f.GetString(gwconfig.OracleFeedMarketID),
			symbol:       f.GetString(gwconfig.OracleFeedSymbol),
			resolveAbove: feedThreshold(f[gwconfig.OracleFeedResolveAbove]),
		})
	}
	return m
}

// feedThreshold tolerates the trigger price arriving as a YAML number or a
// quoted string.
func feedThreshold(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		parsed, _ := strconv.ParseFloat(t, 64)
		return parsed
	}
	return 0
}

// Start publishes the data feed contracts and kicks off the polling loop.
func (m *Monitor) Start() error {
	if err := m.publishFeeds(m.ctx); err != nil {
		return err
	}
	m.startOnce.Do(func() {
		m.started = true
		go m.pollLoop()
	})
	return nil
}

func (m *Monitor) Close() {
	m.cancelCtx()
	if m.started {
		<-m.done
	}
}

// publishFeeds records each watched feed on the ledger, so the market
// contracts can see which oracle is observing them.
func (m *Monitor) publishFeeds(ctx context.Context) error {
	for _, f := range m.feeds {
		_, err := m.ledger.Create(ctx, dataFeedTemplateID, fftypes.JSONObject{
			"oracle":       m.party,
			"marketId":     f.marketID,
			"symbol":       f.symbol,
			"resolveAbove": f.resolveAbove,
			"createdAt":    fftypes.Now(),
		}, m.party)
		if err != nil {
			return i18n.NewError(ctx, gwmsgs.MsgOracleFeedCreateFailed, f.marketID, err)
		}
		log.L(ctx).Infof("Oracle feed published for market %s (%s > %.2f)", f.marketID, f.symbol, f.resolveAbove)
	}
	return nil
}

func (m *Monitor) pollLoop() {
	defer close(m.done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	log.L(m.ctx).Infof("Oracle monitor started: %d feeds, interval %s", len(m.feeds), m.interval)
	for {
		select {
		case <-ticker.C:
			m.pollAllFeeds(m.ctx)
		case <-m.ctx.Done():
			log.L(m.ctx).Infof("Oracle monitor stopping")
			return
		}
	}
}

// pollAllFeeds checks every unresolved feed. A failure on one feed is logged
// and does not stop the others from being checked.
func (m *Monitor) pollAllFeeds(ctx context.Context) {
	for _, f := range m.feeds {
		if f.resolved {
			continue
		}
		if err := m.pollFeed(ctx, f); err != nil {
			log.L(ctx).Errorf("Oracle poll failed for market %s: %s", f.marketID, err)
		}
	}
}

func (m *Monitor) pollFeed(ctx context.Context, f *feed) error {
	price, err := m.prices.GetPrice(ctx, f.symbol)
	if err != nil {
		return err
	}
	log.L(ctx).Debugf("Market %s: %s=%.2f (trigger %.2f)", f.marketID, f.symbol, price, f.resolveAbove)
	if price <= f.resolveAbove {
		return nil
	}

	records, err := m.ledger.Query(ctx, []string{marketTemplateID},
		fftypes.JSONObject{"marketId": f.marketID}, ledgerclient.WithForceRefresh())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return i18n.NewError(ctx, gwmsgs.MsgMarketNotFound, f.marketID)
	}

	_, err = m.ledger.Exercise(ctx, marketTemplateID, records[0].ContractID, startResolutionChoice,
		fftypes.JSONObject{
			"observedPrice": price,
			"observedAt":    fftypes.Now(),
		}, m.party)
	if err != nil {
		return err
	}
	f.resolved = true
	log.L(ctx).Infof("Market %s resolution started at %s=%.2f", f.marketID, f.symbol, price)
	return nil
}
