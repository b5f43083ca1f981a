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

package oracle

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwconfig"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
)

// PriceClient fetches spot prices from the external price API. Results are
// held in a small TTL cache so a burst of feeds sharing a symbol costs one
// upstream call per polling interval.
type PriceClient struct {
	client *resty.Client
	cache  *expirable.LRU[string, float64]
}

func NewPriceClient(ctx context.Context, conf config.Section) (*PriceClient, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &PriceClient{
		client: client,
		cache: expirable.NewLRU[string, float64](
			config.GetInt(gwconfig.OraclePriceCacheSize),
			nil,
			config.GetDuration(gwconfig.OraclePriceCacheTTL),
		),
	}, nil
}

// GetPrice returns the latest price for a symbol, serving from cache within
// the configured TTL.
func (pc *PriceClient) GetPrice(ctx context.Context, symbol string) (float64, error) {
	if cached, ok := pc.cache.Get(symbol); ok {
		log.L(ctx).Debugf("Price cache hit for %s", symbol)
		return cached, nil
	}
	res, err := pc.client.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		SetQueryParam("provider", "redstone").
		Get("/prices")
	if err != nil {
		return 0, i18n.WrapError(ctx, err, gwmsgs.MsgPriceAPIError, 0, symbol)
	}
	if res.IsError() {
		return 0, i18n.NewError(ctx, gwmsgs.MsgPriceAPIError, res.StatusCode(), symbol)
	}
	price, err := normalizePrice(ctx, symbol, res.Body())
	if err != nil {
		return 0, err
	}
	pc.cache.Add(symbol, price)
	return price, nil
}

// normalizePrice copes with the price API's response variants: a bare
// number, an object keyed "price" or "value", or an array whose first
// element is such an object.
func normalizePrice(ctx context.Context, symbol string, body []byte) (float64, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, i18n.WrapError(ctx, err, gwmsgs.MsgPriceDataInvalid, symbol)
	}
	if arr, ok := raw.([]interface{}); ok {
		if len(arr) == 0 {
			return 0, i18n.NewError(ctx, gwmsgs.MsgPriceDataInvalid, symbol)
		}
		raw = arr[0]
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case map[string]interface{}:
		if p, ok := v["price"].(float64); ok {
			return p, nil
		}
		if p, ok := v["value"].(float64); ok {
			return p, nil
		}
	}
	return 0, i18n.NewError(ctx, gwmsgs.MsgPriceDataInvalid, symbol)
}
