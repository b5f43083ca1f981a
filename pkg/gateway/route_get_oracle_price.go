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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
)

var getOraclePrice = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:   "getOraclePrice",
		Path:   "/api/v1/oracle/price",
		Method: http.MethodGet,
		QueryParams: []*ffapi.QueryParam{
			{Name: "symbol", Description: gwmsgs.APIParamSymbol},
		},
		Description:     gwmsgs.APIEndpointGetOraclePrice,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return &PriceResult{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			symbol := r.QP["symbol"]
			if symbol == "" {
				return nil, i18n.NewError(r.Req.Context(), gwmsgs.MsgMissingSymbol)
			}
			price, err := m.priceClient.GetPrice(r.Req.Context(), symbol)
			if err != nil {
				return nil, err
			}
			return &PriceResult{Symbol: symbol, Price: price, Time: fftypes.Now()}, nil
		},
	}
}
