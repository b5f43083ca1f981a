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

package gwmsgs

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgInvalidOutputType      = ffe("FF27010", "Invalid output type: %s")
	MsgConfigParamNotSet      = ffe("FF27011", "Configuration parameter '%s' must be set")
	MsgInvalidClientMode      = ffe("FF27012", "Invalid client mode '%s' - must be 'proxy' or 'direct'")
	MsgNetworkError           = ffe("FF27013", "Network error: unable to connect to the ledger. Please check your connection")
	MsgConnectionBlocked      = ffe("FF27014", "Connection blocked: please contact support if this issue persists")
	MsgResourceNotFound       = ffe("FF27015", "Resource not found. The requested item may not exist", http.StatusNotFound)
	MsgAuthRequired           = ffe("FF27016", "Authentication required. Please connect your wallet", http.StatusUnauthorized)
	MsgAccessDenied           = ffe("FF27017", "Access denied. You may not have permission to perform this action", http.StatusForbidden)
	MsgLedgerServerError      = ffe("FF27018", "Server error: the ledger encountered an issue. Please try again later")
	MsgHTTPError              = ffe("FF27019", "Error %d: %s")
	MsgUnexpectedError        = ffe("FF27020", "An unexpected error occurred")
	MsgRequestFailedStatus    = ffe("FF27021", "Request failed with status %d: %s")
	MsgInvalidRequestBody     = ffe("FF27022", "Invalid '%s' request body: %s", http.StatusBadRequest)
	MsgMethodNotAllowed       = ffe("FF27023", "Method not allowed: %s", http.StatusMethodNotAllowed)
	MsgNoLedgerEndpoint       = ffe("FF27024", "The Canton participant JSON API endpoint is not configured or accessible", http.StatusNotFound)
	MsgMissingSymbol          = ffe("FF27025", "Symbol parameter is required", http.StatusBadRequest)
	MsgPriceAPIError          = ffe("FF27026", "Error from price API [%d]: %s", http.StatusBadGateway)
	MsgPriceDataInvalid       = ffe("FF27027", "Price data for symbol '%s' could not be parsed", http.StatusBadGateway)
	MsgMarketNotFound         = ffe("FF27028", "Market '%s' not found")
	MsgWebSocketClosed        = ffe("FF27029", "WebSocket '%s' closed")
	MsgWebSocketInterrupted   = ffe("FF27030", "Interrupted waiting for WebSocket connection to send event")
	MsgHealthCheckFailed      = ffe("FF27031", "Gateway health check failed: %s")
	MsgEmptyCommandList       = ffe("FF27032", "Command submission must contain at least one create or exercise entry", http.StatusBadRequest)
	MsgOracleFeedCreateFailed = ffe("FF27033", "Failed to publish oracle data feed for market '%s': %s")
)
