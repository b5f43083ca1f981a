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
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/wolfedge-labs/canton-ledger-gateway/internal/gwmsgs"
)

// StatusError is an HTTP error status returned by the gateway or the
// participant, with any message the upstream body carried.
type StatusError struct {
	StatusCode int
	Remote     string
	msg        string
}

func (e *StatusError) Error() string { return e.msg }

func newStatusError(ctx context.Context, res *resty.Response) *StatusError {
	remote := remoteMessage(res.Body())
	return &StatusError{
		StatusCode: res.StatusCode(),
		Remote:     remote,
		msg:        i18n.NewError(ctx, gwmsgs.MsgRequestFailedStatus, res.StatusCode(), remote).Error(),
	}
}

// remoteMessage pulls the conventional error/message fields out of an
// upstream JSON error body, tolerating anything else.
func remoteMessage(body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return ""
}

// LedgerError is what callers of the client see on any failure: a formatted,
// displayable message, with the HTTP status (when there was one) and the
// original error preserved for status-specific handling.
type LedgerError struct {
	msg    string
	status int
	cause  error
}

func (e *LedgerError) Error() string { return e.msg }

// Unwrap exposes the original error for errors.Is/As introspection.
func (e *LedgerError) Unwrap() error { return e.cause }

// Status returns the HTTP status code, or 0 for transport-level failures.
func (e *LedgerError) Status() int { return e.status }

func newLedgerError(ctx context.Context, err error) *LedgerError {
	le := &LedgerError{
		msg:   FormatError(ctx, err),
		cause: err,
	}
	var se *StatusError
	if errors.As(err, &se) {
		le.status = se.StatusCode
	}
	return le
}

// FormatError maps any error to a human-readable message. It never panics
// and never returns an empty string. Classification order: connectivity,
// CORS-pattern, HTTP status table, raw message, generic fallback.
func FormatError(ctx context.Context, err error) string {
	if err == nil {
		return i18n.NewError(ctx, gwmsgs.MsgUnexpectedError).Error()
	}
	var se *StatusError
	hasStatus := errors.As(err, &se)
	if !hasStatus && isNetworkError(err) {
		return i18n.NewError(ctx, gwmsgs.MsgNetworkError).Error()
	}
	msg := err.Error()
	if strings.Contains(msg, "CORS") || strings.Contains(msg, "Access-Control") {
		return i18n.NewError(ctx, gwmsgs.MsgConnectionBlocked).Error()
	}
	if hasStatus {
		switch se.StatusCode {
		case http.StatusNotFound:
			return i18n.NewError(ctx, gwmsgs.MsgResourceNotFound).Error()
		case http.StatusUnauthorized:
			return i18n.NewError(ctx, gwmsgs.MsgAuthRequired).Error()
		case http.StatusForbidden:
			return i18n.NewError(ctx, gwmsgs.MsgAccessDenied).Error()
		case http.StatusInternalServerError:
			return i18n.NewError(ctx, gwmsgs.MsgLedgerServerError).Error()
		default:
			if se.Remote != "" {
				return se.Remote
			}
			return i18n.NewError(ctx, gwmsgs.MsgHTTPError, se.StatusCode, msg).Error()
		}
	}
	if msg != "" {
		return msg
	}
	return i18n.NewError(ctx, gwmsgs.MsgUnexpectedError).Error()
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "Network Error")
}

// retryable is the default transient-failure classification: transport
// failures and 5xx statuses only. 4xx client errors are never retried -
// retrying a malformed command could double-submit money-moving operations.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return isNetworkError(err)
}
