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

// Package canton holds the wire-level types exchanged with a Canton
// participant JSON API. The ledger is the source of truth for all of these -
// this layer enforces no uniqueness or schema invariants on payloads.
package canton

import "github.com/hyperledger/firefly-common/pkg/fftypes"

// QueryRequest selects contracts by template ID, optionally filtered by
// payload field values. Immutable once issued.
type QueryRequest struct {
	TemplateIDs []string           `json:"templateIds"`
	Query       fftypes.JSONObject `json:"query"`
}

// ContractRecord is one ledger contract instance. The contract ID is opaque,
// and the payload is an arbitrary structured mapping.
type ContractRecord struct {
	ContractID string             `json:"contractId"`
	TemplateID string             `json:"templateId,omitempty"`
	Payload    fftypes.JSONObject `json:"payload"`
}

// QueryResponse is the participant's (and the gateway's) query result envelope.
type QueryResponse struct {
	Result []*ContractRecord `json:"result"`
	Status int               `json:"status,omitempty"`
}

// Command is a single sub-command within a submission. A create carries
// TemplateID+Payload; an exercise carries TemplateID+ContractID+Choice+Argument.
type Command struct {
	TemplateID string             `json:"templateId"`
	Payload    fftypes.JSONObject `json:"payload,omitempty"`
	ContractID string             `json:"contractId,omitempty"`
	Choice     string             `json:"choice,omitempty"`
	Argument   fftypes.JSONObject `json:"argument,omitempty"`
}

// CommandSubmission is an atomic batch of sub-commands submitted under one
// party and command ID. The command ID must be unique per submission - use
// NewCommandID.
type CommandSubmission struct {
	Party         string     `json:"party"`
	ApplicationID string     `json:"applicationId"`
	CommandID     string     `json:"commandId"`
	List          []*Command `json:"list"`
}

// CommandRequest is the nested wire envelope the v1 JSON API expects.
type CommandRequest struct {
	Commands *CommandSubmission `json:"commands"`
}
