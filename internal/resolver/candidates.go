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

import "net/http"

// BodyShape identifies how a command submission is nested on the wire.
// Different participant API versions expect differently-nested actor/command
// structures, and the deployment does not guarantee which version is live.
type BodyShape string

const (
	// ShapeNone - queries have a single body shape
	ShapeNone BodyShape = ""
	// ShapeFlat - {party, applicationId, commandId, list}
	ShapeFlat BodyShape = "flat"
	// ShapeWrapped - {"commands": {party, applicationId, commandId, list}}
	ShapeWrapped BodyShape = "wrapped"
	// ShapeActAs - {"commands": [...], "actAs": [party], applicationId, commandId}
	ShapeActAs BodyShape = "actAs"
)

// Candidate is one ledger path to try, with the ordered body shapes to
// attempt against it. Candidates are recomputed per inbound request - the
// resolver deliberately keeps no cross-request memory of which endpoint
// worked last time.
type Candidate struct {
	Path   string
	Shapes []BodyShape
}

// Attempt records one failed trial, for the triedEndpoints/lastError
// diagnostics in the final error response.
type Attempt struct {
	Endpoint string    `json:"endpoint"`
	Shape    BodyShape `json:"shape,omitempty"`
	Status   int       `json:"status,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// QueryCandidates lists the query paths in preference order. Canton 3.4
// participants may serve v2, older deployments v1 or unversioned paths, and
// some expose the search resource instead.
func QueryCandidates() []*Candidate {
	return []*Candidate{
		{Path: "/v2/query"},
		{Path: "/v1/query"},
		{Path: "/query"},
		{Path: "/v2/contracts/search"},
		{Path: "/v1/contracts/search"},
	}
}

// CommandCandidates lists the command paths with the body shapes each API
// generation is known to accept.
func CommandCandidates() []*Candidate {
	return []*Candidate{
		{Path: "/v2/command", Shapes: []BodyShape{ShapeActAs, ShapeWrapped}},
		{Path: "/v1/command", Shapes: []BodyShape{ShapeWrapped, ShapeFlat}},
		{Path: "/command", Shapes: []BodyShape{ShapeWrapped, ShapeFlat}},
	}
}

// Next replays the trial history against the ordered candidate list and
// returns the next path/shape to try, or ok=false when the list is
// exhausted. A recorded 400 advances to the endpoint's next body shape
// (bounded to the shapes enumerated for it); any other recorded failure
// (404 or a transport error) advances to the next endpoint. Being a pure
// function of its inputs, the selection logic is testable without any
// network plumbing, and the trial loop driving it is a bounded iteration
// that terminates for any history.
func Next(candidates []*Candidate, history []*Attempt) (path string, shape BodyShape, ok bool) {
	ci, si := 0, 0
	for _, a := range history {
		if ci >= len(candidates) {
			return "", ShapeNone, false
		}
		c := candidates[ci]
		if a.Status == http.StatusBadRequest && si+1 < len(c.Shapes) {
			si++
			continue
		}
		ci++
		si = 0
	}
	if ci >= len(candidates) {
		return "", ShapeNone, false
	}
	c := candidates[ci]
	if len(c.Shapes) == 0 {
		return c.Path, ShapeNone, true
	}
	return c.Path, c.Shapes[si], true
}
