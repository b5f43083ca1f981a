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

// Package ws fans ledger update notifications out to connected UIs. The
// channel is broadcast-only: clients do not subscribe to topics or
// acknowledge messages, they just get told when a command landed so they can
// refresh their queries.
package ws

import (
	"context"
	"net/http"
	"sync"

	websocket "github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// WebSocketServer accepts connections on the updates route and broadcasts
// payloads to every connected client.
type WebSocketServer interface {
	Handler(w http.ResponseWriter, r *http.Request)
	Broadcast(payload interface{})
	Close()
}

type webSocketServer struct {
	ctx         context.Context
	mux         sync.Mutex
	upgrader    *websocket.Upgrader
	connections map[string]*webSocketConnection
}

func NewWebSocketServer(bgCtx context.Context) WebSocketServer {
	return &webSocketServer{
		ctx: bgCtx,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Cross-origin UIs are expected (CORS is open on the REST routes too)
				return true
			},
		},
		connections: make(map[string]*webSocketConnection),
	}
}

func (s *webSocketServer) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.L(s.ctx).Errorf("WebSocket upgrade failed: %s", err)
		return
	}
	c := newConnection(s.ctx, s, conn)
	s.mux.Lock()
	s.connections[c.id] = c
	s.mux.Unlock()
}

// Broadcast delivers to every live connection without blocking the caller. A
// connection too slow to drain its buffer misses the notification, which is
// acceptable for a refresh hint.
func (s *webSocketServer) Broadcast(payload interface{}) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, c := range s.connections {
		select {
		case c.broadcast <- payload:
		case <-c.closing:
		default:
			log.L(c.ctx).Warnf("Broadcast dropped for slow connection")
		}
	}
}

func (s *webSocketServer) connectionClosed(c *webSocketConnection) {
	s.mux.Lock()
	delete(s.connections, c.id)
	s.mux.Unlock()
}

func (s *webSocketServer) Close() {
	s.mux.Lock()
	conns := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		conns = append(conns, c)
	}
	s.mux.Unlock()
	for _, c := range conns {
		c.close()
	}
}
