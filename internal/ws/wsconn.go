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

package ws

import (
	"context"
	"sync"

	websocket "github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/log"
)

type webSocketConnection struct {
	ctx       context.Context
	id        string
	server    *webSocketServer
	conn      *websocket.Conn
	mux       sync.Mutex
	closed    bool
	broadcast chan interface{}
	closing   chan struct{}
}

func newConnection(bgCtx context.Context, server *webSocketServer, conn *websocket.Conn) *webSocketConnection {
	id := fftypes.NewUUID().String()
	wsc := &webSocketConnection{
		ctx:       log.WithLogField(bgCtx, "wsc", id),
		id:        id,
		server:    server,
		conn:      conn,
		broadcast: make(chan interface{}, 16),
		closing:   make(chan struct{}),
	}
	go wsc.listen()
	go wsc.sender()
	return wsc
}

func (c *webSocketConnection) close() {
	c.mux.Lock()
	if !c.closed {
		c.closed = true
		c.conn.Close()
		close(c.closing)
	}
	c.mux.Unlock()
	c.server.connectionClosed(c)
	log.L(c.ctx).Infof("Disconnected")
}

func (c *webSocketConnection) sender() {
	defer c.close()
	for {
		select {
		case payload := <-c.broadcast:
			if err := c.conn.WriteJSON(payload); err != nil {
				log.L(c.ctx).Errorf("Send failed, closing: %s", err)
				return
			}
		case <-c.closing:
			log.L(c.ctx).Infof("Closing")
			return
		}
	}
}

// listen drains inbound frames so pings and client close frames are
// processed. Inbound payloads carry no meaning on this channel.
func (c *webSocketConnection) listen() {
	defer c.close()
	log.L(c.ctx).Infof("Connected")
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			log.L(c.ctx).Debugf("Read loop ended: %s", err)
			return
		}
	}
}
