// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/lib/pq"
)

type notification struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"senderId,omitempty"`
}

type listener struct {
	conn        *pgxpool.Conn
	cancel      context.CancelFunc
	subscribers []chan map[string]any
}

// PostgreSQLBroker fans NOTIFY payloads out to in-process subscribers.
type PostgreSQLBroker struct {
	pool      *pgxpool.Pool
	mu        sync.RWMutex
	listeners map[shared.PubSubChannel]*listener
	wg        sync.WaitGroup
	id        string
}

func NewPostgreSQLBroker(pool *pgxpool.Pool) *PostgreSQLBroker {
	return &PostgreSQLBroker{
		pool:      pool,
		listeners: make(map[shared.PubSubChannel]*listener),
		id:        uuid.New().String(),
	}
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	n := notification{
		ID:        uuid.New().String(),
		Channel:   message.GetChannel(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.id,
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("could not marshal notification: %w", err)
	}

	// pg_notify takes the payload as a bind parameter, no literal quoting needed
	if _, err := b.pool.Exec(ctx, "SELECT pg_notify($1, $2)", string(n.Channel), string(payload)); err != nil {
		return fmt.Errorf("could not send notification: %w", err)
	}
	slog.Debug("notification published", "channel", n.Channel, "id", n.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan map[string]any, 100)
	if l, ok := b.listeners[topic]; ok {
		l.subscribers = append(l.subscribers, ch)
		return ch, nil
	}

	acquireCtx, cancelAcquire := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelAcquire()
	conn, err := b.pool.Acquire(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("could not acquire listening connection: %w", err)
	}
	if _, err := conn.Exec(acquireCtx, "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
		conn.Release()
		return nil, fmt.Errorf("could not listen on %s: %w", topic, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.listeners[topic] = &listener{conn: conn, cancel: cancel, subscribers: []chan map[string]any{ch}}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.listen(ctx, topic, conn)
	}()
	return ch, nil
}

func (b *PostgreSQLBroker) listen(ctx context.Context, topic shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		pgNotification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil {
				monitoring.Alert("could not wait for postgres notification", err)
			}
			return
		}
		if pgNotification == nil || pgNotification.Channel != string(topic) {
			continue
		}

		var n notification
		if err := json.Unmarshal([]byte(pgNotification.Payload), &n); err != nil {
			slog.Error("could not unmarshal notification", "err", err, "payload", pgNotification.Payload)
			continue
		}
		// publishers handle their own notifications
		if n.SenderID == b.id {
			continue
		}

		b.mu.RLock()
		l := b.listeners[topic]
		subscribers := append([]chan map[string]any(nil), l.subscribers...)
		b.mu.RUnlock()

		for _, sub := range subscribers {
			select {
			case sub <- n.Payload:
			default:
				slog.Warn("subscriber channel full, dropping notification", "channel", topic, "id", n.ID)
			}
		}
	}
}

// Close stops all listeners and returns their connections to the pool.
func (b *PostgreSQLBroker) Close() {
	b.mu.Lock()
	for topic, l := range b.listeners {
		l.cancel()
		delete(b.listeners, topic)
	}
	b.mu.Unlock()
	b.wg.Wait()
}
