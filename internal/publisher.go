// v1
// file: internal/publisher.go
package internal

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// snapshotEvent is the summary published after each refresh. Downstream
// consumers that want the full dataset query the HTTP API instead.
type snapshotEvent struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Records     int       `json:"records"`
	Countries   int       `json:"countries"`
	Files       int       `json:"files"`
	FileErrors  int       `json:"fileErrors"`
	DroppedRows int       `json:"droppedRows"`
}

type publisher struct {
	log   *slog.Logger
	w     *kafka.Writer
	topic string
}

// newPublisher returns nil when no brokers are configured; publishing is
// optional and the core stays file-only without it.
func newPublisher(log *slog.Logger, brokers []string, topic string) *publisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Async:                  false,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           5 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &publisher{log: log, w: w, topic: topic}
}

func (p *publisher) publish(ctx context.Context, snap Snapshot) error {
	ev := snapshotEvent{
		ID:          snap.ID,
		GeneratedAt: snap.GeneratedAt,
		Records:     len(snap.Records),
		Countries:   len(snap.CountryCounts),
		Files:       len(snap.Files),
		FileErrors:  len(snap.Errors),
		DroppedRows: snap.DroppedRows,
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(snap.ID),
		Value: b,
		Time:  time.Now(),
	})
}

func (p *publisher) close() {
	if p == nil || p.w == nil {
		return
	}
	if err := p.w.Close(); err != nil {
		p.log.Error("kafka_writer_close_err", "err", err)
	}
}
