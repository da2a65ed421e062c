// Package handoff passes generated text between otherwise independent pages.
//
// A channel holds at most one pending payload. Publishing overwrites it.
// How a read behaves depends on the channel's Mode: a Persistent channel can
// be read any number of times, a SingleDelivery channel is emptied by the
// first successful read.
package handoff

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"ai_content_generator/storage"
)

// Mode is the delivery mode of a channel.
type Mode int

const (
	Persistent Mode = iota
	SingleDelivery
)

func (m Mode) String() string {
	switch m {
	case Persistent:
		return "persistent"
	case SingleDelivery:
		return "single-delivery"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Channel names a slot and how it is read.
type Channel struct {
	Name string
	Mode Mode
}

var (
	// Outline carries the latest generated outline to the article page.
	Outline = Channel{Name: "generatedOutline", Mode: Persistent}
	// Transfer carries an article to the translator page exactly once.
	Transfer = Channel{Name: "articleToTranslate", Mode: SingleDelivery}
)

// Hub reads and writes channels on a storage backend.
type Hub struct {
	backend storage.Backend
}

func NewHub(backend storage.Backend) *Hub {
	return &Hub{backend: backend}
}

// Publish overwrites whatever is pending on ch.
func (h *Hub) Publish(ctx context.Context, ch Channel, content string) error {
	if err := h.backend.Put(ctx, ch.Name, content); err != nil {
		return fmt.Errorf("failed to publish %s: %w", ch.Name, err)
	}
	logrus.Debugf("[HANDOFF] published %d bytes to %s", len(content), ch.Name)
	return nil
}

// Take reads ch. ok is false when nothing was published.
func (h *Hub) Take(ctx context.Context, ch Channel) (content string, ok bool, err error) {
	switch ch.Mode {
	case SingleDelivery:
		content, ok, err = h.backend.Take(ctx, ch.Name)
	default:
		content, ok, err = h.backend.Get(ctx, ch.Name)
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to take %s: %w", ch.Name, err)
	}
	if ok {
		logrus.Debugf("[HANDOFF] took %s (%s)", ch.Name, ch.Mode)
	}
	return content, ok, nil
}

// Receiver reads one channel at most once. Later calls return the first
// result, so re-rendering a page never consumes a second payload.
type Receiver struct {
	hub *Hub
	ch  Channel

	once    sync.Once
	content string
	ok      bool
	err     error
}

func (h *Hub) Receiver(ch Channel) *Receiver {
	return &Receiver{hub: h, ch: ch}
}

func (r *Receiver) Take(ctx context.Context) (string, bool, error) {
	r.once.Do(func() {
		r.content, r.ok, r.err = r.hub.Take(ctx, r.ch)
	})
	return r.content, r.ok, r.err
}
