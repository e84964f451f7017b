package knowledge

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ReloadTopic carries corpus-change notifications. Any write to the
// corpus publishes here; the Reloader rebuilds the retriever on receipt.
const ReloadTopic = "knowledge.reload"

type Reloader struct {
	pubSub    *gochannel.GoChannel
	retriever *Retriever
}

func NewReloader(pubSub *gochannel.GoChannel, retriever *Retriever) *Reloader {
	return &Reloader{
		pubSub:    pubSub,
		retriever: retriever,
	}
}

// Listen subscribes to ReloadTopic and rebuilds on every message. A
// failed rebuild keeps the previous snapshot and is Acked so the bus
// does not redeliver; the next reload event retries naturally.
func (r *Reloader) Listen(ctx context.Context) error {
	messages, err := r.pubSub.Subscribe(ctx, ReloadTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			if err := r.retriever.Rebuild(); err != nil {
				log.Printf("[ERROR] Knowledge rebuild failed: %v", err)
			}
			msg.Ack()
		}
	}()

	return nil
}

// PublishReload signals that the corpus changed.
func PublishReload(pubSub *gochannel.GoChannel) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	return pubSub.Publish(ReloadTopic, msg)
}
