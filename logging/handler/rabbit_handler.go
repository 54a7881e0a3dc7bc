package handler

import (
	"fmt"

	"github.com/s4mli/farola/cleaner"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"golang.org/x/net/context"
)

type rabbitHandler struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	topic      string
	logger     logrus.FieldLogger
}

func (h *rabbitHandler) Emit(line string) {
	if err := h.channel.Publish(h.exchange, h.topic, false, false, amqp.Publishing{
		ContentType: "text/plain",
		Body:        []byte(line),
	}); err != nil {
		h.logger.WithField("&", "Emit").Error("=> Publish: ", err)
	}
}

func (h *rabbitHandler) Name() string {
	return fmt.Sprintf("rabbit(%s/%s)", h.exchange, h.topic)
}

func (h *rabbitHandler) Stop() {
	h.channel.Close()
	h.connection.Close()
}

// NewRabbitHandler publishes each line to a topic exchange. Lines are fire
// and forget, a dropped channel is reported and further publishes fail
// into the diagnostic logger.
func NewRabbitHandler(ctx context.Context, uri, user, password, exchange, topic string,
	logger logrus.FieldLogger) (*rabbitHandler, error) {
	connection, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s", user, password, uri))
	if err != nil {
		return nil, err
	}
	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return nil, err
	}
	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		connection.Close()
		return nil, err
	}
	go func() {
		select {
		case e := <-channel.NotifyClose(make(chan *amqp.Error, 1)):
			if e != nil {
				logger.WithField("&", "Monitor").Error("=> Dropped: ", e)
			}
		case <-ctx.Done():
		}
	}()
	h := &rabbitHandler{connection, channel, exchange, topic, logger}
	cleaner.Register(h)
	return h, nil
}
