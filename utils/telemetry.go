package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Telemetry forwards application events to a Kafka topic. It is a
// best-effort sink: Emit never blocks the caller and a failed send is
// logged and dropped. With no broker configured every call is a no-op.
type Telemetry struct {
	writer *kafka.Writer
}

var telemetry = &Telemetry{}

// InitTelemetry configures the shared forwarder. Safe to skip when no
// broker is configured.
func InitTelemetry(broker, topic string) {
	if broker == "" || topic == "" {
		log.Println("telemetry disabled: no kafka broker configured")
		return
	}
	telemetry.writer = &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireNone,
		Async:        true,
	}
	log.Printf("telemetry forwarding to %s topic=%s", broker, topic)
}

// CloseTelemetry flushes and releases the writer on shutdown.
func CloseTelemetry() {
	if telemetry.writer != nil {
		_ = telemetry.writer.Close()
	}
}

// Emit sends one event without ever blocking or failing the request
// that produced it.
func Emit(event string, fields map[string]any) {
	if telemetry.writer == nil {
		return
	}
	if fields == nil {
		fields = map[string]any{}
	}
	fields["event"] = event
	fields["at"] = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(fields)
	if err != nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event),
			Value: payload,
		}); err != nil {
			log.Printf("telemetry send failed: %v", err)
		}
	}()
}
