package services

import (
	"encoding/json"
	"log"
)

// EventPublisher publishes domain events. *rabbitmq.Client satisfies
// it; services tolerate a nil publisher.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// publishEvent marshals and publishes a domain event, logging instead
// of failing the request when the broker is unavailable. Event
// delivery is best effort; the write to the store already succeeded.
func publishEvent(events EventPublisher, routingKey string, payload interface{}) {
	if events == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := events.Publish("wardrobe", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
