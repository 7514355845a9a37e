//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ChangeEvent struct {
	Kind       string    `json:"kind"`
	TripID     uuid.UUID `json:"trip_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Ручная публикация события изменения в стрим для проверки воркера
// статистики:
//
//	go run scripts/publish_event.go -kind trip_created
func main() {
	addr := flag.String("addr", "localhost:6379", "redis address")
	stream := flag.String("stream", "stream:trips:changed", "stream name")
	kind := flag.String("kind", "trip_updated", "change kind")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *addr})
	defer client.Close()

	ctx := context.Background()

	event := ChangeEvent{
		Kind:       *kind,
		TripID:     uuid.New(),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: *stream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("publish event: %v", err)
	}

	fmt.Printf("published %s to %s as %s\n", *kind, *stream, id)
}
