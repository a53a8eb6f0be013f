package main

import (
	"net/http"
	"os"
	"time"

	"vastburgers/config"
	httpapi "vastburgers/internal/api/http"
	"vastburgers/internal/remote"
	"vastburgers/internal/service"
	"vastburgers/internal/storage"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewRedisCartStore(rdb)

	client := &http.Client{Timeout: 15 * time.Second}
	orderAPI := remote.NewClient(config.GetEnv("ORDERS_API_URL", "https://stapes-api.onrender.com"), client)
	catalog := remote.NewCatalogProxy(config.GetEnv("CATALOG_API_URL", "https://stapes-api.onrender.com"), client)

	// Kafka is optional: without a broker the checkout simply skips the
	// order event.
	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	tracker := service.NewStatusTracker(config.GetDuration("STATUS_TICK_INTERVAL", 5*time.Second))
	defer tracker.Stop()

	handler := &httpapi.Handler{
		Cart:      service.NewCartService(store),
		Checkout:  service.NewCheckoutService(store, orderAPI, publisher, tracker),
		History:   service.NewHistoryService(orderAPI, tracker),
		Status:    tracker,
		Catalog:   catalog,
		PublicURL: config.GetEnv("PUBLIC_URL", "http://localhost:8080"),
	}

	httpapi.StartServer(":"+config.GetEnv("PORT", "8080"), httpapi.NewRouter(handler))
}
