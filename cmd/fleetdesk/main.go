package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmolina/fleetdesk/config"
	"github.com/dmolina/fleetdesk/internal/cache"
	"github.com/dmolina/fleetdesk/internal/repository"
	"github.com/dmolina/fleetdesk/internal/service"
	"github.com/dmolina/fleetdesk/internal/storage"
	"github.com/dmolina/fleetdesk/internal/store"
)

func main() {
	// ── Load configuration ──────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// ── Open durable storage ────────────────────────────
	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer db.Close()
	log.Printf("✓ storage open at %s", cfg.Storage.Path)

	// ── Initialize layers ───────────────────────────────
	cacheOpts := cache.Options{SweepInterval: cfg.Cache.SweepInterval}
	if cfg.Cache.Persist {
		cacheOpts.Store = db
		cacheOpts.StorageKey = cfg.Storage.CacheKey()
	}
	apiCache := cache.New(cfg.Cache.TTL, cacheOpts)
	defer apiCache.Stop()

	repo := repository.New(db, apiCache, cfg.Storage.Namespace)

	api := service.New(repo, apiCache, service.Latencies{
		Read:   cfg.API.ReadDelay,
		Create: cfg.API.CreateDelay,
		Update: cfg.API.UpdateDelay,
		Delete: cfg.API.DeleteDelay,
	})

	shipments := store.NewShipments(api)
	vehicles := store.NewVehicles(api)
	drivers := store.NewDrivers(api)
	dashboard := store.NewDashboard(api, shipments, vehicles, drivers)

	// ── Load collections and print the dashboard ────────
	if err := shipments.Fetch(ctx); err != nil {
		log.Fatalf("fetch shipments: %v", err)
	}
	if err := vehicles.Fetch(ctx); err != nil {
		log.Fatalf("fetch vehicles: %v", err)
	}
	if err := drivers.Fetch(ctx); err != nil {
		log.Fatalf("fetch drivers: %v", err)
	}
	if err := dashboard.Fetch(ctx); err != nil {
		log.Fatalf("fetch dashboard stats: %v", err)
	}

	stats := dashboard.Stats()
	fmt.Println("FleetDesk dashboard")
	fmt.Printf("  shipments:   %d total / %d active / %d pending / %d delivered\n",
		stats.TotalShipments, stats.ActiveShipments, stats.PendingShipments, stats.DeliveredShipments)
	fmt.Printf("  revenue:     %.2f\n", stats.TotalRevenue)
	fmt.Printf("  vehicles:    %d active / %d in maintenance\n",
		stats.ActiveVehicles, stats.MaintenanceVehicles)
	fmt.Printf("  drivers:     %d available or on delivery\n", stats.AvailableDrivers)

	for _, s := range shipments.Filtered() {
		fmt.Printf("  %s  %-12s %-10s %-8s %s → %s\n",
			s.ID, s.TrackingNumber, s.Status, s.Priority, s.Origin.City, s.Destination.City)
	}

	cs := api.CacheStats()
	log.Printf("[main] cache holds %d entries (persistence=%v)", cs.Size, cs.PersistenceEnabled)
}
