package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Hexrox/garden-advisor/internal/advisory"
	"github.com/Hexrox/garden-advisor/internal/config"
)

// Scheduler periodically refreshes garden advisories for configured
// locations so interactive requests hit a warm cache.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *advisory.Service
	locations []config.GardenLocation
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []config.GardenLocation, interval time.Duration, service *advisory.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic prefetch job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no garden locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running advisory prefetch job")

		var wg sync.WaitGroup
		for _, loc := range s.locations {
			loc := loc
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.service.GetGardenAdvice(ctx, loc.Lat, loc.Lon); err != nil {
					log.Printf("scheduler: prefetch failed for %.4f,%.4f: %v", loc.Lat, loc.Lon, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed advisory prefetch job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
