package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/usecase"
)

// ClassifierConfig controls how frequently the catalog is swept for
// unclassified images.
type ClassifierConfig struct {
	Interval time.Duration
}

// Classifier resolves image orientations asynchronously. Dimensions are only
// known after the remote resource is fetched and decoded, so each sweep walks
// the catalog, fetches images with no recorded orientation, decodes the
// header and persists the classification. Filtering is reactive: readers
// consult the index at read time and see classifications as they land.
type Classifier struct {
	store   *usecase.Store
	index   usecase.OrientationIndex
	fetcher *ImageFetcher
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     ClassifierConfig
}

func NewClassifier(
	store *usecase.Store,
	index usecase.OrientationIndex,
	fetcher *ImageFetcher,
	logger *zap.Logger,
	cfg ClassifierConfig,
) *Classifier {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Classifier{
		store:   store,
		index:   index,
		fetcher: fetcher,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = c.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		c.Sweep(ctx)
	})

	return c
}

// Start launches the cron scheduler.
func (c *Classifier) Start() {
	if c == nil || c.cron == nil {
		return
	}
	c.cron.Start()
	c.logger.Info("orientation classifier started")
}

// Stop gracefully stops the scheduler.
func (c *Classifier) Stop(ctx context.Context) {
	if c == nil || c.cron == nil {
		return
	}
	stopCtx := c.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	c.logger.Info("orientation classifier stopped")
}

// Sweep classifies every catalog image with no recorded orientation.
// Fetch and decode failures are logged and retried on the next sweep.
func (c *Classifier) Sweep(ctx context.Context) {
	for _, img := range c.store.Snapshot().Images {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, ok := c.index.Get(img.ID); ok {
			continue
		}
		if err := c.classify(img); err != nil {
			c.logger.Warn("image classification failed",
				zap.String("image_id", img.ID),
				zap.Error(err))
		}
	}
}

func (c *Classifier) classify(img domain.DestinationImage) error {
	body, err := c.fetcher.Fetch(img.URL)
	if err != nil {
		return err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "image decode failed", err)
	}

	orientation := domain.ClassifyOrientation(cfg.Width, cfg.Height)
	if err := c.index.Set(img.ID, orientation); err != nil {
		return err
	}

	c.logger.Debug("image classified",
		zap.String("image_id", img.ID),
		zap.String("orientation", string(orientation)))
	return nil
}
