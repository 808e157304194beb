// SPDX-License-Identifier: MIT

package pbinom

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvinfer/operator"
)

// Cache is the forward-table buffer of one count factor. It is rebuilt
// whenever any input probability changes and reused otherwise.
type Cache struct {
	buf    *operator.Buffer[*Table]
	logger logr.Logger
	builds int
}

// NewCache returns an empty Cache. Only the Logger option is consulted.
func NewCache(opts ...operator.Option) *Cache {
	o := operator.Apply(opts...)

	return &Cache{
		buf:    operator.NewBuffer[*Table]("poissonBinomialTable", operator.PersistUntilTriggerChanges),
		logger: o.Logger,
	}
}

// Table returns the forward table for probs, rebuilding it only if stale.
func (c *Cache) Table(probs []float64) (*Table, error) {
	if !c.buf.Stale(probs...) {
		return c.buf.Value()
	}
	t, err := Forward(probs)
	if err != nil {
		return nil, fmt.Errorf("Cache.Table: %w", err)
	}
	c.buf.Store(t, probs...)
	c.builds++
	c.logger.V(2).Info("rebuilt Poisson-Binomial table", "n", len(probs), "builds", c.builds)

	return t, nil
}

// Builds reports how many forward passes the cache has run.
func (c *Cache) Builds() int { return c.builds }
