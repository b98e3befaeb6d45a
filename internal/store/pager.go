package store

import (
	"context"

	"github.com/sellerdesk/shop-manager/internal/entity"
)

// scanPageSize caps a single page fetch. Backends commonly enforce a
// silent per-request row ceiling; scanning in fixed pages until a short
// page defeats it without relying on a total-count header.
const scanPageSize = 1000

// PageFetchFunc fetches one page of orders at the given offset.
type PageFetchFunc func(ctx context.Context, limit, offset int) ([]entity.Order, error)

// Pager walks a bounded order scan page by page. Termination is a
// structural property: the first short page ends the scan. A Pager is
// finite, single-use and not restartable mid-scan.
type Pager struct {
	fetch    PageFetchFunc
	pageSize int
	offset   int
	done     bool
}

// NewPager returns a pager over fetch with the given page size.
func NewPager(fetch PageFetchFunc, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = scanPageSize
	}
	return &Pager{fetch: fetch, pageSize: pageSize}
}

// Next returns the next page, or nil once the scan is complete. A fetch
// error poisons the pager; partial results are never usable afterwards.
// Cancellation is honored between page fetches.
func (p *Pager) Next(ctx context.Context) ([]entity.Order, error) {
	if p.done {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		p.done = true
		return nil, err
	}

	page, err := p.fetch(ctx, p.pageSize, p.offset)
	if err != nil {
		p.done = true
		return nil, err
	}
	p.offset += len(page)
	if len(page) < p.pageSize {
		p.done = true
	}
	if len(page) == 0 {
		return nil, nil
	}
	return page, nil
}
