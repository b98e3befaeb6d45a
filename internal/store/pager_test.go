package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/shop-manager/internal/entity"
)

func makeOrders(n int) []entity.Order {
	orders := make([]entity.Order, n)
	for i := range orders {
		orders[i] = entity.Order{OrderID: fmt.Sprintf("o-%d", i)}
	}
	return orders
}

func sliceFetch(all []entity.Order, calls *int) PageFetchFunc {
	return func(ctx context.Context, limit, offset int) ([]entity.Order, error) {
		*calls++
		if offset >= len(all) {
			return nil, nil
		}
		end := offset + limit
		if end > len(all) {
			end = len(all)
		}
		return all[offset:end], nil
	}
}

func TestPagerShortPageTerminates(t *testing.T) {
	ctx := context.Background()
	calls := 0
	p := NewPager(sliceFetch(makeOrders(1500), &calls), 1000)

	var got []entity.Order
	for {
		page, err := p.Next(ctx)
		require.NoError(t, err)
		if page == nil {
			break
		}
		got = append(got, page...)
	}

	assert.Len(t, got, 1500)
	// 1000 + 500; the short second page ends the scan without an
	// extra empty fetch
	assert.Equal(t, 2, calls)
}

func TestPagerExactMultipleNeedsOneMoreFetch(t *testing.T) {
	ctx := context.Background()
	calls := 0
	p := NewPager(sliceFetch(makeOrders(1000), &calls), 1000)

	var got []entity.Order
	for {
		page, err := p.Next(ctx)
		require.NoError(t, err)
		if page == nil {
			break
		}
		got = append(got, page...)
	}

	assert.Len(t, got, 1000)
	assert.Equal(t, 2, calls)
}

func TestPagerEmptyScan(t *testing.T) {
	ctx := context.Background()
	calls := 0
	p := NewPager(sliceFetch(nil, &calls), 1000)

	page, err := p.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, calls)

	// exhausted pagers stay exhausted
	page, err = p.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, calls)
}

func TestPagerFetchErrorPoisons(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	calls := 0
	p := NewPager(func(ctx context.Context, limit, offset int) ([]entity.Order, error) {
		calls++
		return nil, boom
	}, 1000)

	_, err := p.Next(ctx)
	require.ErrorIs(t, err, boom)

	page, err := p.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, calls)
}

func TestPagerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	p := NewPager(sliceFetch(makeOrders(3000), &calls), 1000)

	_, err := p.Next(ctx)
	require.NoError(t, err)

	cancel()
	_, err = p.Next(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
