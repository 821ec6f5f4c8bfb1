package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const uncategorized = "uncategorized"

// AnalyticsServiceImpl implements ports.AnalyticsService. It only reads.
type AnalyticsServiceImpl struct {
	transactions ports.TransactionRepository
	log          zerolog.Logger
}

// NewAnalyticsService creates a new AnalyticsServiceImpl.
func NewAnalyticsService(transactions ports.TransactionRepository, log zerolog.Logger) *AnalyticsServiceImpl {
	return &AnalyticsServiceImpl{transactions: transactions, log: log}
}

// Summary totals incoming and outgoing amounts per bucket over [From, To).
// Freezes and unfreezes only move money inside a wallet and are not counted.
func (s *AnalyticsServiceImpl) Summary(ctx context.Context, req ports.SummaryRequest) (*ports.Summary, error) {
	switch req.Bucket {
	case ports.BucketDay, ports.BucketWeek, ports.BucketMonth:
	default:
		return nil, apperror.Validation("bucket must be one of day, week, month")
	}
	if len(req.WalletIDs) == 0 {
		return nil, apperror.Validation("at least one wallet is required")
	}
	if !req.From.Before(req.To) {
		return nil, apperror.Validation("from must be before to")
	}

	perWallet := make([][]domain.Transaction, len(req.WalletIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range req.WalletIDs {
		g.Go(func() error {
			txs, err := s.transactions.ListBetween(gctx, id, req.From, req.To)
			if err != nil {
				return fmt.Errorf("list transactions of %s: %w", id, err)
			}
			perWallet[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.StorageError(err)
	}

	sum := &ports.Summary{
		Received:   decimal.Zero,
		Spent:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}
	buckets := make(map[time.Time]*ports.BucketTotals)
	for _, txs := range perWallet {
		for _, t := range txs {
			in, out := t.Type.IsIncoming(), t.Type.IsOutgoing()
			if !in && !out {
				continue
			}
			start := BucketStart(t.Timestamp, req.Bucket)
			b, ok := buckets[start]
			if !ok {
				b = &ports.BucketTotals{Start: start, Received: decimal.Zero, Spent: decimal.Zero}
				buckets[start] = b
			}
			b.Count++
			if in {
				b.Received = b.Received.Add(t.Amount)
				sum.Received = sum.Received.Add(t.Amount)
				continue
			}
			b.Spent = b.Spent.Add(t.Amount)
			sum.Spent = sum.Spent.Add(t.Amount)
			category := uncategorized
			if t.Category != nil && *t.Category != "" {
				category = *t.Category
			}
			sum.ByCategory[category] = sum.ByCategory[category].Add(t.Amount)
		}
	}

	sum.Buckets = make([]ports.BucketTotals, 0, len(buckets))
	for _, b := range buckets {
		sum.Buckets = append(sum.Buckets, *b)
	}
	sort.Slice(sum.Buckets, func(i, j int) bool { return sum.Buckets[i].Start.Before(sum.Buckets[j].Start) })

	s.log.Debug().
		Int("wallets", len(req.WalletIDs)).
		Int("buckets", len(sum.Buckets)).
		Msg("summary computed")
	return sum, nil
}

// BucketStart truncates ts (in UTC) to the start of its day, ISO week (Monday)
// or month.
func BucketStart(ts time.Time, bucket ports.Bucket) time.Time {
	ts = ts.UTC()
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	switch bucket {
	case ports.BucketWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case ports.BucketMonth:
		return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return day
}
