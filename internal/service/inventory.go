package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"projecttracker/internal/model"
	"projecttracker/internal/storage"
)

// ReportPrefix is the object key prefix of every inventory export.
const ReportPrefix = "inventory/"

var ErrNoStore = errors.New("report storage is not configured")

// PartReader is the slice of repository.PartRepository the report needs.
type PartReader interface {
	FindLowStock(ctx context.Context) ([]model.Part, error)
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
}

// InventoryReport describes one exported low-stock snapshot.
type InventoryReport struct {
	Key           string          `json:"key"`
	URL           string          `json:"url"`
	GeneratedAt   time.Time       `json:"generated_at"`
	LowStock      int             `json:"low_stock"`
	CriticallyLow int             `json:"critically_low"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// InventoryService exports low-stock snapshots of the parts catalog to object storage.
type InventoryService interface {
	// Export writes the current low-stock parts as CSV and returns a presigned download link.
	Export(ctx context.Context) (*InventoryReport, error)
	// History lists earlier exports, oldest first.
	History(ctx context.Context) ([]storage.ObjectInfo, error)
}

type inventoryService struct {
	parts      PartReader
	store      storage.Storage
	presignTTL time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewInventoryService constructs the report service. store may be nil, in which
// case Export and History fail with ErrNoStore.
func NewInventoryService(parts PartReader, store storage.Storage, presignTTL time.Duration, loc *time.Location, log zerolog.Logger) InventoryService {
	if loc == nil {
		loc = time.UTC
	}
	return &inventoryService{
		parts:      parts,
		store:      store,
		presignTTL: presignTTL,
		now:        func() time.Time { return time.Now().In(loc) },
		log:        log.With().Str("component", "inventory_report").Logger(),
	}
}

var csvHeader = []string{
	"part_number", "name", "category", "quantity_on_hand", "minimum_stock",
	"safety_stock", "critically_low", "unit_cost", "inventory_value", "vendor", "location",
}

func (s *inventoryService) Export(ctx context.Context) (*InventoryReport, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}

	parts, err := s.parts.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("load low stock parts: %w", err)
	}
	total, err := s.parts.TotalInventoryValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory value: %w", err)
	}

	var buf bytes.Buffer
	critical, err := writeCSV(&buf, parts)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := fmt.Sprintf("%slow-stock-%s-%s.csv", ReportPrefix, now.Format("20060102T150405"), uuid.NewString()[:8])
	if _, err := s.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: "text/csv",
		Metadata: map[string]string{
			"low-stock":   strconv.Itoa(len(parts)),
			"total-value": total.StringFixed(2),
		},
	}); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}

	s.log.Info().
		Str("key", key).
		Int("low_stock", len(parts)).
		Int("critically_low", critical).
		Str("total_value", total.StringFixed(2)).
		Msg("inventory report exported")

	return &InventoryReport{
		Key:           key,
		URL:           url,
		GeneratedAt:   now,
		LowStock:      len(parts),
		CriticallyLow: critical,
		TotalValue:    total,
	}, nil
}

func (s *inventoryService) History(ctx context.Context) ([]storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.List(ctx, ReportPrefix)
}

// writeCSV renders parts and returns how many of them are critically low.
func writeCSV(buf *bytes.Buffer, parts []model.Part) (int, error) {
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return 0, err
	}
	critical := 0
	for _, p := range parts {
		if p.IsCriticallyLow() {
			critical++
		}
		rec := []string{
			p.PartNumber,
			p.Name,
			string(p.Category),
			strconv.Itoa(p.QuantityOnHand),
			strconv.Itoa(p.MinimumStock),
			strconv.Itoa(p.SafetyStock),
			strconv.FormatBool(p.IsCriticallyLow()),
			p.UnitCost.StringFixed(2),
			p.InventoryValue().StringFixed(2),
			p.Vendor,
			p.Location,
		}
		if err := w.Write(rec); err != nil {
			return 0, err
		}
	}
	w.Flush()
	return critical, w.Error()
}
