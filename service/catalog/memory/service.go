package memorycatalog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/elC0mpa/instance-advisor/model"
	"gopkg.in/yaml.v3"
)

// NewService builds a catalog from records. Records are copied, so later
// changes to the input do not reach the catalog.
func NewService(records []model.OfferRecord) *service {
	s := &service{offers: make(map[model.Provider][]model.OfferRecord)}
	for _, record := range records {
		s.offers[record.Provider] = append(s.offers[record.Provider], cloneRecord(record))
	}
	return s
}

// LoadFile reads a YAML catalog. Provider names are matched case-insensitively
// against the known providers.
func LoadFile(path string) (*service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	records := make([]model.OfferRecord, 0, len(file.Offers))
	for i, entry := range file.Offers {
		provider, ok := parseProvider(entry.Provider)
		if !ok {
			return nil, fmt.Errorf("catalog entry %d: unknown provider %q", i, entry.Provider)
		}
		records = append(records, model.OfferRecord{
			Provider:        provider,
			InstanceType:    entry.InstanceType,
			Region:          entry.Region,
			VCPUs:           entry.VCPUs,
			MemoryGB:        entry.MemoryGB,
			PriceUSDPerHour: entry.PriceUSDPerHour,
			Performance:     model.ParsePerformanceTier(entry.Performance),
			Security:        model.ParseSecurityTier(entry.Security),
		})
	}

	return NewService(records), nil
}

// SaveFile writes records as a YAML catalog
func SaveFile(path string, records []model.OfferRecord) error {
	file := catalogFile{Offers: make([]offerEntry, 0, len(records))}
	for _, record := range records {
		file.Offers = append(file.Offers, offerEntry{
			Provider:        string(record.Provider),
			InstanceType:    record.InstanceType,
			Region:          record.Region,
			VCPUs:           record.VCPUs,
			MemoryGB:        record.MemoryGB,
			PriceUSDPerHour: record.PriceUSDPerHour,
			Performance:     record.Performance.String(),
			Security:        record.Security.String(),
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// QueryByExactCapacity implements service.CatalogService
func (s *service) QueryByExactCapacity(ctx context.Context, provider model.Provider, cpu int, memory float64, region string) ([]model.OfferRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result []model.OfferRecord
	for _, record := range s.offers[provider] {
		if record.VCPUs == nil || *record.VCPUs != cpu {
			continue
		}
		if record.MemoryGB == nil || *record.MemoryGB != memory {
			continue
		}
		if region != model.RegionAll && record.Region != region {
			continue
		}
		result = append(result, cloneRecord(record))
	}

	return result, nil
}

// Offers returns a copy of every record, grouped by provider in
// model.AllProviders order.
func (s *service) Offers() []model.OfferRecord {
	var all []model.OfferRecord
	for _, provider := range model.AllProviders {
		for _, record := range s.offers[provider] {
			all = append(all, cloneRecord(record))
		}
	}
	return all
}

// FileSink merges offers into a YAML catalog file. Stored offers of every
// provider and region pair present in the batch are replaced; other regions
// of the same provider are kept.
type FileSink struct {
	Path string

	mu sync.Mutex
}

// StoreOffers implements service.OfferSink
func (f *FileSink) StoreOffers(ctx context.Context, offers []model.OfferRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var existing []model.OfferRecord
	if _, err := os.Stat(f.Path); err == nil {
		current, err := LoadFile(f.Path)
		if err != nil {
			return err
		}
		existing = current.Offers()
	}

	replaced := make(map[sliceKey]bool)
	for _, offer := range offers {
		replaced[sliceKey{offer.Provider, offer.Region}] = true
	}

	merged := make([]model.OfferRecord, 0, len(existing)+len(offers))
	for _, record := range existing {
		if !replaced[sliceKey{record.Provider, record.Region}] {
			merged = append(merged, record)
		}
	}
	merged = append(merged, offers...)

	return SaveFile(f.Path, NewService(merged).Offers())
}

// sliceKey identifies the catalog slice a single pull replaces
type sliceKey struct {
	provider model.Provider
	region   string
}

func parseProvider(name string) (model.Provider, bool) {
	for _, provider := range model.AllProviders {
		if strings.EqualFold(string(provider), strings.TrimSpace(name)) {
			return provider, true
		}
	}
	return "", false
}

func cloneRecord(r model.OfferRecord) model.OfferRecord {
	if r.InstanceType != nil {
		v := *r.InstanceType
		r.InstanceType = &v
	}
	if r.VCPUs != nil {
		v := *r.VCPUs
		r.VCPUs = &v
	}
	if r.MemoryGB != nil {
		v := *r.MemoryGB
		r.MemoryGB = &v
	}
	if r.PriceUSDPerHour != nil {
		v := *r.PriceUSDPerHour
		r.PriceUSDPerHour = &v
	}
	return r
}
