package memorycatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/instance-advisor/model"
)

const sampleCatalog = `offers:
  - provider: aws
    instance_type: m5.xlarge
    region: us-east
    vcpus: 4
    memory_gb: 16
    price_usd_per_hour: 0.192
    performance: High performance
    security: Advanced security features
  - provider: GCP
    instance_type: e2-standard-4
    region: us-west
    vcpus: 4
    memory_gb: 16
    price_usd_per_hour: 0.134
  - provider: Azure
    region: us-east
    vcpus: 4
    memory_gb: 16
  - provider: aws
    instance_type: m5.2xlarge
    region: us-east
    vcpus: 8
    memory_gb: 32
    price_usd_per_hour: 0.384
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	s, err := LoadFile(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	offers := s.Offers()
	if len(offers) != 4 {
		t.Fatalf("Offers() returned %d records, want 4", len(offers))
	}

	// grouped in provider order: GCP, AWS, Azure
	if offers[0].Provider != model.ProviderGCP || offers[1].Provider != model.ProviderAWS || offers[3].Provider != model.ProviderAzure {
		t.Errorf("unexpected provider order: %s %s %s %s", offers[0].Provider, offers[1].Provider, offers[2].Provider, offers[3].Provider)
	}

	m5 := offers[1]
	if m5.Performance != model.PerformanceHigh || m5.Security != model.SecurityAdvanced {
		t.Errorf("tiers not parsed: %+v", m5)
	}

	azure := offers[3]
	if azure.InstanceType != nil || azure.PriceUSDPerHour != nil {
		t.Errorf("absent fields should stay nil: %+v", azure)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown provider", content: "offers:\n  - provider: DigitalOcean\n    vcpus: 1\n"},
		{name: "invalid yaml", content: "offers: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeCatalog(t, tt.content)); err == nil {
				t.Error("LoadFile() should fail")
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}
}

func TestQueryByExactCapacity(t *testing.T) {
	s, err := LoadFile(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name     string
		provider model.Provider
		cpu      int
		memory   float64
		region   string
		want     int
	}{
		{"exact match", model.ProviderAWS, 4, 16, model.RegionAll, 1},
		{"region match", model.ProviderAWS, 8, 32, "us-east", 1},
		{"region mismatch", model.ProviderGCP, 4, 16, "us-east", 0},
		{"memory mismatch", model.ProviderAWS, 4, 15, model.RegionAll, 0},
		{"provider without offers", model.ProviderIBM, 4, 16, model.RegionAll, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.QueryByExactCapacity(ctx, tt.provider, tt.cpu, tt.memory, tt.region)
			if err != nil {
				t.Fatalf("QueryByExactCapacity() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("QueryByExactCapacity() returned %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestQueryReturnsCopies(t *testing.T) {
	s, err := LoadFile(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	ctx := context.Background()

	first, _ := s.QueryByExactCapacity(ctx, model.ProviderAWS, 4, 16, model.RegionAll)
	*first[0].PriceUSDPerHour = 99

	second, _ := s.QueryByExactCapacity(ctx, model.ProviderAWS, 4, 16, model.RegionAll)
	if *second[0].PriceUSDPerHour != 0.192 {
		t.Errorf("catalog record was mutated through a query result: %v", *second[0].PriceUSDPerHour)
	}
}

func TestQueryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewService(nil).QueryByExactCapacity(ctx, model.ProviderAWS, 4, 16, model.RegionAll); err == nil {
		t.Error("QueryByExactCapacity() should fail on a cancelled context")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	original, err := LoadFile(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := SaveFile(path, original.Offers()); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	reloaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	got, _ := reloaded.QueryByExactCapacity(context.Background(), model.ProviderAWS, 4, 16, model.RegionAll)
	if len(got) != 1 || *got[0].InstanceType != "m5.xlarge" || got[0].Performance != model.PerformanceHigh {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestFileSinkReplacesProviderOffers(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	sink := &FileSink{Path: path}

	name := "m7i.xlarge"
	cpu, memory := 4, 16.0
	err := sink.StoreOffers(context.Background(), []model.OfferRecord{
		{Provider: model.ProviderAWS, InstanceType: &name, Region: "us-east", VCPUs: &cpu, MemoryGB: &memory},
	})
	if err != nil {
		t.Fatalf("StoreOffers() error = %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	var aws, others int
	for _, record := range s.Offers() {
		if record.Provider == model.ProviderAWS {
			aws++
			if *record.InstanceType != name {
				t.Errorf("stale AWS offer %s kept", *record.InstanceType)
			}
			continue
		}
		others++
	}
	if aws != 1 || others != 2 {
		t.Errorf("got %d AWS and %d other offers, want 1 and 2", aws, others)
	}
}

func TestFileSinkKeepsOtherRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	sink := &FileSink{Path: path}
	ctx := context.Background()

	pull := func(region string, names ...string) {
		t.Helper()
		var offers []model.OfferRecord
		for _, n := range names {
			name := n
			cpu, memory := 4, 16.0
			offers = append(offers, model.OfferRecord{Provider: model.ProviderAWS, InstanceType: &name, Region: region, VCPUs: &cpu, MemoryGB: &memory})
		}
		if err := sink.StoreOffers(ctx, offers); err != nil {
			t.Fatalf("StoreOffers(%s) error = %v", region, err)
		}
	}

	pull("us-east-1", "m5.xlarge", "m6i.xlarge")
	pull("eu-west-1", "m5.xlarge")
	pull("us-east-1", "m7i.xlarge")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	tests := []struct {
		region string
		want   []string
	}{
		{"us-east-1", []string{"m7i.xlarge"}},
		{"eu-west-1", []string{"m5.xlarge"}},
	}
	for _, tt := range tests {
		got, err := s.QueryByExactCapacity(ctx, model.ProviderAWS, 4, 16, tt.region)
		if err != nil {
			t.Fatalf("QueryByExactCapacity(%s) error = %v", tt.region, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %d offers, want %v", tt.region, len(got), tt.want)
		}
		for i, name := range tt.want {
			if *got[i].InstanceType != name {
				t.Errorf("%s: offer %d = %s, want %s", tt.region, i, *got[i].InstanceType, name)
			}
		}
	}
}

func TestFileSinkCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.yaml")
	sink := &FileSink{Path: path}

	name := "VM.Standard.E4.Flex"
	if err := sink.StoreOffers(context.Background(), []model.OfferRecord{{Provider: model.ProviderOracle, InstanceType: &name}}); err != nil {
		t.Fatalf("StoreOffers() error = %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(s.Offers()) != 1 {
		t.Errorf("Offers() returned %d records, want 1", len(s.Offers()))
	}
}
