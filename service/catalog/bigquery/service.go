package bqcatalog

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/instance-advisor/model"
	"google.golang.org/api/iterator"
)

func NewService(ctx context.Context, projectID, dataset, table string) (*service, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &service{
		projectID: projectID,
		dataset:   dataset,
		table:     table,
		bqClient:  bqClient,
	}, nil
}

// Close closes the BigQuery client
func (s *service) Close() error {
	return s.bqClient.Close()
}

// QueryByExactCapacity implements service.CatalogService. Only the latest
// ingested batch of each provider and region is visible, so repeated pulls
// replace earlier ones instead of duplicating offers.
func (s *service) QueryByExactCapacity(ctx context.Context, provider model.Provider, cpu int, memory float64, region string) ([]model.OfferRecord, error) {
	query := exactCapacityQuery(s.projectID, s.dataset, s.table)

	q := s.bqClient.Query(query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "provider", Value: string(provider)},
		{Name: "cpu", Value: int64(cpu)},
		{Name: "memory", Value: memory},
		{Name: "region", Value: region},
		{Name: "regionAll", Value: model.RegionAll},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute BigQuery query: %w", err)
	}

	var records []model.OfferRecord
	for {
		var row offerRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BigQuery row: %w", err)
		}
		records = append(records, rowToRecord(provider, row))
	}

	return records, nil
}

// StoreOffers implements service.OfferSink by streaming rows into the table
func (s *service) StoreOffers(ctx context.Context, offers []model.OfferRecord) error {
	if len(offers) == 0 {
		return nil
	}

	rows := batchRows(offers, time.Now().UTC())

	inserter := s.bqClient.Dataset(s.dataset).Table(s.table).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("failed to insert %d offers into BigQuery: %w", len(rows), err)
	}
	return nil
}

// exactCapacityQuery selects the newest snapshot per provider and region,
// then filters it on capacity and region
func exactCapacityQuery(projectID, dataset, table string) string {
	return fmt.Sprintf(`
		WITH latest AS (
			SELECT *
			FROM `+"`%s.%s.%s`"+`
			WHERE provider = @provider
			QUALIFY ingested_at = MAX(ingested_at) OVER (PARTITION BY provider, region)
		)
		SELECT
			provider,
			instance_type,
			region,
			vcpus,
			memory_gb,
			price_usd_per_hour,
			performance,
			security,
			ingested_at
		FROM latest
		WHERE
			vcpus = @cpu
			AND memory_gb = @memory
			AND (@region = @regionAll OR region = @region)
		ORDER BY region, instance_type
	`, projectID, dataset, table)
}

// batchRows stamps every row of one pull with the same ingestion time, which
// is what marks them as one snapshot
func batchRows(offers []model.OfferRecord, ingestedAt time.Time) []*offerRow {
	rows := make([]*offerRow, 0, len(offers))
	for _, offer := range offers {
		rows = append(rows, recordToRow(offer, ingestedAt))
	}
	return rows
}

func rowToRecord(provider model.Provider, row offerRow) model.OfferRecord {
	record := model.OfferRecord{
		Provider:    provider,
		Region:      row.Region,
		Performance: model.ParsePerformanceTier(row.Performance.StringVal),
		Security:    model.ParseSecurityTier(row.Security.StringVal),
	}
	if row.InstanceType.Valid {
		v := row.InstanceType.StringVal
		record.InstanceType = &v
	}
	if row.VCPUs.Valid {
		v := int(row.VCPUs.Int64)
		record.VCPUs = &v
	}
	if row.MemoryGB.Valid {
		v := row.MemoryGB.Float64
		record.MemoryGB = &v
	}
	if row.PriceUSDPerHour.Valid {
		v := row.PriceUSDPerHour.Float64
		record.PriceUSDPerHour = &v
	}
	return record
}

func recordToRow(record model.OfferRecord, ingestedAt time.Time) *offerRow {
	row := &offerRow{
		Provider:   string(record.Provider),
		Region:     record.Region,
		IngestedAt: ingestedAt,
	}
	if record.InstanceType != nil {
		row.InstanceType = bigquery.NullString{StringVal: *record.InstanceType, Valid: true}
	}
	if record.VCPUs != nil {
		row.VCPUs = bigquery.NullInt64{Int64: int64(*record.VCPUs), Valid: true}
	}
	if record.MemoryGB != nil {
		row.MemoryGB = bigquery.NullFloat64{Float64: *record.MemoryGB, Valid: true}
	}
	if record.PriceUSDPerHour != nil {
		row.PriceUSDPerHour = bigquery.NullFloat64{Float64: *record.PriceUSDPerHour, Valid: true}
	}
	if label := record.Performance.String(); label != "" {
		row.Performance = bigquery.NullString{StringVal: label, Valid: true}
	}
	if label := record.Security.String(); label != "" {
		row.Security = bigquery.NullString{StringVal: label, Valid: true}
	}
	return row
}
