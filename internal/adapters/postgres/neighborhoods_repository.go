// Package postgres_adapter implements the residential-areas search over
// the locations table imported from the geography pipeline.
package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// NeighborhoodsRepository implements LocationsStorePort for PostgreSQL.
type NeighborhoodsRepository struct {
	pool *pgxpool.Pool
}

func NewNeighborhoodsRepository(pool *pgxpool.Pool) (*NeighborhoodsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &NeighborhoodsRepository{
		pool: pool,
	}, nil
}

// SearchNeighborhoods matches colonias and neighborhoods by name prefix
// or substring, case- and accent-insensitive via the unaccent extension.
func (r *NeighborhoodsRepository) SearchNeighborhoods(ctx context.Context, query string, limit int) ([]domain.Neighborhood, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NeighborhoodsRepository",
		"method":    "SearchNeighborhoods",
		"query":     query,
	})

	sql := `
		SELECT id, name, lat, lon, municipality, department
		FROM neighborhoods
		WHERE unaccent(name) ILIKE unaccent('%' || $1 || '%')
		ORDER BY
			(unaccent(name) ILIKE unaccent($1 || '%')) DESC,
			name
		LIMIT $2`

	repoLogger.Debug("Executing query to search neighborhoods.", nil)
	rows, err := r.pool.Query(ctx, sql, query, limit)
	if err != nil {
		repoLogger.Error("Failed to search neighborhoods", err, port.Fields{"query_sql": sql})
		return nil, fmt.Errorf("failed to search neighborhoods: %w", err)
	}
	defer rows.Close()

	var results []domain.Neighborhood
	for rows.Next() {
		var n domain.Neighborhood
		if err := rows.Scan(&n.ID, &n.Name, &n.Lat, &n.Lon, &n.Municipality, &n.Department); err != nil {
			repoLogger.Error("Failed to scan neighborhood row", err, nil)
			return nil, fmt.Errorf("failed to scan neighborhood row: %w", err)
		}
		results = append(results, n)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("neighborhood rows: %w", err)
	}

	repoLogger.Debug("Neighborhood search finished.", port.Fields{"results_count": len(results)})
	return results, nil
}
