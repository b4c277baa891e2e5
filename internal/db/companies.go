package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetOrCreateCompany upserts a company by name and returns its ID. Empty
// optional fields never overwrite previously stored values.
func (db *DB) GetOrCreateCompany(ctx context.Context, name, website, industry, companySize string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO companies (name, website, industry, company_size)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		 ON CONFLICT (name) DO UPDATE SET
			website = COALESCE(companies.website, EXCLUDED.website),
			industry = COALESCE(companies.industry, EXCLUDED.industry),
			company_size = COALESCE(companies.company_size, EXCLUDED.company_size)
		 RETURNING id`,
		name, website, industry, companySize,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert company: %w", err)
	}
	return id, nil
}

// GetCompany retrieves a company by ID. Returns nil if not found.
func (db *DB) GetCompany(ctx context.Context, companyID uuid.UUID) (*Company, error) {
	var c Company
	var website, industry, size *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, website, industry, company_size, created_at
		 FROM companies WHERE id = $1`,
		companyID,
	).Scan(&c.ID, &c.Name, &website, &industry, &size, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if website != nil {
		c.Website = *website
	}
	if industry != nil {
		c.Industry = *industry
	}
	if size != nil {
		c.CompanySize = *size
	}
	return &c, nil
}

// ListCompanies retrieves companies ordered by name
func (db *DB) ListCompanies(ctx context.Context, limit int) ([]Company, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(website, ''), COALESCE(industry, ''), COALESCE(company_size, ''), created_at
		 FROM companies ORDER BY name ASC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Website, &c.Industry, &c.CompanySize, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, nil
}
