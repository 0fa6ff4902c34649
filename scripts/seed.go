package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/database"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/search"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/typesense"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS medicines (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT,
	govt_min_price NUMERIC(10,2) NOT NULL,
	govt_max_price NUMERIC(10,2) NOT NULL,
	unit TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS procedures (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT,
	govt_min_price NUMERIC(10,2) NOT NULL,
	govt_max_price NUMERIC(10,2) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bills (
	id UUID PRIMARY KEY,
	patient_name TEXT NOT NULL,
	hospital_name TEXT NOT NULL,
	bill_date DATE NOT NULL,
	total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
	verified BOOLEAN NOT NULL DEFAULT FALSE,
	overcharged BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bill_items (
	id UUID PRIMARY KEY,
	bill_id UUID NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
	position INT NOT NULL DEFAULT 0,
	item_type TEXT NOT NULL,
	item_id UUID,
	item_name TEXT NOT NULL,
	charged_price NUMERIC(10,2) NOT NULL,
	govt_max_price NUMERIC(10,2) NOT NULL DEFAULT 0,
	resolved BOOLEAN NOT NULL DEFAULT FALSE,
	is_overcharged BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_bill_items_bill_id ON bill_items(bill_id);

CREATE TABLE IF NOT EXISTS complaints (
	id UUID PRIMARY KEY,
	bill_id UUID REFERENCES bills(id) ON DELETE SET NULL,
	patient_name TEXT NOT NULL,
	patient_email TEXT NOT NULL,
	patient_phone TEXT NOT NULL,
	hospital_name TEXT NOT NULL,
	complaint_details TEXT NOT NULL,
	overcharge_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'Pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				complaints,
				bill_items,
				bills,
				medicines,
				procedures
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	var searchRepo *search.TypesenseAdapter
	if err == nil {
		searchRepo = search.NewTypesenseAdapter(tsClient)
		if err := searchRepo.InitSchema(ctx); err != nil {
			log.Printf("Failed to init Typesense schema: %v", err)
			searchRepo = nil
		}
	} else {
		log.Printf("Typesense unavailable, skipping search indexing: %v", err)
	}

	catalogRepo := database.NewCatalogAdapter(pgClient)

	// 1. Seed medicines with government price ranges
	medicines := []entities.CatalogEntry{
		{ID: uuid.New().String(), Name: "Paracetamol 500mg", Category: "Pain Relief", GovtMinPrice: 2.00, GovtMaxPrice: 5.00, Unit: "tablet", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Amoxicillin 250mg", Category: "Antibiotic", GovtMinPrice: 5.00, GovtMaxPrice: 12.00, Unit: "capsule", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Metformin 500mg", Category: "Diabetes", GovtMinPrice: 3.00, GovtMaxPrice: 8.00, Unit: "tablet", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Atorvastatin 10mg", Category: "Cholesterol", GovtMinPrice: 8.00, GovtMaxPrice: 20.00, Unit: "tablet", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Omeprazole 20mg", Category: "Gastric", GovtMinPrice: 4.00, GovtMaxPrice: 10.00, Unit: "capsule", CreatedAt: time.Now()},
	}

	for i := range medicines {
		m := &medicines[i]
		if err := catalogRepo.Create(ctx, entities.ItemKindMedicine, m); err != nil {
			log.Printf("Failed to create medicine %s: %v", m.Name, err)
			continue
		}
		indexEntry(ctx, searchRepo, entities.ItemKindMedicine, m)
	}

	// 2. Seed procedures with government price ranges
	procedures := []entities.CatalogEntry{
		{ID: uuid.New().String(), Name: "Blood Test - Complete", Category: "Diagnostic", GovtMinPrice: 200.00, GovtMaxPrice: 500.00, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "X-Ray Chest", Category: "Imaging", GovtMinPrice: 300.00, GovtMaxPrice: 800.00, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "ECG", Category: "Cardiac", GovtMinPrice: 150.00, GovtMaxPrice: 400.00, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Ultrasound Abdomen", Category: "Imaging", GovtMinPrice: 500.00, GovtMaxPrice: 1500.00, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "General Consultation", Category: "Consultation", GovtMinPrice: 200.00, GovtMaxPrice: 600.00, CreatedAt: time.Now()},
	}

	for i := range procedures {
		p := &procedures[i]
		if err := catalogRepo.Create(ctx, entities.ItemKindProcedure, p); err != nil {
			log.Printf("Failed to create procedure %s: %v", p.Name, err)
			continue
		}
		indexEntry(ctx, searchRepo, entities.ItemKindProcedure, p)
	}

	log.Printf("Seeding complete: %d medicines, %d procedures", len(medicines), len(procedures))
}

func indexEntry(ctx context.Context, searchRepo *search.TypesenseAdapter, kind entities.ItemKind, entry *entities.CatalogEntry) {
	if searchRepo == nil {
		return
	}
	if err := searchRepo.Index(ctx, kind, entry); err != nil {
		log.Printf("Failed to index %s %s: %v", kind, entry.Name, err)
	}
}
