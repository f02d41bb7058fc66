package main

import (
	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/services"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Dumps the registration list (verified payments) to a file without going
// through the HTTP API. Useful for the registration desk on conference day:
//
//	go run ./cmd/export-registrations -out registrations.xlsx
//	go run ./cmd/export-registrations -format csv -out payments.csv
func main() {
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	out := flag.String("out", "", "output file path (required)")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.InitDB()

	var payments []models.Payment
	err := config.DB.Preload("Owner").Preload("Paper").
		Where("status = ?", models.PaymentStatusVerified).
		Order("create_at DESC").
		Find(&payments).Error
	if err != nil {
		log.Fatalf("Failed to load payments: %v", err)
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	switch strings.ToLower(*format) {
	case "xlsx":
		err = services.WriteRegistrationsXLSX(file, payments)
	case "csv":
		err = services.WritePaymentsCSV(file, payments)
	default:
		log.Fatalf("Unknown format %q (want xlsx or csv)", *format)
	}
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fmt.Printf("Wrote %d registrations to %s\n", len(payments), *out)
}
