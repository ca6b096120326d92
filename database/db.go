package database

import (
	"context"
	"log"

	"casabot/config"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsService is the global Google Sheets client instance.
var SheetsService *sheets.Service

// InitDB initializes the Google Sheets connection backing all tabular stores.
func InitDB() {
	ctx := context.Background()

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if file := config.AppConfig.GoogleCredentialsFile; file != "" {
		opts = append(opts, option.WithCredentialsFile(file))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		log.Fatalf("failed to create Sheets service: %v", err)
	}
	SheetsService = svc
	log.Println("Connected to Google Sheets successfully!")
}
