package export_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/catatancerdas/collab-backend/internal/infra/db/mongodb/helpers"
)

// Generated XLSX exports are cached in Redis (base64 encoded) so repeated
// downloads do not rebuild the spreadsheet.

func SaveExcelToCache(redisURL string, key string, excelData *excelize.File, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	buf := new(bytes.Buffer)
	if err := excelData.Write(buf); err != nil {
		return fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}

	encodedData := base64.StdEncoding.EncodeToString(buf.Bytes())

	err := redisClient.Set(ctx, key, encodedData, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to cache spreadsheet in Redis: %w", err)
	}

	return nil
}

func FindExcelInCache(redisURL string, key string) ([]byte, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encodedExcel, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	excelBytes, err := base64.StdEncoding.DecodeString(encodedExcel)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached spreadsheet: %w", err)
	}

	return excelBytes, nil
}
