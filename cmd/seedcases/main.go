// Command seedcases loads sample healthcare cases from an Excel workbook
// into the DynamoDB case table. Intended for local development against
// DynamoDB Local.
// Usage: go run ./cmd/seedcases [workbook.xlsx]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/xuri/excelize/v2"

	"github.com/govilvipul/HealthcareCM/internal/config"
	"github.com/govilvipul/HealthcareCM/internal/repository/dynamo"
)

const sheetName = "Cases"

// columns maps workbook column positions to case attribute names.
var columns = []string{
	"caseID",
	"status",
	"priority",
	"documentType",
	"patientName",
	"patientDOB",
	"memberId",
	"insurancePlan",
	"policyNumber",
	"referringProvider",
	"providerNPI",
	"facility",
	"cptCodes",
	"icd10Codes",
	"diagnosisDescription",
	"caseSummary",
	"confidenceScore",
	"fileName",
	"s3Location",
	"uploadDate",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "sample_cases.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := dynamo.NewClient(&cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("failed to initialize DynamoDB client: %w", err)
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet %s has no data rows", sheetName)
	}

	ctx := context.Background()
	seeded := 0
	for i, row := range rows[1:] { // skip header
		record := rowToRecord(row)
		caseID, _ := record["caseID"].(string)
		if caseID == "" {
			log.Printf("skipping row %d: missing caseID", i+2)
			continue
		}

		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return fmt.Errorf("marshal case %s: %w", caseID, err)
		}
		if _, err := client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(cfg.Dynamo.Table),
			Item:      item,
		}); err != nil {
			return fmt.Errorf("put case %s: %w", caseID, err)
		}
		seeded++
	}

	log.Printf("seeded %d cases into %s", seeded, cfg.Dynamo.Table)
	return nil
}

// rowToRecord converts one workbook row into a case record. Code lists are
// semicolon-separated in the sheet; confidenceScore and a numeric
// uploadDate become numbers, everything else stays a string.
func rowToRecord(row []string) map[string]any {
	record := make(map[string]any, len(columns))
	for i, col := range columns {
		if i >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}

		switch col {
		case "cptCodes", "icd10Codes":
			var codes []string
			for _, code := range strings.Split(cell, ";") {
				if code = strings.TrimSpace(code); code != "" {
					codes = append(codes, code)
				}
			}
			record[col] = codes
		case "confidenceScore":
			if score, err := strconv.ParseFloat(cell, 64); err == nil {
				record[col] = score
			}
		case "uploadDate":
			if epoch, err := strconv.ParseInt(cell, 10, 64); err == nil {
				record[col] = epoch
			} else {
				record[col] = cell
			}
		default:
			record[col] = cell
		}
	}
	return record
}
