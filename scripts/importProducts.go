package main

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"github.com/yilfev-stack/yeniservisrapor26022026/config"
	"github.com/yilfev-stack/yeniservisrapor26022026/database"
	"github.com/yilfev-stack/yeniservisrapor26022026/models"
)

// Imports a customer valve inventory from Products.csv. Expected columns:
// customer_name, type, valve_type, tag_no, serial_no, manufacturer, size,
// pressure_class. Customers are created by name when missing; existing
// products are matched on (customer, serial_no) and skipped.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("Products.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"customer_name", "serial_no"} {
		if _, ok := col[required]; !ok {
			log.Fatalf("Missing required column: %s", required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	db := database.Database.Db
	imported, skipped := 0, 0

	for _, row := range records[1:] {
		customerName := field(row, "customer_name")
		serialNo := field(row, "serial_no")
		if customerName == "" || serialNo == "" {
			skipped++
			continue
		}

		var customer models.Customer
		if err := db.Where("name = ?", customerName).First(&customer).Error; err != nil {
			customer = models.Customer{Name: customerName}
			if err := db.Create(&customer).Error; err != nil {
				log.Printf("Failed to create customer %q: %v", customerName, err)
				skipped++
				continue
			}
		}

		var existing models.Product
		if err := db.Where("customer_id = ? AND serial_no = ?", customer.ID, serialNo).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		product := models.Product{
			CustomerID:    customer.ID,
			Type:          field(row, "type"),
			ValveType:     field(row, "valve_type"),
			TagNo:         field(row, "tag_no"),
			SerialNo:      serialNo,
			Manufacturer:  field(row, "manufacturer"),
			Size:          field(row, "size"),
			PressureClass: field(row, "pressure_class"),
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Failed to import product %q: %v", serialNo, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Import finished: %d products imported, %d rows skipped", imported, skipped)
}
