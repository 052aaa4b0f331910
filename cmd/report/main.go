package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/olekukonko/tablewriter"

	"nayrana/internal/config"
	"nayrana/internal/db"
	"nayrana/internal/repository"
	"nayrana/internal/service"
)

// Prints the commission report as a table: one row per hotel code with order
// counts, fulfillment counts, and the conversion rate.
func main() {
	showRates := flag.Bool("rates", true, "include hotel names and commission rates")
	flag.Parse()

	cfg := config.Load()
	if cfg.UseMemoryStore() {
		log.Fatal("MYSQL_DSN is not set; there is no order history to report on")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	ctx := context.Background()
	orderRepo := repository.NewOrderRepository(gormDB)
	hotelRepo := repository.NewHotelRepository(gormDB)
	reportService := service.NewReportService(orderRepo)

	report, err := reportService.Commissions(ctx)
	if err != nil {
		log.Fatalf("compute commission report: %v", err)
	}
	if len(report) == 0 {
		fmt.Println("no orders recorded yet")
		return
	}

	hotelNames := map[string]string{}
	hotelRates := map[string]string{}
	if *showRates {
		hotels, err := hotelRepo.List(ctx)
		if err != nil {
			log.Fatalf("list hotels: %v", err)
		}
		for _, hotel := range hotels {
			hotelNames[hotel.HotelCode] = hotel.HotelName
			hotelRates[hotel.HotelCode] = hotel.CommissionRate.StringFixed(2) + "%"
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	if *showRates {
		table.Header("Code", "Hotel", "Rate", "Orders", "Fulfilled", "Conversion")
	} else {
		table.Header("Code", "Orders", "Fulfilled", "Conversion")
	}

	for _, row := range report {
		conversion := fmt.Sprintf("%.1f%%", row.ConversionRate()*100)
		if *showRates {
			if err := table.Append([]string{
				row.HotelCode,
				hotelNames[row.HotelCode],
				hotelRates[row.HotelCode],
				fmt.Sprintf("%d", row.TotalOrders),
				fmt.Sprintf("%d", row.FulfilledOrders),
				conversion,
			}); err != nil {
				log.Fatalf("append row: %v", err)
			}
			continue
		}
		if err := table.Append([]string{
			row.HotelCode,
			fmt.Sprintf("%d", row.TotalOrders),
			fmt.Sprintf("%d", row.FulfilledOrders),
			conversion,
		}); err != nil {
			log.Fatalf("append row: %v", err)
		}
	}

	if err := table.Render(); err != nil {
		log.Fatalf("render table: %v", err)
	}
}
