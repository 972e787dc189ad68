package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/chaithanya-077/ridewave-r/internal/config"
	"github.com/chaithanya-077/ridewave-r/internal/observability"
	"github.com/chaithanya-077/ridewave-r/internal/persistence"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
)

// Read-only dump of the three tables as a text report. Debugging aid only;
// not part of the served application.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	out := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	bikes, err := repository.NewBikeRepository(pool).ListAll(ctx)
	if err != nil {
		logger.Fatal("failed to list bikes", zap.Error(err))
	}
	fmt.Fprintln(out, "=== BIKES ===")
	fmt.Fprintln(out, "ID\tNAME\tMODEL\tCATEGORY\tPRICE/DAY\tSPEED\tIMAGE")
	for _, b := range bikes {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			b.ID, b.Name, b.Model, b.Category, b.PricePerDay, b.TopSpeed, b.Image)
	}

	users, err := repository.NewUserRepository(pool).ListAll(ctx)
	if err != nil {
		logger.Fatal("failed to list users", zap.Error(err))
	}
	fmt.Fprintln(out, "\n=== USERS ===")
	fmt.Fprintln(out, "ID\tUSERNAME\tEMAIL\tADMIN")
	for _, u := range users {
		fmt.Fprintf(out, "%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.IsAdmin)
	}

	bookings, err := repository.NewBookingRepository(pool).ListAll(ctx)
	if err != nil {
		logger.Fatal("failed to list bookings", zap.Error(err))
	}
	fmt.Fprintln(out, "\n=== BOOKINGS ===")
	fmt.Fprintln(out, "ID\tREF\tUSER\tBIKE\tPICKUP\tRETURN\tCOST\tSTATUS\tCREATED")
	for _, b := range bookings {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			b.ID, b.ReferenceKey, b.UserID, b.BikeID,
			b.PickupDate.Format("2006-01-02"), b.ReturnDate.Format("2006-01-02"),
			b.TotalCost, b.Status, b.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	out.Flush()
}
