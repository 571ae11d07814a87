package seed

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/servimarket/servimarket/internal/domain"
	"github.com/servimarket/servimarket/internal/pg"
)

const (
	seedPassword  = "password123"
	providerEmail = "provider@demo.local"
	clientEmail   = "client@demo.local"
)

var demoServices = []struct {
	Name        string
	Description string
	Price       string
}{
	{"Haircut", "30 minute haircut", "25.00"},
	{"Apartment cleaning", "Full cleaning of a T2 apartment", "50.00"},
	{"Portrait session", "One hour photo session, edited photos included", "80.00"},
}

// Run inserts a demo provider with a few services and a demo client.
// Safe to call on every startup; it skips once the accounts exist.
func Run(ctx context.Context, db pg.Database, txManager pg.TXManager) error {
	var count int
	err := db.QueryRow(ctx, "SELECT count(*) FROM users WHERE email IN ($1, $2)", providerEmail, clientEmail).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("seed already applied, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)

	err = txManager.Begin(ctx, func(ctx context.Context) error {
		var providerID uuid.UUID
		err := db.QueryRow(ctx, `
			INSERT INTO users (email, nif, name, password_hash, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, providerEmail, "500100200", "Demo Provider", hashed, domain.RoleProvider).Scan(&providerID)
		if err != nil {
			return err
		}

		var clientID uuid.UUID
		err = db.QueryRow(ctx, `
			INSERT INTO users (email, nif, name, password_hash, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, clientEmail, "200300400", "Demo Client", hashed, domain.RoleClient).Scan(&clientID)
		if err != nil {
			return err
		}

		for _, svc := range demoServices {
			_, err := db.Exec(ctx, `
				INSERT INTO services (provider_id, name, description, price)
				VALUES ($1, $2, $3, $4::numeric)
			`, providerID, svc.Name, svc.Description, svc.Price)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("demo data seeded",
		zap.String("provider", providerEmail),
		zap.String("client", clientEmail))
	return nil
}
