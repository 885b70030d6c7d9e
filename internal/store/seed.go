package store

import "github.com/fgabrielqr/sistema-viagens/internal/models"

func strPtr(s string) *string { return &s }

// seedDocuments returns the default dataset written into a collection the
// first time it is observed empty, matching the demo data the original
// system shipped with. Trips start empty.
func seedDocuments(collection string) []any {
	switch collection {
	case CollectionUsers:
		return []any{
			models.User{
				ID:       "1",
				Name:     "João Silva",
				Email:    "joao@exemplo.com",
				Password: "123456",
				Role:     models.RoleDriver,
				Phone:    strPtr("(11) 99999-9999"),
			},
			models.User{
				ID:       "2",
				Name:     "Maria Santos",
				Email:    "maria@exemplo.com",
				Password: "123456",
				Role:     models.RoleDriver,
				Phone:    strPtr("(11) 88888-8888"),
			},
			models.User{
				ID:       "admin",
				Name:     "Damir Silva",
				Email:    DefaultAdminEmail,
				Password: DefaultAdminPassword,
				Role:     models.RoleAdmin,
			},
		}
	case CollectionVehicles:
		return []any{
			models.Vehicle{ID: "1", Plate: "ABC-1234", Model: "Sprinter", Brand: "Mercedes", Year: 2020, Available: true},
			models.Vehicle{ID: "2", Plate: "DEF-5678", Model: "Transit", Brand: "Ford", Year: 2021, Available: true},
		}
	case CollectionPatients:
		return []any{
			models.Patient{ID: "1", Name: "Ana Oliveira", Address: "Rua das Flores, 123", Phone: "(11) 77777-7777", City: "São Paulo"},
			models.Patient{ID: "2", Name: "Carlos Pereira", Address: "Av. Paulista, 456", Phone: "(11) 66666-6666", City: "São Paulo"},
		}
	default:
		return nil
	}
}

// Default admin credentials. Authentication recreates this account on the
// fly when the user collection has lost it, so a fresh deployment is never
// locked out.
const (
	DefaultAdminEmail    = "admin@exemplo.com"
	DefaultAdminPassword = "admin123"
)
