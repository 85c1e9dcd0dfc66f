package medicineapi

import (
	"context"

	"github.com/KasumiMercury/primind-medicine-reminder/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=medicineapi

// MedicineRepository is the remote healthcare API that owns medicines.
// The bearer token is the caller's and is forwarded unchanged.
type MedicineRepository interface {
	ListUserMedicines(ctx context.Context, bearerToken string) ([]*domain.Medicine, error)
	AddMedicine(ctx context.Context, bearerToken string, medicine *domain.Medicine) (*domain.Medicine, error)
}
