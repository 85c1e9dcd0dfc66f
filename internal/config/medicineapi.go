package config

import "github.com/knadh/koanf/v2"

const medicineAPIURLKey = "medicine_api_url"

type MedicineAPIConfig struct {
	// BaseURL of the remote healthcare API. Empty disables the medicine
	// proxy endpoints.
	BaseURL string
}

func loadMedicineAPIConfig(k *koanf.Koanf) *MedicineAPIConfig {
	return &MedicineAPIConfig{
		BaseURL: k.String(medicineAPIURLKey),
	}
}
