package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
	"github.com/fgabrielqr/sistema-viagens/internal/utils"
)

func (r *Repository) Patients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.store.GetAll(ctx, store.CollectionPatients, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *Repository) PatientByID(ctx context.Context, id string) (models.Patient, error) {
	patients, err := r.Patients(ctx)
	if err != nil {
		return models.Patient{}, err
	}
	for _, p := range patients {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Patient{}, fmt.Errorf("patient %s: %w", id, models.ErrNotFound)
}

// PatientsByIDs resolves the given ids in order. Any missing id fails the
// whole lookup, so a trip can never be created with a dangling patient.
func (r *Repository) PatientsByIDs(ctx context.Context, ids []string) ([]models.Patient, error) {
	patients, err := r.Patients(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		byID[p.ID] = p
	}
	resolved := make([]models.Patient, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("patient %s: %w", id, models.ErrNotFound)
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

func (r *Repository) CreatePatient(ctx context.Context, p models.Patient) (models.Patient, error) {
	if p.Name == "" {
		return models.Patient{}, models.NewValidationError("name", "name is required")
	}
	if p.Address == "" {
		return models.Patient{}, models.NewValidationError("address", "address is required")
	}
	if p.City == "" {
		return models.Patient{}, models.NewValidationError("city", "city is required")
	}
	if !utils.ValidPhone(p.Phone) {
		return models.Patient{}, models.NewValidationError("phone", "invalid phone number")
	}
	p.Phone = utils.FormatPhone(p.Phone)
	if err := r.checkPatientUnique(ctx, p.Name, p.Phone, ""); err != nil {
		return models.Patient{}, err
	}
	id, err := r.store.Add(ctx, store.CollectionPatients, p)
	if err != nil {
		return models.Patient{}, err
	}
	p.ID = id
	return p, nil
}

func (r *Repository) UpdatePatient(ctx context.Context, id string, fields map[string]any) error {
	if phone, ok := fields["phone"].(string); ok {
		if !utils.ValidPhone(phone) {
			return models.NewValidationError("phone", "invalid phone number")
		}
		fields["phone"] = utils.FormatPhone(phone)
	}
	name, hasName := fields["name"].(string)
	phone, hasPhone := fields["phone"].(string)
	if hasName || hasPhone {
		current, err := r.PatientByID(ctx, id)
		if err != nil {
			return err
		}
		if !hasName {
			name = current.Name
		}
		if !hasPhone {
			phone = current.Phone
		}
		if err := r.checkPatientUnique(ctx, name, phone, id); err != nil {
			return err
		}
	}
	return r.store.Update(ctx, store.CollectionPatients, id, fields)
}

func (r *Repository) DeletePatient(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionPatients, id)
}

// checkPatientUnique rejects an exact duplicate of the (name, phone) pair,
// name compared case-insensitively and phone compared digits-only.
func (r *Repository) checkPatientUnique(ctx context.Context, name, phone, selfID string) error {
	patients, err := r.Patients(ctx)
	if err != nil {
		return err
	}
	digits := utils.StripPhone(phone)
	for _, p := range patients {
		if p.ID != selfID && strings.EqualFold(p.Name, name) && utils.StripPhone(p.Phone) == digits {
			return models.NewConflictError("name", "a patient with this name and phone already exists")
		}
	}
	return nil
}
