package repository

import (
	"time"

	"github.com/google/uuid"

	"backend/internal/database"
	"backend/internal/models"
)

type CustomerRepo struct {
	store *database.Store
}

func NewCustomerRepo(store *database.Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

func (r *CustomerRepo) GetAll() []models.Customer {
	customers := []models.Customer{}
	r.store.Read(database.KeyCustomers, &customers)
	return customers
}

func (r *CustomerRepo) Save(draft models.CustomerDraft) models.Customer {
	customers := r.GetAll()
	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Address:   draft.Address,
		CreatedAt: time.Now(),
	}
	customers = append(customers, customer)
	r.store.Write(database.KeyCustomers, customers)
	return customer
}

// Update merges the non-nil fields of upd onto the stored record. Unlike
// products, customers carry no UpdatedAt to refresh. Returns nil when no
// record matches id.
func (r *CustomerRepo) Update(id string, upd models.CustomerUpdate) *models.Customer {
	customers := r.GetAll()
	for i := range customers {
		if customers[i].ID != id {
			continue
		}
		if upd.Name != nil {
			customers[i].Name = *upd.Name
		}
		if upd.Email != nil {
			customers[i].Email = *upd.Email
		}
		if upd.Phone != nil {
			customers[i].Phone = *upd.Phone
		}
		if upd.Address != nil {
			customers[i].Address = *upd.Address
		}
		r.store.Write(database.KeyCustomers, customers)
		return &customers[i]
	}
	return nil
}

func (r *CustomerRepo) Delete(id string) bool {
	customers := r.GetAll()
	filtered := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(customers) {
		return false
	}
	r.store.Write(database.KeyCustomers, filtered)
	return true
}
