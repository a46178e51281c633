package postgres

import (
	"database/sql"

	"mowerworks-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CustomerRepository
	repository.MachineRepository
	repository.PartRepository
	repository.JobRepository
	repository.TransportConfigRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		UserRepository:            NewUserRepository(db),
		CustomerRepository:        NewCustomerRepository(db),
		MachineRepository:         NewMachineRepository(db),
		PartRepository:            NewPartRepository(db),
		JobRepository:             NewJobRepository(db),
		TransportConfigRepository: NewTransportConfigRepository(db),
	}
}
