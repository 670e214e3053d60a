package repository

import (
	"time"

	"funilaria_autocolor/internal/domain/entities"
)

// Bootstrap records written the first time the jobs/admins documents are read
// while still absent. Fixed ids keep seeding idempotent and recognizable in
// tests; an already-written (even empty) document is never touched.

func seedAdmins() []entities.AdminUser {
	return []entities.AdminUser{
		{
			ID:       "admin-1",
			Name:     "Oficina Principal",
			Username: "admin",
			Password: "123",
		},
	}
}

func seedClient() entities.Client {
	return entities.Client{
		ID:       "client-1",
		Name:     "João Silva",
		Phone:    "11999999999",
		Email:    "joao@email.com",
		CPF:      "123.456.789-00",
		Password: "123",
	}
}

func seedJobs(now time.Time) []entities.Job {
	description := "Danos visíveis no para-choque."
	comment := "Cliente relatou que a batida foi leve."
	return []entities.Job{
		{
			ID:     "job-1",
			Client: seedClient(),
			Vehicle: entities.Vehicle{
				Plate: "ABC-1234",
				Model: "Honda Civic",
				Color: "Prata",
			},
			ServiceDescription: "Repintura para-choque dianteiro e polimento.",
			Status:             entities.JobStatusPreparacao,
			Photos: []entities.Photo{
				{
					ID:          "p1",
					URL:         "https://picsum.photos/id/1070/400/300",
					Stage:       entities.PhotoStageBefore,
					Timestamp:   now,
					Description: &description,
					Comment:     &comment,
				},
			},
			CreatedAt: now,
		},
	}
}
