package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
	"funilaria_autocolor/pkg/cpf"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrInvalidJobID   = errors.New("invalid job id")
	ErrInvalidCPF     = errors.New("invalid cpf")
	ErrWeakPassword   = errors.New("password shorter than 4 characters")
	ErrInvalidStatus  = errors.New("invalid job status")
	ErrInvalidStage   = errors.New("invalid photo stage")
	ErrMissingPhotoID = errors.New("invalid photo id")
	ErrMissingImage   = errors.New("missing image reference")
)

// ClientInput carries the client fields captured at intake or edit time.
type ClientInput struct {
	Name     string
	Phone    string
	Email    string
	CPF      string
	Password string
}

// AddPhotoInput describes one photo append. When Describe is set the narration
// collaborator is asked for a damage description between the job read and the
// job write; its output (or fallback text) is stored verbatim.
type AddPhotoInput struct {
	Stage    entities.PhotoStage
	ImageRef string
	Comment  *string
	Describe bool
}

// PhotoPatch carries the two human-editable photo fields. Nil leaves a field
// untouched; a pointer to "" clears it to an explicit empty string.
type PhotoPatch struct {
	Comment     *string
	Description *string
}

// IJobUseCase owns every mutation of a Job and its photo sequence, plus the
// reads the UI layer needs.
//
// All operations are a synchronous read-modify-write against the jobs
// document. Nothing here locks across the round trip: two concurrent editors
// of the same job are last-writer-wins, which is the documented storage
// contract, not an accident.

type IJobUseCase interface {
	List(ctx context.Context) ([]entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	CreateJob(ctx context.Context, client ClientInput, vehicle entities.Vehicle, serviceDescription string) (entities.Job, error)
	UpdateJobDetails(ctx context.Context, jobID string, client ClientInput, vehicle entities.Vehicle, serviceDescription string) (entities.Job, error)
	SetStatus(ctx context.Context, jobID string, status entities.JobStatus) (entities.Job, error)
	AddPhoto(ctx context.Context, jobID string, input AddPhotoInput) (entities.Job, error)
	EditPhoto(ctx context.Context, jobID, photoID string, patch PhotoPatch) (entities.Job, error)
	DeletePhoto(ctx context.Context, jobID, photoID string) (entities.Job, error)
	ComposeStatusUpdate(ctx context.Context, jobID string) (string, error)
}

type JobUseCase struct {
	jobs     interfaces.IJobRepository
	clients  interfaces.IClientRepository
	narrator interfaces.INarrationGateway
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, clients interfaces.IClientRepository, narrator interfaces.INarrationGateway) *JobUseCase {
	return &JobUseCase{jobs: jobs, clients: clients, narrator: narrator}
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.jobs.GetAll(ctx)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	jobs, err := u.jobs.GetAll(ctx)
	if err != nil {
		return entities.Job{}, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return entities.Job{}, ErrJobNotFound
}

func (u *JobUseCase) CreateJob(ctx context.Context, client ClientInput, vehicle entities.Vehicle, serviceDescription string) (entities.Job, error) {
	if !cpf.Valid(client.CPF) {
		log.Printf("[job][usecase] create rejected: invalid cpf")
		return entities.Job{}, ErrInvalidCPF
	}
	if len(client.Password) < 4 {
		log.Printf("[job][usecase] create rejected: weak password")
		return entities.Job{}, ErrWeakPassword
	}

	now := time.Now().UTC()
	newClient := entities.Client{
		ID:       uuid.NewString(),
		Name:     client.Name,
		Phone:    client.Phone,
		Email:    client.Email,
		CPF:      cpf.Format(client.CPF),
		Password: client.Password,
	}
	job := entities.Job{
		ID:                 uuid.NewString(),
		Client:             newClient,
		Vehicle:            vehicle,
		ServiceDescription: serviceDescription,
		Status:             entities.JobStatusRecebido,
		Photos:             []entities.Photo{},
		CreatedAt:          now,
	}

	// Client first: a job must never reference a client record that was never
	// persisted. Validation failures above persist nothing at all.
	if err := u.clients.Save(ctx, newClient); err != nil {
		log.Printf("[job][usecase] client save failed client_id=%s err=%v", newClient.ID, err)
		return entities.Job{}, err
	}
	if err := u.jobs.Save(ctx, job); err != nil {
		log.Printf("[job][usecase] job save failed job_id=%s err=%v", job.ID, err)
		return entities.Job{}, err
	}

	log.Printf("[job][usecase] job created job_id=%s client_id=%s", job.ID, newClient.ID)
	return job, nil
}

func (u *JobUseCase) UpdateJobDetails(ctx context.Context, jobID string, client ClientInput, vehicle entities.Vehicle, serviceDescription string) (entities.Job, error) {
	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	// Unlike CreateJob, an empty CPF skips validation entirely so records
	// without one stay editable.
	formattedCPF := strings.TrimSpace(client.CPF)
	if formattedCPF != "" {
		if !cpf.Valid(formattedCPF) {
			log.Printf("[job][usecase] update rejected: invalid cpf job_id=%s", job.ID)
			return entities.Job{}, ErrInvalidCPF
		}
		formattedCPF = cpf.Format(formattedCPF)
	}

	updatedClient := job.Client
	updatedClient.Name = client.Name
	updatedClient.Phone = client.Phone
	updatedClient.Email = client.Email
	updatedClient.CPF = formattedCPF
	updatedClient.Password = client.Password

	job.Client = updatedClient
	job.Vehicle = vehicle
	job.ServiceDescription = serviceDescription

	// Both the clients record and the embedded snapshot are written. They are
	// two entities related by client id, not a live reference: edits elsewhere
	// can still make them diverge.
	if err := u.clients.Save(ctx, updatedClient); err != nil {
		log.Printf("[job][usecase] client save failed job_id=%s client_id=%s err=%v", job.ID, updatedClient.ID, err)
		return entities.Job{}, err
	}
	if err := u.jobs.Save(ctx, job); err != nil {
		log.Printf("[job][usecase] job save failed job_id=%s err=%v", job.ID, err)
		return entities.Job{}, err
	}

	log.Printf("[job][usecase] job details updated job_id=%s", job.ID)
	return job, nil
}

func (u *JobUseCase) SetStatus(ctx context.Context, jobID string, status entities.JobStatus) (entities.Job, error) {
	if !status.IsValid() {
		return entities.Job{}, ErrInvalidStatus
	}

	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	// Unconditional overwrite: the funnel order is convention, backward and
	// skipping transitions are allowed.
	job.Status = status
	if err := u.jobs.Save(ctx, job); err != nil {
		return entities.Job{}, err
	}

	log.Printf("[job][usecase] status set job_id=%s status=%s", job.ID, status)
	return job, nil
}

func (u *JobUseCase) AddPhoto(ctx context.Context, jobID string, input AddPhotoInput) (entities.Job, error) {
	if !input.Stage.IsValid() {
		return entities.Job{}, ErrInvalidStage
	}
	if strings.TrimSpace(input.ImageRef) == "" {
		return entities.Job{}, ErrMissingImage
	}

	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	photo := entities.Photo{
		ID:        uuid.NewString(),
		URL:       input.ImageRef,
		Stage:     input.Stage,
		Timestamp: time.Now().UTC(),
		Comment:   input.Comment,
	}

	// The narration call sits between the job read and the job write so its
	// latency never blocks storage access for other jobs. It cannot fail: the
	// gateway folds errors into fallback text.
	if input.Describe && u.narrator != nil {
		description := u.narrator.DescribeDamage(ctx, input.ImageRef)
		photo.Description = &description
	}

	job.Photos = append(job.Photos, photo)
	if err := u.jobs.Save(ctx, job); err != nil {
		log.Printf("[job][usecase] photo save failed job_id=%s err=%v", job.ID, err)
		return entities.Job{}, err
	}

	log.Printf("[job][usecase] photo added job_id=%s photo_id=%s stage=%s described=%t", job.ID, photo.ID, photo.Stage, input.Describe)
	return job, nil
}

func (u *JobUseCase) EditPhoto(ctx context.Context, jobID, photoID string, patch PhotoPatch) (entities.Job, error) {
	photoID = strings.TrimSpace(photoID)
	if photoID == "" {
		return entities.Job{}, ErrMissingPhotoID
	}

	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	// An unknown photo id is a silent no-op; the job is saved unchanged.
	for i := range job.Photos {
		if job.Photos[i].ID != photoID {
			continue
		}
		if patch.Comment != nil {
			job.Photos[i].Comment = patch.Comment
		}
		if patch.Description != nil {
			job.Photos[i].Description = patch.Description
		}
		break
	}

	if err := u.jobs.Save(ctx, job); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (u *JobUseCase) DeletePhoto(ctx context.Context, jobID, photoID string) (entities.Job, error) {
	photoID = strings.TrimSpace(photoID)
	if photoID == "" {
		return entities.Job{}, ErrMissingPhotoID
	}

	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	kept := make([]entities.Photo, 0, len(job.Photos))
	for _, p := range job.Photos {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}
	job.Photos = kept

	if err := u.jobs.Save(ctx, job); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (u *JobUseCase) ComposeStatusUpdate(ctx context.Context, jobID string) (string, error) {
	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}

	if u.narrator == nil {
		return FallbackStatusMessage(job), nil
	}
	return u.narrator.ComposeStatusMessage(ctx, job, job.LatestPhoto()), nil
}

// FallbackStatusMessage is the deterministic template used when no narration
// collaborator is available or it fails.
func FallbackStatusMessage(job entities.Job) string {
	return "Olá " + job.Client.Name + ", o status do seu " + job.Vehicle.Model + " mudou para " + string(job.Status) + "."
}
