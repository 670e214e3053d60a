package usecase

import (
	"context"
	"errors"
	"log"

	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase/interfaces"
)

// Fixed superadmin identity. The check runs before any stored-credential
// lookup and ignores the role hint entirely.
const (
	superAdminIdentifier  = "Jefersonbs"
	superAdminSecret      = "1020#"
	superAdminDisplayName = "SuperAdmin"
)

// The auth errors are user-facing; none of them says which half of the
// credential pair was wrong.
var (
	ErrInvalidAdminCredentials  = errors.New("invalid workshop credentials")
	ErrInvalidClientCredentials = errors.New("invalid client credentials")
	ErrNoJobsForClient          = errors.New("no jobs found for this client")
	ErrInvalidRole              = errors.New("invalid role")
)

// LoginResult is the session descriptor handed to the UI, plus, for clients,
// the first job in store order as the initially selected one.
type LoginResult struct {
	Session    entities.UserSession
	InitialJob *entities.Job
}

// IAuthUseCase resolves a (role hint, identifier, secret) triple to a session.
//
// Comparison is exact plaintext string equality against the stored records,
// reproduced as-is. No lockout, no rate limiting, no token issuance.

type IAuthUseCase interface {
	Authenticate(ctx context.Context, roleHint entities.UserRole, identifier, secret string) (LoginResult, error)
}

type AuthUseCase struct {
	admins  interfaces.IAdminRepository
	clients interfaces.IClientRepository
	jobs    interfaces.IJobRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(admins interfaces.IAdminRepository, clients interfaces.IClientRepository, jobs interfaces.IJobRepository) *AuthUseCase {
	return &AuthUseCase{admins: admins, clients: clients, jobs: jobs}
}

func (u *AuthUseCase) Authenticate(ctx context.Context, roleHint entities.UserRole, identifier, secret string) (LoginResult, error) {
	// Superadmin wins over everything, whatever the role hint says.
	if identifier == superAdminIdentifier && secret == superAdminSecret {
		log.Printf("[auth][usecase] superadmin session opened")
		return LoginResult{Session: entities.UserSession{Role: entities.RoleSuperAdmin, Name: superAdminDisplayName}}, nil
	}

	switch roleHint {
	case entities.RoleAdmin:
		return u.authenticateAdmin(ctx, identifier, secret)
	case entities.RoleClient:
		return u.authenticateClient(ctx, identifier, secret)
	default:
		return LoginResult{}, ErrInvalidRole
	}
}

func (u *AuthUseCase) authenticateAdmin(ctx context.Context, username, password string) (LoginResult, error) {
	admins, err := u.admins.GetAll(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	for _, a := range admins {
		if a.Username == username && a.Password == password {
			log.Printf("[auth][usecase] admin session opened admin_id=%s", a.ID)
			return LoginResult{Session: entities.UserSession{Role: entities.RoleAdmin, Name: a.Name}}, nil
		}
	}

	log.Printf("[auth][usecase] admin login rejected")
	return LoginResult{}, ErrInvalidAdminCredentials
}

func (u *AuthUseCase) authenticateClient(ctx context.Context, email, password string) (LoginResult, error) {
	clients, err := u.clients.GetAll(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	var matched *entities.Client
	for i := range clients {
		if clients[i].Email == email && clients[i].Password == password {
			matched = &clients[i]
			break
		}
	}
	if matched == nil {
		log.Printf("[auth][usecase] client login rejected")
		return LoginResult{}, ErrInvalidClientCredentials
	}

	jobs, err := u.jobs.GetAll(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	// The credential was correct; having no jobs is a distinct outcome.
	for _, j := range jobs {
		if j.Client.ID == matched.ID {
			job := j
			log.Printf("[auth][usecase] client session opened client_id=%s job_id=%s", matched.ID, job.ID)
			return LoginResult{
				Session:    entities.UserSession{Role: entities.RoleClient, UserID: matched.ID, Name: matched.Name},
				InitialJob: &job,
			}, nil
		}
	}

	log.Printf("[auth][usecase] client login without jobs client_id=%s", matched.ID)
	return LoginResult{}, ErrNoJobsForClient
}
