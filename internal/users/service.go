package users

import (
	"context"
	"fmt"

	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	MsgNotFound = "Usuário não encontrado"
	MsgDeleted  = "Usuário deletado"

	maxLen = 255
)

var validate = validator.New()

// Service exposes user management operations.
type Service interface {
	Create(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	Get(ctx context.Context, id uint) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
	Update(ctx context.Context, id uint, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uint) error
}

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a user service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	fields := pkgerrors.FieldErrors{}
	user := &models.User{
		Name:  fields.Required("name", input.Name, maxLen),
		Email: email(fields, input.Email),
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewUserDTO(user), nil
}

func (s *service) Get(ctx context.Context, id uint) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewUserDTO(user), nil
}

func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	rows, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewUserDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateUserInput) (*UserDTO, error) {
	fields := pkgerrors.FieldErrors{}
	columns := map[string]any{}
	if input.Name != nil {
		columns["name"] = fields.Required("name", *input.Name, maxLen)
	}
	if input.Email != nil {
		columns["email"] = email(fields, *input.Email)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if err := txRepo.UpdateColumns(ctx, id, columns); err != nil {
			return err
		}
		loaded, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		updated = loaded
		return nil
	})
	if err != nil {
		return nil, db.Classify(err, MsgNotFound)
	}
	return NewUserDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return db.Classify(s.repo.Delete(ctx, id), MsgNotFound)
}

// email requires a non-blank address accepted by the validator email rule.
func email(fields pkgerrors.FieldErrors, raw string) string {
	trimmed := fields.Required("email", raw, maxLen)
	if trimmed == "" {
		return trimmed
	}
	if err := validate.Var(trimmed, "email"); err != nil {
		fields.Add("email", "must be a valid email")
	}
	return trimmed
}
