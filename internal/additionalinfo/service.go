package additionalinfo

import (
	"context"
	"fmt"

	"github.com/angelmondragon/pantry-backend/internal/repo"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"gorm.io/gorm"
)

const (
	MsgNotFound = "Informações adicionais não encontradas"
	MsgDeleted  = "Informações adicionais deletadas"

	msgBarcodeTaken = "is already registered"

	maxBrandLen    = 100
	maxSupplierLen = 100
	maxBarcodeLen  = 50
)

// Service exposes additional info operations.
type Service interface {
	Create(ctx context.Context, input CreateInfoInput) (*InfoDTO, error)
	Get(ctx context.Context, id uint) (*InfoDTO, error)
	List(ctx context.Context, filter ListFilter) ([]InfoDTO, error)
	Update(ctx context.Context, id uint, input UpdateInfoInput) (*InfoDTO, error)
	Delete(ctx context.Context, id uint) error
}

// CreateInfoInput holds the payload; every descriptive field is optional.
type CreateInfoInput struct {
	ProductID uint
	Brand     *string
	Supplier  *string
	Barcode   *string
	Notes     *string
}

// UpdateInfoInput holds optional mutation values. Null clears a field.
type UpdateInfoInput struct {
	ProductID *uint
	Brand     types.Nullable[string]
	Supplier  types.Nullable[string]
	Barcode   types.Nullable[string]
	Notes     types.Nullable[string]
}

// ListFilter narrows List; a nil ProductID returns every row.
type ListFilter struct {
	ProductID *uint
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs an additional info service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("additional info repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateInfoInput) (*InfoDTO, error) {
	fields := pkgerrors.FieldErrors{}
	if input.ProductID == 0 {
		fields.Add("produto_id", "is required")
	}
	record := &models.AdditionalInfo{
		ProductID: input.ProductID,
		Brand:     fields.Optional("marca", input.Brand, maxBrandLen),
		Supplier:  fields.Optional("fornecedor", input.Supplier, maxSupplierLen),
		Barcode:   barcode(fields, input.Barcode),
		Notes:     input.Notes,
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var created *models.AdditionalInfo
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if err := repo.EnsureProduct(ctx, tx, input.ProductID); err != nil {
			return err
		}
		txRepo := s.repo.WithTx(tx)
		if err := ensureBarcodeFree(ctx, txRepo, record.Barcode, 0); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, record); err != nil {
			return err
		}
		loaded, err := txRepo.FindByID(ctx, record.ID)
		if err != nil {
			return err
		}
		created = loaded
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return NewInfoDTO(created), nil
}

func (s *service) Get(ctx context.Context, id uint) (*InfoDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return NewInfoDTO(record), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]InfoDTO, error) {
	where := map[string]any{}
	if filter.ProductID != nil {
		where["produto_id"] = *filter.ProductID
	}
	rows, err := s.repo.List(ctx, where)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]InfoDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewInfoDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInfoInput) (*InfoDTO, error) {
	fields := pkgerrors.FieldErrors{}
	columns := map[string]any{}
	if input.ProductID != nil {
		if *input.ProductID == 0 {
			fields.Add("produto_id", "is required")
		}
		columns["produto_id"] = *input.ProductID
	}
	if input.Brand.Present {
		columns["marca"] = fields.Optional("marca", input.Brand.Value, maxBrandLen)
	}
	if input.Supplier.Present {
		columns["fornecedor"] = fields.Optional("fornecedor", input.Supplier.Value, maxSupplierLen)
	}
	var code *string
	if input.Barcode.Present {
		code = barcode(fields, input.Barcode.Value)
		columns["codigo_barras"] = code
	}
	if input.Notes.Present {
		columns["notas"] = input.Notes.Value
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	var updated *models.AdditionalInfo
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			return err
		}
		if input.ProductID != nil {
			if err := repo.EnsureProduct(ctx, tx, *input.ProductID); err != nil {
				return err
			}
		}
		if err := ensureBarcodeFree(ctx, txRepo, code, id); err != nil {
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
		return nil, classify(err)
	}
	return NewInfoDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return classify(s.repo.Delete(ctx, id))
}

// barcode trims the code; a blank code is stored as NULL so it never collides.
func barcode(fields pkgerrors.FieldErrors, value *string) *string {
	code := fields.Optional("codigo_barras", value, maxBarcodeLen)
	if code == nil || *code == "" {
		return nil
	}
	return code
}

func ensureBarcodeFree(ctx context.Context, r *Repository, code *string, exceptID uint) error {
	if code == nil {
		return nil
	}
	taken, err := r.BarcodeTaken(ctx, *code, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return barcodeTaken(nil)
	}
	return nil
}

func barcodeTaken(cause error) error {
	fields := pkgerrors.FieldErrors{"codigo_barras": msgBarcodeTaken}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, cause, "validation failed").WithDetails(map[string]string(fields))
}

// classify also catches a barcode race that slipped past the pre-check.
func classify(err error) error {
	if pkgerrors.As(err) == nil && db.IsUniqueViolation(err, "codigo_barras") {
		return barcodeTaken(err)
	}
	return db.Classify(err, MsgNotFound)
}
