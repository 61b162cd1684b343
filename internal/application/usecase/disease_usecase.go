package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// DiseaseUseCase CRUD del catálogo de enfermedades.
type DiseaseUseCase struct {
	diseaseRepo repository.DiseaseRepository
}

// NewDiseaseUseCase construye el caso de uso.
func NewDiseaseUseCase(diseaseRepo repository.DiseaseRepository) *DiseaseUseCase {
	return &DiseaseUseCase{diseaseRepo: diseaseRepo}
}

// Create da de alta una enfermedad. El código es único (unique violation -> ErrDuplicate).
func (uc *DiseaseUseCase) Create(in dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error) {
	category := in.Category
	if category == "" {
		category = entity.DiseaseOther
	}
	now := time.Now()
	disease := &entity.Disease{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.diseaseRepo.Create(disease); err != nil {
		return nil, err
	}
	return toDiseaseResponse(disease), nil
}

// GetByID obtiene una enfermedad por ID.
func (uc *DiseaseUseCase) GetByID(id string) (*dto.DiseaseResponse, error) {
	disease, err := uc.diseaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if disease == nil {
		return nil, nil
	}
	return toDiseaseResponse(disease), nil
}

// Update actualiza una enfermedad.
func (uc *DiseaseUseCase) Update(id string, in dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error) {
	disease, err := uc.diseaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if disease == nil {
		return nil, nil
	}
	if in.Name != nil {
		disease.Name = *in.Name
	}
	if in.Code != nil {
		disease.Code = *in.Code
	}
	if in.Description != nil {
		disease.Description = *in.Description
	}
	if in.Category != nil {
		disease.Category = *in.Category
	}
	disease.UpdatedAt = time.Now()
	if err := uc.diseaseRepo.Update(disease); err != nil {
		return nil, err
	}
	return toDiseaseResponse(disease), nil
}

// List lista enfermedades con paginación.
func (uc *DiseaseUseCase) List(limit, offset int) (*dto.DiseaseListResponse, error) {
	list, err := uc.diseaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiseaseResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDiseaseResponse(d))
	}
	return &dto.DiseaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra una enfermedad del catálogo.
func (uc *DiseaseUseCase) Delete(id string) error {
	disease, err := uc.diseaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if disease == nil {
		return domain.ErrNotFound
	}
	return uc.diseaseRepo.Delete(id)
}

func toDiseaseResponse(d *entity.Disease) *dto.DiseaseResponse {
	return &dto.DiseaseResponse{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		Category:    d.Category,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
