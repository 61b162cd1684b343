package usecase_test

import (
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete. Embeben la interfaz
// del puerto: solo se implementa lo que los casos de uso tocan.

type fakeCategoryRepo struct {
	repository.AssetCategoryRepository
	store   map[string]*entity.AssetCategory
	deleted []string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{store: map[string]*entity.AssetCategory{}}
}

func (f *fakeCategoryRepo) Create(c *entity.AssetCategory) error {
	f.store[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.AssetCategory, error) {
	return f.store[id], nil
}

func (f *fakeCategoryRepo) Update(c *entity.AssetCategory) error {
	f.store[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) List(limit, offset int) ([]*entity.AssetCategory, error) {
	var out []*entity.AssetCategory
	for _, c := range f.store {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.store, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAssetCountRepo struct {
	repository.AssetRepository
	countsByCategory map[string]int
}

func (f *fakeAssetCountRepo) CountByCategory(categoryID string) (int, error) {
	return f.countsByCategory[categoryID], nil
}

type fakeDoctorRepo struct {
	repository.DoctorRepository
	store         map[string]*entity.Doctor
	patientCounts map[string]int
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{store: map[string]*entity.Doctor{}, patientCounts: map[string]int{}}
}

func (f *fakeDoctorRepo) Create(d *entity.Doctor) error {
	f.store[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	return f.store[id], nil
}

func (f *fakeDoctorRepo) Update(d *entity.Doctor) error {
	f.store[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) List(limit, offset int) ([]*entity.Doctor, error) {
	var out []*entity.Doctor
	for _, d := range f.store {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) ListInterns(mentorID string) ([]*entity.Doctor, error) {
	var out []*entity.Doctor
	for _, d := range f.store {
		if d.IsIntern && d.MentorID == mentorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) CountPatients(doctorID string) (int, error) {
	return f.patientCounts[doctorID], nil
}

func (f *fakeDoctorRepo) Delete(id string) error {
	delete(f.store, id)
	return nil
}

type fakePatientRepo struct {
	repository.PatientRepository
	store           map[string]*entity.Patient
	setDiseaseCalls [][]string
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{store: map[string]*entity.Patient{}}
}

func (f *fakePatientRepo) Create(p *entity.Patient) error {
	f.store[p.ID] = p
	return nil
}

func (f *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	return f.store[id], nil
}

func (f *fakePatientRepo) Update(p *entity.Patient) error {
	f.store[p.ID] = p
	return nil
}

func (f *fakePatientRepo) SetDiseases(patientID string, diseaseIDs []string) error {
	if p, ok := f.store[patientID]; ok {
		p.DiseaseIDs = diseaseIDs
	}
	f.setDiseaseCalls = append(f.setDiseaseCalls, diseaseIDs)
	return nil
}

func (f *fakePatientRepo) Delete(id string) error {
	delete(f.store, id)
	return nil
}

type fakeDiseaseRepo struct {
	repository.DiseaseRepository
	store map[string]*entity.Disease
}

func newFakeDiseaseRepo() *fakeDiseaseRepo {
	return &fakeDiseaseRepo{store: map[string]*entity.Disease{}}
}

func (f *fakeDiseaseRepo) Create(d *entity.Disease) error {
	f.store[d.ID] = d
	return nil
}

func (f *fakeDiseaseRepo) GetByID(id string) (*entity.Disease, error) {
	return f.store[id], nil
}

type fakeVisitRepo struct {
	repository.VisitRepository
	store map[string]*entity.Visit
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{store: map[string]*entity.Visit{}}
}

func (f *fakeVisitRepo) Create(v *entity.Visit) error {
	f.store[v.ID] = v
	return nil
}

func (f *fakeVisitRepo) GetByID(id string) (*entity.Visit, error) {
	return f.store[id], nil
}

func (f *fakeVisitRepo) Update(v *entity.Visit) error {
	f.store[v.ID] = v
	return nil
}

func (f *fakeVisitRepo) UpdateStatus(id, status string) error {
	v, ok := f.store[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Status = status
	return nil
}

type fakeSeqRepo struct {
	repository.SequenceRepository
	counters map[string]int64
}

func (f *fakeSeqRepo) NextByCode(code string) (int64, error) {
	if f.counters == nil {
		f.counters = map[string]int64{}
	}
	f.counters[code]++
	return f.counters[code], nil
}
