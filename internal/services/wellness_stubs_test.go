package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/models"
)

var errStubStorage = errors.New("storage unavailable")

type stubProfileRepo struct {
	profile  *models.Profile
	organs   []models.OrganHealth
	findErr  error
	saveErr  error
	saves    int
	cleared  bool
	clearErr error
}

func (repo *stubProfileRepo) Find() (models.Profile, bool, error) {
	if repo.findErr != nil {
		return models.Profile{}, false, repo.findErr
	}
	if repo.profile == nil {
		return models.Profile{}, false, nil
	}
	return *repo.profile, true, nil
}

func (repo *stubProfileRepo) SaveWithOrganHealth(profile *models.Profile, organs []models.OrganHealth) error {
	if repo.saveErr != nil {
		return repo.saveErr
	}
	saved := *profile
	repo.profile = &saved
	repo.organs = append([]models.OrganHealth(nil), organs...)
	repo.saves++
	return nil
}

func (repo *stubProfileRepo) ClearAllData() error {
	if repo.clearErr != nil {
		return repo.clearErr
	}
	repo.profile = nil
	repo.organs = nil
	repo.cleared = true
	return nil
}

func (repo *stubProfileRepo) List() ([]models.OrganHealth, error) {
	return repo.organs, nil
}

type stubPeriodRepo struct {
	records []models.PeriodRecord
	listErr error
}

func (repo *stubPeriodRepo) ListNewestFirst() ([]models.PeriodRecord, error) {
	return repo.records, repo.listErr
}

func (repo *stubPeriodRepo) Create(record *models.PeriodRecord) error {
	repo.records = append([]models.PeriodRecord{*record}, repo.records...)
	return nil
}

type stubSymptomRepo struct {
	events    []models.SymptomEvent
	sinceFrom time.Time
}

func (repo *stubSymptomRepo) ListSince(from time.Time) ([]models.SymptomEvent, error) {
	repo.sinceFrom = from
	result := make([]models.SymptomEvent, 0, len(repo.events))
	for _, event := range repo.events {
		if !event.Date.Before(from) {
			result = append(result, event)
		}
	}
	return result, nil
}

func (repo *stubSymptomRepo) ListAll() ([]models.SymptomEvent, error) {
	return repo.events, nil
}

func (repo *stubSymptomRepo) Create(event *models.SymptomEvent) error {
	repo.events = append(repo.events, *event)
	return nil
}

type stubConditionRepo struct {
	entries []models.ConditionEntry
}

func (repo *stubConditionRepo) List() ([]models.ConditionEntry, error) {
	return repo.entries, nil
}

func (repo *stubConditionRepo) Create(entry *models.ConditionEntry) error {
	repo.entries = append(repo.entries, *entry)
	return nil
}

type wellnessFixture struct {
	service    *WellnessService
	profiles   *stubProfileRepo
	periods    *stubPeriodRepo
	symptoms   *stubSymptomRepo
	conditions *stubConditionRepo
}

func newWellnessFixture() wellnessFixture {
	fixture := wellnessFixture{
		profiles:   &stubProfileRepo{},
		periods:    &stubPeriodRepo{},
		symptoms:   &stubSymptomRepo{},
		conditions: &stubConditionRepo{},
	}
	fixture.service = NewWellnessService(
		fixture.profiles,
		fixture.periods,
		fixture.symptoms,
		fixture.conditions,
		fixture.profiles,
		content.Default(),
		0,
	)
	return fixture
}
