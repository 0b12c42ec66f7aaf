package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

var _ storage.Storage = (*Storage)(nil)

type userRecords struct {
	profile     models.Profile
	health      models.Health
	allergies   *table[models.Allergy]
	medications *table[models.Medication]
	contacts    *table[models.EmergencyContact]
	addresses   *table[models.Address]
}

func newUserRecords(fullName string) *userRecords {
	return &userRecords{
		profile:     models.Profile{FullName: fullName},
		health:      models.Health{BloodType: models.BloodTypeUnknown},
		allergies:   newTable[models.Allergy](),
		medications: newTable[models.Medication](),
		contacts:    newTable[models.EmergencyContact](),
		addresses:   newTable[models.Address](),
	}
}

// table keeps rows by id and remembers insertion order so listings are stable.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Storage keeps everything in process memory behind one lock. It backs
// STORAGE_DRIVER=memory and the service and API tests.
type Storage struct {
	mu sync.RWMutex

	users        map[string]models.User
	usersByEmail map[string]string
	sessions     map[string]models.RefreshSession
	records      map[string]*userRecords
	tokens       map[string]models.EmergencyTokenRecord
	tokenOwners  map[string]string
	nextID       int64

	log *zap.SugaredLogger
}

func NewStorage(log *zap.SugaredLogger) *Storage {
	return &Storage{
		users:        make(map[string]models.User),
		usersByEmail: make(map[string]string),
		sessions:     make(map[string]models.RefreshSession),
		records:      make(map[string]*userRecords),
		tokens:       make(map[string]models.EmergencyTokenRecord),
		tokenOwners:  make(map[string]string),
		log:          log,
	}
}
