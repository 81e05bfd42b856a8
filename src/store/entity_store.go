package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"brewdex/src/helpers"
	"brewdex/src/models"
)

// SnapshotFileName is the file the store persists itself to inside the data
// directory
const SnapshotFileName = "brewdex.bson"

// EntityStore holds every imported entity, keyed by its assigned identifier.
// Access is strictly sequential: one import or export runs start-to-finish on
// the calling goroutine, so the store carries no locking of its own.
type EntityStore struct {
	DataDirectory string

	entities map[string]models.NamedEntity

	// insertion order of identifiers, so FindAll is deterministic
	order []string

	logger *zap.SugaredLogger
}

// NewEntityStore creates a store rooted at the given data directory
func NewEntityStore(dataDir string, logger *zap.SugaredLogger) (*EntityStore, error) {
	store := &EntityStore{
		DataDirectory: dataDir,
		entities:      make(map[string]models.NamedEntity),
		logger:        logger,
	}

	// Ensure the data directory exists
	if err := os.MkdirAll(store.DataDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", store.DataDirectory, err)
	}

	return store, nil
}

// Insert stores a fully constructed entity and returns its assigned
// identifier. Once inserted the store's reference is the authoritative one.
func (s *EntityStore) Insert(entity models.NamedEntity) (string, error) {
	if entity == nil {
		return "", fmt.Errorf("cannot insert nil entity")
	}
	if entity.GetID() != "" {
		return "", fmt.Errorf("%s \"%s\" already has identifier %s", entity.Kind(), entity.GetName(), entity.GetID())
	}

	id := helpers.GenerateUUID()
	entity.SetID(id)
	s.entities[id] = entity
	s.order = append(s.order, id)
	return id, nil
}

// Delete removes a previously inserted entity, eg when a failed child record
// forces its parent's row back out
func (s *EntityStore) Delete(id string) error {
	entity, ok := s.entities[id]
	if !ok {
		return fmt.Errorf("no entity with identifier %s", id)
	}
	entity.SetID("")
	delete(s.entities, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the entity with the given identifier
func (s *EntityStore) Get(id string) (models.NamedEntity, bool) {
	entity, ok := s.entities[id]
	return entity, ok
}

// FindAll returns every stored entity of the given kind, in insertion order
func (s *EntityStore) FindAll(kind string) []models.NamedEntity {
	var found []models.NamedEntity
	for _, id := range s.order {
		if entity := s.entities[id]; entity.Kind() == kind {
			found = append(found, entity)
		}
	}
	return found
}

// ContainsName reports whether any stored entity, of any kind, carries the
// given name
func (s *EntityStore) ContainsName(name string) bool {
	for _, entity := range s.entities {
		if entity.GetName() == name {
			return true
		}
	}
	return false
}

// Count returns the total number of stored entities
func (s *EntityStore) Count() int {
	return len(s.entities)
}

// snapshot is the BSON document the whole store serializes into
type snapshot struct {
	Recipes      []*models.Recipe      `bson:"recipes,omitempty"`
	Styles       []*models.Style       `bson:"styles,omitempty"`
	Equipments   []*models.Equipment   `bson:"equipments,omitempty"`
	Fermentables []*models.Fermentable `bson:"fermentables,omitempty"`
	Hops         []*models.Hop         `bson:"hops,omitempty"`
	Miscs        []*models.Misc        `bson:"miscs,omitempty"`
	Yeasts       []*models.Yeast       `bson:"yeasts,omitempty"`
	Waters       []*models.Water       `bson:"waters,omitempty"`
	Mashes       []*models.Mash        `bson:"mashes,omitempty"`
	MashSteps    []*models.MashStep    `bson:"mash_steps,omitempty"`
}

func (s *EntityStore) snapshotPath() string {
	return filepath.Join(s.DataDirectory, SnapshotFileName)
}

// SaveSnapshot writes the whole store to the data directory as one BSON
// document
func (s *EntityStore) SaveSnapshot() error {
	var snap snapshot
	for _, id := range s.order {
		switch entity := s.entities[id].(type) {
		case *models.Recipe:
			snap.Recipes = append(snap.Recipes, entity)
		case *models.Style:
			snap.Styles = append(snap.Styles, entity)
		case *models.Equipment:
			snap.Equipments = append(snap.Equipments, entity)
		case *models.Fermentable:
			snap.Fermentables = append(snap.Fermentables, entity)
		case *models.Hop:
			snap.Hops = append(snap.Hops, entity)
		case *models.Misc:
			snap.Miscs = append(snap.Miscs, entity)
		case *models.Yeast:
			snap.Yeasts = append(snap.Yeasts, entity)
		case *models.Water:
			snap.Waters = append(snap.Waters, entity)
		case *models.Mash:
			snap.Mashes = append(snap.Mashes, entity)
		case *models.MashStep:
			snap.MashSteps = append(snap.MashSteps, entity)
		default:
			return fmt.Errorf("cannot snapshot entity of unknown kind %s", s.entities[id].Kind())
		}
	}

	data, err := bson.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("error encoding store snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath(), data, 0644); err != nil {
		return fmt.Errorf("error writing store snapshot %s: %w", s.snapshotPath(), err)
	}
	s.logger.Infof("saved %d entities to %s", s.Count(), s.snapshotPath())
	return nil
}

// LoadSnapshot replaces the store contents with the snapshot in the data
// directory. A missing snapshot file just leaves the store empty.
func (s *EntityStore) LoadSnapshot() error {
	data, err := os.ReadFile(s.snapshotPath())
	if os.IsNotExist(err) {
		s.logger.Debugf("no snapshot at %s, starting empty", s.snapshotPath())
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading store snapshot %s: %w", s.snapshotPath(), err)
	}

	var snap snapshot
	if err := bson.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("error decoding store snapshot %s: %w", s.snapshotPath(), err)
	}

	s.entities = make(map[string]models.NamedEntity)
	s.order = nil
	var loaded []models.NamedEntity
	for _, r := range snap.Recipes {
		loaded = append(loaded, r)
	}
	for _, st := range snap.Styles {
		loaded = append(loaded, st)
	}
	for _, e := range snap.Equipments {
		loaded = append(loaded, e)
	}
	for _, f := range snap.Fermentables {
		loaded = append(loaded, f)
	}
	for _, h := range snap.Hops {
		loaded = append(loaded, h)
	}
	for _, m := range snap.Miscs {
		loaded = append(loaded, m)
	}
	for _, y := range snap.Yeasts {
		loaded = append(loaded, y)
	}
	for _, w := range snap.Waters {
		loaded = append(loaded, w)
	}
	for _, m := range snap.Mashes {
		loaded = append(loaded, m)
	}
	for _, step := range snap.MashSteps {
		loaded = append(loaded, step)
	}

	for _, entity := range loaded {
		if entity.GetID() == "" {
			entity.SetID(helpers.GenerateUUID())
		}
		s.entities[entity.GetID()] = entity
		s.order = append(s.order, entity.GetID())
	}

	s.logger.Infof("loaded %d entities from %s", s.Count(), s.snapshotPath())
	return nil
}
