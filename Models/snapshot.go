package Models

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ChecklistPro/Checklist"
	"ChecklistPro/Locales"
)

// Snapshot keys. Tasks keep the legacy "todos" key so databases written by
// earlier versions keep loading.
const (
	KeyHeaderData = "headerData"
	KeyGroups     = "groups"
	KeyTasks      = "todos"
	KeyLanguage   = "language"
)

// Snapshot is one persisted JSON blob, keyed by store name. The full value of
// each store is rewritten after every mutation.
type Snapshot struct {
	ID        uint           `gorm:"primarykey"`
	Key       string         `gorm:"uniqueIndex;size:32"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// SnapshotStore loads and saves the three document snapshots plus the active
// language. Each snapshot is independently optional: a missing or unparseable
// value falls back to its default without disturbing the others.
type SnapshotStore struct {
	DB *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{DB: db}
}

// storedTask tolerates both the current task shape and the legacy one that
// carried a completed flag instead of an answer.
type storedTask struct {
	ID        int64            `json:"id"`
	Text      string           `json:"text"`
	Answer    Checklist.Answer `json:"answer"`
	Completed *bool            `json:"completed"`
	GroupID   *int64           `json:"groupId"`
}

func (s *SnapshotStore) read(key string, out interface{}) bool {
	var snap Snapshot
	if err := s.DB.Where("key = ?", key).First(&snap).Error; err != nil {
		return false
	}
	if err := json.Unmarshal(snap.Value, out); err != nil {
		log.Printf("snapshot %q is unreadable, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

func (s *SnapshotStore) write(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing snapshot %q: %w", key, err)
	}

	var snap Snapshot
	result := s.DB.Where("key = ?", key).First(&snap)
	if result.Error != nil {
		snap = Snapshot{Key: key, Value: raw}
		if err := s.DB.Create(&snap).Error; err != nil {
			return fmt.Errorf("writing snapshot %q: %w", key, err)
		}
		return nil
	}

	snap.Value = raw
	if err := s.DB.Save(&snap).Error; err != nil {
		return fmt.Errorf("writing snapshot %q: %w", key, err)
	}
	return nil
}

// LoadDocument rebuilds the in-memory document from the persisted snapshots,
// migrating legacy task records on the way. Any snapshot that fails to load
// simply leaves its part of the document at defaults.
func (s *SnapshotStore) LoadDocument(tr Locales.Translator) *Checklist.Document {
	doc := Checklist.NewDocument(tr)

	var header Checklist.HeaderData
	if s.read(KeyHeaderData, &header) {
		doc.Header = header
	}

	var groups []Checklist.Group
	if s.read(KeyGroups, &groups) {
		doc.Groups = groups
		for _, g := range groups {
			doc.BumpIDCounter(g.ID)
		}
	}

	var stored []storedTask
	if s.read(KeyTasks, &stored) {
		tasks := make([]Checklist.Task, 0, len(stored))
		for _, st := range stored {
			tasks = append(tasks, migrateTask(st))
			doc.BumpIDCounter(st.ID)
		}
		doc.Tasks = tasks
	}

	return doc
}

// migrateTask maps a stored record to the current shape. A modern answer field
// wins; otherwise a legacy completed flag maps true->yes, false->unanswered.
func migrateTask(st storedTask) Checklist.Task {
	answer := st.Answer
	if !Checklist.ValidAnswer(answer) {
		answer = Checklist.AnswerUnanswered
		if st.Completed != nil && *st.Completed {
			answer = Checklist.AnswerYes
		}
	}
	return Checklist.Task{
		ID:      st.ID,
		Text:    st.Text,
		Answer:  answer,
		GroupID: st.GroupID,
	}
}

// SaveDocument writes the full current value of all three stores. Every store
// is attempted even if an earlier one fails; the first error is returned so
// the caller can surface a storage notice.
func (s *SnapshotStore) SaveDocument(doc *Checklist.Document) error {
	var firstErr error
	for _, w := range []struct {
		key   string
		value interface{}
	}{
		{KeyHeaderData, doc.Header},
		{KeyGroups, groupsOrEmpty(doc.Groups)},
		{KeyTasks, tasksOrEmpty(doc.Tasks)},
	} {
		if err := s.write(w.key, w.value); err != nil {
			log.Println(err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// LoadLanguage returns the persisted active language, or the default when none
// was saved.
func (s *SnapshotStore) LoadLanguage() Locales.Language {
	var code string
	if s.read(KeyLanguage, &code) {
		if lang, ok := Locales.ParseLanguage(code); ok {
			return lang
		}
	}
	return Locales.DefaultLanguage
}

func (s *SnapshotStore) SaveLanguage(lang Locales.Language) error {
	return s.write(KeyLanguage, string(lang))
}

// nil slices would persist as JSON null; snapshots always store arrays.
func groupsOrEmpty(groups []Checklist.Group) []Checklist.Group {
	if groups == nil {
		return []Checklist.Group{}
	}
	return groups
}

func tasksOrEmpty(tasks []Checklist.Task) []Checklist.Task {
	if tasks == nil {
		return []Checklist.Task{}
	}
	return tasks
}
