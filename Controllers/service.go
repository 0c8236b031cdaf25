package Controllers

import (
	"bytes"
	"sync"

	"gorm.io/gorm"

	"ChecklistPro/Checklist"
	"ChecklistPro/Exporter"
	"ChecklistPro/Importer"
	"ChecklistPro/Locales"
	"ChecklistPro/Models"
)

// DocumentService owns the single in-memory checklist document. The document
// is the source of truth for the running session; every mutation is applied
// under one lock and followed by a full snapshot write, whose failure is
// reported but never rolls the mutation back.
type DocumentService struct {
	mu    sync.Mutex
	store *Models.SnapshotStore
	doc   *Checklist.Document
	lang  Locales.Language
}

// NewDocumentService loads the persisted snapshots and the active language
// into a fresh service.
func NewDocumentService(db *gorm.DB) *DocumentService {
	store := Models.NewSnapshotStore(db)
	lang := store.LoadLanguage()
	return &DocumentService{
		store: store,
		doc:   store.LoadDocument(Locales.NewTranslator(lang)),
		lang:  lang,
	}
}

// Language returns the persisted active language.
func (s *DocumentService) Language() Locales.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches and persists the active language.
func (s *DocumentService) SetLanguage(lang Locales.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	return s.store.SaveLanguage(lang)
}

// Translator resolves the translator for a request: an explicit supported
// override wins, otherwise the active language applies.
func (s *DocumentService) Translator(override string) Locales.Translator {
	if lang, ok := Locales.ParseLanguage(override); ok {
		return Locales.NewTranslator(lang)
	}
	return Locales.NewTranslator(s.Language())
}

// Mutate applies fn to the document and writes all snapshots back. The
// returned error is the persistence failure, if any.
func (s *DocumentService) Mutate(fn func(doc *Checklist.Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
	return s.store.SaveDocument(s.doc)
}

// Read runs fn against the document under the lock, without persisting.
func (s *DocumentService) Read(fn func(doc *Checklist.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// ImportRows parses and applies tabular rows as one atomic step: on a
// structural failure (importErr) the document is untouched and nothing is
// persisted. persistErr reports a failed snapshot write after a successful
// import.
func (s *DocumentService) ImportRows(rows [][]string, tr Locales.Translator) (report Importer.Report, persistErr, importErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, importErr = Importer.Import(s.doc, rows, tr)
	if importErr != nil {
		return report, nil, importErr
	}
	return report, s.store.SaveDocument(s.doc), nil
}

// WorkbookBackup renders the current document for the scheduled backup. A nil
// buffer with zero count means there is nothing worth archiving.
func (s *DocumentService) WorkbookBackup() (*bytes.Buffer, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := len(s.doc.Tasks)
	if count == 0 {
		return nil, 0, nil
	}
	buf, err := Exporter.Workbook(s.doc, Locales.NewTranslator(s.lang))
	return buf, count, err
}

// storageNotice converts a snapshot write failure into the localized notice
// shown alongside an otherwise successful mutation.
func storageNotice(err error, tr Locales.Translator) string {
	if err == nil {
		return ""
	}
	return tr.T("storageError")
}
