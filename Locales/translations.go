package Locales

import "strings"

// Language is an active UI locale.
type Language string

const (
	English Language = "en"
	Polish  Language = "pl"
)

// DefaultLanguage is used when no language was persisted or requested.
const DefaultLanguage = English

// ParseLanguage normalizes a language code coming from storage or a request.
func ParseLanguage(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English, true
	case Polish:
		return Polish, true
	}
	return DefaultLanguage, false
}

var translations = map[string]map[Language]string{
	// Header
	"appTitle":    {English: "Checklist PRO", Polish: "Checklista PRO"},
	"appSubtitle": {English: "Create and manage your tasks with ease.", Polish: "Twórz i zarządzaj swoimi zadaniami z łatwością."},

	// Checklist header
	"listTitle":   {English: "My Checklist", Polish: "Moja Checklista"},
	"investor":    {English: "Investor", Polish: "Inwestor"},
	"contractor":  {English: "Contractor", Polish: "Wykonawca"},
	"date":        {English: "Date", Polish: "Data"},
	"clickToEdit": {English: "Click to edit", Polish: "Kliknij, aby edytować"},

	// Input form
	"addTaskPlaceholder": {English: "Add a new task...", Polish: "Dodaj nowe zadanie..."},
	"uncategorized":      {English: "Uncategorized", Polish: "Bez kategorii"},
	"add":                {English: "Add", Polish: "Dodaj"},

	// Group form
	"newGroup":                {English: "+ New Group", Polish: "+ Nowa grupa"},
	"newGroupNamePlaceholder": {English: "New group name...", Polish: "Nazwa nowej grupy..."},
	"create":                  {English: "Create", Polish: "Utwórz"},

	// Main controls
	"actions":     {English: "Actions", Polish: "Akcje"},
	"template":    {English: "Template", Polish: "Szablon"},
	"import":      {English: "Import", Polish: "Importuj"},
	"exportExcel": {English: "Export Excel", Polish: "Eksportuj Excel"},
	"exportPdf":   {English: "Export PDF", Polish: "Eksportuj PDF"},

	// Task list
	"yourTasks":          {English: "Your Tasks", Polish: "Twoje zadania"},
	"answered":           {English: "Answered", Polish: "Udzielono odpowiedzi"},
	"groupIsEmpty":       {English: "This group is empty.", Polish: "Ta grupa jest pusta."},
	"noTasksMatchFilter": {English: "No tasks match the current filter.", Polish: "Żadne zadania nie pasują do obecnego filtra."},
	"checklistIsEmpty":   {English: "Your checklist is empty.", Polish: "Twoja checklista jest pusta."},
	"getStarted":         {English: "Add a new task above to get started!", Polish: "Dodaj nowe zadanie powyżej, aby rozpocząć!"},

	// Filter controls and answer labels
	"all":        {English: "All", Polish: "Wszystkie"},
	"yes":        {English: "Yes", Polish: "Tak"},
	"no":         {English: "No", Polish: "Nie"},
	"na":         {English: "N/A", Polish: "N/d"},
	"unanswered": {English: "Unanswered", Polish: "Bez odpowiedzi"},

	// Footer actions
	"clearAnswered": {English: "Clear Answered", Polish: "Wyczyść zaznaczone"},
	"resetAnswers":  {English: "Reset Answers", Polish: "Zresetuj odpowiedzi"},
	"clearAll":      {English: "Clear All", Polish: "Wyczyść wszystko"},

	// Alerts and notices
	"noTasksToExport":  {English: "There are no tasks to export.", Polish: "Brak zadań do wyeksportowania."},
	"importSomeExist":  {English: "Some items were not imported because they already exist in the list.", Polish: "Niektóre elementy nie zostały zaimportowane, ponieważ już istnieją na liście."},
	"importEmptyFile":  {English: "The Excel file is empty.", Polish: "Plik Excel jest pusty."},
	"importNoData":     {English: "Could not find any data in the Excel file. Please ensure the first column has a header and contains your tasks.", Polish: "Nie można znaleźć danych w pliku Excel. Upewnij się, że pierwsza kolumna ma nagłówek i zawiera zadania."},
	"importNoNewTasks": {English: "No new tasks were found in the imported file.", Polish: "Nie znaleziono nowych zadań w importowanym pliku."},
	"importError":      {English: "There was an error processing the Excel file. Please ensure it's a valid format.", Polish: "Wystąpił błąd podczas przetwarzania pliku Excel. Upewnij się, że ma prawidłowy format."},
	"fileReadError":    {English: "Failed to read the file.", Polish: "Nie udało się odczytać pliku."},
	"pdfError":         {English: "Could not export to PDF. The required library is missing.", Polish: "Nie można wyeksportować do PDF. Brak wymaganej biblioteki."},
	"storageError":     {English: "Could not save changes permanently. Your browser's storage might be full or inaccessible.", Polish: "Nie można zapisać zmian na stałe. Pamięć przeglądarki może być pełna lub niedostępna."},

	// Export headers
	"task":             {English: "Task", Polish: "Zadanie"},
	"answer":           {English: "Answer", Polish: "Odpowiedź"},
	"group":            {English: "Group", Polish: "Grupa"},
	"title":            {English: "Title:", Polish: "Tytuł:"},
	"investorHeader":   {English: "Investor:", Polish: "Inwestor:"},
	"contractorHeader": {English: "Contractor:", Polish: "Wykonawca:"},
	"dateHeader":       {English: "Date:", Polish: "Data:"},
}

// Translator resolves message keys against one active language.
type Translator struct {
	lang Language
}

func NewTranslator(lang Language) Translator {
	return Translator{lang: lang}
}

func (t Translator) Language() Language {
	return t.lang
}

// T returns the localized string for key. Unknown keys come back unchanged so a
// missing entry shows up in the UI instead of vanishing.
func (t Translator) T(key string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if msg, ok := entry[t.lang]; ok {
		return msg
	}
	return entry[English]
}
