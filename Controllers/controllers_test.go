package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ChecklistPro/Controllers"
	"ChecklistPro/Models"
	"ChecklistPro/Validation"
)

// testApp wires the document routes without the auth middleware so handlers
// can be exercised directly.
func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := Models.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	app := newApp(db)
	return app, db
}

func newApp(db *gorm.DB) *fiber.App {
	service := Controllers.NewDocumentService(db)
	validate := Validation.New()
	checklist := Controllers.NewChecklistController(service)
	header := Controllers.NewHeaderController(service, validate)
	transfer := Controllers.NewTransferController(service)

	app := fiber.New()
	app.Get("/api/document", checklist.GetDocument)
	app.Get("/api/view", checklist.GetView)
	app.Post("/api/clear-all", checklist.ClearAll)
	app.Get("/api/language", checklist.GetLanguage)
	app.Put("/api/language", checklist.SetLanguage)
	app.Get("/api/header", header.GetHeader)
	app.Patch("/api/header", header.UpdateHeader)
	app.Post("/api/tasks", checklist.CreateTask)
	app.Post("/api/tasks/clear-answered", checklist.ClearAnswered)
	app.Post("/api/tasks/reset-answers", checklist.ResetAnswers)
	app.Put("/api/tasks/:id", checklist.EditTask)
	app.Delete("/api/tasks/:id", checklist.DeleteTask)
	app.Put("/api/tasks/:id/answer", checklist.SetAnswer)
	app.Post("/api/tasks/:id/cycle", checklist.CycleAnswer)
	app.Put("/api/tasks/:id/group", checklist.MoveTask)
	app.Get("/api/groups", checklist.GetGroups)
	app.Post("/api/groups", checklist.CreateGroup)
	app.Delete("/api/groups/:id", checklist.DeleteGroup)
	app.Post("/api/import", transfer.Import)
	app.Get("/api/export/excel", transfer.ExportExcel)
	app.Get("/api/export/pdf", transfer.ExportPDF)
	app.Get("/api/export/template", transfer.Template)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, fiber.Map) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload fiber.Map
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 && raw[0] == '{' {
			require.NoError(t, json.Unmarshal(raw, &payload))
		}
	}
	return resp, payload
}

func TestCreateTaskAndDocument(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "  Buy milk  "})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, payload["added"])
	task := payload["task"].(map[string]interface{})
	assert.Equal(t, "Buy milk", task["text"])
	assert.Equal(t, "unanswered", task["answer"])
	assert.Empty(t, payload["notice"])

	resp, payload = doJSON(t, app, fiber.MethodGet, "/api/document", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["totalCount"])
	assert.Equal(t, float64(0), payload["answeredCount"])
}

func TestCreateTaskWhitespaceIsNoOp(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "   "})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, payload["added"])

	_, payload = doJSON(t, app, fiber.MethodGet, "/api/document", nil)
	assert.Equal(t, float64(0), payload["totalCount"])
}

func TestCycleAnswer(t *testing.T) {
	app, _ := testApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Inspect roof"})
	id := int64(created["task"].(map[string]interface{})["id"].(float64))

	target := "/api/tasks/" + jsonID(id) + "/cycle"
	_, payload := doJSON(t, app, fiber.MethodPost, target, nil)
	assert.Equal(t, "yes", payload["answer"])
	assert.Equal(t, "Yes", payload["answerLabel"])

	doJSON(t, app, fiber.MethodPost, target, nil)
	doJSON(t, app, fiber.MethodPost, target, nil)
	_, payload = doJSON(t, app, fiber.MethodPost, target, nil)
	assert.Equal(t, "unanswered", payload["answer"])
}

func TestSetAnswerRejectsUnknownState(t *testing.T) {
	app, _ := testApp(t)

	_, created := doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Check wiring"})
	id := int64(created["task"].(map[string]interface{})["id"].(float64))

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/tasks/"+jsonID(id)+"/answer", fiber.Map{"answer": "maybe"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/tasks/"+jsonID(id)+"/answer", fiber.Map{"answer": "na"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGroupLifecycle(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/api/groups", fiber.Map{"name": "Garden"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	groupID := int64(payload["group"].(map[string]interface{})["id"].(float64))

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/groups", fiber.Map{"name": "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, created := doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Mow lawn", "groupId": groupID})
	taskID := int64(created["task"].(map[string]interface{})["id"].(float64))

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/groups/"+jsonID(groupID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, doc := doJSON(t, app, fiber.MethodGet, "/api/document", nil)
	tasks := doc["tasks"].([]interface{})
	require.Len(t, tasks, 1)
	task := tasks[0].(map[string]interface{})
	assert.Equal(t, float64(taskID), task["id"])
	assert.Nil(t, task["groupId"], "deleting a group detaches its tasks")
}

func TestViewFilterAndEmptyStates(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/view", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Your checklist is empty.", payload["emptyState"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/view?filter=bogus", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Paint fence"})

	_, payload = doJSON(t, app, fiber.MethodGet, "/api/view?filter=yes", nil)
	assert.Equal(t, "No tasks match the current filter.", payload["emptyState"])

	_, payload = doJSON(t, app, fiber.MethodGet, "/api/view?filter=unanswered", nil)
	assert.Equal(t, "", payload["emptyState"])
	sections := payload["sections"].([]interface{})
	require.Len(t, sections, 1)
	section := sections[0].(map[string]interface{})
	assert.Equal(t, "Uncategorized", section["groupName"])
}

func TestViewPolishOverride(t *testing.T) {
	app, _ := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Paint fence"})

	_, payload := doJSON(t, app, fiber.MethodGet, "/api/view?lang=pl", nil)
	sections := payload["sections"].([]interface{})
	section := sections[0].(map[string]interface{})
	assert.Equal(t, "Bez kategorii", section["groupName"])
	task := section["tasks"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Bez odpowiedzi", task["answerLabel"])
}

func TestLanguageRoundTrip(t *testing.T) {
	app, db := testApp(t)

	_, payload := doJSON(t, app, fiber.MethodGet, "/api/language", nil)
	assert.Equal(t, "en", payload["language"])

	resp, _ := doJSON(t, app, fiber.MethodPut, "/api/language", fiber.Map{"language": "xx"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, payload = doJSON(t, app, fiber.MethodPut, "/api/language", fiber.Map{"language": "pl"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "pl", payload["language"])

	// A fresh service over the same database sees the switch.
	restarted := newApp(db)
	_, payload = doJSON(t, restarted, fiber.MethodGet, "/api/language", nil)
	assert.Equal(t, "pl", payload["language"])
}

func TestHeaderValidationAndPartialUpdate(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPatch, "/api/header", fiber.Map{"date": "not-a-date"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, payload["errors"])

	resp, payload = doJSON(t, app, fiber.MethodPatch, "/api/header", fiber.Map{"investor": "ACME"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	header := payload["header"].(map[string]interface{})
	assert.Equal(t, "ACME", header["investor"])
	assert.Equal(t, "My Checklist", header["title"], "untouched fields keep their value")
}

func TestMutationsSurviveRestart(t *testing.T) {
	app, db := testApp(t)

	doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Order windows"})
	doJSON(t, app, fiber.MethodPatch, "/api/header", fiber.Map{"title": "Renovation"})

	restarted := newApp(db)
	_, payload := doJSON(t, restarted, fiber.MethodGet, "/api/document", nil)
	assert.Equal(t, float64(1), payload["totalCount"])
	header := payload["header"].(map[string]interface{})
	assert.Equal(t, "Renovation", header["title"])
}

func TestImportCSVUpload(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := uploadFile(t, app, "tasks.csv", "task,group\nBuy milk,Home\nPay rent,\n")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), payload["added"])
	assert.Equal(t, float64(1), payload["groupsCreated"])

	// Same upload again: everything is a duplicate.
	resp, payload = uploadFile(t, app, "tasks.csv", "task,group\nBuy milk,Home\nPay rent,\n")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), payload["added"])
	assert.Equal(t, "Some items were not imported because they already exist in the list.", payload["notice"])
}

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := uploadFile(t, app, "tasks.txt", "Buy milk\n")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, payload["notice"])
}

func TestImportEmptyFileNotice(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := uploadFile(t, app, "tasks.csv", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The Excel file is empty.", payload["notice"])
}

func TestExportExcelEmptyDocument(t *testing.T) {
	app, _ := testApp(t)

	resp, payload := doJSON(t, app, fiber.MethodGet, "/api/export/excel", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "There are no tasks to export.", payload["notice"])
}

func TestExportExcelStreamsAttachment(t *testing.T) {
	app, _ := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Buy milk"})

	req := httptest.NewRequest(fiber.MethodGet, "/api/export/excel", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "checklist.xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
}

func TestExportPDFNamedAfterTitle(t *testing.T) {
	app, _ := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Buy milk"})
	doJSON(t, app, fiber.MethodPatch, "/api/header", fiber.Map{"title": "Site Check 1"})

	req := httptest.NewRequest(fiber.MethodGet, "/api/export/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "site_check_1.pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestTemplateDownload(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/export/template", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "checklist_template.xlsx")
}

func TestClearAllResetsDocument(t *testing.T) {
	app, _ := testApp(t)
	doJSON(t, app, fiber.MethodPost, "/api/tasks", fiber.Map{"text": "Buy milk"})
	doJSON(t, app, fiber.MethodPatch, "/api/header", fiber.Map{"title": "Renovation"})

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/clear-all", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, payload := doJSON(t, app, fiber.MethodGet, "/api/document", nil)
	assert.Equal(t, float64(0), payload["totalCount"])
	header := payload["header"].(map[string]interface{})
	assert.Equal(t, "My Checklist", header["title"])
}

func uploadFile(t *testing.T, app *fiber.App, filename, content string) (*http.Response, fiber.Map) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/import", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload fiber.Map
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}
