package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invopo/internal/domain"
	"invopo/internal/handler"
	"invopo/internal/middleware"
	"invopo/internal/session"
	"invopo/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newUploadContext builds a test context carrying a session ID and a
// multipart upload for the given role.
func newUploadContext(t *testing.T, sessID uuid.UUID, role, filename string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", filename)
	_, _ = part.Write(content)
	_ = writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/"+role, body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	c.Params = gin.Params{{Key: "role", Value: role}}
	c.Set(middleware.ContextKeySessionID, sessID)
	return c, w
}

func TestDocumentHandler_Upload_Success(t *testing.T) {
	sessions := session.NewMemoryStore()
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(sessions, mockSvc)

	sessID := uuid.New()
	sess := sessions.GetOrCreate(sessID)

	content := &domain.ExtractedContent{Text: "invoice text"}
	mockSvc.On("UploadAndExtract", mock.Anything, sess, mock.AnythingOfType("service.UploadInput")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.Session)
			s.StoreFile(domain.RoleInvoice, &domain.TempFile{Path: "/tmp/inv.csv"})
			s.StoreContent(domain.RoleInvoice, content)
		}).
		Return(content, nil)

	c, w := newUploadContext(t, sessID, "invoice", "invoice.csv", []byte("item,qty\nWidget,5"))
	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), "content_ready")
	mockSvc.AssertExpectations(t)
}

func TestDocumentHandler_Upload_InvalidRole(t *testing.T) {
	sessions := session.NewMemoryStore()
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(sessions, mockSvc)

	c, w := newUploadContext(t, uuid.New(), "receipt", "r.pdf", []byte("%PDF-1.4"))
	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ROLE")
	mockSvc.AssertNotCalled(t, "UploadAndExtract", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_Upload_MissingFile(t *testing.T) {
	sessions := session.NewMemoryStore()
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(sessions, mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/invoice", nil)
	c.Params = gin.Params{{Key: "role", Value: "invoice"}}
	c.Set(middleware.ContextKeySessionID, uuid.New())

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
}

func TestDocumentHandler_Upload_ExtractionFailureReportsStoredFile(t *testing.T) {
	sessions := session.NewMemoryStore()
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(sessions, mockSvc)

	sessID := uuid.New()
	sess := sessions.GetOrCreate(sessID)

	mockSvc.On("UploadAndExtract", mock.Anything, sess, mock.AnythingOfType("service.UploadInput")).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.Session)
			s.StoreFile(domain.RolePurchaseOrder, &domain.TempFile{Path: "/tmp/po.pdf"})
		}).
		Return(nil, domain.ErrExtractionFailed)

	c, w := newUploadContext(t, sessID, "purchase_order", "po.pdf", []byte("%PDF-1.4"))
	h.Upload(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "EXTRACTION_FAILED")
	// The response still reports the retained file handle's phase.
	assert.Contains(t, w.Body.String(), "file_stored")
	assert.Equal(t, domain.PhaseFileStored, sess.Slot(domain.RolePurchaseOrder).Phase())
}

func TestDocumentHandler_Upload_UnsupportedFormat(t *testing.T) {
	sessions := session.NewMemoryStore()
	mockSvc := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(sessions, mockSvc)

	sessID := uuid.New()
	mockSvc.On("UploadAndExtract", mock.Anything, mock.Anything, mock.AnythingOfType("service.UploadInput")).
		Return(nil, domain.ErrUnsupportedFormat)

	c, w := newUploadContext(t, sessID, "invoice", "notes.txt", []byte("plain text"))
	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FORMAT")
}
