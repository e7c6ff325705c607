package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	documentapp "github.com/unionadmin/backend/internal/application/document"
)

// maxUploadSize caps attachment uploads at 20 MiB
const maxUploadSize = 20 << 20

// DocumentHandler handles attachment endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *documentapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *documentapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload godoc
// @ID           uploadDocument
// @Summary      Upload an attachment
// @Description  Accepts a multipart form with a "file" part and optional
// @Description  description, ownerType and ownerId fields.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Param        description formData string false "Description"
// @Param        ownerType formData string false "Owning record type"
// @Param        ownerId formData string false "Owning record ID"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}

	req := documentapp.UploadDocumentRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Description: c.PostForm("description"),
		OwnerType:   c.PostForm("ownerType"),
	}
	if raw := c.PostForm("ownerId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid owner ID")
			return
		}
		req.OwnerID = &ownerID
	}

	doc, err := h.documentService.Upload(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Document uploaded", doc)
}

// Get godoc
// @ID           getDocument
// @Summary      Get document metadata by ID
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", doc)
}

// List godoc
// @ID           listDocuments
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	query := listQuery(c)
	documents, total, err := h.documentService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.BaseHandler.List(c, documents, query, total)
}

// ListByOwner godoc
// @ID           listDocumentsByOwner
// @Summary      List the documents attached to a record
// @Tags         documents
// @Produce      json
// @Param        ownerType path string true "Owning record type"
// @Param        ownerId path string true "Owning record ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/owner/{ownerType}/{ownerId} [get]
func (h *DocumentHandler) ListByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		h.BadRequest(c, "Invalid owner ID")
		return
	}

	documents, err := h.documentService.ListByOwner(c.Request.Context(), c.Param("ownerType"), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", documents)
}

// Download godoc
// @ID           downloadDocument
// @Summary      Download a document's content
// @Tags         documents
// @Produce      octet-stream
// @Param        id path string true "Document ID"
// @Success      200 {file} binary
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	result, err := h.documentService.Download(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// PresignDownload godoc
// @ID           presignDocumentDownload
// @Summary      Get a short-lived direct download URL
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/{id}/presign [get]
func (h *DocumentHandler) PresignDownload(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	url, err := h.documentService.PresignDownload(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", gin.H{"url": url})
}

// Attach godoc
// @ID           attachDocument
// @Summary      Attach a document to an owning record
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Document ID"
// @Param        request body document.AttachDocumentRequest true "Owner reference"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/{id}/attach [post]
func (h *DocumentHandler) Attach(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	var req documentapp.AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	doc, err := h.documentService.Attach(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Document attached", doc)
}

// Update godoc
// @ID           updateDocument
// @Summary      Update a document's description
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Document ID"
// @Param        request body document.UpdateDocumentRequest true "Description"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	var req documentapp.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Document updated", doc)
}

// Delete godoc
// @ID           deleteDocument
// @Summary      Soft-delete a document
// @Tags         documents
// @Produce      json
// @Param        id path string true "Document ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Document deleted", nil)
}
