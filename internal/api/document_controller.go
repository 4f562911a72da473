package api

import (
	"net/http"
	"strconv"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/service"
	"github.com/Sarthak-Jamdade/CEP-Review1/internal/utils"
	"github.com/gin-gonic/gin"
)

// DocumentController 证件文档控制器
type DocumentController struct {
	documentService service.DocumentService
	maxSize         int64
}

// NewDocumentController 创建文档控制器
func NewDocumentController(documentService service.DocumentService, maxSize int64) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		maxSize:         maxSize,
	}
}

// Upload 上传证件
// @Summary      上传证件
// @Description  上传一份证件文件,同类型旧件被替换
// @Tags         证件
// @Accept       multipart/form-data
// @Produce      json
// @Param        email formData string true "用户邮箱"
// @Param        doc_type formData string true "证件类型"
// @Param        file formData file true "证件文件(pdf/png/jpg/jpeg)"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /upload-document [post]
func (c *DocumentController) Upload(ctx *gin.Context) {
	email := ctx.PostForm("email")
	docType := ctx.PostForm("doc_type")

	if err := utils.ValidateDocType(docType); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", "file is required")
		return
	}
	if c.maxSize > 0 && file.Size > c.maxSize {
		Error(ctx, http.StatusBadRequest, "invalid request", "file exceeds maximum allowed size")
		return
	}

	doc, err := c.documentService.Upload(ctx.Request.Context(), email, docType, file)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Created(ctx, doc)
}

// List 列出证件
// @Summary      列出证件
// @Description  按邮箱返回用户上传的全部证件记录
// @Tags         证件
// @Accept       json
// @Produce      json
// @Param        request body emailRequest true "用户邮箱"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /get-documents [post]
func (c *DocumentController) List(ctx *gin.Context) {
	var req emailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	docs, err := c.documentService.List(ctx.Request.Context(), req.Email)
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	Success(ctx, docs)
}

// Open 下载证件文件
// @Summary      下载证件文件
// @Description  按 ID 返回证件文件内容
// @Tags         证件
// @Produce      octet-stream
// @Param        id path int true "证件 ID"
// @Success      200  {file}  binary
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /open-document/{id} [get]
func (c *DocumentController) Open(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		Error(ctx, http.StatusBadRequest, "invalid document ID", err.Error())
		return
	}

	doc, err := c.documentService.Open(ctx.Request.Context(), uint(id))
	if err != nil {
		RespondServiceError(ctx, err)
		return
	}

	ctx.File(doc.FilePath)
}
