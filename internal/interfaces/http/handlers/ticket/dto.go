package ticket

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/usecases"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title          string `json:"title" form:"title" binding:"required,max=200"`
	Description    string `json:"description" form:"description" binding:"required,max=5000"`
	Type           string `json:"type" form:"type" binding:"required,max=100"`
	Department     string `json:"department" form:"department" binding:"required,max=100"`
	SubmitterName  string `json:"submitter_name" form:"submitter_name" binding:"max=100"`
	SubmitterEmail string `json:"submitter_email" form:"submitter_email" binding:"omitempty,email"`
}

type AddCommentRequest struct {
	Author string `json:"author" binding:"max=100"`
	Text   string `json:"text" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// parseCreateTicketRequest accepts either a multipart form with file
// attachments or a plain JSON body without them.
func parseCreateTicketRequest(c *gin.Context) (*CreateTicketRequest, []usecases.AttachmentInput, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		var req CreateTicketRequest
		if err := c.ShouldBind(&req); err != nil {
			return nil, nil, errors.NewBadRequestError(err.Error())
		}

		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, errors.NewBadRequestError("failed to parse multipart form")
		}

		attachments, err := readAttachments(form.File["attachments"])
		if err != nil {
			return nil, nil, err
		}

		return &req, attachments, nil
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, nil, errors.NewBadRequestError(err.Error())
	}

	return &req, nil, nil
}

func readAttachments(files []*multipart.FileHeader) ([]usecases.AttachmentInput, error) {
	if len(files) == 0 {
		return nil, nil
	}

	attachments := make([]usecases.AttachmentInput, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.NewBadRequestError(fmt.Sprintf("failed to read attachment %s", fh.Filename))
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.NewBadRequestError(fmt.Sprintf("failed to read attachment %s", fh.Filename))
		}

		attachments = append(attachments, usecases.AttachmentInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return attachments, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket id")
	}
	return uint(id), nil
}

func parseAttachmentIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errors.NewBadRequestError("invalid attachment index")
	}
	return index, nil
}
