package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"printdesk/internal/delivery/http/response"
	"printdesk/internal/domain/entity"
	"printdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PrintJobHandler holds dependencies for print-job handlers.
type PrintJobHandler struct {
	uc     usecase.PrintJobUsecase
	logger *slog.Logger
}

// NewPrintJobHandler is the constructor for PrintJobHandler, injected by Fx.
func NewPrintJobHandler(uc usecase.PrintJobUsecase, logger *slog.Logger) *PrintJobHandler {
	return &PrintJobHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the anonymous multipart job submission from the customer
// upload page. Files come in the "files" field; job metadata in form values.
func (h *PrintJobHandler) Submit(c echo.Context) error {
	shopOwnerID, err := uuid.Parse(c.FormValue("shopOwnerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing shopOwnerId")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Request must be multipart/form-data")
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return response.BadRequest(c, "PRINT_JOB_NO_FILES", "At least one file is required")
	}

	input := &usecase.SubmitPrintJobInput{
		ShopOwnerID:   shopOwnerID,
		CustomerName:  c.FormValue("customerName"),
		CustomerEmail: c.FormValue("customerEmail"),
		CustomerPhone: c.FormValue("customerPhone"),
		NoofCopies:    formInt(c, "noofCopies", 1),
		PrintType:     entity.PrintType(c.FormValue("printType")),
		PaperType:     c.FormValue("paperType"),
		PrintSide:     entity.PrintSide(c.FormValue("printSide")),
		SpecificPages: c.FormValue("specificPages"),
		TotalPages:    formInt(c, "totalPages", 0),
	}

	files, closeFiles, err := openUploads(fileHeaders)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded file")
	}
	defer closeFiles()
	input.Files = files

	job, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Print job submitted successfully")
}

// ListShopJobs returns the caller's jobs, newest first, with files attached.
func (h *PrintJobHandler) ListShopJobs(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop ID")
	}

	if callerShopID(c) != shopID {
		return response.Forbidden(c, "PERMISSION_DENIED", "You may only view your own shop's jobs")
	}

	jobs, err := h.uc.ListShopJobs(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

// GetJob returns one of the caller's jobs.
func (h *PrintJobHandler) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	job, err := h.uc.GetJob(c.Request().Context(), callerShopID(c), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job retrieved successfully")
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus applies a forward-only status transition to one of the
// caller's jobs.
func (h *PrintJobHandler) UpdateStatus(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	job, err := h.uc.UpdateStatus(c.Request().Context(), &usecase.UpdateJobStatusInput{
		JobID:       jobID,
		ShopOwnerID: callerShopID(c),
		Status:      entity.JobStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job status updated successfully")
}

// openUploads opens every multipart file and returns a single closer for all
// of them. On error the already-opened files are closed before returning.
func openUploads(headers []*multipart.FileHeader) ([]usecase.SubmitFileInput, func(), error) {
	files := make([]usecase.SubmitFileInput, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()

			return nil, nil, errors.Wrap(err, "failed to open multipart file")
		}
		opened = append(opened, f)

		files = append(files, usecase.SubmitFileInput{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}

	return files, closeAll, nil
}

func formInt(c echo.Context, field string, fallback int) int {
	raw := c.FormValue(field)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return n
}
