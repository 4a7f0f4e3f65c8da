package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"peakform/internal/domain"
	"peakform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Imported text files are small; cap reads defensively anyway.
const maxImportSize = 1 << 20 // 1 MiB

// DiaryHandler holds the diary service dependency.
type DiaryHandler struct {
	diaryService service.DiaryService
}

// NewDiaryHandler creates a new DiaryHandler.
func NewDiaryHandler(diaryService service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// --- Request/Response Structs ---

type UpdateFieldRequest struct {
	Section domain.Section `json:"section" binding:"required,oneof=run strength nutrition mindset"`
	Field   string         `json:"field" binding:"required"`
	Value   string         `json:"value"`
}

type ImportResponse struct {
	Date                 string       `json:"date"`
	Entry                domain.Entry `json:"entry"`
	CalorieTargetApplied bool         `json:"calorieTargetApplied"`
}

// --- Handler Methods ---

// GetEntry returns the entry for a date, lazily materializing the empty
// template when the date has never been logged.
func (h *DiaryHandler) GetEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entry, err := h.diaryService.GetEntry(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("get entry: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PutEntry replaces the full entry for a date.
func (h *DiaryHandler) PutEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var entry domain.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	entry.Date = c.Param("date") // the path is authoritative for the key

	if err := h.diaryService.SaveEntry(c.Request.Context(), userID, entry); err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("save entry: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PatchEntryField applies a single-field update and returns the re-saved
// entry.
func (h *DiaryHandler) PatchEntryField(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.diaryService.UpdateField(c.Request.Context(), userID, c.Param("date"), domain.FieldUpdate{
		Section: req.Section,
		Field:   req.Field,
		Value:   req.Value,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		// Unknown section/field comes back from the dispatch table.
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ClearDay resets a date's entry to the defaulted template.
func (h *DiaryHandler) ClearDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entry, err := h.diaryService.ClearDay(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("clear day: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to clear day")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetSnapshot returns the user's full entry store plus settings, the same
// payload the original client pulled once on load.
func (h *DiaryHandler) GetSnapshot(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	snapshot, settings, err := h.diaryService.Snapshot(c.Request.Context(), userID)
	if err != nil {
		logrus.Errorf("snapshot: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load diary")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": snapshot, "settings": settings})
}

// GetSettings returns the user's settings record.
func (h *DiaryHandler) GetSettings(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	settings, err := h.diaryService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		logrus.Errorf("get settings: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutSettings replaces the user's settings record.
func (h *DiaryHandler) PutSettings(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var settings domain.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.diaryService.SaveSettings(c.Request.Context(), userID, settings); err != nil {
		logrus.Errorf("save settings: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ImportText accepts a multipart .txt upload in the diary text format and
// imports it as a full entry. Wrong extensions are rejected before parsing;
// a file with no recognized keys still imports a valid empty entry.
func (h *DiaryHandler) ImportText(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing multipart field 'file'")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxImportSize))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	imp, err := h.diaryService.ImportText(c.Request.Context(), userID, fileHeader.Filename, string(content), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrInvalidFileType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("import text: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to import diary file")
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Date:                 imp.Date,
		Entry:                imp.Entry,
		CalorieTargetApplied: imp.CalorieTarget != nil,
	})
}

// GetTemplate stores the date's import template in object storage and
// returns a presigned download URL.
func (h *DiaryHandler) GetTemplate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	url, err := h.diaryService.TemplateDownloadURL(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Errorf("template download url: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to prepare template download")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
