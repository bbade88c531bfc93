package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"bookgram/backend/common"
	"bookgram/backend/service"

	"github.com/gin-gonic/gin"
)

// SaveFile handles POST /api/v1/files/save. The multipart form carries the
// file blob, a title (normalized into the topic) and the subscribing user's
// id. On success the response body is the topic string.
func SaveFile(c *gin.Context) {
	title := c.PostForm("title")
	userID, err := strconv.ParseInt(c.PostForm("user_id"), 10, 64)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, "file is required")
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		common.RespError(c, http.StatusBadRequest, "failed to read file", err)
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		common.RespError(c, http.StatusBadRequest, "failed to read file", err)
		return
	}

	topic, err := service.SaveUpload(title, fileHeader.Filename, content, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUpload):
			common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			// Deliberately 404, matching the established contract of this
			// endpoint even though the user is referenced mid-workflow.
			common.RespErrorStr(c, http.StatusNotFound, err.Error())
		default:
			common.RespError(c, http.StatusInternalServerError, "failed to save file", err)
		}
		return
	}

	c.JSON(http.StatusCreated, topic)
}

// GetFileByTopic handles GET /api/v1/files/topic/:topic.
func GetFileByTopic(c *gin.Context) {
	topic := c.Param("topic")
	record, err := service.GetFileByTopic(topic)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, "file with topic "+topic+" not found")
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to get file", err)
		return
	}
	c.JSON(http.StatusOK, record)
}
