package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"bookgram/backend/common"
	"bookgram/backend/model"
	"bookgram/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type BookCreateRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	Author        string  `json:"author" binding:"required,min=1,max=255"`
	ISBN          *string `json:"isbn" binding:"omitempty,min=10,max=13"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"published_year" binding:"omitempty,gte=1000,lte=9999"`
}

type BookUpdateRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=1,max=255"`
	Author        *string `json:"author" binding:"omitempty,min=1,max=255"`
	ISBN          *string `json:"isbn" binding:"omitempty,min=10,max=13"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"published_year" binding:"omitempty,gte=1000,lte=9999"`
}

type BookListResponse struct {
	Items []*model.Book `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
	Pages int           `json:"pages"`
}

// bindingErrorDetail flattens a gin binding failure into an error body:
// a list of per-field messages for validation errors, the raw message
// otherwise.
func bindingErrorDetail(err error) any {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		details := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			details = append(details, fmt.Sprintf("field %s failed on the %q rule", fe.Field(), fe.Tag()))
		}
		return details
	}
	return err.Error()
}

func bookIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, "book id must be an integer")
		return 0, false
	}
	return id, true
}

// ListBooks handles GET /api/v1/books with page/size query parameters.
func ListBooks(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		common.RespErrorStr(c, http.StatusBadRequest, "page must be an integer >= 1")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 {
		common.RespErrorStr(c, http.StatusBadRequest, "size must be an integer between 1 and 100")
		return
	}

	books, total, err := service.ListBooks(page, size)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to list books", err)
		return
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(size)))
	}
	c.JSON(http.StatusOK, BookListResponse{
		Items: books,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	})
}

// GetBook handles GET /api/v1/books/:id.
func GetBook(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	book, err := service.GetBook(id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, fmt.Sprintf("book with id %d not found", id))
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to get book", err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /api/v1/books.
func CreateBook(c *gin.Context) {
	var req BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespErrorDetail(c, http.StatusBadRequest, bindingErrorDetail(err))
		return
	}

	book := model.Book{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		PublishedYear: req.PublishedYear,
	}
	if err := service.CreateBook(&book); err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to create book", err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

// UpdateBook handles PATCH /api/v1/books/:id; only fields present in the
// body change. An explicit null clears an optional field, and is rejected
// for the required ones.
func UpdateBook(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		common.RespError(c, http.StatusBadRequest, "failed to read request body", err)
		return
	}
	var req BookUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		common.RespErrorDetail(c, http.StatusBadRequest, bindingErrorDetail(err))
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		common.RespErrorDetail(c, http.StatusBadRequest, bindingErrorDetail(err))
		return
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		common.RespErrorDetail(c, http.StatusBadRequest, bindingErrorDetail(err))
		return
	}

	fields := map[string]any{}
	if _, ok := present["title"]; ok {
		if req.Title == nil {
			common.RespErrorStr(c, http.StatusBadRequest, "title cannot be null")
			return
		}
		fields["title"] = *req.Title
	}
	if _, ok := present["author"]; ok {
		if req.Author == nil {
			common.RespErrorStr(c, http.StatusBadRequest, "author cannot be null")
			return
		}
		fields["author"] = *req.Author
	}
	if _, ok := present["isbn"]; ok {
		fields["isbn"] = req.ISBN
	}
	if _, ok := present["description"]; ok {
		fields["description"] = req.Description
	}
	if _, ok := present["published_year"]; ok {
		fields["published_year"] = req.PublishedYear
	}

	book, err := service.UpdateBook(id, fields)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, fmt.Sprintf("book with id %d not found", id))
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to update book", err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/v1/books/:id.
func DeleteBook(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}
	if err := service.DeleteBook(id); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			common.RespErrorStr(c, http.StatusNotFound, fmt.Sprintf("book with id %d not found", id))
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to delete book", err)
		return
	}
	c.Status(http.StatusNoContent)
}
