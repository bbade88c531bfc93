package service

import (
	"errors"
	"fmt"

	"bookgram/backend/model"

	"gorm.io/gorm"
)

// ListBooks returns one page of books plus the total row count. Pagination
// offset is (page-1)*size; an out-of-range page yields an empty list with
// the total still reported.
func ListBooks(page int, size int) ([]*model.Book, int64, error) {
	var total int64
	if err := model.DB.Model(&model.Book{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	books := make([]*model.Book, 0, size)
	offset := (page - 1) * size
	if err := model.DB.Order("id").Offset(offset).Limit(size).Find(&books).Error; err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return books, total, nil
}

func GetBook(id int64) (*model.Book, error) {
	var book model.Book
	if err := model.DB.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

func CreateBook(book *model.Book) error {
	if err := model.DB.Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// UpdateBook overwrites only the supplied fields, keyed by column name, and
// refreshes the updated_at timestamp even when fields is empty.
func UpdateBook(id int64, fields map[string]any) (*model.Book, error) {
	book, err := GetBook(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := model.DB.Model(book).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("update book %d: %w", id, err)
		}
	} else {
		if err := model.DB.Save(book).Error; err != nil {
			return nil, fmt.Errorf("update book %d: %w", id, err)
		}
	}

	return GetBook(id)
}

func DeleteBook(id int64) error {
	book, err := GetBook(id)
	if err != nil {
		return err
	}
	if err := model.DB.Delete(book).Error; err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}
