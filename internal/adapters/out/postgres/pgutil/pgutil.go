// Package pgutil holds helpers shared by the GORM repositories: error
// classification and translation of specification criteria into WHERE clauses.
package pgutil

import (
	"errors"
	"fmt"
	"strings"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeInvalidText         = "22P02"
)

// Columns maps logical field names of a specification to table columns.
// Criteria naming any other field are rejected.
type Columns map[string]string

// NotFound turns gorm.ErrRecordNotFound into errs.ObjectNotFoundError.
func NotFound(err error, entity string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause(entity, id.String(), err)
	}
	return Classify(err, entity)
}

// Classify maps PostgreSQL constraint violations onto the domain error taxonomy.
// Other errors are returned unchanged.
func Classify(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeForeignKeyViolation:
		return errs.NewConflictErrorWithCause(entity+" is referenced by other records", err)
	case codeUniqueViolation:
		return errs.NewConflictErrorWithCause(entity+" already exists", err)
	case codeInvalidText:
		return errs.NewValueIsInvalidErrorWithCause(entity, err)
	default:
		return err
	}
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// Where narrows db by every criterion.
func Where(db *gorm.DB, criteria []kernel.Criterion, columns Columns) (*gorm.DB, error) {
	for _, c := range criteria {
		column, ok := columns[c.Field]
		if !ok {
			return nil, fmt.Errorf("unsupported filter field %q", c.Field)
		}

		value, err := sqlValue(c.Value)
		if err != nil {
			return nil, fmt.Errorf("filter field %q: %w", c.Field, err)
		}

		switch c.Operator {
		case kernel.Equal:
			db = db.Where(column+" = ?", value)
		case kernel.NotEqual:
			db = db.Where(column+" <> ?", value)
		case kernel.ContainsFold:
			text, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("filter field %q: %s needs text, got %T", c.Field, c.Operator, c.Value)
			}
			db = db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", "%"+EscapeLike(strings.ToLower(text))+"%")
		default:
			return nil, fmt.Errorf("filter field %q: unsupported operator %s", c.Field, c.Operator)
		}
	}
	return db, nil
}

// EscapeLike escapes the LIKE wildcards in s so it matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func sqlValue(v any) (any, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case kernel.UUID:
		return value.Bytes(), nil
	case fmt.Stringer:
		return value.String(), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
