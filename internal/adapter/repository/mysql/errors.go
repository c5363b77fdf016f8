package mysql

import (
	"errors"
	"regexp"

	"medevac-case-service/internal/domain/enquiry"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrFKConstraint   = 1452
)

var reForeignKey = regexp.MustCompile("FOREIGN KEY \\(`?([A-Za-z_]+)`?\\)")

// translate maps driver failures onto the domain taxonomy: record-not-found
// to the entity's sentinel, FK violations to a ReferenceError naming the
// offending column, duplicate keys to ErrDuplicate. Anything else passes
// through as an internal failure.
func translate(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var my *mysqldrv.MySQLError
	if errors.As(err, &my) {
		switch my.Number {
		case mysqlErrFKConstraint:
			ref := "foreign key"
			if m := reForeignKey.FindStringSubmatch(my.Message); m != nil {
				ref = m[1]
			}
			return &enquiry.ReferenceError{Reference: ref}
		case mysqlErrDuplicateEntry:
			return enquiry.ErrDuplicate
		}
	}
	return err
}
